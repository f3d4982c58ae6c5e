package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/wells-cli/internal/model"
)

func TestReadCSV(t *testing.T) {
	in := strings.NewReader(
		"api_number,well_name,operator\n" +
			"3305301234, MAGNUM 2-36 ,Oasis\n" +
			"330530999\n", // short row
	)

	table, err := ReadCSV(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"api_number", "well_name", "operator"}, table.Header)
	require.Len(t, table.Records, 2)

	first := table.Records[0]
	assert.Equal(t, "3305301234", first.Get(model.ColAPINumber))
	assert.Equal(t, "MAGNUM 2-36", first.Get(model.ColWellName), "cells are trimmed")

	second := table.Records[1]
	assert.Equal(t, "330530999", second.Get(model.ColAPINumber))
	assert.Equal(t, "", second.Get(model.ColWellName), "short rows pad with empty cells")
	assert.True(t, second.Has(model.ColWellName))
}

func TestReadCSV_EmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(
		"api_number,well_name\n" +
			"3305301234,MAGNUM 2-36\n" +
			"bad,\n" +
			"3305305678,RICHARD 34-6H\n",
	))
	require.NoError(t, err)

	table.Records[0].APIClean = "33-053-01234"
	table.Records[0].WellNameClean = "MAGNUM 2-36"
	table.Records[0].ApplyIdentity()
	table.Records[1].Skipped = true
	table.Records[2].APIClean = "33-053-05678"
	table.Records[2].WellNameClean = "RICHARD 34-6H"
	table.Records[2].ApplyIdentity()
	table.Records[2].Details.WellStatus = "Active"
	table.Records[2].ApplyDetails()

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	out, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Contains(t, out.Header, model.ColAPIClean)
	assert.Contains(t, out.Header, model.ColWellStatus)
	require.Len(t, out.Records, 2, "skipped records are dropped")

	assert.Equal(t, "33-053-01234", out.Records[0].Get(model.ColAPIClean))
	assert.Equal(t, model.NA, out.Records[0].Get(model.ColWellStatus), "empty cells become N/A")
	assert.Equal(t, "Active", out.Records[1].Get(model.ColWellStatus))
}

func TestWriteCSV_NoPipelineColumns(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("api_number,well_name\nx,y\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	out, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"api_number", "well_name"}, out.Header,
		"columns nothing produced are not appended")
}

func TestOpen_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wells.csv")
	require.NoError(t, os.WriteFile(path, []byte("api_number\n1\n"), 0o644))

	rc, err := Open(context.Background(), path, nil, nil)
	require.NoError(t, err)
	defer rc.Close() //nolint:errcheck

	table, err := ReadCSV(rc)
	require.NoError(t, err)
	assert.Len(t, table.Records, 1)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), nil, nil)
	assert.Error(t, err)
}
