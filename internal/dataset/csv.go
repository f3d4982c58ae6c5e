// Package dataset reads and writes tabular well extracts. Readers are
// column-tolerant: missing columns are skipped, never errors.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/wells-cli/internal/fetcher"
	"github.com/sells-group/wells-cli/internal/model"
)

// Columns appended to the output dataset when the pipeline produced them.
var outputColumns = []string{
	model.ColAPIClean,
	model.ColWellNameClean,
	model.ColDetailURL,
	model.ColWellStatus,
	model.ColWellType,
	model.ColClosestCity,
	model.ColOilProduced,
	model.ColGasProduced,
}

// Table holds an extract's header and its rows as WellRecords.
type Table struct {
	Header  []string
	Records []*model.WellRecord
}

// ReadCSV parses a CSV extract. The first row is the header; short rows are
// padded with empty cells and long rows are truncated to the header width.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("csv: empty input")
	}
	if err != nil {
		return nil, eris.Wrap(err, "csv: read header")
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{Header: header}
	for i := 0; ; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "csv: read row %d", i+1)
		}
		table.Records = append(table.Records, rowToRecord(i, header, row))
	}
	return table, nil
}

func rowToRecord(index int, header, row []string) *model.WellRecord {
	cells := make(map[string]string, len(header))
	for j, col := range header {
		if j < len(row) {
			cells[col] = strings.TrimSpace(row[j])
		} else {
			cells[col] = ""
		}
	}
	return model.NewWellRecord(index, cells)
}

// WriteCSV writes the table with the pipeline output columns appended after
// the input header. Skipped records are not written; every empty cell is
// replaced with the NA sentinel.
func (t *Table) WriteCSV(w io.Writer) error {
	cols := make([]string, 0, len(t.Header)+len(outputColumns))
	cols = append(cols, t.Header...)
	for _, col := range outputColumns {
		if !t.hasColumn(col) && t.anyRecordHas(col) {
			cols = append(cols, col)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(cols); err != nil {
		return eris.Wrap(err, "csv: write header")
	}

	row := make([]string, len(cols))
	for _, rec := range t.Records {
		if rec.Skipped {
			continue
		}
		for j, col := range cols {
			val := rec.Get(col)
			if strings.TrimSpace(val) == "" {
				val = model.NA
			}
			row[j] = val
		}
		if err := writer.Write(row); err != nil {
			return eris.Wrapf(err, "csv: write row %d", rec.Index)
		}
	}

	writer.Flush()
	return eris.Wrap(writer.Error(), "csv: flush")
}

// WriteCSVFile writes the table to a file path.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "csv: create output")
	}
	defer f.Close() //nolint:errcheck

	return t.WriteCSV(f)
}

func (t *Table) hasColumn(col string) bool {
	for _, h := range t.Header {
		if h == col {
			return true
		}
	}
	return false
}

func (t *Table) anyRecordHas(col string) bool {
	for _, rec := range t.Records {
		if rec.Has(col) {
			return true
		}
	}
	return false
}

// Open returns a reader over an input extract, which may be a local path, an
// http(s) URL, or an ftp URL.
func Open(ctx context.Context, input string, httpFetcher, ftpFetcher fetcher.Fetcher) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		return httpFetcher.Download(ctx, input)
	case strings.HasPrefix(input, "ftp://"):
		return ftpFetcher.Download(ctx, input)
	default:
		f, err := os.Open(input)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: open %s", input)
		}
		return f, nil
	}
}
