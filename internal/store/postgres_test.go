package store

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewPostgresFromPool(mock), mock
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS wells").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveWells(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec("INSERT INTO wells").
		WithArgs(
			pgxmock.AnyArg(), "33-053-01234", "MAGNUM 2-36", "", "Active", "Horizontal",
			"Watford City", 1700.0, 3200.0, "", "",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.SaveWells(context.Background(), []StoredWell{{
		APIClean:      "33-053-01234",
		WellNameClean: "MAGNUM 2-36",
		WellStatus:    "Active",
		WellType:      "Horizontal",
		ClosestCity:   "Watford City",
		OilProduced:   1700,
		GasProduced:   3200,
		CreatedAt:     time.Now().UTC(),
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListWells(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{
		"id", "api_clean", "well_name_clean", "detail_url", "well_status", "well_type",
		"closest_city", "oil_produced", "gas_produced", "spud_date", "completion_date",
		"latitude", "longitude", "created_at",
	}).AddRow(
		"id-1", "33-053-01234", "MAGNUM 2-36", "", "Active", "Horizontal",
		"Watford City", 1700.0, 3200.0, "2019-07-14", "",
		nil, nil, time.Now().UTC(),
	)
	mock.ExpectQuery("FROM wells ORDER BY api_clean").WillReturnRows(rows)

	got, err := s.ListWells(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "33-053-01234", got[0].APIClean)
	assert.Equal(t, "2019-07-14", got[0].SpudDate)
	assert.Nil(t, got[0].Latitude)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveWellsError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec("INSERT INTO wells").
		WillReturnError(assert.AnError)

	err := s.SaveWells(context.Background(), []StoredWell{{APIClean: "33-053-01234"}})
	assert.Error(t, err)
}
