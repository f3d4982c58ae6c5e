package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS wells (
	id              TEXT PRIMARY KEY,
	api_clean       TEXT NOT NULL UNIQUE,
	well_name_clean TEXT NOT NULL DEFAULT '',
	detail_url      TEXT NOT NULL DEFAULT '',
	well_status     TEXT NOT NULL DEFAULT 'N/A',
	well_type       TEXT NOT NULL DEFAULT 'N/A',
	closest_city    TEXT NOT NULL DEFAULT 'N/A',
	oil_produced    REAL NOT NULL DEFAULT 0,
	gas_produced    REAL NOT NULL DEFAULT 0,
	spud_date       TEXT NOT NULL DEFAULT '',
	completion_date TEXT NOT NULL DEFAULT '',
	latitude        REAL,
	longitude       REAL,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_wells_well_name_clean ON wells(well_name_clean);
CREATE INDEX IF NOT EXISTS idx_wells_well_status ON wells(well_status);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveWells upserts processed wells keyed by canonical API number.
func (s *SQLiteStore) SaveWells(ctx context.Context, wells []StoredWell) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	const upsert = `
INSERT INTO wells (id, api_clean, well_name_clean, detail_url, well_status, well_type,
	closest_city, oil_produced, gas_produced, spud_date, completion_date,
	latitude, longitude, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(api_clean) DO UPDATE SET
	well_name_clean = excluded.well_name_clean,
	detail_url      = excluded.detail_url,
	well_status     = excluded.well_status,
	well_type       = excluded.well_type,
	closest_city    = excluded.closest_city,
	oil_produced    = excluded.oil_produced,
	gas_produced    = excluded.gas_produced,
	spud_date       = excluded.spud_date,
	completion_date = excluded.completion_date,
	latitude        = excluded.latitude,
	longitude       = excluded.longitude`

	for _, well := range wells {
		if well.ID == "" {
			well.ID = uuid.NewString()
		}
		_, err := tx.ExecContext(ctx, upsert,
			well.ID, well.APIClean, well.WellNameClean, well.DetailURL,
			well.WellStatus, well.WellType, well.ClosestCity,
			well.OilProduced, well.GasProduced,
			well.SpudDate, well.CompletionDate,
			well.Latitude, well.Longitude, well.CreatedAt,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: upsert well %s", well.APIClean)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit")
}

// ListWells returns every stored well ordered by canonical API number.
func (s *SQLiteStore) ListWells(ctx context.Context) ([]StoredWell, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, api_clean, well_name_clean, detail_url, well_status, well_type,
	closest_city, oil_produced, gas_produced, spud_date, completion_date,
	latitude, longitude, created_at
FROM wells ORDER BY api_clean`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list wells")
	}
	defer rows.Close() //nolint:errcheck

	var wells []StoredWell
	for rows.Next() {
		var well StoredWell
		err := rows.Scan(
			&well.ID, &well.APIClean, &well.WellNameClean, &well.DetailURL,
			&well.WellStatus, &well.WellType, &well.ClosestCity,
			&well.OilProduced, &well.GasProduced,
			&well.SpudDate, &well.CompletionDate,
			&well.Latitude, &well.Longitude, &well.CreatedAt,
		)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan well")
		}
		wells = append(wells, well)
	}
	return wells, eris.Wrap(rows.Err(), "sqlite: iterate wells")
}
