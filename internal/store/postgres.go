package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock implements it
// for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool, used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS wells (
	id              TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	api_clean       TEXT NOT NULL UNIQUE,
	well_name_clean TEXT NOT NULL DEFAULT '',
	detail_url      TEXT NOT NULL DEFAULT '',
	well_status     TEXT NOT NULL DEFAULT 'N/A',
	well_type       TEXT NOT NULL DEFAULT 'N/A',
	closest_city    TEXT NOT NULL DEFAULT 'N/A',
	oil_produced    DOUBLE PRECISION NOT NULL DEFAULT 0,
	gas_produced    DOUBLE PRECISION NOT NULL DEFAULT 0,
	spud_date       TEXT NOT NULL DEFAULT '',
	completion_date TEXT NOT NULL DEFAULT '',
	latitude        DOUBLE PRECISION,
	longitude       DOUBLE PRECISION,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_wells_well_name_clean ON wells(well_name_clean);
CREATE INDEX IF NOT EXISTS idx_wells_well_status ON wells(well_status);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SaveWells upserts processed wells keyed by canonical API number.
func (s *PostgresStore) SaveWells(ctx context.Context, wells []StoredWell) error {
	const upsert = `
INSERT INTO wells (id, api_clean, well_name_clean, detail_url, well_status, well_type,
	closest_city, oil_produced, gas_produced, spud_date, completion_date,
	latitude, longitude, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (api_clean) DO UPDATE SET
	well_name_clean = EXCLUDED.well_name_clean,
	detail_url      = EXCLUDED.detail_url,
	well_status     = EXCLUDED.well_status,
	well_type       = EXCLUDED.well_type,
	closest_city    = EXCLUDED.closest_city,
	oil_produced    = EXCLUDED.oil_produced,
	gas_produced    = EXCLUDED.gas_produced,
	spud_date       = EXCLUDED.spud_date,
	completion_date = EXCLUDED.completion_date,
	latitude        = EXCLUDED.latitude,
	longitude       = EXCLUDED.longitude`

	for _, well := range wells {
		if well.ID == "" {
			well.ID = uuid.NewString()
		}
		_, err := s.pool.Exec(ctx, upsert,
			well.ID, well.APIClean, well.WellNameClean, well.DetailURL,
			well.WellStatus, well.WellType, well.ClosestCity,
			well.OilProduced, well.GasProduced,
			well.SpudDate, well.CompletionDate,
			well.Latitude, well.Longitude, well.CreatedAt,
		)
		if err != nil {
			return eris.Wrapf(err, "postgres: upsert well %s", well.APIClean)
		}
	}
	return nil
}

// ListWells returns every stored well ordered by canonical API number.
func (s *PostgresStore) ListWells(ctx context.Context) ([]StoredWell, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, api_clean, well_name_clean, detail_url, well_status, well_type,
	closest_city, oil_produced, gas_produced, spud_date, completion_date,
	latitude, longitude, created_at
FROM wells ORDER BY api_clean`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list wells")
	}
	defer rows.Close()

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
			return nil, eris.Wrap(err, "postgres: scan well")
		}
		wells = append(wells, well)
	}
	return wells, eris.Wrap(rows.Err(), "postgres: iterate wells")
}
