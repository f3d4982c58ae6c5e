// Package store persists processed well records. Two backends exist: SQLite
// for local runs and Postgres for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/wells-cli/internal/model"
	"github.com/sells-group/wells-cli/internal/normalize"
)

// Store is the persistence interface for processed wells.
type Store interface {
	Migrate(ctx context.Context) error
	SaveWells(ctx context.Context, wells []StoredWell) error
	ListWells(ctx context.Context) ([]StoredWell, error)
	Close() error
}

// StoredWell is the flattened persisted form of a processed record. Rows are
// keyed by canonical API number; re-running the pipeline upserts.
type StoredWell struct {
	ID             string    `json:"id"`
	APIClean       string    `json:"api_clean"`
	WellNameClean  string    `json:"well_name_clean"`
	DetailURL      string    `json:"detail_url"`
	WellStatus     string    `json:"well_status"`
	WellType       string    `json:"well_type"`
	ClosestCity    string    `json:"closest_city"`
	OilProduced    float64   `json:"oil_produced"`
	GasProduced    float64   `json:"gas_produced"`
	SpudDate       string    `json:"spud_date,omitempty"`
	CompletionDate string    `json:"completion_date,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromRecord flattens a resolved record for persistence.
func FromRecord(rec *model.WellRecord) StoredWell {
	return StoredWell{
		ID:             uuid.NewString(),
		APIClean:       rec.APIClean,
		WellNameClean:  rec.WellNameClean,
		DetailURL:      rec.DetailURL,
		WellStatus:     rec.Details.WellStatus,
		WellType:       rec.Details.WellType,
		ClosestCity:    rec.Details.ClosestCity,
		OilProduced:    normalize.ParseProduction(rec.Details.OilProduced),
		GasProduced:    normalize.ParseProduction(rec.Details.GasProduced),
		SpudDate:       rec.Get(model.ColSpudDate),
		CompletionDate: rec.Get(model.ColCompletionDate),
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
		CreatedAt:      time.Now().UTC(),
	}
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, driver, databaseURL string) (Store, error) {
	switch driver {
	case "sqlite":
		return NewSQLite(databaseURL)
	case "postgres":
		return NewPostgres(ctx, databaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
