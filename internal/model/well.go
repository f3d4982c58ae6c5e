package model

import (
	"github.com/twpayne/go-geom"
)

// NA is the sentinel written for any cell with no data.
const NA = "N/A"

// Standard column names recognized in well extracts.
const (
	ColAPINumber      = "api_number"
	ColWellName       = "well_name"
	ColAPIClean       = "api_clean"
	ColWellNameClean  = "well_name_clean"
	ColDetailURL      = "detail_url"
	ColWellStatus     = "well_status"
	ColWellType       = "well_type"
	ColClosestCity    = "closest_city"
	ColOilProduced    = "oil_produced"
	ColGasProduced    = "gas_produced"
	ColSpudDate       = "spud_date"
	ColCompletionDate = "completion_date"
	ColLatitude       = "latitude"
	ColLongitude      = "longitude"
)

// DetailFields holds the enrichment copied from a registry detail page.
// Every field defaults to the NA sentinel until extraction succeeds.
type DetailFields struct {
	WellStatus  string `json:"well_status"`
	WellType    string `json:"well_type"`
	ClosestCity string `json:"closest_city"`
	OilProduced string `json:"oil_produced"`
	GasProduced string `json:"gas_produced"`
}

// DefaultDetails returns DetailFields with every field set to the NA sentinel.
func DefaultDetails() DetailFields {
	return DetailFields{
		WellStatus:  NA,
		WellType:    NA,
		ClosestCity: NA,
		OilProduced: NA,
		GasProduced: NA,
	}
}

// WellRecord is one row of the working dataset. It is created from one input
// row, mutated in place by each pipeline stage, and finalized on write.
type WellRecord struct {
	Index int // position in the input extract

	// Cells holds the raw row keyed by input header, updated in place as
	// stages run. Unknown columns pass through untouched.
	Cells map[string]string

	APIClean      string // DD-DDD-DDDDD, empty while underivable
	WellNameClean string // empty while underivable
	DetailURL     string // empty until resolution succeeds
	Details       DetailFields

	Latitude  *float64 // signed decimal degrees, nil while unparsed
	Longitude *float64

	Skipped bool // identity-invalid rows are never enriched or written
}

// NewWellRecord builds a record from one input row.
func NewWellRecord(index int, cells map[string]string) *WellRecord {
	if cells == nil {
		cells = make(map[string]string)
	}
	return &WellRecord{
		Index:   index,
		Cells:   cells,
		Details: DefaultDetails(),
	}
}

// Get returns the raw cell for a column, or "" when the column is absent.
func (w *WellRecord) Get(col string) string {
	return w.Cells[col]
}

// Set writes a cell value.
func (w *WellRecord) Set(col, val string) {
	w.Cells[col] = val
}

// Has reports whether the column is present on this record.
func (w *WellRecord) Has(col string) bool {
	_, ok := w.Cells[col]
	return ok
}

// ApplyIdentity writes the canonical identity columns back into the row.
func (w *WellRecord) ApplyIdentity() {
	w.Set(ColAPIClean, w.APIClean)
	w.Set(ColWellNameClean, w.WellNameClean)
}

// ApplyDetails writes the resolution outcome back into the row. A resolved
// detail URL is never overwritten with an empty one.
func (w *WellRecord) ApplyDetails() {
	if w.DetailURL != "" {
		w.Set(ColDetailURL, w.DetailURL)
	} else if !w.Has(ColDetailURL) {
		w.Set(ColDetailURL, "")
	}
	w.Set(ColWellStatus, w.Details.WellStatus)
	w.Set(ColWellType, w.Details.WellType)
	w.Set(ColClosestCity, w.Details.ClosestCity)
	w.Set(ColOilProduced, w.Details.OilProduced)
	w.Set(ColGasProduced, w.Details.GasProduced)
}

// Location returns the well position as a lon/lat point. It reports false
// until both coordinates are parsed and inside valid ranges.
func (w *WellRecord) Location() (*geom.Point, bool) {
	if w.Latitude == nil || w.Longitude == nil {
		return nil, false
	}
	lat, lon := *w.Latitude, *w.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, false
	}
	return geom.NewPointFlat(geom.XY, []float64{lon, lat}), true
}
