package pipeline

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/sells-group/wells-cli/internal/dataset"
	"github.com/sells-group/wells-cli/internal/model"
	"github.com/sells-group/wells-cli/internal/normalize"
)

// Free-text columns that get the sanitizer pass when present.
var textColumns = []string{
	model.ColWellName,
	model.ColWellNameClean,
	"operator",
	"field_name",
	"pool",
	"raw_text_sample",
	model.ColWellStatus,
	model.ColWellType,
	model.ColClosestCity,
}

var dateColumns = []string{
	model.ColSpudDate,
	model.ColCompletionDate,
}

var productionColumns = []string{
	model.ColOilProduced,
	model.ColGasProduced,
}

// Normalize rewrites every record's noisy fields into canonical form: text is
// sanitized, dates become ISO, production totals become plain numbers, and
// coordinates become signed decimal degrees. Columns absent from the extract
// are left alone.
func (o *Orchestrator) Normalize(table *dataset.Table) {
	for _, rec := range table.Records {
		normalizeRecord(rec)
	}
	o.log.Info("normalize pass complete", zap.Int("rows", len(table.Records)))
}

func normalizeRecord(rec *model.WellRecord) {
	for _, col := range textColumns {
		if rec.Has(col) {
			rec.Set(col, normalize.Sanitize(rec.Get(col)))
		}
	}

	for _, col := range dateColumns {
		if rec.Has(col) {
			t, ok := normalize.ParseDate(rec.Get(col))
			rec.Set(col, normalize.FormatDate(t, ok))
		}
	}

	for _, col := range productionColumns {
		if rec.Has(col) {
			rec.Set(col, normalize.FormatProduction(normalize.ParseProduction(rec.Get(col))))
		}
	}

	if rec.Has(model.ColLatitude) {
		rec.Latitude = normalizeCoordinate(rec, model.ColLatitude)
	}
	if rec.Has(model.ColLongitude) {
		rec.Longitude = normalizeCoordinate(rec, model.ColLongitude)
	}
}

func normalizeCoordinate(rec *model.WellRecord, col string) *float64 {
	val, ok := normalize.ParseCoordinate(rec.Get(col))
	if !ok {
		rec.Set(col, "")
		return nil
	}
	rec.Set(col, strconv.FormatFloat(val, 'f', -1, 64))
	return &val
}
