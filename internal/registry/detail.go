package registry

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/wells-cli/internal/model"
)

// Enrichment is the outcome of a detail-page visit. Available is false when
// the page could not be fetched or parsed; Fields then hold the NA defaults.
type Enrichment struct {
	Fields    model.DetailFields
	Available bool
}

// Labels recognized in the detail page's summary table.
const (
	labelWellStatus  = "Well Status"
	labelWellType    = "Well Type"
	labelClosestCity = "Closest City"
)

// ExtractDetails fetches a detail page and pulls the enrichment fields out of
// its markup. It never returns an error: a dead link or mangled page yields
// the NA defaults so one bad well cannot stall a batch.
func (c *Client) ExtractDetails(ctx context.Context, detailURL string) Enrichment {
	out := Enrichment{Fields: model.DefaultDetails()}

	body, err := c.fetcher.Get(ctx, detailURL)
	if err != nil {
		c.log.Warn("detail fetch failed, keeping defaults",
			zap.String("url", detailURL),
			zap.Error(err),
		)
		return out
	}

	fields, err := parseDetail(bytes.NewReader(body))
	if err != nil {
		c.log.Warn("detail parse failed, keeping defaults",
			zap.String("url", detailURL),
			zap.Error(err),
		)
		return out
	}

	out.Fields = fields
	out.Available = true
	return out
}
