// Package registry talks to the public well registry: it runs tolerant
// searches over the listing endpoint and extracts enrichment fields from
// detail pages. Registry markup is scraped HTML, so every parse path prefers
// degrading to defaults over failing.
package registry

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/wells-cli/internal/fetcher"
)

// Client queries the registry's search and detail pages.
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
	log     *zap.Logger
}

// NewClient creates a registry client rooted at baseURL.
func NewClient(baseURL string, f fetcher.Fetcher) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: f,
		log:     zap.L().With(zap.String("component", "registry")),
	}
}

// searchURL builds the listing query. The registry requires every filter key
// to be present even when empty; omitting one changes the result page shape.
func (c *Client) searchURL(apiNo, wellName string) string {
	params := url.Values{}
	params.Set("type", "wells")
	params.Set("operator_name", "")
	params.Set("well_name", wellName)
	params.Set("lease_key", "")
	params.Set("api_no", apiNo)
	params.Set("state", "")
	params.Set("county", "")
	params.Set("section", "")
	params.Set("township", "")
	params.Set("range", "")
	params.Set("min_boe", "")
	params.Set("max_boe", "")
	params.Set("min_depth", "")
	params.Set("max_depth", "")
	params.Set("field_formation", "")
	return c.baseURL + "/search?" + params.Encode()
}

// Lookup runs a registry search for the given canonical API number and well
// name and returns the parsed listing rows, possibly empty.
func (c *Client) Lookup(ctx context.Context, apiNo, wellName string) ([]ListingRow, error) {
	searchURL := c.searchURL(apiNo, wellName)

	body, err := c.fetcher.Get(ctx, searchURL)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: search %s", apiNo)
	}

	rows, err := parseListing(bytes.NewReader(body), c.baseURL)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: parse listing for %s", apiNo)
	}

	c.log.Debug("search complete",
		zap.String("api_no", apiNo),
		zap.String("well_name", wellName),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}
