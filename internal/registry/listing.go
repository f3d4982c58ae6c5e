package registry

import (
	"io"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
)

// ListingRow is one parsed search-result row: its cell texts in document
// order and the first hyperlink found inside it, resolved absolute.
type ListingRow struct {
	Cells []string
	Link  string
}

// parseListing walks every table row in the page and collects cell texts and
// detail links. The listing table carries no stable id, so all rows in the
// document are considered; header rows simply never match an API number.
func parseListing(r io.Reader, baseURL string) ([]ListingRow, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, eris.Wrap(err, "parse listing html")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, eris.Wrap(err, "parse base url")
	}

	var rows []ListingRow
	for tr := range findAll(doc, "tr") {
		row := ListingRow{}
		for cell := range findAll(tr, "td") {
			row.Cells = append(row.Cells, nodeText(cell))
		}
		if a, ok := findFirst(tr, "a"); ok {
			if href := attrVal(a, "href"); href != "" {
				row.Link = resolveLink(base, href)
			}
		}
		if len(row.Cells) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// HasAPI reports whether any cell of the row contains the canonical API
// number as a substring. Listing cells wrap the number in link text and
// surrounding whitespace, so equality is too strict.
func (r ListingRow) HasAPI(apiNo string) bool {
	for _, cell := range r.Cells {
		if strings.Contains(cell, apiNo) {
			return true
		}
	}
	return false
}

// SelectDetailLink picks the detail page for a canonical API number: the
// first row whose cells carry the number, falling back to the first linked
// row when no cell matches. False means the well is absent from the registry.
func SelectDetailLink(rows []ListingRow, apiNo string) (string, bool) {
	for _, row := range rows {
		if row.Link != "" && row.HasAPI(apiNo) {
			return row.Link, true
		}
	}
	for _, row := range rows {
		if row.Link != "" {
			return row.Link, true
		}
	}
	return "", false
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
