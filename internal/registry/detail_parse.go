package registry

import (
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"

	"github.com/sells-group/wells-cli/internal/model"
)

// parseDetail extracts the summary fields from a detail page. Labels live in
// a "skinny" table as alternating label/value cells; production totals are
// the page's dropcap spans, oil first then gas, in document order.
func parseDetail(r io.Reader) (model.DetailFields, error) {
	fields := model.DefaultDetails()

	doc, err := html.Parse(r)
	if err != nil {
		return fields, eris.Wrap(err, "parse detail html")
	}

	for table := range findAll(doc, "table") {
		if !hasClass(table, "skinny") {
			continue
		}
		applySkinnyTable(table, &fields)
	}

	var dropcaps []string
	for span := range findAll(doc, "span") {
		if hasClass(span, "dropcap") {
			dropcaps = append(dropcaps, nodeText(span))
		}
	}
	if len(dropcaps) > 0 && dropcaps[0] != "" {
		fields.OilProduced = dropcaps[0]
	}
	if len(dropcaps) > 1 && dropcaps[1] != "" {
		fields.GasProduced = dropcaps[1]
	}

	return fields, nil
}

// applySkinnyTable reads label/value cell pairs out of one summary table.
// Cells alternate label, value, label, value; th and td are interchangeable
// in registry markup.
func applySkinnyTable(table *html.Node, fields *model.DetailFields) {
	var cells []string
	for cell := range findAll(table, "th", "td") {
		cells = append(cells, nodeText(cell))
	}

	for i := 0; i+1 < len(cells); i += 2 {
		val := cells[i+1]
		if val == "" {
			continue
		}
		switch cells[i] {
		case labelWellStatus:
			fields.WellStatus = val
		case labelWellType:
			fields.WellType = val
		case labelClosestCity:
			fields.ClosestCity = val
		}
	}
}
