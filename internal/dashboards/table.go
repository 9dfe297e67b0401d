package dashboards

import (
	"fmt"
	"html"
	"strings"

	"plotdash/internal/pipeline"
)

// irisTableLimit caps the data table so the page stays light even
// with every species selected.
const irisTableLimit = 50

// IrisTableHTML renders the filtered iris rows as an HTML table,
// truncated to irisTableLimit rows with a footer noting the cut.
func IrisTableHTML(view pipeline.IrisView) string {
	if len(view.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="data-table"><table>`)
	b.WriteString("<thead><tr><th>Sepal Length</th><th>Sepal Width</th>" +
		"<th>Petal Length</th><th>Petal Width</th><th>Species</th></tr></thead><tbody>")

	limit := len(view.Rows)
	if limit > irisTableLimit {
		limit = irisTableLimit
	}
	for _, row := range view.Rows[:limit] {
		fmt.Fprintf(&b, "<tr><td>%.1f</td><td>%.1f</td><td>%.1f</td><td>%.1f</td><td>%s</td></tr>",
			row.SepalLength, row.SepalWidth, row.PetalLength, row.PetalWidth,
			html.EscapeString(row.Species))
	}
	b.WriteString("</tbody></table>")
	if len(view.Rows) > limit {
		fmt.Fprintf(&b, `<p class="table-note">Showing %d of %d rows.</p>`, limit, len(view.Rows))
	}
	b.WriteString("</div>")
	return b.String()
}
