package snapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"plotdash/internal/dashboards"
)

// buildMarkdown renders the snapshot's summary document.
func buildMarkdown(name string, result dashboards.Result, narrative string, timestamp time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s snapshot\n\n", name)
	fmt.Fprintf(&b, "Generated %s.\n\n", timestamp.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**%s**\n\n", result.Summary)

	if result.Stats.Count > 0 {
		fmt.Fprintf(&b, "| Count | Min | Max | Mean |\n|---|---|---|---|\n| %d | %.2f | %.2f | %.2f |\n\n",
			result.Stats.Count, result.Stats.Min, result.Stats.Max, result.Stats.Mean)
	}
	if narrative != "" {
		fmt.Fprintf(&b, "%s\n\n", narrative)
	}

	if len(result.Figures) > 0 {
		b.WriteString("## Charts\n\n")
		for _, fig := range result.Figures {
			fmt.Fprintf(&b, "- [%s](%s.html)\n", fig.Title, fig.ID)
		}
	}
	return b.String()
}

// markdownToHTML converts markdown to HTML
func markdownToHTML(markdownText string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownText))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return string(markdown.Render(doc, renderer))
}

// buildIndexHTML builds the snapshot's self-contained index page: the
// converted summary followed by every embedded chart.
func buildIndexHTML(name, markdownContent string, result dashboards.Result) (string, error) {
	content := markdownToHTML(markdownContent)

	var chartsHTML strings.Builder
	for _, sn := range result.Snippets {
		chartsHTML.WriteString(sn.HTML)
		chartsHTML.WriteString("\n")
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s snapshot</title>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 24px; color: #2C3E50; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 10px; }
.chart-container { margin: 18px 0; }
</style>
</head>
<body>
%s
%s
</body>
</html>
`, name, content, chartsHTML.String())

	return page, nil
}
