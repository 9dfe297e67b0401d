package dashboards

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"plotdash/internal/charts"
)

// PageBuilder renders complete dashboard pages. Blurbs are markdown,
// converted with goldmark; the page shell comes from the template
// loader so styling can change without a rebuild.
type PageBuilder struct {
	templateLoader *TemplateLoader
	goldmark       goldmark.Markdown
	theme          charts.Theme
}

// NewPageBuilder creates a page builder with the default template directory.
func NewPageBuilder(theme charts.Theme) *PageBuilder {
	return NewPageBuilderWith(NewTemplateLoader(), theme)
}

// NewPageBuilderWith creates a page builder over a specific loader.
func NewPageBuilderWith(loader *TemplateLoader, theme charts.Theme) *PageBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(),
			htmlrenderer.WithUnsafe(),
		),
	)
	return &PageBuilder{
		templateLoader: loader,
		goldmark:       md,
		theme:          theme,
	}
}

// DashboardPageData feeds the per-dashboard template.
type DashboardPageData struct {
	Name    string
	Title   string
	Blurb   template.HTML
	Nav     template.HTML
	Widgets template.HTML
	Charts  template.HTML
	Scripts template.HTML
	Summary string
	Table   template.HTML
	CSS     template.CSS
	Theme   charts.Theme
}

// IndexPageData feeds the landing page template.
type IndexPageData struct {
	Dashboards []Descriptor
	Blurbs     map[string]template.HTML
	CSS        template.CSS
	Theme      charts.Theme
}

// ConvertMarkdown converts a markdown blurb to HTML.
func (b *PageBuilder) ConvertMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := b.goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildDashboardPage renders the full page for one dashboard with its
// initial (default-parameter) result embedded. extra is optional
// markup placed after the charts, such as the iris data table.
func (b *PageBuilder) BuildDashboardPage(desc Descriptor, initial Result, extra string) (string, error) {
	tmplSrc, err := b.templateLoader.LoadDashboardTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to load dashboard template: %w", err)
	}
	css, err := b.templateLoader.LoadCSSStyles()
	if err != nil {
		return "", fmt.Errorf("failed to load CSS: %w", err)
	}
	blurb, err := b.ConvertMarkdown(desc.Blurb)
	if err != nil {
		return "", err
	}

	var widgets, divs, scripts strings.Builder
	for _, w := range desc.Widget {
		widgets.WriteString(w.HTML())
	}
	for _, sn := range initial.Snippets {
		fmt.Fprintf(&divs, "<div class=\"chart-card\">%s</div>\n", sn.Div)
		scripts.WriteString(sn.Script)
		scripts.WriteString("\n")
	}

	data := DashboardPageData{
		Name:    desc.Name,
		Title:   desc.Title,
		Blurb:   template.HTML(blurb),
		Nav:     b.navHTML(desc.Name),
		Widgets: template.HTML(widgets.String()),
		Charts:  template.HTML(divs.String()),
		Scripts: template.HTML(scripts.String()),
		Summary: initial.Summary,
		Table:   template.HTML(extra),
		CSS:     template.CSS(css),
		Theme:   b.theme,
	}
	return b.execute("dashboard", tmplSrc, data)
}

// BuildIndexPage renders the landing page linking every dashboard.
func (b *PageBuilder) BuildIndexPage(descs []Descriptor) (string, error) {
	tmplSrc, err := b.templateLoader.LoadIndexTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to load index template: %w", err)
	}
	css, err := b.templateLoader.LoadCSSStyles()
	if err != nil {
		return "", fmt.Errorf("failed to load CSS: %w", err)
	}

	blurbs := make(map[string]template.HTML, len(descs))
	for _, d := range descs {
		converted, err := b.ConvertMarkdown(d.Blurb)
		if err != nil {
			return "", err
		}
		blurbs[d.Name] = template.HTML(converted)
	}

	data := IndexPageData{
		Dashboards: descs,
		Blurbs:     blurbs,
		CSS:        template.CSS(css),
		Theme:      b.theme,
	}
	return b.execute("index", tmplSrc, data)
}

func (b *PageBuilder) execute(name, src string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

func (b *PageBuilder) navHTML(active string) template.HTML {
	var nav strings.Builder
	nav.WriteString(`<a href="/">Home</a>`)
	for _, name := range Names {
		class := ""
		if name == active {
			class = ` class="active"`
		}
		fmt.Fprintf(&nav, `<a href="/dashboards/%s"%s>%s</a>`, name, class, name)
	}
	return template.HTML(nav.String())
}
