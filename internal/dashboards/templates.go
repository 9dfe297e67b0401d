package dashboards

import (
	"os"
	"path/filepath"
)

// TemplateLoader reads page templates and styles from disk.
type TemplateLoader struct {
	dir string
}

// NewTemplateLoader creates a loader over the default templates directory.
func NewTemplateLoader() *TemplateLoader {
	return &TemplateLoader{dir: filepath.Join("internal", "templates")}
}

// NewTemplateLoaderAt creates a loader over a specific directory.
func NewTemplateLoaderAt(dir string) *TemplateLoader {
	return &TemplateLoader{dir: dir}
}

// LoadDashboardTemplate loads the per-dashboard page template.
func (t *TemplateLoader) LoadDashboardTemplate() (string, error) {
	return t.read("dashboard_template.html")
}

// LoadIndexTemplate loads the landing page template.
func (t *TemplateLoader) LoadIndexTemplate() (string, error) {
	return t.read("index_template.html")
}

// LoadCSSStyles loads the shared stylesheet.
func (t *TemplateLoader) LoadCSSStyles() (string, error) {
	return t.read("styles.css")
}

func (t *TemplateLoader) read(name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(t.dir, name))
	if err != nil {
		return "", err
	}
	return string(content), nil
}
