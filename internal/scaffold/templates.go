package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// templateData holds all variables available to templates.
type templateData struct {
	Namespace       string // e.g., "Acme"
	FacetPHPVersion string // e.g., "5.3"
}

// render returns the named template's output. Files ending in .tmpl are
// executed as Go templates; anything else is returned verbatim.
func render(name string, data templateData) ([]byte, error) {
	tmplPath := path.Join("templates", name)
	raw, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
