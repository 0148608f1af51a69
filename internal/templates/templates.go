// Package templates renders application trees as Markdown documentation.
package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/toyz/docspec/internal/models"
)

// Template names
const (
	ApplicationTemplate = "application"
	ModuleTemplate      = "module"
	ActionTemplate      = "action"
)

// Renderer executes the registered templates
type Renderer struct {
	set *template.Template
}

// NewRenderer parses every template of registry
func NewRenderer(registry *TemplateRegistry) (*Renderer, error) {
	set, err := registry.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{set: set}, nil
}

// NewDefaultRenderer creates a renderer over the built-in templates
func NewDefaultRenderer() *Renderer {
	r, err := NewRenderer(NewTemplateRegistry())
	if err != nil {
		panic(err)
	}
	return r
}

// Execute runs the named template against data
func (r *Renderer) Execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderApplication renders the whole application, module by module
func (r *Renderer) RenderApplication(app *models.Application) (string, error) {
	if app == nil {
		return "", fmt.Errorf("no application to render")
	}
	return r.Execute(ApplicationTemplate, app)
}

// RenderModule renders one module with its actions
func (r *Renderer) RenderModule(mod *models.Module) (string, error) {
	return r.Execute(ModuleTemplate, mod)
}

// RenderAction renders one action
func (r *Renderer) RenderAction(action *models.Action) (string, error) {
	return r.Execute(ActionTemplate, action)
}
