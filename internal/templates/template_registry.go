package templates

import (
	"slices"
	"text/template"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerApplicationTemplates()
	registry.registerModuleTemplates()
	registry.registerActionTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	body, exists := tr.templates[name]
	return body, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	body, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return body
}

// Names returns the registered template names in ascending order
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse compiles every template into one set so that templates can invoke
// each other by name
func (tr *TemplateRegistry) Parse() (*template.Template, error) {
	root := template.New("docspec").Funcs(funcMap())
	for _, name := range tr.Names() {
		if _, err := root.New(name).Parse(tr.templates[name]); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (tr *TemplateRegistry) registerApplicationTemplates() {
	tr.templates[ApplicationTemplate] = `# {{title .Title .Name}}
{{with .Version}}
Version: {{.}}
{{end}}{{with .Description}}
{{.}}
{{end}}{{with .Address}}
Base address: ` + "`{{.}}`" + `
{{end}}{{with .Author}}
Author: {{.}}
{{end}}{{with .Contact}}
Contact: {{.}}
{{end}}{{range .Notes}}
> {{.}}
{{end}}{{range .Modules}}
{{template "module" .}}{{end}}`
}

func (tr *TemplateRegistry) registerModuleTemplates() {
	tr.templates[ModuleTemplate] = `## {{title .Title .Name}}
{{with .Path}}
Path: ` + "`{{.}}`" + `
{{end}}{{with .Description}}
{{.}}
{{end}}{{with .Middlewares}}
Middlewares: {{middlewares .}}
{{end}}{{range .Notes}}
> {{.}}
{{end}}{{range .Actions}}
{{template "action" .}}{{end}}`
}

func (tr *TemplateRegistry) registerActionTemplates() {
	tr.templates[ActionTemplate] = `### {{title .Title .Name}}

` + "`{{.Route}}`" + `
{{with .Description}}
{{.}}
{{end}}{{with .Middlewares}}
Middlewares: {{middlewares .}}
{{end}}{{with .Params}}
| Name | Type | Description |
| --- | --- | --- |
{{range .}}| {{cell .Name}} | {{cell .Type}} | {{cell .Description}} |
{{end}}{{end}}{{range .Notes}}
> {{.}}
{{end}}`
}
