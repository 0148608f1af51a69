// Package generator writes an assembled application tree into JSON, YAML,
// OpenAPI 3 and Markdown documents.
package generator

import (
	"strings"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/utils"
)

// Registry holds the generators available by format name
type Registry struct {
	generators *utils.Registry[string, Generator]
}

// NewRegistry creates a registry with the given generators
func NewRegistry(generators ...Generator) (*Registry, error) {
	r := &Registry{generators: utils.NewRegistry[string, Generator]()}
	for _, g := range generators {
		if err := r.Register(g); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry creates a registry with every built-in generator
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(NewJSONGenerator(), NewYAMLGenerator(), NewOpenAPIGenerator(), NewMarkdownGenerator())
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds a generator under its format name
func (r *Registry) Register(g Generator) error {
	if err := r.generators.Register(g.Format(), g); err != nil {
		return errors.Wrap(errors.ConfigurationErrorCode, "failed to register generator", err)
	}
	return nil
}

// Get returns the generator for format
func (r *Registry) Get(format string) (Generator, error) {
	g, ok := r.generators.Get(format)
	if !ok {
		return nil, errors.Newf(errors.ConfigurationErrorCode, "unsupported format %q", format).
			WithSuggestion("Use one of: " + strings.Join(r.Formats(), ", "))
	}
	return g, nil
}

// Formats lists the registered format names in ascending order
func (r *Registry) Formats() []string {
	return r.generators.List()
}

// Generate renders app with the generator registered for format
func (r *Registry) Generate(format string, app *models.Application) ([]byte, error) {
	g, err := r.Get(format)
	if err != nil {
		return nil, err
	}
	out, err := g.Generate(app)
	if err != nil {
		return nil, errors.WrapGenerateError(format, err)
	}
	return out, nil
}

