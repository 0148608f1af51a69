package generator

import (
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/templates"
)

// MarkdownGenerator renders the application tree as human-readable
// Markdown, one section per module and action
type MarkdownGenerator struct {
	renderer *templates.Renderer
}

// NewMarkdownGenerator creates a Markdown generator over the built-in templates
func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{renderer: templates.NewDefaultRenderer()}
}

func (g *MarkdownGenerator) Format() string    { return "markdown" }
func (g *MarkdownGenerator) Extension() string { return ".md" }

// Generate implements Generator
func (g *MarkdownGenerator) Generate(app *models.Application) ([]byte, error) {
	out, err := g.renderer.RenderApplication(app)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
