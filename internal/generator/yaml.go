package generator

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/toyz/docspec/internal/models"
)

// YAMLGenerator renders the application tree as YAML
type YAMLGenerator struct {
	Indent int
}

// NewYAMLGenerator creates a YAML generator indenting with two spaces
func NewYAMLGenerator() *YAMLGenerator {
	return &YAMLGenerator{Indent: 2}
}

func (g *YAMLGenerator) Format() string    { return "yaml" }
func (g *YAMLGenerator) Extension() string { return ".yaml" }

// Generate implements Generator
func (g *YAMLGenerator) Generate(app *models.Application) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(g.Indent)
	if err := enc.Encode(app); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
