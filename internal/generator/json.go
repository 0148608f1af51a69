package generator

import (
	"encoding/json"

	"github.com/toyz/docspec/internal/models"
)

// JSONGenerator renders the application tree as indented JSON
type JSONGenerator struct {
	Indent string
}

// NewJSONGenerator creates a JSON generator indenting with two spaces
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{Indent: "  "}
}

func (g *JSONGenerator) Format() string    { return "json" }
func (g *JSONGenerator) Extension() string { return ".json" }

// Generate implements Generator
func (g *JSONGenerator) Generate(app *models.Application) ([]byte, error) {
	out, err := json.MarshalIndent(app, "", g.Indent)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
