package generator

import "github.com/toyz/docspec/internal/models"

// Generator renders an assembled application into a document format
type Generator interface {
	// Format is the name the generator is registered under, e.g. "json"
	Format() string
	// Extension is the file extension of generated documents, including the dot
	Extension() string
	Generate(app *models.Application) ([]byte, error)
}
