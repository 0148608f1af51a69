package syntax

import "context"

// Frontend turns the source of one language into a File.
type Frontend interface {
	// Name identifies the language, e.g. "javascript".
	Name() string
	// Extensions lists the file extensions served, dot included.
	Extensions() []string
	// Parse builds the neutral view of src. A source that does not parse
	// yields a source-parse error carrying path and line.
	Parse(ctx context.Context, path string, src []byte) (*File, error)
}
