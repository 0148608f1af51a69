package registry

import "github.com/toyz/docspec/internal/syntax"

// FrontendRegistryInterface defines the lookups the scanner needs
type FrontendRegistryInterface interface {
	Register(frontend syntax.Frontend) error
	ForPath(path string) (syntax.Frontend, bool)
	Extensions() []string
}
