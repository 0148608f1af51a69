// Package registry maps file extensions to the syntax frontends that parse them.
package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/syntax"
	"github.com/toyz/docspec/internal/syntax/golang"
	"github.com/toyz/docspec/internal/syntax/javascript"
	"github.com/toyz/docspec/internal/utils"
)

// DefaultLanguages is used when no language is configured.
var DefaultLanguages = []string{"javascript"}

// FrontendRegistry manages syntax frontends keyed by file extension
type FrontendRegistry struct {
	byExtension *utils.Registry[string, syntax.Frontend]
}

// NewFrontendRegistry creates a registry holding the given frontends
func NewFrontendRegistry(frontends ...syntax.Frontend) (*FrontendRegistry, error) {
	r := &FrontendRegistry{byExtension: utils.NewRegistry[string, syntax.Frontend]()}
	for _, f := range frontends {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ForLanguages creates a registry for the named languages. Accepted names
// are "javascript" (or "js") and "go" (or "golang").
func ForLanguages(languages []string) (*FrontendRegistry, error) {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	frontends := make([]syntax.Frontend, 0, len(languages))
	seen := make(map[string]bool)
	for _, lang := range languages {
		f, err := frontendFor(lang)
		if err != nil {
			return nil, err
		}
		if seen[f.Name()] {
			continue
		}
		seen[f.Name()] = true
		frontends = append(frontends, f)
	}
	return NewFrontendRegistry(frontends...)
}

func frontendFor(language string) (syntax.Frontend, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "javascript", "js":
		return javascript.New(), nil
	case "go", "golang":
		return golang.New(), nil
	default:
		return nil, errors.Newf(errors.ConfigurationErrorCode, "unsupported language %q", language).
			WithSuggestion("Supported languages: javascript, go")
	}
}

// Register adds a frontend under each of its extensions
func (r *FrontendRegistry) Register(frontend syntax.Frontend) error {
	for _, ext := range frontend.Extensions() {
		if err := r.byExtension.Register(strings.ToLower(ext), frontend); err != nil {
			return fmt.Errorf("frontend %s: %w", frontend.Name(), err)
		}
	}
	return nil
}

// ForPath returns the frontend serving the extension of path
func (r *FrontendRegistry) ForPath(path string) (syntax.Frontend, bool) {
	return r.byExtension.Get(strings.ToLower(filepath.Ext(path)))
}

// Extensions returns every served extension, sorted
func (r *FrontendRegistry) Extensions() []string {
	return r.byExtension.List()
}
