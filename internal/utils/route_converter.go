package utils

import (
	"regexp"
	"strings"
)

var (
	braceParamRegex = regexp.MustCompile(`\{([^:}]+)(?::[^}]+)?\}`)
	colonParamRegex = regexp.MustCompile(`:([a-zA-Z_][a-zA-Z0-9_]*)`)
)

// RouteConverter translates route paths between the colon style used by
// the HTTP frameworks (/users/:id) and the brace style used by OpenAPI
// (/users/{id}). Typed braces such as {id:int} lose their type.
type RouteConverter struct{}

// NewRouteConverter creates a new route converter
func NewRouteConverter() *RouteConverter {
	return &RouteConverter{}
}

// ToColon converts: /users/{id} -> /users/:id
// Converts: /posts/{slug:string}/comments/:id -> /posts/:slug/comments/:id
func (rc *RouteConverter) ToColon(path string) string {
	return braceParamRegex.ReplaceAllString(path, `:$1`)
}

// ToBrace converts: /users/:id -> /users/{id}
// Converts: /users/{id:int} -> /users/{id}
func (rc *RouteConverter) ToBrace(path string) string {
	return colonParamRegex.ReplaceAllString(rc.ToColon(path), "{$1}")
}

// Params returns the parameter names of path in order of appearance,
// without duplicates
func (rc *RouteConverter) Params(path string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range colonParamRegex.FindAllStringSubmatch(rc.ToColon(path), -1) {
		name := strings.TrimSpace(match[1])
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Global converter instance
var DefaultRouteConverter = NewRouteConverter()

// ToColonPath converts brace parameters to colon parameters
func ToColonPath(path string) string {
	return DefaultRouteConverter.ToColon(path)
}

// ToBracePath converts colon parameters to brace parameters
func ToBracePath(path string) string {
	return DefaultRouteConverter.ToBrace(path)
}

// PathParams lists the parameter names of a path in either style
func PathParams(path string) []string {
	return DefaultRouteConverter.Params(path)
}
