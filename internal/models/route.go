package models

import "strings"

// Route is an HTTP-style method and path pair.
type Route struct {
	Method string `json:"method" yaml:"method"` // upper-cased
	Path   string `json:"path" yaml:"path"`
}

// Name returns the canonical lowercase "method:path" token.
func (r Route) Name() string {
	return strings.ToLower(r.Method) + ":" + r.Path
}

// String renders the route as "METHOD path".
func (r Route) String() string {
	return r.Method + " " + r.Path
}

// Middleware is a named processing step with opaque argument text.
type Middleware struct {
	Name string `json:"name" yaml:"name"`
	Args string `json:"args" yaml:"args"`
}

// Param is one typed entry of an action's params object.
type Param struct {
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}
