package parser

const (
	// DefaultModuleName names a module whose @module tag carries no name.
	DefaultModuleName = "module"

	// DefaultActionName is used when a route yields no usable name.
	DefaultActionName = "action"
)
