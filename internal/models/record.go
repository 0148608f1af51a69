package models

// RecordKind identifies which payload a Record carries.
type RecordKind int

const (
	ApplicationRecord RecordKind = iota
	ModuleRecord
	ActionRecord
)

// String returns the string representation of the record kind
func (k RecordKind) String() string {
	switch k {
	case ApplicationRecord:
		return "application"
	case ModuleRecord:
		return "module"
	case ActionRecord:
		return "action"
	default:
		return "unknown"
	}
}

// Record is the result of classifying one documentation comment. Exactly one
// of the payload pointers is set, matching Kind.
type Record struct {
	Kind        RecordKind
	Application *Application
	Module      *Module
	Action      *Action
}

// FileResult holds everything assembled from a single source file.
type FileResult struct {
	Application *Application
	Modules     []*Module
	Actions     []*Action
}
