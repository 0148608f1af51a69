package models

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// WarningKind classifies a lint finding
type WarningKind int

const (
	VersionWarning WarningKind = iota
	DuplicateRouteWarning
	EmptyModuleWarning
	OrphanActionWarning
)

// String returns the string representation of the warning kind
func (k WarningKind) String() string {
	switch k {
	case VersionWarning:
		return "version"
	case DuplicateRouteWarning:
		return "duplicate-route"
	case EmptyModuleWarning:
		return "empty-module"
	case OrphanActionWarning:
		return "orphan-action"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal observation about an assembled application.
type Warning struct {
	Kind    WarningKind
	Subject string // name of the record the warning is about
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.Kind, w.Subject, w.Message)
}

// Lint inspects an assembled application. actions is the flat action list of
// the scan, including actions that no module claimed. Lint never modifies
// the tree and never deduplicates anything it reports.
func Lint(app *Application, actions []*Action) []Warning {
	var warnings []Warning
	if app == nil {
		return warnings
	}

	if app.Version != "" && !semver.IsValid(canonicalVersion(app.Version)) {
		warnings = append(warnings, Warning{
			Kind:    VersionWarning,
			Subject: app.Name,
			Message: fmt.Sprintf("version %q is not a semantic version", app.Version),
		})
	}

	for _, mod := range app.Modules {
		if len(mod.Actions) == 0 {
			warnings = append(warnings, Warning{
				Kind:    EmptyModuleWarning,
				Subject: mod.Name,
				Message: "module declares no actions",
			})
		}
	}

	claimed := make(map[*Action]bool)
	for _, action := range app.Actions() {
		claimed[action] = true
	}

	seen := make(map[string]*Action)
	for _, action := range actions {
		if !claimed[action] {
			warnings = append(warnings, Warning{
				Kind:    OrphanActionWarning,
				Subject: action.Name,
				Message: fmt.Sprintf("%s is not nested in any module", action.Route),
			})
		}

		key := action.Route.String()
		if first, ok := seen[key]; ok {
			warnings = append(warnings, Warning{
				Kind:    DuplicateRouteWarning,
				Subject: action.Name,
				Message: fmt.Sprintf("%s is also declared by %s", key, first.Name),
			})
			continue
		}
		seen[key] = action
	}

	return warnings
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
