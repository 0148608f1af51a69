package cli

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/utils"
)

// ReportError prints err with its suggestions to the error stream. In
// verbose mode the error code, source location and context entries follow.
func ReportError(diagnostics *utils.DiagnosticSystem, err error, verbose bool) {
	if err == nil {
		return
	}

	message := errors.Describe(err)
	if verbose {
		message += details(err)
	}
	diagnostics.Error("%s", message)
}

func details(err error) string {
	var de errors.DocspecError
	if !stderrors.As(err, &de) {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  code: %s", de.ErrorCode())
	if loc := de.Location(); !loc.IsEmpty() {
		fmt.Fprintf(&b, "\n  location: %s", loc)
	}

	context := de.Context()
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "\n  %s: %v", key, context[key])
	}
	return b.String()
}

// ExitCode maps an error to the process exit status. Configuration errors
// exit with 2, every other failure with 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.HasCode(err, errors.ConfigurationErrorCode):
		return 2
	default:
		return 1
	}
}
