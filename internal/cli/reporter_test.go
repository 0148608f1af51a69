package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/utils"
)

func captureDiagnostics() (*utils.DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return utils.NewDiagnosticSystem(utils.DiagnosticInfo).SetOutput(&out, &errOut), &out, &errOut
}

func TestReportError(t *testing.T) {
	diag, out, errOut := captureDiagnostics()
	err := errors.NewMissingApplicationError("./src")

	ReportError(diag, err, false)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[ERROR]")
	assert.Contains(t, errOut.String(), "hint:")
	assert.NotContains(t, errOut.String(), "code:")
}

func TestReportError_Verbose(t *testing.T) {
	diag, _, errOut := captureDiagnostics()
	err := fmt.Errorf("scan: %w", errors.NewSourceParseError("a.js", 3, 1, "unexpected token"))

	ReportError(diag, err, true)

	assert.Contains(t, errOut.String(), "code: SourceParseError")
	assert.Contains(t, errOut.String(), "location: a.js:3:1")
}

func TestReportError_VerboseSortsContext(t *testing.T) {
	diag, _, errOut := captureDiagnostics()
	err := errors.WrapFileSystemError("stat", "missing", stderrors.New("no such file"))

	ReportError(diag, err, true)

	text := errOut.String()
	assert.Contains(t, text, "code: FileSystemError")
	assert.Less(t, strings.Index(text, "operation: stat"), strings.Index(text, "path: missing"))
}

func TestReportError_Nil(t *testing.T) {
	diag, out, errOut := captureDiagnostics()
	ReportError(diag, nil, true)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(stderrors.New("boom")))
	assert.Equal(t, 1, ExitCode(errors.NewMissingApplicationError(".")))
	assert.Equal(t, 2, ExitCode(errors.Wrap(errors.ConfigurationErrorCode, "invalid configuration", stderrors.New("x"))))
}
