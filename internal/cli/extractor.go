package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/generator"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/parser"
	"github.com/toyz/docspec/internal/registry"
	"github.com/toyz/docspec/internal/utils"
)

// Extractor runs scans of a configured source tree and renders the result
type Extractor struct {
	config      *Config
	parser      *parser.Parser
	generators  *generator.Registry
	diagnostics *utils.DiagnosticSystem
}

// NewExtractor creates an extractor for cfg. A nil diagnostics system is
// replaced with a quiet one.
func NewExtractor(cfg *Config, diagnostics *utils.DiagnosticSystem) (*Extractor, error) {
	if diagnostics == nil {
		diagnostics = utils.NewQuietDiagnostics()
	}

	frontends, err := registry.ForLanguages(cfg.Languages)
	if err != nil {
		return nil, err
	}

	p, err := parser.NewParser(frontends,
		parser.WithCache(cfg.CacheSize),
		parser.WithExcludes(cfg.Exclude...),
		parser.WithDiagnostics(diagnostics),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to create parser", err)
	}

	return &Extractor{
		config:      cfg,
		parser:      p,
		generators:  generator.NewDefaultRegistry(),
		diagnostics: diagnostics,
	}, nil
}

// Scan scans the configured root and reports lint findings as warnings.
// Repeated scans reuse the per-file cache.
func (e *Extractor) Scan(ctx context.Context) (*parser.ScanResult, error) {
	e.diagnostics.Verbose("Scanning %s", e.config.Root)

	result, err := e.parser.Scan(ctx, e.config.Root)
	if err != nil {
		return nil, err
	}

	for _, w := range models.Lint(result.Application, result.Actions) {
		e.diagnostics.Warn("%s", w)
	}
	return result, nil
}

// Extract scans the root and writes the document in the configured format
// to the configured output file, or to w when no output is set.
func (e *Extractor) Extract(ctx context.Context, w io.Writer) error {
	e.diagnostics.Header("Extracting documentation")

	result, err := e.Scan(ctx)
	if err != nil {
		return err
	}

	data, err := e.generators.Generate(e.config.Format, result.Application)
	if err != nil {
		return err
	}

	destination := "stdout"
	if e.config.Output != "" {
		destination = e.config.Output
		if err := writeOutput(e.config.Output, data); err != nil {
			return err
		}
	} else if _, err := w.Write(data); err != nil {
		return errors.WrapFileSystemError("write", destination, err)
	}

	modules := result.Application.Modules
	e.diagnostics.Summary("Extraction complete", map[string]interface{}{
		"files":   len(result.Files),
		"modules": len(modules),
		"actions": len(result.Actions),
		"format":  e.config.Format,
		"output":  destination,
	})
	return nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapFileSystemError("create directory", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}
	return nil
}
