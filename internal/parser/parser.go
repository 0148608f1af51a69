// Package parser assembles documentation comments into the application
// tree: per file (Assemble, ParseSource, ParseFile) and per directory
// (Scan, ParseDirectory).
package parser

import (
	"context"
	"os"
	"path/filepath"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/registry"
	"github.com/toyz/docspec/internal/syntax"
	"github.com/toyz/docspec/internal/utils"
)

// Parser extracts application trees from source files. Files are processed
// sequentially; a Parser may be reused across scans and is safe for
// concurrent use when its diagnostics sink is.
type Parser struct {
	frontends   registry.FrontendRegistryInterface
	cache       *utils.FileCache[*models.FileResult]
	excludes    []string
	diagnostics *utils.DiagnosticSystem
}

// Option configures a Parser
type Option func(*Parser) error

// WithCache memoises per-file results, keyed by path and invalidated on
// size or modification time change. size <= 0 selects the default bound.
func WithCache(size int) Option {
	return func(p *Parser) error {
		cache, err := utils.NewFileCache[*models.FileResult](size)
		if err != nil {
			return err
		}
		p.cache = cache
		return nil
	}
}

// WithExcludes skips files and directories matching the glob patterns
func WithExcludes(patterns ...string) Option {
	return func(p *Parser) error {
		p.excludes = append(p.excludes, patterns...)
		return nil
	}
}

// WithDiagnostics reports per-file progress to d
func WithDiagnostics(d *utils.DiagnosticSystem) Option {
	return func(p *Parser) error {
		p.diagnostics = d
		return nil
	}
}

// NewParser creates a parser that picks frontends from the given registry
func NewParser(frontends registry.FrontendRegistryInterface, opts ...Option) (*Parser, error) {
	p := &Parser{frontends: frontends}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseSource assembles a single in-memory source. filename selects the
// frontend and seeds every generated identifier.
func (p *Parser) ParseSource(ctx context.Context, filename string, src []byte) (*models.FileResult, error) {
	return p.parse(ctx, filename, filepath.ToSlash(filename), src)
}

// ParseFile reads and assembles the file at path. base is the scan root;
// the path relative to it seeds the generated identifiers.
func (p *Parser) ParseFile(ctx context.Context, path, base string) (*models.FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("stat", path, err)
	}

	rel := relativeName(base, path)
	key := cacheKey(path, rel)
	if p.cache != nil {
		if result, ok := p.cache.Get(key, info); ok {
			p.debug("cached %s", rel)
			return result, nil
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	result, err := p.parse(ctx, path, rel, src)
	if err != nil {
		return nil, errors.WrapFileError(path, err)
	}

	if p.cache != nil {
		p.cache.Set(key, info, result)
	}
	p.debug("parsed %s: %d module(s), %d action(s)", rel, len(result.Modules), len(result.Actions))
	return result, nil
}

func (p *Parser) parse(ctx context.Context, path, rel string, src []byte) (*models.FileResult, error) {
	frontend, ok := p.frontends.ForPath(path)
	if !ok {
		return nil, errors.Newf(errors.SourceParseErrorCode, "no frontend registered for %q files", filepath.Ext(path)).
			WithLocation(errors.SourceLocation{File: path})
	}

	file, err := frontend.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}
	return Assemble(file, rel)
}

// moduleNode remembers the node a module was bound to, for containment checks.
type moduleNode struct {
	module *models.Module
	node   *syntax.Node
}

// Assemble classifies the bound comments of file in document order.
// Actions are attached to the first earlier module whose node contains
// theirs, with the module path prefixed to the route path. Every action,
// attached or not, is also listed in the result. filename seeds the hashes.
func Assemble(file *syntax.File, filename string) (*models.FileResult, error) {
	result := &models.FileResult{}
	counter := utils.HashCounter{}
	var modules []moduleNode

	for _, binding := range syntax.Bind(file) {
		records, err := Classify(binding, filename, counter)
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			switch record.Kind {
			case models.ApplicationRecord:
				if result.Application != nil {
					return nil, errors.NewDuplicateApplicationError(file.Path)
				}
				result.Application = record.Application

			case models.ModuleRecord:
				modules = append(modules, moduleNode{module: record.Module, node: binding.Node})
				result.Modules = append(result.Modules, record.Module)

			case models.ActionRecord:
				result.Actions = append(result.Actions, record.Action)
				attach(modules, record.Action, binding.Node)
			}
		}
	}

	return result, nil
}

func attach(modules []moduleNode, action *models.Action, node *syntax.Node) {
	for _, m := range modules {
		if !syntax.Contains(m.node, node) {
			continue
		}
		if m.module.Path != "" {
			action.Route.Path = joinRoutePath(m.module.Path, action.Route.Path)
		}
		m.module.AddAction(action)
		return
	}
}

func (p *Parser) debug(format string, args ...interface{}) {
	if p.diagnostics != nil {
		p.diagnostics.Debug(format, args...)
	}
}

func relativeName(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func cacheKey(path, rel string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path + "\x00" + rel
}
