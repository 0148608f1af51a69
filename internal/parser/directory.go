package parser

import (
	"context"
	"os"
	"path/filepath"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/utils"
)

// ScanResult is the outcome of a directory scan
type ScanResult struct {
	Application *models.Application
	// Actions lists every action of the scan in file order, including
	// actions that no module claimed.
	Actions []*models.Action
	// Files lists the scanned files relative to the root, slash-separated.
	Files []string
}

// ParseDirectory scans root and returns its single application with every
// module attached.
func (p *Parser) ParseDirectory(ctx context.Context, root string) (*models.Application, error) {
	result, err := p.Scan(ctx, root)
	if err != nil {
		return nil, err
	}
	return result.Application, nil
}

// Scan assembles every source file under root in lexical order. The first
// error aborts the scan. Exactly one application must be declared across
// all files. root may also name a single file.
func (p *Parser) Scan(ctx context.Context, root string) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.WrapFileSystemError("stat", root, err)
	}
	base := root
	if !info.IsDir() {
		base = filepath.Dir(root)
	}

	files, err := p.collectFiles(root)
	if err != nil {
		return nil, err
	}

	var application *models.Application
	modules := make([]*models.Module, 0)
	result := &ScanResult{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileResult, err := p.ParseFile(ctx, file, base)
		if err != nil {
			return nil, err
		}

		if fileResult.Application != nil {
			if application != nil {
				return nil, errors.NewDuplicateApplicationError(file)
			}
			application = fileResult.Application
		}
		modules = append(modules, fileResult.Modules...)
		result.Actions = append(result.Actions, fileResult.Actions...)
		result.Files = append(result.Files, relativeName(base, file))
	}

	if application == nil {
		return nil, errors.NewMissingApplicationError(root)
	}

	result.Application = application.Clone()
	result.Application.Modules = modules
	return result, nil
}

func (p *Parser) collectFiles(root string) ([]string, error) {
	exclude := utils.ExcludeFilter(root, p.excludes...)
	fp := utils.NewFileProcessor(utils.FileWalkOptions{
		FileFilter:      utils.AllFiles(utils.ExtensionFilter(p.frontends.Extensions()...), exclude),
		DirectoryFilter: utils.AllDirectories(utils.DefaultDirectoryFilter(), exclude),
	})
	return fp.WalkFiles(root)
}
