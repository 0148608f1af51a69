package utils

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/toyz/docspec/internal/errors"
)

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
}

// FileProcessor enumerates source files under a root directory
type FileProcessor struct {
	options FileWalkOptions
}

// NewFileProcessor creates a new file processor
func NewFileProcessor(options FileWalkOptions) *FileProcessor {
	return &FileProcessor{options: options}
}

// ExtensionFilter accepts files whose extension is one of exts (case-insensitive)
func ExtensionFilter(exts ...string) FileFilter {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}
	return func(path string, info fs.DirEntry) bool {
		return !info.IsDir() && allowed[strings.ToLower(filepath.Ext(info.Name()))]
	}
}

// ExcludeFilter rejects paths matching any of the glob patterns. A pattern
// is matched against the slash-separated path relative to root and against
// the base name.
func ExcludeFilter(root string, patterns ...string) func(path string, info fs.DirEntry) bool {
	return func(path string, info fs.DirEntry) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if ok, _ := filepath.Match(pattern, rel); ok {
				return false
			}
			if ok, _ := filepath.Match(pattern, info.Name()); ok {
				return false
			}
		}
		return true
	}
}

// DefaultDirectoryFilter skips dependency and hidden directories
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
	}

	return func(path string, info fs.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// AllFiles chains file filters; every filter must accept
func AllFiles(filters ...FileFilter) FileFilter {
	return func(path string, info fs.DirEntry) bool {
		for _, f := range filters {
			if f != nil && !f(path, info) {
				return false
			}
		}
		return true
	}
}

// AllDirectories chains directory filters; every filter must accept
func AllDirectories(filters ...DirectoryFilter) DirectoryFilter {
	return func(path string, info fs.DirEntry) bool {
		for _, f := range filters {
			if f != nil && !f(path, info) {
				return false
			}
		}
		return true
	}
}

// WalkFiles returns the matching files under rootDir in lexical walk order.
// The root itself is never filtered out.
func (fp *FileProcessor) WalkFiles(rootDir string) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.WrapFileSystemError("walk", path, err)
		}

		if entry.IsDir() {
			if path != rootDir && fp.options.DirectoryFilter != nil && !fp.options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if fp.options.FileFilter == nil || fp.options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}
		return nil
	})

	return matchedFiles, err
}
