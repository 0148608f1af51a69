package parser

import (
	"context"

	"github.com/toyz/docspec/internal/models"
)

// SpecParser defines the interface for extracting an application tree from
// annotated sources
type SpecParser interface {
	ParseSource(ctx context.Context, filename string, src []byte) (*models.FileResult, error)
	ParseFile(ctx context.Context, path, base string) (*models.FileResult, error)
	ParseDirectory(ctx context.Context, root string) (*models.Application, error)
	Scan(ctx context.Context, root string) (*ScanResult, error)
}
