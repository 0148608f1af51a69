package parser

import (
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/toyz/docspec/internal/annotations"
	"github.com/toyz/docspec/internal/jsdoc"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/syntax"
	"github.com/toyz/docspec/internal/utils"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Classify turns one bound documentation comment into records. The first
// matching tag decides the kind: @application, then @module, then @route.
// A comment with none of them yields no record. filename is the
// slash-separated path relative to the scan root and seeds the hashes.
func Classify(b syntax.Binding, filename string, counter utils.HashCounter) ([]models.Record, error) {
	doc := jsdoc.Parse(b.Comment.Text)

	switch {
	case doc.Has(annotations.ApplicationTag.String()):
		return []models.Record{{
			Kind:        models.ApplicationRecord,
			Application: buildApplication(doc),
		}}, nil

	case doc.Has(annotations.ModuleTag.String()):
		mod, err := buildModule(doc, filename, counter)
		if err != nil {
			return nil, err
		}
		return []models.Record{{Kind: models.ModuleRecord, Module: mod}}, nil

	case doc.Has(annotations.RouteTag.String()):
		actions, err := buildActions(doc, b.Node, filename, counter)
		if err != nil {
			return nil, err
		}
		records := make([]models.Record, 0, len(actions))
		for _, action := range actions {
			records = append(records, models.Record{Kind: models.ActionRecord, Action: action})
		}
		return records, nil
	}

	return nil, nil
}

func buildApplication(doc *jsdoc.Block) *models.Application {
	return &models.Application{
		Title:       doc.Title(),
		Name:        doc.Text(annotations.ApplicationTag.String()),
		Description: doc.Text(annotations.DescriptionTag.String()),
		Notes:       jsdoc.NonEmpty(doc.TextArray(annotations.NoteTag.String())),
		Address:     doc.Text(annotations.AddressTag.String()),
		Author:      doc.Text(annotations.AuthorTag.String()),
		Contact:     doc.Text(annotations.ContactTag.String()),
		Version:     doc.Text(annotations.VersionTag.String()),
	}
}

func buildModule(doc *jsdoc.Block, filename string, counter utils.HashCounter) (*models.Module, error) {
	name := doc.Module()
	if name == "" {
		name = DefaultModuleName
	}
	hash := utils.Hash(filename, counter)

	middlewares, err := annotations.ParseMiddlewares(doc)
	if err != nil {
		return nil, err
	}

	return &models.Module{
		Title:       doc.Title(),
		Name:        name + "-" + hash,
		Path:        doc.Text(annotations.PathTag.String()),
		Description: doc.Text(annotations.DescriptionTag.String()),
		Middlewares: middlewares,
		Notes:       jsdoc.NonEmpty(doc.TextArray(annotations.NoteTag.String())),
		Filename:    Filename(filename),
		Actions:     make([]*models.Action, 0),
	}, nil
}

// buildActions fans one comment out into one action per @route tag. All
// actions share the name derived from the first route.
func buildActions(doc *jsdoc.Block, node *syntax.Node, filename string, counter utils.HashCounter) ([]*models.Action, error) {
	routes, err := annotations.ParseRoutes(doc)
	if err != nil {
		return nil, err
	}
	funcname := syntax.DeclarationName(node)
	hash := utils.Hash(filename+":"+funcname, counter)

	middlewares, err := annotations.ParseMiddlewares(doc)
	if err != nil {
		return nil, err
	}
	params := annotations.ParseParams(doc)
	notes := jsdoc.NonEmpty(doc.TextArray(annotations.NoteTag.String()))

	base := sanitizeName(routes[0].Name())
	if base == "" {
		base = DefaultActionName
	}

	actions := make([]*models.Action, 0, len(routes))
	for _, route := range routes {
		actions = append(actions, &models.Action{
			Title:       doc.Title(),
			Name:        base + "-" + hash,
			Description: doc.Text(annotations.DescriptionTag.String()),
			Notes:       slices.Clone(notes),
			Route:       route,
			Params:      slices.Clone(params),
			Middlewares: slices.Clone(middlewares),
			Filename:    Filename(filename),
			Funcname:    funcname,
		})
	}
	return actions, nil
}

// sanitizeName replaces every run of characters outside [A-Za-z0-9] with a
// single "-" and drops one trailing "-".
func sanitizeName(name string) string {
	return strings.TrimSuffix(nonAlphanumeric.ReplaceAllString(name, "-"), "-")
}

// Filename returns the base name of a slash-separated path without its extension.
func Filename(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

// joinRoutePath mounts an action path under a module path. A trailing slash
// on the action path is preserved.
func joinRoutePath(modulePath, actionPath string) string {
	joined := path.Join(modulePath, actionPath)
	if strings.HasSuffix(actionPath, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}
