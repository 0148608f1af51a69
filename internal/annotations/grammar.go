// Package annotations implements the brace grammar used by @route and
// @middleware tags and the params.* filter applied to @param tags.
package annotations

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/jsdoc"
	"github.com/toyz/docspec/internal/models"
)

const paramsPrefix = "params."

// braceBody is "{name} rest". Only the first line of rest is captured.
type braceBody struct {
	Name string `parser:"Open @Name Close"`
	Rest string `parser:"@Rest?"`
}

var braceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Open", Pattern: `\{`, Action: lexer.Push("Brace")},
	},
	"Brace": {
		{Name: "Name", Pattern: `[^}]+`},
		{Name: "Close", Pattern: `\}`, Action: lexer.Push("Rest")},
	},
	"Rest": {
		{Name: "Rest", Pattern: `[^\n]+`},
		{Name: "Trailer", Pattern: `\n(?s:.*)`},
	},
})

var braceParser = participle.MustBuild[braceBody](
	participle.Lexer(braceLexer),
	participle.Elide("Whitespace", "Trailer"),
)

func parseBraceBody(text string) (*braceBody, error) {
	return braceParser.ParseString("", text)
}

// ParseRoute parses the text of a @route tag, e.g. "{get} /info".
// The method is upper-cased and both parts are trimmed.
func ParseRoute(text string) (models.Route, error) {
	body, err := parseBraceBody(text)
	if err != nil {
		return models.Route{}, errors.NewGrammarError(RouteTag.String(), "@route "+text).
			WithContext("detail", err.Error())
	}
	path := strings.TrimSpace(body.Rest)
	if path == "" {
		return models.Route{}, errors.NewGrammarError(RouteTag.String(), "@route "+text)
	}

	return models.Route{
		Method: strings.ToUpper(strings.TrimSpace(body.Name)),
		Path:   path,
	}, nil
}

// ParseMiddleware parses the text of a @middleware tag, e.g. "{auth} admin".
// Args may be empty.
func ParseMiddleware(text string) (models.Middleware, error) {
	body, err := parseBraceBody(text)
	if err != nil {
		return models.Middleware{}, errors.NewGrammarError(MiddlewareTag.String(), "@middleware "+text).
			WithContext("detail", err.Error())
	}

	return models.Middleware{
		Name: strings.TrimSpace(body.Name),
		Args: strings.TrimSpace(body.Rest),
	}, nil
}

// ParseParam keeps a @param tag only when it is typed and its name starts
// with "params.". The prefix is stripped from the returned name.
func ParseParam(tag jsdoc.Tag) (*models.Param, bool) {
	if tag.Type == "" || !strings.HasPrefix(tag.Name, paramsPrefix) {
		return nil, false
	}

	return &models.Param{
		Type:        tag.Type,
		Name:        strings.TrimPrefix(tag.Name, paramsPrefix),
		Description: tag.Description,
	}, true
}

// ParseRoutes parses every @route tag of a block in source order.
func ParseRoutes(block *jsdoc.Block) ([]models.Route, error) {
	return jsdoc.MapTags(block, RouteTag.String(), func(tag jsdoc.Tag) (models.Route, error) {
		return ParseRoute(tag.Description)
	})
}

// ParseMiddlewares parses every @middleware tag of a block in source order.
func ParseMiddlewares(block *jsdoc.Block) ([]models.Middleware, error) {
	return jsdoc.MapTags(block, MiddlewareTag.String(), func(tag jsdoc.Tag) (models.Middleware, error) {
		return ParseMiddleware(tag.Description)
	})
}

// ParseParams returns the kept @param tags of a block in source order.
func ParseParams(block *jsdoc.Block) []models.Param {
	params := make([]models.Param, 0)
	for _, tag := range block.TagsNamed(ParamTag.String()) {
		if p, ok := ParseParam(tag); ok {
			params = append(params, *p)
		}
	}
	return params
}
