package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/registry"
	"github.com/toyz/docspec/internal/utils"
)

const sampleJS = `/* eslint-disable no-unused-vars */
/**
 * @class Example
 */
const Example = class Example {};

/**
 * Example Project
 * @application example
 * @version 0.0.1
 * @description RESTful API service for example
 */
module.exports = {
  /**
   * Example Module
   * @note note 1
   * @note note 2
   * @module example
   * @middleware {exampleMiddleware1}
   * @middleware {exampleMiddleware2}
   * @path /example
   */
  ThirdPartyConsultant: {
    /**
     * Get Example Info
     * @route {get} /info
     * @middleware {exampleMiddleware3}
     * @param {object} params
     * @param {Upload} params.keywords keywords for search
     * @param {Context} context
     */
    async getInfo(params, context) {},
  },
};
`

func newTestParser(t *testing.T, languages []string, opts ...Option) *Parser {
	t.Helper()
	frontends, err := registry.ForLanguages(languages)
	require.NoError(t, err)
	p, err := NewParser(frontends, opts...)
	require.NoError(t, err)
	return p
}

func TestParseSource_Sample(t *testing.T) {
	p := newTestParser(t, nil)

	result, err := p.ParseSource(context.Background(), "index.js", []byte(sampleJS))
	require.NoError(t, err)

	require.NotNil(t, result.Application)
	assert.Equal(t, "Example Project", result.Application.Title)
	assert.Equal(t, "example", result.Application.Name)
	assert.Equal(t, "0.0.1", result.Application.Version)

	require.Len(t, result.Modules, 1)
	mod := result.Modules[0]
	assert.Equal(t, "example-"+utils.Hash("index.js", nil), mod.Name)
	assert.Equal(t, "/example", mod.Path)
	assert.Equal(t, []string{"note 1", "note 2"}, mod.Notes)
	assert.Equal(t, []models.Middleware{{Name: "exampleMiddleware1"}, {Name: "exampleMiddleware2"}}, mod.Middlewares)

	require.Len(t, mod.Actions, 1)
	action := mod.Actions[0]
	assert.Equal(t, models.Route{Method: "GET", Path: "/example/info"}, action.Route)
	assert.Equal(t, "get-info-"+utils.Hash("index.js:getInfo", nil), action.Name)
	assert.Equal(t, "getInfo", action.Funcname)
	assert.Equal(t, "index", action.Filename)
	assert.Equal(t, []models.Param{{Type: "Upload", Name: "keywords", Description: "keywords for search"}}, action.Params)

	assert.Equal(t, []*models.Action{action}, result.Actions)
}

func TestParseSource_FirstRegisteredModuleWins(t *testing.T) {
	src := `/** @application app */
const app = {};

/**
 * Outer
 * @module outer
 * @path /outer
 */
const outer = {
  /**
   * Inner
   * @module inner
   * @path /inner
   */
  inner: {
    /**
     * Deep
     * @route {get} /deep
     */
    deep() {},
  },
};
`
	p := newTestParser(t, nil)
	result, err := p.ParseSource(context.Background(), "nested.js", []byte(src))
	require.NoError(t, err)

	require.Len(t, result.Modules, 2)
	outer, inner := result.Modules[0], result.Modules[1]
	require.Len(t, outer.Actions, 1)
	assert.Empty(t, inner.Actions)
	assert.Equal(t, "/outer/deep", outer.Actions[0].Route.Path)
	assert.NotEqual(t, outer.Name[len("outer-"):], inner.Name[len("inner-"):])
}

func TestParseSource_TopLevelAction(t *testing.T) {
	src := `/**
 * @module users
 * @path /users
 */
const users = {};

/**
 * Health
 * @route {get} /health
 */
function health() {}
`
	p := newTestParser(t, nil)
	result, err := p.ParseSource(context.Background(), "health.js", []byte(src))
	require.NoError(t, err)

	assert.Nil(t, result.Application)
	require.Len(t, result.Modules, 1)
	assert.Empty(t, result.Modules[0].Actions)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, "/health", result.Actions[0].Route.Path)
	assert.Equal(t, "health", result.Actions[0].Funcname)
}

func TestParseSource_ModuleWithoutPath(t *testing.T) {
	src := `/** @module plain */
const plain = {
  /** @route {post} /things */
  create: () => {},
};
`
	p := newTestParser(t, nil)
	result, err := p.ParseSource(context.Background(), "plain.js", []byte(src))
	require.NoError(t, err)

	require.Len(t, result.Modules[0].Actions, 1)
	assert.Equal(t, "/things", result.Modules[0].Actions[0].Route.Path)
	assert.Equal(t, "create", result.Modules[0].Actions[0].Funcname)
}

func TestParseSource_DuplicateApplication(t *testing.T) {
	src := "/** @application a */\nconst a = 1;\n/** @application b */\nconst b = 2;\n"

	p := newTestParser(t, nil)
	_, err := p.ParseSource(context.Background(), "apps.js", []byte(src))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.DuplicateApplicationErrorCode))
	assert.Contains(t, err.Error(), "apps.js")
}

func TestParseSource_UnknownExtension(t *testing.T) {
	p := newTestParser(t, nil)
	_, err := p.ParseSource(context.Background(), "main.py", []byte("print(1)"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.SourceParseErrorCode))
}

func TestParseSource_GoFrontend(t *testing.T) {
	src := `package sample

/**
 * Example Project
 * @application example
 */
var App = struct{}{}

/**
 * Example Module
 * @module example
 * @path /example
 */
var Consultant = map[string]any{
	/**
	 * Get Example Info
	 * @route {get} /info
	 */
	"getInfo": func(params, ctx any) {},
}
`
	p := newTestParser(t, []string{"javascript", "go"})
	result, err := p.ParseSource(context.Background(), "sample.go", []byte(src))
	require.NoError(t, err)

	require.NotNil(t, result.Application)
	require.Len(t, result.Modules, 1)
	require.Len(t, result.Modules[0].Actions, 1)
	action := result.Modules[0].Actions[0]
	assert.Equal(t, "GET /example/info", action.Route.String())
	assert.Equal(t, "get-info-"+utils.Hash("sample.go:getInfo", nil), action.Name)
	assert.Equal(t, "sample", action.Filename)
}
