package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/syntax"
	"github.com/toyz/docspec/internal/utils"
)

func binding(comment string, node *syntax.Node) syntax.Binding {
	if node == nil {
		node = &syntax.Node{}
	}
	return syntax.Binding{
		Comment: syntax.Token{Kind: syntax.BlockComment, Text: comment},
		Node:    node,
	}
}

func TestClassify_Application(t *testing.T) {
	records, err := Classify(binding(`/**
 * Example Project
 * @application example
 * @version 0.0.1
 * @description RESTful API service for example
 * @author Jane Doe <jane@example.com>
 * @contact https://example.com
 * @address http://localhost:3000
 * @note first
 * @note
 * @module ignored
 */`, nil), "index.js", utils.HashCounter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.ApplicationRecord, records[0].Kind)

	assert.Equal(t, &models.Application{
		Title:       "Example Project",
		Name:        "example",
		Description: "RESTful API service for example",
		Notes:       []string{"first"},
		Address:     "http://localhost:3000",
		Author:      "Jane Doe <jane@example.com>",
		Contact:     "https://example.com",
		Version:     "0.0.1",
	}, records[0].Application)
}

func TestClassify_Module(t *testing.T) {
	counter := utils.HashCounter{}
	records, err := Classify(binding(`/**
 * Example Module
 * @module example
 * @middleware {auth} admin
 * @middleware {cors}
 * @path /example
 * @note note 1
 */`, nil), "api/users.js", counter)
	require.NoError(t, err)
	require.Len(t, records, 1)

	mod := records[0].Module
	assert.Equal(t, models.ModuleRecord, records[0].Kind)
	assert.Equal(t, "Example Module", mod.Title)
	assert.Equal(t, "example-"+utils.Hash("api/users.js", nil), mod.Name)
	assert.Equal(t, "/example", mod.Path)
	assert.Equal(t, []models.Middleware{{Name: "auth", Args: "admin"}, {Name: "cors"}}, mod.Middlewares)
	assert.Equal(t, []string{"note 1"}, mod.Notes)
	assert.Equal(t, "users", mod.Filename)
	assert.Empty(t, mod.Actions)
	assert.Equal(t, 1, counter["api/users.js"])
}

func TestClassify_ModuleWithoutName(t *testing.T) {
	records, err := Classify(binding("/**\n * @module\n */", nil), "a.js", utils.HashCounter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "module-"+utils.Hash("a.js", nil), records[0].Module.Name)
}

func TestClassify_SecondModuleInFileGetsNewHash(t *testing.T) {
	counter := utils.HashCounter{}
	first, err := Classify(binding("/** @module a */", nil), "a.js", counter)
	require.NoError(t, err)
	second, err := Classify(binding("/** @module a */", nil), "a.js", counter)
	require.NoError(t, err)

	assert.NotEqual(t, first[0].Module.Name, second[0].Module.Name)
}

func TestClassify_Action(t *testing.T) {
	node := &syntax.Node{Kind: syntax.MethodNode, Name: "getInfo"}
	records, err := Classify(binding(`/**
 * Get Example Info
 * @route {get} /info
 * @middleware {exampleMiddleware3}
 * @param {object} params
 * @param {Upload} params.keywords keywords for search
 * @param {Context} context
 */`, node), "index.js", utils.HashCounter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	action := records[0].Action
	assert.Equal(t, models.ActionRecord, records[0].Kind)
	assert.Equal(t, "Get Example Info", action.Title)
	assert.Equal(t, "get-info-"+utils.Hash("index.js:getInfo", nil), action.Name)
	assert.Equal(t, models.Route{Method: "GET", Path: "/info"}, action.Route)
	assert.Equal(t, []models.Param{{Type: "Upload", Name: "keywords", Description: "keywords for search"}}, action.Params)
	assert.Equal(t, []models.Middleware{{Name: "exampleMiddleware3"}}, action.Middlewares)
	assert.Equal(t, "index", action.Filename)
	assert.Equal(t, "getInfo", action.Funcname)
}

func TestClassify_FanOut(t *testing.T) {
	node := &syntax.Node{Kind: syntax.FunctionNode, Name: "save"}
	records, err := Classify(binding(`/**
 * Save
 * @route {put} /items/:id/
 * @route {post} /items
 * @param {string} params.id item id
 */`, node), "items.js", utils.HashCounter{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	a, b := records[0].Action, records[1].Action
	assert.Equal(t, models.Route{Method: "PUT", Path: "/items/:id/"}, a.Route)
	assert.Equal(t, models.Route{Method: "POST", Path: "/items"}, b.Route)
	assert.Equal(t, "put-items-id-"+utils.Hash("items.js:save", nil), a.Name)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Params, b.Params)
	assert.Equal(t, "Save", b.Title)
}

func TestClassify_AnonymousAction(t *testing.T) {
	records, err := Classify(binding("/** @route {get} / */", nil), "a.js", utils.HashCounter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "", records[0].Action.Funcname)
	assert.Equal(t, "get-"+utils.Hash("a.js:", nil), records[0].Action.Name)
}

func TestClassify_Priority(t *testing.T) {
	records, err := Classify(binding("/**\n * @module m\n * @route {get} /x\n */", nil), "a.js", utils.HashCounter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.ModuleRecord, records[0].Kind)
}

func TestClassify_Unrelated(t *testing.T) {
	records, err := Classify(binding("/**\n * @class Example\n */", nil), "a.js", utils.HashCounter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClassify_GrammarErrors(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    string
	}{
		{"route", "/** @route {get /info */", `"@route {get /info" is not a valid route definition`},
		{"action middleware", "/**\n * @route {get} /a\n * @middleware auth\n */", `"@middleware auth"`},
		{"module middleware", "/**\n * @module m\n * @middleware auth\n */", `"@middleware auth"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(binding(tt.comment, nil), "a.js", utils.HashCounter{})
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.GrammarErrorCode))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"get:/info":          "get-info",
		"get:/":              "get",
		"put:/items/:id/":    "put-items-id",
		"post:/a--b//c":      "post-a-b-c",
		"get:/users/{id}.js": "get-users-id-js",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeName(in), in)
	}
}

func TestJoinRoutePath(t *testing.T) {
	tests := []struct {
		module, action, want string
	}{
		{"/example", "/info", "/example/info"},
		{"/example/", "info", "/example/info"},
		{"/example", "/info/", "/example/info/"},
		{"/example", "/", "/example/"},
		{"/", "/info", "/info"},
		{"/a", "../b", "/b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, joinRoutePath(tt.module, tt.action), tt.module+" + "+tt.action)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "index", Filename("src/index.js"))
	assert.Equal(t, "user.controller", Filename("user.controller.js"))
	assert.Equal(t, "main", Filename("main.go"))
}
