package generator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/models"
)

func sampleApplication() *models.Application {
	info := &models.Action{
		Title:       "Get Example Info",
		Name:        "get-info-1a2b3c",
		Route:       models.Route{Method: "GET", Path: "/example/info"},
		Params:      []models.Param{{Type: "Upload", Name: "keywords", Description: "keywords for search"}},
		Middlewares: []models.Middleware{{Name: "exampleMiddleware3"}},
		Filename:    "index",
		Funcname:    "getInfo",
	}
	update := &models.Action{
		Title:  "Update item",
		Name:   "put-example-items-id-4d5e6f",
		Route:  models.Route{Method: "PUT", Path: "/example/items/:id"},
		Params: []models.Param{{Type: "string", Name: "label"}, {Type: "number[]", Name: "scores"}},
	}
	patch := &models.Action{
		Title: "Update item",
		Name:  "put-example-items-id-4d5e6f",
		Route: models.Route{Method: "PATCH", Path: "/example/items/:id"},
	}
	custom := &models.Action{Name: "purge-abcdef", Route: models.Route{Method: "PURGE", Path: "/example/cache"}}

	return &models.Application{
		Title:   "Example Project",
		Name:    "example",
		Version: "0.0.1",
		Address: "http://localhost:3000",
		Contact: "team@example.com",
		Notes:   []string{"note"},
		Modules: []*models.Module{{
			Title:       "Example Module",
			Name:        "example-abc123",
			Path:        "/example",
			Middlewares: []models.Middleware{{Name: "exampleMiddleware1", Args: "strict"}},
			Actions:     []*models.Action{info, update, patch, custom},
		}},
	}
}

func TestRegistry_Formats(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, []string{"json", "markdown", "openapi", "yaml"}, r.Formats())

	_, err := r.Get("xml")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))

	assert.Error(t, r.Register(NewJSONGenerator()))
}

func TestJSONGenerator(t *testing.T) {
	out, err := NewDefaultRegistry().Generate("json", sampleApplication())
	require.NoError(t, err)

	var decoded models.Application
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "example", decoded.Name)
	require.Len(t, decoded.Modules, 1)
	assert.Equal(t, "GET", decoded.Modules[0].Actions[0].Route.Method)
	assert.Contains(t, string(out), `"funcname": "getInfo"`)
}

func TestYAMLGenerator(t *testing.T) {
	out, err := NewYAMLGenerator().Generate(sampleApplication())
	require.NoError(t, err)

	var decoded models.Application
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "Example Project", decoded.Title)
	assert.Equal(t, "/example/info", decoded.Modules[0].Actions[0].Route.Path)
	assert.Contains(t, string(out), "\n  - title: Example Module\n")
}

func TestOpenAPIGenerator_Build(t *testing.T) {
	doc := NewOpenAPIGenerator().Build(sampleApplication())
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "Example Project", doc.Info.Title)
	assert.Equal(t, "0.0.1", doc.Info.Version)
	assert.Equal(t, "team@example.com", doc.Info.Contact.Email)
	assert.Equal(t, "http://localhost:3000", doc.Servers[0].URL)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "example-abc123", doc.Tags[0].Name)

	info := doc.Paths.Value("/example/info")
	require.NotNil(t, info)
	require.NotNil(t, info.Get)
	assert.Equal(t, "get-info-1a2b3c", info.Get.OperationID)
	assert.Equal(t, "Get Example Info", info.Get.Summary)
	assert.Equal(t, []string{"example-abc123"}, info.Get.Tags)
	assert.Equal(t, []models.Middleware{{Name: "exampleMiddleware1", Args: "strict"}, {Name: "exampleMiddleware3"}},
		info.Get.Extensions["x-middlewares"])

	query := info.Get.Parameters.GetByInAndName(openapi3.ParameterInQuery, "keywords")
	require.NotNil(t, query)
	assert.Equal(t, "binary", query.Schema.Value.Format)
	assert.Nil(t, info.Get.RequestBody)

	items := doc.Paths.Value("/example/items/{id}")
	require.NotNil(t, items)
	require.NotNil(t, items.Put)
	require.NotNil(t, items.Patch)
	assert.Equal(t, "put-example-items-id-4d5e6f", items.Put.OperationID)
	assert.Equal(t, "put-example-items-id-4d5e6f-2", items.Patch.OperationID)
	assert.NotNil(t, items.Put.Parameters.GetByInAndName(openapi3.ParameterInPath, "id"))

	body := items.Put.RequestBody.Value.Content.Get("application/json").Schema.Value
	assert.Contains(t, body.Properties, "label")
	assert.True(t, body.Properties["scores"].Value.Type.Is(openapi3.TypeArray))

	assert.Nil(t, doc.Paths.Value("/example/cache"))
	assert.Equal(t, []string{"purge-abcdef"}, doc.Extensions["x-unmapped-actions"])
}

func TestOpenAPIGenerator_Generate(t *testing.T) {
	out, err := NewDefaultRegistry().Generate("openapi", sampleApplication())
	require.NoError(t, err)

	doc, err := openapi3.NewLoader().LoadFromData(out)
	require.NoError(t, err)
	assert.Equal(t, OpenAPIVersion, doc.OpenAPI)
	assert.NotNil(t, doc.Paths.Find("/example/info"))
}

func TestTypeSchema(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"string", openapi3.TypeString},
		{"Number", openapi3.TypeNumber},
		{"int", openapi3.TypeInteger},
		{"boolean", openapi3.TypeBoolean},
		{"object", openapi3.TypeObject},
		{"string[]", openapi3.TypeArray},
		{"file", openapi3.TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.True(t, typeSchema(tt.typ).Type.Is(tt.want))
		})
	}

	custom := typeSchema("Context")
	assert.Nil(t, custom.Type)
	assert.Equal(t, "Context", custom.Extensions["x-docspec-type"])
}

func TestOpenAPIPath(t *testing.T) {
	assert.Equal(t, "/users/{id}", openAPIPath("/users/:id"))
	assert.Equal(t, "/info", openAPIPath("info"))
}

func TestMarkdownGenerator(t *testing.T) {
	out, err := NewDefaultRegistry().Generate("markdown", sampleApplication())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Example Project\n")
	assert.Contains(t, text, "## Example Module\n")
	assert.Contains(t, text, "Middlewares: `exampleMiddleware1(strict)`")
	assert.Contains(t, text, "### Get Example Info\n")
	assert.Contains(t, text, "`GET /example/info`")
	assert.Contains(t, text, "| keywords | Upload | keywords for search |")
	assert.Contains(t, text, "### purge-abcdef\n", "untitled actions fall back to their name")

	_, err = NewMarkdownGenerator().Generate(nil)
	assert.Error(t, err)
}
