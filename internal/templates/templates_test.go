package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/docspec/internal/models"
)

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry()

	assert.Equal(t, []string{ActionTemplate, ApplicationTemplate, ModuleTemplate}, registry.Names())

	body, ok := registry.Get(ModuleTemplate)
	require.True(t, ok)
	assert.Contains(t, body, `{{template "action" .}}`)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustGet("missing") })
}

func TestRenderer_Action(t *testing.T) {
	action := &models.Action{
		Title:       "Search",
		Description: "Finds things",
		Route:       models.Route{Method: "GET", Path: "/items/:id"},
		Params: []models.Param{
			{Type: "string", Name: "q", Description: "a|b"},
			{Type: "number", Name: "limit", Description: "line one\nline two"},
		},
		Middlewares: []models.Middleware{{Name: "auth"}, {Name: "rate", Args: "10, 60"}},
		Notes:       []string{"cached"},
	}

	out, err := NewDefaultRenderer().RenderAction(action)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "### Search\n\n`GET /items/:id`\n"))
	assert.Contains(t, out, "\nFinds things\n")
	assert.Contains(t, out, "Middlewares: `auth`, `rate(10, 60)`")
	assert.Contains(t, out, "| Name | Type | Description |")
	assert.Contains(t, out, `| q | string | a\|b |`)
	assert.Contains(t, out, "| limit | number | line one<br>line two |")
	assert.Contains(t, out, "> cached")
}

func TestRenderer_ActionWithoutParams(t *testing.T) {
	out, err := NewDefaultRenderer().RenderAction(&models.Action{
		Name:  "list-abc123",
		Route: models.Route{Method: "GET", Path: "/"},
	})
	require.NoError(t, err)

	assert.Equal(t, "### list-abc123\n\n`GET /`\n", out)
}

func TestRenderer_Application(t *testing.T) {
	app := &models.Application{
		Name:    "example",
		Version: "1.0.0",
		Address: "http://localhost:3000",
		Modules: []*models.Module{{
			Title: "Users",
			Path:  "/users",
			Actions: []*models.Action{
				{Title: "List users", Route: models.Route{Method: "GET", Path: "/users/"}},
			},
		}},
	}

	out, err := NewDefaultRenderer().RenderApplication(app)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# example\n"))
	assert.Contains(t, out, "Version: 1.0.0")
	assert.Contains(t, out, "Base address: `http://localhost:3000`")
	assert.Contains(t, out, "## Users\n")
	assert.Contains(t, out, "Path: `/users`")
	assert.Contains(t, out, "### List users\n")
	assert.Less(t, strings.Index(out, "## Users"), strings.Index(out, "### List users"))

	_, err = NewDefaultRenderer().RenderApplication(nil)
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Users", Title("Users", "users-abc123"))
	assert.Equal(t, "users-abc123", Title("  ", "users-abc123"))
}

func TestFormatMiddlewares(t *testing.T) {
	assert.Equal(t, "", FormatMiddlewares(nil))
	assert.Equal(t, "`a`, `b(x)`", FormatMiddlewares([]models.Middleware{{Name: "a"}, {Name: "b", Args: "x"}}))
}
