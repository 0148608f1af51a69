package generator

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/utils"
)

// OpenAPIVersion is the version of the generated OpenAPI documents
const OpenAPIVersion = "3.0.3"

// DefaultInfoVersion is used when the application declares no @version
const DefaultInfoVersion = "0.0.0"

var operationMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPut:     true,
	http.MethodPost:    true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodHead:    true,
	http.MethodPatch:   true,
	http.MethodTrace:   true,
	http.MethodConnect: true,
}

// bodyless methods carry their params in the query string
var bodylessMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// OpenAPIGenerator renders the application tree as an OpenAPI 3 document.
// Each module becomes a tag and each action an operation on its route.
type OpenAPIGenerator struct {
	Indent string
}

// NewOpenAPIGenerator creates an OpenAPI generator writing indented JSON
func NewOpenAPIGenerator() *OpenAPIGenerator {
	return &OpenAPIGenerator{Indent: "  "}
}

func (g *OpenAPIGenerator) Format() string    { return "openapi" }
func (g *OpenAPIGenerator) Extension() string { return ".json" }

// Generate implements Generator
func (g *OpenAPIGenerator) Generate(app *models.Application) ([]byte, error) {
	doc := g.Build(app)
	out, err := json.MarshalIndent(doc, "", g.Indent)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Build constructs the OpenAPI document. Only the first action declaring a
// given method and path becomes an operation; actions with a method OpenAPI
// cannot express are listed under x-unmapped-actions.
func (g *OpenAPIGenerator) Build(app *models.Application) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI:    OpenAPIVersion,
		Info:       buildInfo(app),
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{},
	}
	if app.Address != "" {
		doc.Servers = openapi3.Servers{&openapi3.Server{URL: app.Address}}
	}

	operationIDs := make(map[string]int)
	var unmapped []string

	for _, mod := range app.Modules {
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: mod.Name, Description: firstNonEmpty(mod.Title, mod.Description)})

		for _, action := range mod.Actions {
			method := strings.ToUpper(action.Route.Method)
			if !operationMethods[method] {
				unmapped = append(unmapped, action.Name)
				continue
			}

			path := openAPIPath(action.Route.Path)
			item := doc.Paths.Value(path)
			if item == nil {
				item = &openapi3.PathItem{}
				doc.Paths.Set(path, item)
			}
			if item.GetOperation(method) != nil {
				continue
			}
			item.SetOperation(method, buildOperation(mod, action, uniqueOperationID(action.Name, operationIDs)))
		}
	}

	if len(unmapped) > 0 {
		doc.Extensions = map[string]interface{}{"x-unmapped-actions": unmapped}
	}
	return doc
}

func buildInfo(app *models.Application) *openapi3.Info {
	info := &openapi3.Info{
		Title:       firstNonEmpty(app.Title, app.Name),
		Description: app.Description,
		Version:     firstNonEmpty(app.Version, DefaultInfoVersion),
	}
	if app.Author != "" || app.Contact != "" {
		info.Contact = &openapi3.Contact{Name: app.Author}
		if strings.Contains(app.Contact, "@") && !strings.Contains(app.Contact, "://") {
			info.Contact.Email = app.Contact
		} else {
			info.Contact.URL = app.Contact
		}
	}
	if len(app.Notes) > 0 {
		info.Extensions = map[string]interface{}{"x-notes": app.Notes}
	}
	return info
}

func buildOperation(mod *models.Module, action *models.Action, operationID string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = action.Title
	op.Description = action.Description
	op.Tags = []string{mod.Name}
	op.Extensions = map[string]interface{}{}

	middlewares := append(append([]models.Middleware{}, mod.Middlewares...), action.Middlewares...)
	if len(middlewares) > 0 {
		op.Extensions["x-middlewares"] = middlewares
	}
	if len(action.Notes) > 0 {
		op.Extensions["x-notes"] = action.Notes
	}

	pathParams := make(map[string]bool)
	for _, name := range utils.PathParams(action.Route.Path) {
		pathParams[name] = true
		op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
	}

	if len(action.Params) > 0 {
		if bodylessMethods[strings.ToUpper(action.Route.Method)] {
			for _, p := range action.Params {
				if pathParams[p.Name] {
					continue
				}
				param := openapi3.NewQueryParameter(p.Name).WithSchema(paramSchema(p))
				param.Description = p.Description
				op.AddParameter(param)
			}
		} else {
			body := openapi3.NewObjectSchema()
			for _, p := range action.Params {
				body.WithProperty(p.Name, paramSchema(p))
			}
			op.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithJSONSchema(body)}
		}
	}

	op.Responses = openapi3.NewResponses(openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("OK"),
	}))
	return op
}

// paramSchema maps a declared param type onto a schema. Types without a
// JSON Schema counterpart keep their name under x-docspec-type.
func paramSchema(p models.Param) *openapi3.Schema {
	schema := typeSchema(strings.TrimSpace(p.Type))
	schema.Description = p.Description
	return schema
}

func typeSchema(typ string) *openapi3.Schema {
	if elem, ok := strings.CutSuffix(typ, "[]"); ok {
		return openapi3.NewArraySchema().WithItems(typeSchema(elem))
	}

	switch strings.ToLower(typ) {
	case "string":
		return openapi3.NewStringSchema()
	case "number", "float", "double":
		return openapi3.NewFloat64Schema()
	case "integer", "int":
		return openapi3.NewIntegerSchema()
	case "boolean", "bool":
		return openapi3.NewBoolSchema()
	case "object":
		return openapi3.NewObjectSchema()
	case "array":
		return openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
	case "date":
		return openapi3.NewDateTimeSchema()
	case "file", "upload":
		return openapi3.NewStringSchema().WithFormat("binary")
	case "":
		return openapi3.NewSchema()
	}

	schema := openapi3.NewSchema()
	schema.Extensions = map[string]interface{}{"x-docspec-type": typ}
	return schema
}

func openAPIPath(path string) string {
	path = utils.ToBracePath(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func uniqueOperationID(name string, seen map[string]int) string {
	seen[name]++
	if seen[name] == 1 {
		return name
	}
	return name + "-" + strconv.Itoa(seen[name])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
