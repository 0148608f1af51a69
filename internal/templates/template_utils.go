package templates

import (
	"strings"
	"text/template"

	"github.com/toyz/docspec/internal/models"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"title":       Title,
		"middlewares": FormatMiddlewares,
		"cell":        EscapeCell,
	}
}

// Title returns title, or name when the record has no title
func Title(title, name string) string {
	if strings.TrimSpace(title) == "" {
		return name
	}
	return title
}

// FormatMiddlewares renders middlewares as a comma-separated list of code
// spans, "name(args)" when arguments are present
func FormatMiddlewares(middlewares []models.Middleware) string {
	parts := make([]string, 0, len(middlewares))
	for _, mw := range middlewares {
		text := mw.Name
		if mw.Args != "" {
			text += "(" + mw.Args + ")"
		}
		parts = append(parts, "`"+text+"`")
	}
	return strings.Join(parts, ", ")
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

// EscapeCell makes s safe inside a Markdown table cell
func EscapeCell(s string) string {
	return cellReplacer.Replace(s)
}
