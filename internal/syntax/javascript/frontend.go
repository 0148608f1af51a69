// Package javascript builds the neutral syntax model from JavaScript source
// using tree-sitter.
package javascript

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/syntax"
)

// functionTypes are the tree-sitter node types of function values.
var functionTypes = map[string]bool{
	"function":            true,
	"function_expression": true,
	"arrow_function":      true,
	"generator_function":  true,
}

// Frontend parses JavaScript. It is safe for concurrent use; every Parse
// call owns its own tree-sitter parser.
type Frontend struct{}

// New creates a JavaScript frontend
func New() *Frontend {
	return &Frontend{}
}

// Name implements syntax.Frontend
func (f *Frontend) Name() string {
	return "javascript"
}

// Extensions implements syntax.Frontend
func (f *Frontend) Extensions() []string {
	return []string{".js", ".mjs", ".cjs", ".jsx"}
}

// Parse implements syntax.Frontend
func (f *Frontend) Parse(ctx context.Context, path string, src []byte) (*syntax.File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.NewSourceParseError(path, 0, 0, err.Error()).WithCause(err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, parseError(path, root, src)
	}

	b := &builder{src: src}
	file := &syntax.File{
		Path:   path,
		Source: src,
		Root:   b.convert(root),
	}
	b.collectTokens(root)
	file.Tokens = b.tokens

	return file, nil
}

type builder struct {
	src    []byte
	tokens []syntax.Token
}

func (b *builder) position(offset uint32, point sitter.Point) syntax.Position {
	return syntax.Position{
		Offset: int(offset),
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
	}
}

func (b *builder) text(n *sitter.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}

// convert maps named nodes, comments excluded, onto syntax nodes.
func (b *builder) convert(n *sitter.Node) *syntax.Node {
	node := &syntax.Node{
		Type:  n.Type(),
		Start: b.position(n.StartByte(), n.StartPoint()),
		End:   b.position(n.EndByte(), n.EndPoint()),
	}
	b.classify(node, n)

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		node.Append(b.convert(child))
	}
	return node
}

func (b *builder) classify(node *syntax.Node, n *sitter.Node) {
	switch n.Type() {
	case "pair":
		node.Kind = syntax.PropertyNode
		if key := n.ChildByFieldName("key"); key != nil && key.Type() == "property_identifier" {
			node.Name = b.text(key)
		}
	case "shorthand_property_identifier":
		node.Kind = syntax.PropertyNode
		node.Name = b.text(n)
	case "method_definition":
		node.Kind = syntax.MethodNode
		if name := n.ChildByFieldName("name"); name != nil {
			switch name.Type() {
			case "property_identifier":
				node.Name = b.text(name)
			case "private_property_identifier":
				node.Name = strings.TrimPrefix(b.text(name), "#")
			}
		}
	case "function_declaration", "generator_function_declaration":
		node.Kind = syntax.FunctionNode
		if name := n.ChildByFieldName("name"); name != nil {
			node.Name = b.text(name)
		}
	case "variable_declarator":
		node.Kind = syntax.VariableNode
		if name := n.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			node.Name = b.text(name)
		}
		if value := n.ChildByFieldName("value"); value != nil {
			node.FuncInit = functionTypes[value.Type()]
		}
	case "field_definition":
		node.Kind = syntax.VariableNode
		if name := n.ChildByFieldName("property"); name != nil && name.Type() == "property_identifier" {
			node.Name = b.text(name)
		}
		if value := n.ChildByFieldName("value"); value != nil {
			node.FuncInit = functionTypes[value.Type()]
		}
	}
}

// collectTokens records every leaf, comments included, in source order.
func (b *builder) collectTokens(n *sitter.Node) {
	count := int(n.ChildCount())
	if count == 0 {
		if n.EndByte() == n.StartByte() {
			return
		}
		kind := syntax.CodeToken
		if n.Type() == "comment" {
			kind = syntax.LineComment
			if strings.HasPrefix(b.text(n), "/*") {
				kind = syntax.BlockComment
			}
		}
		b.tokens = append(b.tokens, syntax.Token{
			Kind:  kind,
			Text:  b.text(n),
			Start: b.position(n.StartByte(), n.StartPoint()),
			End:   b.position(n.EndByte(), n.EndPoint()),
		})
		return
	}
	for i := 0; i < count; i++ {
		if child := n.Child(i); child != nil {
			b.collectTokens(child)
		}
	}
}

// parseError reports the first error or missing node of the tree.
func parseError(path string, root *sitter.Node, src []byte) error {
	bad := firstError(root)
	if bad == nil {
		return errors.NewSourceParseError(path, 0, 0, "invalid JavaScript")
	}

	point := bad.StartPoint()
	detail := fmt.Sprintf("unexpected %q", truncate(string(src[bad.StartByte():bad.EndByte()])))
	if bad.IsMissing() {
		detail = fmt.Sprintf("missing %s", bad.Type())
	}
	return errors.NewSourceParseError(path, int(point.Row)+1, int(point.Column)+1, detail)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if bad := firstError(child); bad != nil {
			return bad
		}
	}
	return nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return s
}
