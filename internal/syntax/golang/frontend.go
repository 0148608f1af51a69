// Package golang builds the neutral syntax model from Go source, so that
// /** */ documentation blocks in Go files are extracted the same way as in
// JavaScript.
package golang

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/syntax"
)

// Frontend parses Go source files.
type Frontend struct{}

// New creates a Go frontend
func New() *Frontend {
	return &Frontend{}
}

// Name implements syntax.Frontend
func (f *Frontend) Name() string {
	return "go"
}

// Extensions implements syntax.Frontend
func (f *Frontend) Extensions() []string {
	return []string{".go"}
}

// Parse implements syntax.Frontend
func (f *Frontend) Parse(ctx context.Context, path string, src []byte) (*syntax.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, parseError(path, err)
	}

	b := &builder{fset: fset, tf: fset.File(astFile.Pos()), src: src}
	return &syntax.File{
		Path:   path,
		Source: src,
		Root:   b.tree(astFile),
		Tokens: b.scan(),
	}, nil
}

type builder struct {
	fset *token.FileSet
	tf   *token.File
	src  []byte
}

func (b *builder) position(offset int) syntax.Position {
	p := b.fset.PositionFor(b.tf.Pos(offset), false)
	return syntax.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func (b *builder) pos(p token.Pos) syntax.Position {
	if !p.IsValid() {
		return syntax.Position{}
	}
	return b.position(b.tf.Offset(p))
}

// tree mirrors the AST with an explicit stack, skipping comment nodes.
func (b *builder) tree(file *ast.File) *syntax.Node {
	var root *syntax.Node
	var stack []*syntax.Node

	in := inspector.New([]*ast.File{file})
	in.Nodes(nil, func(n ast.Node, push bool) bool {
		switch n.(type) {
		case *ast.CommentGroup, *ast.Comment:
			return false
		}
		if !push {
			stack = stack[:len(stack)-1]
			return true
		}

		node := b.convert(n)
		if len(stack) == 0 {
			root = node
		} else {
			stack[len(stack)-1].Append(node)
		}
		stack = append(stack, node)
		return true
	})

	return root
}

func (b *builder) convert(n ast.Node) *syntax.Node {
	node := &syntax.Node{
		Type:  strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."),
		Start: b.pos(n.Pos()),
		End:   b.pos(n.End()),
	}

	switch n := n.(type) {
	case *ast.FuncDecl:
		node.Kind = syntax.FunctionNode
		if n.Recv != nil {
			node.Kind = syntax.MethodNode
		}
		node.Name = n.Name.Name
	case *ast.ValueSpec:
		node.Kind = syntax.VariableNode
		if len(n.Names) > 0 {
			node.Name = n.Names[0].Name
		}
		if len(n.Values) > 0 {
			_, node.FuncInit = n.Values[0].(*ast.FuncLit)
		}
	case *ast.AssignStmt:
		if n.Tok != token.DEFINE || len(n.Lhs) == 0 || len(n.Rhs) == 0 {
			break
		}
		if ident, ok := n.Lhs[0].(*ast.Ident); ok {
			node.Kind = syntax.VariableNode
			node.Name = ident.Name
			_, node.FuncInit = n.Rhs[0].(*ast.FuncLit)
		}
	case *ast.KeyValueExpr:
		node.Kind = syntax.PropertyNode
		switch key := n.Key.(type) {
		case *ast.Ident:
			node.Name = key.Name
		case *ast.BasicLit:
			if key.Kind == token.STRING {
				if name, err := strconv.Unquote(key.Value); err == nil {
					node.Name = name
				}
			}
		}
	}

	return node
}

// scan re-tokenizes the source with comments kept. Automatically inserted
// semicolons are dropped since they have no extent.
func (b *builder) scan() []syntax.Token {
	var s scanner.Scanner
	scanFile := token.NewFileSet().AddFile(b.tf.Name(), -1, len(b.src))
	s.Init(scanFile, b.src, nil, scanner.ScanComments)

	var tokens []syntax.Token
	for {
		p, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		start := scanFile.Offset(p)
		end := start + len(lit)
		kind := syntax.CodeToken

		switch {
		case tok == token.COMMENT && strings.HasPrefix(lit, "/*"):
			kind = syntax.BlockComment
			if i := strings.Index(string(b.src[start:]), "*/"); i >= 0 {
				end = start + i + 2
			}
		case tok == token.COMMENT:
			kind = syntax.LineComment
			end = len(b.src)
			if i := strings.IndexByte(string(b.src[start:]), '\n'); i >= 0 {
				end = start + i
			}
			end = start + len(strings.TrimRight(string(b.src[start:end]), "\r"))
		case lit == "":
			end = start + len(tok.String())
		}
		if end > len(b.src) {
			end = len(b.src)
		}

		tokens = append(tokens, syntax.Token{
			Kind:  kind,
			Text:  string(b.src[start:end]),
			Start: b.position(start),
			End:   b.position(end),
		})
	}
	return tokens
}

func parseError(path string, err error) error {
	if list, ok := err.(scanner.ErrorList); ok && len(list) > 0 {
		first := list[0]
		return errors.NewSourceParseError(path, first.Pos.Line, first.Pos.Column, first.Msg).
			WithContext("errors", len(list))
	}
	return errors.NewSourceParseError(path, 0, 0, err.Error()).WithCause(err)
}
