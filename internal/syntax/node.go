// Package syntax is the language-neutral view of a source file that the
// extractor works on: a node tree plus the ordered token stream, comments
// included. Frontends in the subpackages build it from real parsers.
package syntax

import "fmt"

// Position is a location in a source file. Lines and columns are 1-based,
// Offset is a 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NodeKind classifies the nodes that can name a declaration.
type NodeKind int

const (
	OtherNode NodeKind = iota
	PropertyNode
	MethodNode
	FunctionNode
	VariableNode
)

// String returns the string representation of the node kind
func (k NodeKind) String() string {
	switch k {
	case PropertyNode:
		return "property"
	case MethodNode:
		return "method"
	case FunctionNode:
		return "function"
	case VariableNode:
		return "variable"
	default:
		return "other"
	}
}

// Node is one syntax tree node.
type Node struct {
	Kind NodeKind
	Type string // frontend node type, kept for diagnostics
	// Name is the declared name for property, method, function and variable
	// nodes. Properties keyed by anything but a plain identifier have no name.
	Name string
	// FuncInit marks a variable whose initializer is a function or arrow function.
	FuncInit bool
	Start    Position
	End      Position
	Children []*Node
}

// Append adds children in source order and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// TokenKind distinguishes code tokens from the two comment shapes.
type TokenKind int

const (
	CodeToken TokenKind = iota
	LineComment
	BlockComment
)

// Token is one lexical token. Comment tokens carry their full text,
// delimiters included.
type Token struct {
	Kind  TokenKind
	Text  string
	Start Position
	End   Position
}

// IsDocComment reports whether t is a block comment whose body starts with
// "*", i.e. "/** ... */". The empty "/**/" is not a doc comment.
func (t Token) IsDocComment() bool {
	if t.Kind != BlockComment || len(t.Text) < 4 {
		return false
	}
	body := t.Text[2 : len(t.Text)-2]
	return len(body) > 0 && body[0] == '*'
}

// File is a parsed source file. Tokens are ordered by Start.Offset and do
// not overlap.
type File struct {
	Path   string
	Source []byte
	Root   *Node
	Tokens []Token
}

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Contains reports whether target is root or one of its descendants.
func Contains(root, target *Node) bool {
	if root == nil || target == nil {
		return false
	}
	found := false
	Walk(root, func(n *Node) bool {
		if found {
			return false
		}
		if n == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// DeclarationName returns the first declared name found in a pre-order walk
// of n: a property key, a method name, a function name, or a variable
// initialised with a function. It returns "" when there is none.
func DeclarationName(n *Node) string {
	name := ""
	Walk(n, func(node *Node) bool {
		if name != "" {
			return false
		}
		switch node.Kind {
		case PropertyNode, MethodNode, FunctionNode:
			name = node.Name
		case VariableNode:
			if node.FuncInit {
				name = node.Name
			}
		}
		return name == ""
	})
	return name
}
