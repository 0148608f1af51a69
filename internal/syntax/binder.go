package syntax

import "sort"

// Binding pairs a documentation comment with the node it documents.
type Binding struct {
	Comment Token
	Node    *Node
}

// Bind attaches documentation comments to nodes. Every node except the root
// is visited in pre-order; a node claims the token immediately before it
// when that token is a doc comment ending on the node's line or the line
// above. A comment is bound at most once, to the first node that claims it,
// so the outermost node starting after a comment wins. Bindings are returned
// in the order they were made.
func Bind(file *File) []Binding {
	if file == nil || file.Root == nil {
		return nil
	}

	var bindings []Binding
	claimed := make(map[int]bool)

	for _, child := range file.Root.Children {
		Walk(child, func(n *Node) bool {
			idx := tokenBefore(file.Tokens, n.Start.Offset)
			if idx < 0 || claimed[idx] {
				return true
			}
			comment := file.Tokens[idx]
			if !comment.IsDocComment() || n.Start.Line-comment.End.Line > 1 {
				return true
			}
			claimed[idx] = true
			bindings = append(bindings, Binding{Comment: comment, Node: n})
			return true
		})
	}

	return bindings
}

// tokenBefore returns the index of the last token ending at or before
// offset, or -1.
func tokenBefore(tokens []Token, offset int) int {
	i := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End.Offset > offset
	})
	return i - 1
}
