// Package jsdoc parses documentation comments of the form /** ... */ into a
// leading description and an ordered list of @tags.
package jsdoc

import (
	"strings"
	"unicode"
)

// Tag is one @tag entry of a documentation block.
type Tag struct {
	Title       string // tag name without the leading @
	Type        string // {Type} prefix, only for name-carrying tags
	Name        string // declared name, only for name-carrying tags
	Description string // trimmed free text
	Line        int    // 0-based line of the tag inside the block
}

// Block is a parsed documentation comment.
type Block struct {
	Description string
	Tags        []Tag
}

// nameTags carry an optional {Type} followed by a name before the description.
var nameTags = map[string]bool{
	"param":    true,
	"arg":      true,
	"argument": true,
	"property": true,
	"prop":     true,
	"module":   true,
}

// Parse parses a raw comment. Both the full comment text ("/** ... */") and
// its inner value ("* ...") are accepted.
func Parse(comment string) *Block {
	lines := unwrap(comment)

	block := &Block{}
	var description []string
	var current *Tag
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		parseTagBody(current, strings.Join(body, "\n"))
		block.Tags = append(block.Tags, *current)
		current = nil
		body = nil
	}

	for i, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.HasPrefix(trimmed, "@") {
			title, rest := splitTitle(trimmed[1:])
			if title != "" {
				flush()
				current = &Tag{Title: title, Line: i}
				body = []string{rest}
				continue
			}
		}
		if current != nil {
			body = append(body, line)
		} else {
			description = append(description, line)
		}
	}
	flush()

	block.Description = strings.TrimSpace(strings.Join(description, "\n"))
	return block
}

// unwrap strips the comment delimiters and the leading "*" of every line.
func unwrap(comment string) []string {
	text := strings.TrimPrefix(comment, "/*")
	text = strings.TrimPrefix(text, "*")
	text = strings.TrimSuffix(text, "*/")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.HasPrefix(line, "*") {
			line = line[1:]
			if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
				line = line[1:]
			}
		}
		lines[i] = line
	}
	return lines
}

func splitTitle(s string) (title, rest string) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '{'
	})
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func parseTagBody(tag *Tag, body string) {
	if !nameTags[tag.Title] {
		tag.Description = strings.TrimSpace(body)
		return
	}

	rest := strings.TrimLeftFunc(body, unicode.IsSpace)
	if strings.HasPrefix(rest, "{") {
		if typ, after, ok := scanType(rest); ok {
			tag.Type = typ
			rest = strings.TrimLeftFunc(after, unicode.IsSpace)
		}
	}

	name, after := scanName(rest)
	tag.Name = name
	description := strings.TrimSpace(after)
	if strings.HasPrefix(description, "-") {
		description = strings.TrimSpace(description[1:])
	}
	tag.Description = description
}

// scanType reads a brace-balanced {Type} expression.
func scanType(s string) (typ, rest string, ok bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[1:i]), s[i+1:], true
			}
		}
	}
	return "", s, false
}

// scanName reads a declared name. The optional form [name=default] is
// unwrapped to name.
func scanName(s string) (name, rest string) {
	if strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return "", s
		}
		inner := strings.TrimSpace(s[1:end])
		if eq := strings.Index(inner, "="); eq >= 0 {
			inner = strings.TrimSpace(inner[:eq])
		}
		return inner, s[end+1:]
	}

	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
