package jsdoc

import "strings"

// Has reports whether the block carries at least one tag with the given title.
func (b *Block) Has(title string) bool {
	for _, tag := range b.Tags {
		if tag.Title == title {
			return true
		}
	}
	return false
}

// Title returns the first line of the leading description.
func (b *Block) Title() string {
	first, _, _ := strings.Cut(b.Description, "\n")
	return strings.TrimSpace(first)
}

// Text returns the trimmed description of the first tag with the given
// title, or "" when there is none.
func (b *Block) Text(title string) string {
	for _, tag := range b.Tags {
		if tag.Title == title {
			return strings.TrimSpace(tag.Description)
		}
	}
	return ""
}

// TextArray returns the descriptions of every tag with the given title in
// source order. Empty descriptions are kept; callers filter them.
func (b *Block) TextArray(title string) []string {
	var texts []string
	for _, tag := range b.Tags {
		if tag.Title == title {
			texts = append(texts, tag.Description)
		}
	}
	return texts
}

// TagsNamed returns every tag with the given title in source order.
func (b *Block) TagsNamed(title string) []Tag {
	var tags []Tag
	for _, tag := range b.Tags {
		if tag.Title == title {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Module returns the bare name of the @module tag, "" when absent or blank.
func (b *Block) Module() string {
	for _, tag := range b.Tags {
		if tag.Title == "module" {
			return tag.Name
		}
	}
	return ""
}

// MapTags applies fn to every tag with the given title in source order. The
// first error aborts the mapping.
func MapTags[T any](b *Block, title string, fn func(Tag) (T, error)) ([]T, error) {
	out := make([]T, 0)
	for _, tag := range b.TagsNamed(title) {
		v, err := fn(tag)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// NonEmpty drops empty strings, keeping order.
func NonEmpty(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
