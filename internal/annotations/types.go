package annotations

import "fmt"

// TagKind identifies a documentation tag the extractor understands.
type TagKind int

const (
	ApplicationTag TagKind = iota
	ModuleTag
	PathTag
	RouteTag
	MiddlewareTag
	ParamTag
	NoteTag
	DescriptionTag
	AuthorTag
	ContactTag
	VersionTag
	AddressTag
)

// String returns the tag title as written after the @ sign
func (k TagKind) String() string {
	switch k {
	case ApplicationTag:
		return "application"
	case ModuleTag:
		return "module"
	case PathTag:
		return "path"
	case RouteTag:
		return "route"
	case MiddlewareTag:
		return "middleware"
	case ParamTag:
		return "param"
	case NoteTag:
		return "note"
	case DescriptionTag:
		return "description"
	case AuthorTag:
		return "author"
	case ContactTag:
		return "contact"
	case VersionTag:
		return "version"
	case AddressTag:
		return "address"
	default:
		return "unknown"
	}
}

// ParseTagKind converts a tag title to TagKind
func ParseTagKind(s string) (TagKind, error) {
	for k := ApplicationTag; k <= AddressTag; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown tag: %s", s)
}
