package location

import "fmt"

// Kind identifies where in a request a declared parameter is read from
type Kind int

const (
	PathKind Kind = iota
	QueryKind
	HeaderKind
	CookieKind
	BodyKind
	FormKind
	FileKind
)

// Kinds lists every location in declaration order
var Kinds = []Kind{PathKind, QueryKind, HeaderKind, CookieKind, BodyKind, FormKind, FileKind}

// String returns the lower-case location name used in schemas
func (k Kind) String() string {
	switch k {
	case PathKind:
		return "path"
	case QueryKind:
		return "query"
	case HeaderKind:
		return "header"
	case CookieKind:
		return "cookie"
	case BodyKind:
		return "body"
	case FormKind:
		return "form"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}

// ParseKind converts a location name to a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown location kind: %s", s)
}

// IsPayload reports whether the location is part of the request body
func (k Kind) IsPayload() bool {
	return k == BodyKind || k == FormKind || k == FileKind
}

// ExtensionNames returns the location-specific fields that apply to this kind,
// in declaration order.
func (k Kind) ExtensionNames() []string {
	switch k {
	case HeaderKind:
		return []string{"convert_underscores"}
	case BodyKind, FormKind, FileKind:
		return []string{"embed", "media_type"}
	default:
		return nil
	}
}

// HasExtension reports whether name is a location-specific field of this kind
func (k Kind) HasExtension(name string) bool {
	for _, ext := range k.ExtensionNames() {
		if ext == name {
			return true
		}
	}
	return false
}

// FieldNames returns the full field set of this kind: every shared field
// followed by its extensions.
func (k Kind) FieldNames() []string {
	names := SharedFieldNames()
	return append(names, k.ExtensionNames()...)
}
