package schema

import "sort"

// Model is the root of a loaded data-model document.
type Model struct {
	// Name is the declared model name. May be empty; consumers fall back
	// to a default namespace.
	Name string

	// Objects lists the object definitions in document order.
	Objects []ObjectDef

	// Enums lists the enumeration definitions in document order.
	Enums []EnumDef
}

// ObjectDef is one record-like entity definition.
type ObjectDef struct {
	// Name of the generated type.
	Name string

	// Attributes in document order.
	Attributes []AttributeDef
}

// AttributeDef is one field definition within an object.
type AttributeDef struct {
	// Name of the attribute as written in the document.
	Name string

	// Dtypes is the non-empty candidate type list. Only the first entry
	// is authoritative; the rest are carried for diagnostics.
	Dtypes []string

	// IsArray marks the attribute as a sequence.
	IsArray bool

	// Required marks the attribute as mandatory.
	Required bool
}

// EnumDef is one closed set of named variants mapped to serialized values.
type EnumDef struct {
	// Name of the generated enumeration type.
	Name string

	// Mappings maps variant keys to their serialized value strings.
	// Keys are unique; iteration order is lexicographic via SortedKeys.
	Mappings map[string]string
}

// SortedKeys returns the mapping keys in lexicographic order.
// The first key determines the default variant downstream.
func (e EnumDef) SortedKeys() []string {
	keys := make([]string, 0, len(e.Mappings))
	for k := range e.Mappings {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
