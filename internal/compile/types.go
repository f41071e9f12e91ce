package compile

import (
	"mdmodel-generator/internal/diagnostic"
)

// ModuleDescription is the final output of compilation.
// It contains everything needed for code emission.
type ModuleDescription struct {
	// Namespace is the derived module name (lower-snake of the model name).
	Namespace string
	// Objects is the list of compiled record types, in model order.
	Objects []Object
	// Enums is the list of compiled enumeration types, in model order.
	Enums []Enum
	// Diagnostics contains all warnings from compilation.
	Diagnostics diagnostic.Diagnostics
}

// Object is one compiled record type.
type Object struct {
	// Name of the generated type, taken from the model unchanged.
	Name string
	// Fields in attribute order.
	Fields []Field
}

// Field is one compiled field with its synthesized descriptors.
type Field struct {
	// Name of the field as written in the model.
	Name string
	// Type is the resolved inner type (primitive or forward reference).
	Type TypeRef
	// Shape is the cardinality/optionality-resolved form of the field.
	Shape FieldShape
	// Getter is the read accessor name (get_<name>).
	Getter string
	// Setter is the fluent write accessor name (set_<name>).
	Setter string
	// Builder is the construction-time setter configuration.
	Builder BuilderSpec
	// Serde holds the encode/decode hints.
	Serde SerdeSpec
}

// BuilderSpec is the per-field construction-setter configuration.
type BuilderSpec struct {
	// Into means the setter accepts the value via implicit conversion.
	// Always set for every field.
	Into bool
	// StripOption means the setter takes the inner value and the builder
	// wraps it; set for optional fields.
	StripOption bool
	// Each is the name of the per-element accumulator setter (to_<name>)
	// for array fields. Empty for non-array fields.
	Each string
	// Default means the field falls back to its zero value when never set.
	// Always set: required-field completeness is a caller discipline.
	Default bool
}

// SerdeSpec holds the serialization hints for one field.
type SerdeSpec struct {
	// SkipIfAbsent marks optional non-array fields as omitted on encode
	// when absent.
	SkipIfAbsent bool
	// DefaultOnMissing marks array fields as decoding to an empty sequence
	// when absent.
	DefaultOnMissing bool
}

// Enum is one compiled enumeration type.
type Enum struct {
	// Name of the generated type, taken from the model unchanged.
	Name string
	// Variants in lexicographic key order. The first variant is the
	// default.
	Variants []Variant
}

// Variant is one enum variant with its serialized value.
type Variant struct {
	// Ident is the upper-camel variant identifier.
	Ident string
	// Value is the serialized value string, passed through unchanged.
	Value string
}

// Default returns the default variant: the one derived from the
// lexicographically smallest mapping key.
func (e Enum) Default() Variant {
	if len(e.Variants) == 0 {
		return Variant{}
	}

	return e.Variants[0]
}

// TypeKind discriminates primitive types from forward references.
type TypeKind int

const (
	// TypePrimitive is one of the four built-in scalar types.
	TypePrimitive TypeKind = iota
	// TypeReference names another generated type. References are never
	// validated against the set of generated types; a dangling reference
	// surfaces only when the emitted code is compiled downstream.
	TypeReference
)

// PrimitiveKind enumerates the built-in scalar types.
type PrimitiveKind int

const (
	// PrimitiveInt32 is a 32-bit signed integer.
	PrimitiveInt32 PrimitiveKind = iota
	// PrimitiveFloat32 is a 32-bit IEEE-754 float.
	PrimitiveFloat32
	// PrimitiveString is owned UTF-8 text.
	PrimitiveString
	// PrimitiveBool is a boolean.
	PrimitiveBool
)

// String returns the schema-level name of the primitive.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveInt32:
		return "integer"
	case PrimitiveFloat32:
		return "float"
	case PrimitiveString:
		return "string"
	case PrimitiveBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// TypeRef is a resolved inner type: a primitive or a forward reference.
type TypeRef struct {
	Kind      TypeKind
	Primitive PrimitiveKind
	// Reference is the referenced type name when Kind is TypeReference.
	Reference string
}

// IsPrimitive returns true for built-in scalar types.
func (t TypeRef) IsPrimitive() bool {
	return t.Kind == TypePrimitive
}

// String returns the schema-level name of the type.
func (t TypeRef) String() string {
	if t.Kind == TypeReference {
		return t.Reference
	}

	return t.Primitive.String()
}

// FieldShape is the cardinality/optionality-resolved form of a field.
type FieldShape int

const (
	// ShapeBare - the inner type itself, always present.
	ShapeBare FieldShape = iota
	// ShapeOptional - the inner type wrapped in an optional.
	ShapeOptional
	// ShapeSequence - a sequence of the inner type.
	ShapeSequence
	// ShapeOptionalSequence - an optional sequence of the inner type.
	ShapeOptionalSequence
)

// String returns a human-readable shape name.
func (s FieldShape) String() string {
	switch s {
	case ShapeBare:
		return "bare"
	case ShapeOptional:
		return "optional"
	case ShapeSequence:
		return "sequence"
	case ShapeOptionalSequence:
		return "optional_sequence"
	default:
		return "unknown"
	}
}
