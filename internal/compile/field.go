package compile

import (
	"fmt"

	"mdmodel-generator/internal/diagnostic"
	"mdmodel-generator/internal/schema"
)

// synthesizeField compiles one attribute into a field with its accessor,
// builder, and serialization descriptors.
func synthesizeField(objName string, attr schema.AttributeDef, diags *diagnostic.Diagnostics) Field {
	// Only the first candidate type is authoritative.
	if len(attr.Dtypes) > 1 {
		diags.AddWarning(
			"extra-dtypes-ignored",
			fmt.Sprintf("attribute declares %d candidate types, only %q is used", len(attr.Dtypes), attr.Dtypes[0]),
			objName,
			attr.Name,
		)
	}

	inner := mapType(attr.Dtypes[0])

	return Field{
		Name:    attr.Name,
		Type:    inner,
		Shape:   wrapShape(inner, attr.IsArray, attr.Required),
		Getter:  "get_" + attr.Name,
		Setter:  "set_" + attr.Name,
		Builder: builderSpec(attr),
		Serde:   serdeSpec(attr),
	}
}

// builderSpec derives the construction-time setter configuration.
// Every setter converts its argument; optional fields take the inner value
// and are wrapped by the builder; array fields additionally get a per-element
// accumulator named to_<field>. Fields left unset default to the zero value:
// completeness is not enforced at construction time.
func builderSpec(attr schema.AttributeDef) BuilderSpec {
	spec := BuilderSpec{
		Into:        true,
		Default:     true,
		StripOption: !attr.Required,
	}

	if attr.IsArray {
		spec.Each = "to_" + attr.Name
	}

	return spec
}

// serdeSpec derives the encode/decode hints. Bare required fields get no
// hint: always present on decode, never omitted on encode.
func serdeSpec(attr schema.AttributeDef) SerdeSpec {
	return SerdeSpec{
		SkipIfAbsent:     !attr.Required && !attr.IsArray,
		DefaultOnMissing: attr.IsArray,
	}
}
