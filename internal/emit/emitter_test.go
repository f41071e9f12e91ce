package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdmodel-generator/internal/compile"
	"mdmodel-generator/internal/schema"
)

func TestEmitStruct(t *testing.T) {
	desc := &compile.ModuleDescription{
		Namespace: "test",
		Objects: []compile.Object{
			{
				Name: "Person",
				Fields: []compile.Field{
					{
						Name:    "name",
						Type:    compile.TypeRef{Kind: compile.TypePrimitive, Primitive: compile.PrimitiveString},
						Shape:   compile.ShapeBare,
						Getter:  "get_name",
						Setter:  "set_name",
						Builder: compile.BuilderSpec{Into: true, Default: true},
					},
					{
						Name:    "age",
						Type:    compile.TypeRef{Kind: compile.TypePrimitive, Primitive: compile.PrimitiveInt32},
						Shape:   compile.ShapeOptional,
						Getter:  "get_age",
						Setter:  "set_age",
						Builder: compile.BuilderSpec{Into: true, Default: true, StripOption: true},
						Serde:   compile.SerdeSpec{SkipIfAbsent: true},
					},
					{
						Name:    "tags",
						Type:    compile.TypeRef{Kind: compile.TypePrimitive, Primitive: compile.PrimitiveString},
						Shape:   compile.ShapeOptionalSequence,
						Getter:  "get_tags",
						Setter:  "set_tags",
						Builder: compile.BuilderSpec{Into: true, Default: true, StripOption: true, Each: "to_tags"},
						Serde:   compile.SerdeSpec{DefaultOnMissing: true},
					},
				},
			},
		},
	}

	file, err := NewEmitter(DefaultConfig()).Emit(desc)
	require.NoError(t, err)

	assert.Equal(t, "test.rs", file.Filename)

	result := string(file.Content)

	assert.Contains(t, result, "pub mod test {")
	assert.Contains(t, result, "use derive_builder::Builder;")
	assert.Contains(t, result, "pub struct Person {")

	// Field shapes
	assert.Contains(t, result, "pub name: String,")
	assert.Contains(t, result, "pub age: Option<i32>,")
	assert.Contains(t, result, "pub tags: Option<Vec<String>>,")

	// Builder attributes
	assert.Contains(t, result, "#[builder(default, setter(into))]")
	assert.Contains(t, result, "#[builder(default, setter(into, strip_option))]")
	assert.Contains(t, result, `#[builder(default, setter(into, strip_option, each(name = "to_tags", into)))]`)

	// Serde hints: omit-on-absent for the optional scalar, default for the
	// array, nothing for the bare required field
	assert.Contains(t, result, `#[serde(skip_serializing_if = "Option::is_none")]`)
	assert.Contains(t, result, "#[serde(default)]")
	assert.Equal(t, 1, strings.Count(result, "skip_serializing_if"))

	// Accessors
	assert.Contains(t, result, "pub fn get_age(&self) -> &Option<i32> {")
	assert.Contains(t, result, "pub fn set_age(&mut self, value: Option<i32>) -> &mut Self {")
	assert.Contains(t, result, "self.age = value;")
}

func TestEmitEnum(t *testing.T) {
	desc := &compile.ModuleDescription{
		Namespace: "test",
		Enums: []compile.Enum{
			{
				Name: "SomeEnum",
				Variants: []compile.Variant{
					{Ident: "A", Value: "alpha"},
					{Ident: "B", Value: "beta"},
				},
			},
		},
	}

	file, err := NewEmitter(DefaultConfig()).Emit(desc)
	require.NoError(t, err)

	result := string(file.Content)

	assert.Contains(t, result, "pub enum SomeEnum {")

	// The first variant is the default
	assert.Contains(t, result, "#[default]\n        A,")
	assert.NotContains(t, result, "#[default]\n        B,")

	// Exhaustive stringification: one arm per variant
	assert.Contains(t, result, "impl std::fmt::Display for SomeEnum {")
	assert.Contains(t, result, `SomeEnum::A => "alpha".to_string(),`)
	assert.Contains(t, result, `SomeEnum::B => "beta".to_string(),`)
}

func TestEmitHeaderToggle(t *testing.T) {
	desc := &compile.ModuleDescription{Namespace: "empty"}

	withHeader, err := NewEmitter(DefaultConfig()).Emit(desc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(withHeader.Content), "// Generated by mdmodel-generator."))

	bare, err := NewEmitter(Config{}).Emit(desc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(bare.Content), "pub mod empty {"))
}

func TestEmitFromCompiledModel(t *testing.T) {
	model := &schema.Model{
		Name: "My Model",
		Objects: []schema.ObjectDef{
			{
				Name: "Object",
				Attributes: []schema.AttributeDef{
					{Name: "name", Dtypes: []string{"string"}, Required: true},
					{Name: "nested", Dtypes: []string{"Nested"}, IsArray: true},
				},
			},
			{
				Name: "Nested",
				Attributes: []schema.AttributeDef{
					{Name: "value", Dtypes: []string{"string"}},
				},
			},
		},
		Enums: []schema.EnumDef{
			{Name: "Color", Mappings: map[string]string{"red": "#f00", "blue": "#00f"}},
		},
	}

	desc, err := compile.Generate(model)
	require.NoError(t, err)

	file, err := NewEmitter(DefaultConfig()).Emit(desc)
	require.NoError(t, err)

	assert.Equal(t, "my_model.rs", file.Filename)

	result := string(file.Content)

	assert.Contains(t, result, "pub mod my_model {")

	// Optional sequence of a reference type collapses to a plain Vec
	assert.Contains(t, result, "pub nested: Vec<Nested>,")

	// Lexicographically smallest key is the default variant
	assert.Contains(t, result, "#[default]\n        Blue,")
	assert.Contains(t, result, `Color::Red => "#f00".to_string(),`)
}
