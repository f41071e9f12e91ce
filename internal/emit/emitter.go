package emit

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"mdmodel-generator/internal/compile"
)

//go:embed rust.rs.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "rust.rs.tmpl"))

// Config holds configuration for code emission.
type Config struct {
	// HeaderComment enables the generated-file header.
	HeaderComment bool
}

// DefaultConfig returns the default emitter configuration.
func DefaultConfig() Config {
	return Config{HeaderComment: true}
}

// Emitter renders Rust source from a compiled module description.
type Emitter struct {
	config Config
}

// NewEmitter creates a new Emitter with the given configuration.
func NewEmitter(config Config) *Emitter {
	return &Emitter{config: config}
}

// GeneratedFile represents a generated Rust source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "model.rs").
	Filename string
	// Content is the rendered source text.
	Content []byte
}

// Emit renders the module description into a single Rust source file.
func (e *Emitter) Emit(desc *compile.ModuleDescription) (*GeneratedFile, error) {
	data := e.buildTemplateData(desc)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "rust.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return &GeneratedFile{
		Filename: desc.Namespace + ".rs",
		Content:  buf.Bytes(),
	}, nil
}

// templateData holds all data needed for the Rust template.
type templateData struct {
	Header    bool
	Namespace string
	Objects   []objectData
	Enums     []enumData
}

// objectData is one struct definition with precomputed attribute strings.
type objectData struct {
	Name   string
	Fields []fieldData
}

// fieldData is one struct field with its rendered type and attributes.
type fieldData struct {
	Name        string
	Type        string
	BuilderAttr string
	SerdeAttr   string
	Getter      string
	Setter      string
}

// enumData is one enum definition.
type enumData struct {
	Name     string
	Variants []variantData
}

// variantData is one enum variant with its serialized value.
type variantData struct {
	Ident     string
	Value     string
	IsDefault bool
}

// buildTemplateData constructs the template data from a module description.
func (e *Emitter) buildTemplateData(desc *compile.ModuleDescription) *templateData {
	data := &templateData{
		Header:    e.config.HeaderComment,
		Namespace: desc.Namespace,
	}

	for _, obj := range desc.Objects {
		od := objectData{Name: obj.Name}
		for _, f := range obj.Fields {
			od.Fields = append(od.Fields, fieldData{
				Name:        f.Name,
				Type:        rustType(f),
				BuilderAttr: builderAttr(f),
				SerdeAttr:   serdeAttr(f),
				Getter:      f.Getter,
				Setter:      f.Setter,
			})
		}

		data.Objects = append(data.Objects, od)
	}

	for _, enum := range desc.Enums {
		ed := enumData{Name: enum.Name}
		for i, v := range enum.Variants {
			ed.Variants = append(ed.Variants, variantData{
				Ident:     v.Ident,
				Value:     v.Value,
				IsDefault: i == 0,
			})
		}

		data.Enums = append(data.Enums, ed)
	}

	return data
}

// rustPrimitives maps primitive kinds to Rust type tokens.
var rustPrimitives = map[compile.PrimitiveKind]string{
	compile.PrimitiveInt32:   "i32",
	compile.PrimitiveFloat32: "f32",
	compile.PrimitiveString:  "String",
	compile.PrimitiveBool:    "bool",
}

// rustType renders the full wrapped Rust type of a field.
func rustType(f compile.Field) string {
	inner := f.Type.Reference
	if f.Type.IsPrimitive() {
		inner = rustPrimitives[f.Type.Primitive]
	}

	switch f.Shape {
	case compile.ShapeOptional:
		return "Option<" + inner + ">"
	case compile.ShapeSequence:
		return "Vec<" + inner + ">"
	case compile.ShapeOptionalSequence:
		return "Option<Vec<" + inner + ">>"
	default:
		return inner
	}
}

// builderAttr renders the derive_builder attribute for a field.
func builderAttr(f compile.Field) string {
	args := []string{"into"}

	if f.Builder.StripOption {
		args = append(args, "strip_option")
	}

	if f.Builder.Each != "" {
		args = append(args, fmt.Sprintf("each(name = %q, into)", f.Builder.Each))
	}

	return fmt.Sprintf("#[builder(default, setter(%s))]", strings.Join(args, ", "))
}

// serdeAttr renders the serde attribute for a field, or an empty string for
// bare required fields.
func serdeAttr(f compile.Field) string {
	switch {
	case f.Serde.SkipIfAbsent:
		return `#[serde(skip_serializing_if = "Option::is_none")]`
	case f.Serde.DefaultOnMissing:
		return "#[serde(default)]"
	default:
		return ""
	}
}
