package compile

import (
	"testing"
)

func TestMapTypePrimitives(t *testing.T) {
	tests := []struct {
		input    string
		expected PrimitiveKind
	}{
		{"integer", PrimitiveInt32},
		{"float", PrimitiveFloat32},
		{"string", PrimitiveString},
		{"boolean", PrimitiveBool},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := mapType(tt.input)
			if result.Kind != TypePrimitive {
				t.Fatalf("mapType(%q).Kind = %v, want TypePrimitive", tt.input, result.Kind)
			}
			if result.Primitive != tt.expected {
				t.Errorf("mapType(%q).Primitive = %v, want %v", tt.input, result.Primitive, tt.expected)
			}
		})
	}
}

func TestMapTypeReferences(t *testing.T) {
	// Everything outside the primitive table is a forward reference,
	// including case variants of primitive names. Resolution is never
	// attempted here.
	tests := []string{"Address", "Integer", "String", "int", "Nested", "some_type"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			result := mapType(input)
			if result.Kind != TypeReference {
				t.Fatalf("mapType(%q).Kind = %v, want TypeReference", input, result.Kind)
			}
			if result.Reference != input {
				t.Errorf("mapType(%q).Reference = %q, want %q", input, result.Reference, input)
			}
		})
	}
}
