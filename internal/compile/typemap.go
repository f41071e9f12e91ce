package compile

// primitives is the fixed mapping from schema type names to primitive kinds.
var primitives = map[string]PrimitiveKind{
	"integer": PrimitiveInt32,
	"float":   PrimitiveFloat32,
	"string":  PrimitiveString,
	"boolean": PrimitiveBool,
}

// mapType resolves a raw type name to a primitive or a forward reference.
// It never fails: any name outside the primitive table is treated as the
// name of another generated type.
func mapType(dtype string) TypeRef {
	if kind, ok := primitives[dtype]; ok {
		return TypeRef{Kind: TypePrimitive, Primitive: kind}
	}

	return TypeRef{Kind: TypeReference, Reference: dtype}
}
