package compile

// wrapShape combines a resolved type with the array/required flags into one
// of the four field shapes:
//
//	required  is_array  primitive          reference
//	true      false     bare               bare
//	false     false     optional           optional
//	true      true      sequence           sequence
//	false     true      optional sequence  sequence
//
// The last row is asymmetric on purpose: an optional array of a reference
// type collapses to a plain sequence. Matches the behavior of the original
// generator; do not "fix" without confirming intent.
func wrapShape(t TypeRef, isArray, required bool) FieldShape {
	switch {
	case required && !isArray:
		return ShapeBare
	case !required && !isArray:
		return ShapeOptional
	case required && isArray:
		return ShapeSequence
	default:
		if t.IsPrimitive() {
			return ShapeOptionalSequence
		}

		return ShapeSequence
	}
}
