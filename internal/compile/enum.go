package compile

import (
	"fmt"

	"mdmodel-generator/internal/diagnostic"
	"mdmodel-generator/internal/naming"
	"mdmodel-generator/internal/schema"
)

// synthesizeEnum converts a variant mapping into an exhaustive tagged enum.
// Variants are derived in lexicographic key order, so the smallest key's
// variant becomes the default. The serialized value of each variant is the
// mapping's value string, unchanged.
func synthesizeEnum(def schema.EnumDef, diags *diagnostic.Diagnostics) Enum {
	enum := Enum{Name: def.Name}

	seen := make(map[string]string, len(def.Mappings))

	for _, key := range def.SortedKeys() {
		ident := naming.ToUpperCamel(key)

		// The case transform can collapse distinct keys onto one
		// identifier. Not an error here, but worth surfacing.
		if prev, ok := seen[ident]; ok {
			diags.AddWarning(
				"variant-ident-collision",
				fmt.Sprintf("keys %q and %q both map to variant %s", prev, key, ident),
				def.Name,
				key,
			)
		}

		seen[ident] = key

		enum.Variants = append(enum.Variants, Variant{
			Ident: ident,
			Value: def.Mappings[key],
		})
	}

	return enum
}
