package compile

import "fmt"

// reservedNames are the identifiers that may not be used as object or enum
// names. The match is exact and case-sensitive: "Type" is fine, "type" is
// not.
var reservedNames = map[string]struct{}{
	"type":   {},
	"struct": {},
	"enum":   {},
	"use":    {},
	"crate":  {},
	"mod":    {},
	"fn":     {},
	"impl":   {},
	"trait":  {},
}

// IsReserved reports whether name collides with the reserved set.
func IsReserved(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// ReservedNameError reports an object or enum name that collides with the
// reserved set. It aborts the entire generation run: no partial module is
// ever produced.
type ReservedNameError struct {
	// Kind is "object" or "enum".
	Kind string
	// Name is the offending identifier.
	Name string
}

// Error implements the error interface.
func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("reserved keyword used as %s name: %s", e.Kind, e.Name)
}

// checkName validates an entity name before any synthesis for it begins.
func checkName(kind, name string) error {
	if IsReserved(name) {
		return &ReservedNameError{Kind: kind, Name: name}
	}

	return nil
}
