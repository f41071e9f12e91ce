// Package emit renders a compiled ModuleDescription as Rust source text:
// one module per model containing builder-enabled serde structs and
// exhaustive enums with Display impls.
package emit
