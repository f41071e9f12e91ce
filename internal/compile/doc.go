// Package compile turns a loaded data model into a ModuleDescription
// consumed by code emission.
//
// Compilation pipeline:
//  1. Derive the namespace from the model name (lower-snake, "model" default)
//  2. For each object: validate the name, then per attribute resolve the
//     first candidate type, wrap it into a field shape, and synthesize
//     accessor, builder, and serialization descriptors
//  3. For each enum: validate the name, then derive key-sorted variants with
//     the lexicographically smallest key as the default
//  4. Collect warnings (ignored extra dtypes, variant ident collisions)
//
// Compilation is a pure function of the model: no I/O, no shared state, and
// identical input reproduces identical output or identical failure.
package compile
