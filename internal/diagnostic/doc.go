// Package diagnostic collects non-fatal findings produced while compiling a
// data model: conditions that do not stop generation but that callers should
// be able to surface (ignored extra candidate types, variant identifier
// collisions after case transformation, and similar).
package diagnostic
