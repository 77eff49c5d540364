// Package types contains the structures used to describe the types of the
// language and to compare them against each other. There are only three kinds
// of type: int, bool and the function arrow. Types are immutable once built so
// arrows freely share their components, and all comparison is structural
// through Equal; there is no subtyping and no coercion.
package types //nolint:revive
