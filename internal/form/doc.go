// Package form implements the palette save form as three independent state
// cells (color field count, focus, field values) driven by a coordinator.
//
// ColorFields owns the number of active color fields, Focus owns the
// focused and last focused color field, and Values owns every field value.
// Form is the only type that mutates more than one cell in a single
// operation (add, remove, clear, keyword updates).
package form
