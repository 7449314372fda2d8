package form

import "tinta/internal/domain"

// ColorFields owns the number of active color fields, always within
// [1, MaxColorFields]. All operations saturate at the bounds.
type ColorFields struct {
	count int
}

// NewColorFields creates a counter starting at initial, clamped to the bounds
func NewColorFields(initial int) *ColorFields {
	return &ColorFields{count: clampCount(initial)}
}

// Count returns the number of active color fields
func (c *ColorFields) Count() int {
	return c.count
}

// Add activates one more field unless MaxColorFields is reached
func (c *ColorFields) Add() {
	c.count = min(c.count+1, domain.MaxColorFields)
}

// Remove deactivates the last field unless only one is left
func (c *ColorFields) Remove() {
	c.count = max(c.count-1, 1)
}

// Reset goes back to a single field
func (c *ColorFields) Reset() {
	c.count = 1
}

func clampCount(n int) int {
	return max(1, min(domain.MaxColorFields, n))
}
