package pagination

// Cell is a value that can be overridden by its owner.
//
// Reads return the override while one is set, otherwise the internal value.
// Writes always go to the internal value, so it is current when the override
// is released.
type Cell[T any] struct {
	internal   T
	external   T
	overridden bool
}

// NewCell returns an uncontrolled [Cell] holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{internal: initial}
}

// Get returns the merged value.
func (c *Cell[T]) Get() T {
	if c.overridden {
		return c.external
	}

	return c.internal
}

// Set updates the internal value.
func (c *Cell[T]) Set(v T) {
	c.internal = v
}

// Internal returns the internal value, even while overridden.
func (c *Cell[T]) Internal() T {
	return c.internal
}

// Override makes v the merged value until [Cell.Release] is called.
func (c *Cell[T]) Override(v T) {
	c.external = v
	c.overridden = true
}

// Release drops the override.
func (c *Cell[T]) Release() {
	var zero T

	c.external = zero
	c.overridden = false
}

// Overridden reports whether an override is set.
func (c *Cell[T]) Overridden() bool {
	return c.overridden
}
