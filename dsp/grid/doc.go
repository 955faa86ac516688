// Package grid provides the two-dimensional sample containers used by the
// highlight pipeline: a real-valued Image and a complex-valued spectrum grid.
//
// Both types store samples row-major in a single slice. Every transforming
// method returns a new grid; inputs are never mutated or aliased, so each
// step of a filtering pass owns its own array.
package grid
