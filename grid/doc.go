// Package grid provides a flat, bounds-checked 2D container for puzzle-style
// maps parsed from text, plus the spatial primitives most grid solvers need.
//
// What:
//
//   - Grid[T] stores width×height cells row-major in a single slice.
//   - Coordinates are validated on every public access; failures are
//     reported as *BoundsError carrying the axis, index and dimensions.
//   - Neighbors are resolved per cell for the 8 compass directions, either
//     bounded (dropped past an edge) or wrapping (toroidal).
//   - BuildLookup/Lookup give a reverse value→coordinates index.
//   - RaycastFrom/SlideWhile scan and mutate along a fixed step.
//   - Trace runs a beam arena over the grid with one shared visited set.
//   - Speculate fans hypotheses out over independent clones.
//
// Why:
//
//   - Puzzle inputs are rectangular character maps; one container with a
//     well-defined order (row-major, fixed direction order) keeps every
//     solver built on top deterministic.
//   - Cloning is explicit and cheap, so "what if this cell were different"
//     never needs shared mutable state.
//
// Direction order:
//
//	Orthogonal = N, S, E, W
//	Diagonal   = NE, NW, SE, SW
//	Adjacent   = Orthogonal ++ Diagonal
//
// Complexity:
//
//   - Get/Set/Index/ReverseIndex/GetNeighbors: O(1).
//   - Parse, BuildLookup, Lookup, Clone: O(W×H).
//   - RaycastFrom/SlideWhile: O(max(W,H)).
//
// Errors:
//
//   - ErrEmptyGrid:   input has no rows or no columns.
//   - ErrRaggedInput: rows have differing lengths.
//   - ErrOutOfBounds: sentinel wrapped by every *BoundsError.
//   - ErrBadDimensions: negative sizes or data length mismatch in FromSlice.
//
// A Grid is not safe for concurrent mutation; hand each goroutine its own
// Clone (see Speculate).
package grid
