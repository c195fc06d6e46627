// SPDX-License-Identifier: MIT

// Package table provides the dense integer grids that hold inverse index
// maps: Square for (i, j) → n and Cube for (i, j, k) → n.
//
// Storage is a flat row-major buffer with explicit stride arithmetic
// (offset = i·n + j, or (i·n + j)·n + k). Every cell starts out as
// Unassigned, the historical "no index" value, which is negative and so can
// never collide with a real index.
//
// Two read paths are offered:
//
//	v, ok := sq.Lookup(i, j) // checked: ok is false for unassigned or out-of-range cells
//	v := sq.Raw(i, j)        // legacy: Unassigned for unassigned or out-of-range cells
//
// Writes go through Set, which bounds-checks and returns ErrOutOfRange rather
// than panicking. Grids are filled once by the indexers and then only read.
package table
