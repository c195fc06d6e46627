// SPDX-License-Identifier: MIT

// Package orbital splits the molecular orbitals of each irrep into the
// frozen-core, active and frozen-virtual spaces and precomputes the symmetry
// labels and offsets every index table is expressed in.
//
// Orbitals are numbered in Pitzer order: irrep blocks concatenated, each block
// holding its frozen-core orbitals, then its active orbitals, then its frozen
// virtuals. Three flat numberings derive from it:
//
//	full        — every orbital                     (SymmetryFull, PitzerOffsetFull)
//	plus-core   — every orbital but frozen virtuals (SymmetryPlusCore, PitzerOffsetPlusCore)
//	active      — active orbitals only              (Symmetry, PitzerOffset)
//
// Example with two irreps, Total=[4,2], FrozenCore=[1,0], FrozenVirtual=[0,1]:
//
//	Pitzer:     0  1  2  3 | 4  5
//	class:      c  a  a  a | a  v
//	active:        0  1  2 | 3
//	FullBasis = [1 2 3 4]
//
// A Layout is immutable: accessors hand out copies.
package orbital
