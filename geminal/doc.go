// SPDX-License-Identifier: MIT

// Package geminal numbers orbital pairs ("geminals") block by block, where the
// block of a pair (i, j) is the direct product of the irreps of i and j.
//
// Four sectors carry forward (block, n) → (i, j) and inverse
// (block, i, j) → n tables, plus one count-only sector:
//
//	ab        ordered active pairs, diagonal included      nact² in total
//	00        active pairs with i ≥ j, stored symmetrically  nact(nact+1)/2
//	aa        active pairs with i > j, stored symmetrically  nact(nact−1)/2
//	full      unordered pairs of all orbitals (Pitzer indices), numbered
//	          in ascending energy rank, stored symmetrically
//	plus-core per-block count of full-sector pairs with no frozen virtual
//
// The active sectors come from a single raw-order scan (outer i, inner j over
// active-local indices), so index n of any of them is the n-th pair of the
// scan satisfying that sector's predicate and aa ⊆ 00 ⊆ ab. The full sector
// scans energy ranks instead (outer ieo, inner jeo ≤ ieo), giving downstream
// full-space blocks an energy-sorted layout.
//
// Lookups outside a sector's domain (wrong block, i < j in 00, i == j in aa,
// out-of-range indices) are not errors: Index reports ok=false and RawIndex
// returns table.Unassigned.
package geminal
