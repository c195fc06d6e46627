// SPDX-License-Identifier: MIT

// Package triplet numbers triples of active orbitals, one dimension up from
// package geminal. The block of (i, j, k) is irrep(i) ⊗ irrep(j) ⊗ irrep(k).
//
//	aba  every ordered triple                                 nact³
//	aab  i < j; (i,j,k) and (j,i,k) share an index            nact·C(nact,2)
//	aaa  i < j < k; all six permutations share an index       C(nact,3)
//
// A single scan (outer i, middle j, inner k) numbers all three sectors, so
// aaa ⊆ aab ⊆ aba and index n of a sector is the n-th qualifying triple of
// the scan. The tables are only needed by the T1, T2 and D3 N-representability
// conditions and cost O(nirrep·nact³) memory; package basis builds them only
// when one of those conditions is enabled.
package triplet
