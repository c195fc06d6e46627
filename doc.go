// SPDX-License-Identifier: MIT

// Package symbasis builds the symmetry-adapted index tables of a variational
// two-electron reduced-density-matrix (v2RDM) solver.
//
// Orbitals carry an irreducible representation (irrep) of an abelian point
// group, D2h or one of its subgroups. A solver stores matrices block-diagonal
// in symmetry, and every block needs a dense numbering of the pairs or
// triples of orbitals whose combined irrep is that block's. The packages
// below produce those numberings and their inverses:
//
//	symmetry/ — irrep labels and the D2h direct product (XOR)
//	orbital/  — frozen-core / active / frozen-virtual classification, offsets
//	energy/   — energy ranks of all orbitals, pool by pool
//	table/    — dense 2- and 3-index inverse tables with an unassigned sentinel
//	geminal/  — ab, 00, aa and full pair tables per irrep
//	triplet/  — aba, aab and aaa triple tables per irrep
//	basis/    — owns one consistent set of all tables; options, YAML config,
//	            canonical dump and fingerprint
//
// The symbasis command (cmd/symbasis) loads a YAML description of an orbital
// space and prints summaries, full dumps or fingerprints.
//
// Conventions:
//   - Irreps and orbital indices are 0-based; SymmetryEnergyOrder alone keeps
//     1-based irrep labels.
//   - Pitzer order lists orbitals irrep by irrep, by position within each.
//   - Every table is built once and is read-only afterwards.
//   - Lookups of cells that were never assigned report ok=false; the Raw
//     variants return table.Unassigned (-999).
package symbasis
