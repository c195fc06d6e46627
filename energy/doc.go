// SPDX-License-Identifier: MIT

// Package energy ranks orbitals by ascending orbital energy, separately
// within the frozen-core, active and frozen-virtual spaces.
//
// Ranks are concatenated in the fixed order core → active → virtual, so rank
// r < NFrozenCore is always a frozen-core orbital, and so on. Within a space
// the ordering is produced by repeated selection:
//
//	for each free rank:
//	    scan every unselected orbital of the space, irrep-major,
//	    position-minor, keeping the minimum under strict "<"
//	    give the rank to that minimum and mark it selected
//
// Ties: because the comparison is strict, of two orbitals with exactly the
// same energy the one met first in the scan (lower irrep, then lower position)
// is ranked first. This matches the historical ordering restart files were
// written with and is kept on purpose even though an SCF printout may order
// exactly degenerate orbitals differently.
//
// Complexity: O(n²) per space. Spaces hold at most a few hundred orbitals.
package energy
