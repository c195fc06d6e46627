// SPDX-License-Identifier: MIT

package symmetry

import (
	"errors"
	"fmt"
)

// MaxIrreps is the order of D2h, the largest Abelian point group.
const MaxIrreps = 8

// ErrIrrepCount is returned when the number of irreps is not 1, 2, 4 or 8.
var ErrIrrepCount = errors.New("symmetry: irrep count must be 1, 2, 4 or 8")

// Irrep labels an irreducible representation, 0 being totally symmetric.
type Irrep int

// Valid reports whether h is a legal label in a group of nirrep irreps.
func (h Irrep) Valid(nirrep int) bool {
	return h >= 0 && int(h) < nirrep
}

// Product returns the irrep of the direct product h1 ⊗ h2.
// Both operands must lie in [0, MaxIrreps).
// Complexity: O(1).
func Product(h1, h2 Irrep) Irrep {
	return h1 ^ h2
}

// Product3 returns the irrep of h1 ⊗ h2 ⊗ h3.
func Product3(h1, h2, h3 Irrep) Irrep {
	return h1 ^ h2 ^ h3
}

// ValidateCount checks that nirrep is the order of a subgroup of D2h.
// Only powers of two are closed under Product: with three irreps the
// product of labels 1 and 2 would be 3, which names no block.
func ValidateCount(nirrep int) error {
	if nirrep < 1 || nirrep > MaxIrreps || nirrep&(nirrep-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrIrrepCount, nirrep)
	}

	return nil
}
