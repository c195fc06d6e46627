// SPDX-License-Identifier: MIT

// Package symmetry implements the direct-product operator of the Abelian
// point groups used to label molecular orbitals.
//
// Every Abelian point group of chemical interest (C1, Ci, C2, Cs, D2, C2v,
// C2h, D2h) is a subgroup of D2h, whose character table is the elementary
// abelian group of order 8. Irreducible representations ("irreps") are
// labelled 0..7 in Cotton order and the direct product of two labels is the
// bitwise exclusive-or of the labels:
//
//	Product(h, h) == 0          // self-inverse
//	Product(0, h) == h          // identity
//	Product(a, b) == Product(b, a)
//
// Usage:
//
//	h := symmetry.Product(symmetry.Irrep(1), symmetry.Irrep(2)) // 3
//
// The operator is defined only for labels in [0, MaxIrreps). Out-of-range
// labels are a programmer error; callers validate counts once with
// ValidateCount and then index freely.
package symmetry
