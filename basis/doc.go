// SPDX-License-Identifier: MIT

// Package basis owns every symmetry-adapted index table a v2RDM solver needs
// and builds them as one unit.
//
// A Basis is built once, at solver setup, from immutable inputs: per-irrep
// orbital counts, orbital energies and the N-representability conditions in
// use. It then exposes, read-only:
//
//	Layout()   — orbital classification, symmetry labels, offsets (package orbital)
//	Ordering() — energy ranks and Pitzer⇄energy maps             (package energy)
//	Pairs()    — ab / 00 / aa / full geminal tables               (package geminal)
//	Triplets() — aba / aab / aaa tables, only with T1, T2 or D3   (package triplet)
//
// Ownership: the tables share index spaces, so they live and die together.
// Release drops all of them; Rebuild builds a complete replacement first and
// swaps it in only when every stage succeeded, so a failed rebuild leaves the
// previous tables untouched.
//
// Determinism: identical inputs always produce identical tables. WriteTo emits
// a canonical text dump and Fingerprint hashes it, which lets restart logic
// confirm that a rebuilt basis numbers variables exactly as the one that wrote
// a checkpoint.
//
// Usage:
//
//	b, err := basis.Build(spaces, eps, basis.WithPositivity(p), basis.WithD3())
//	if err != nil { ... }
//	n, ok := b.Pairs().Index(geminal.Sector00, h, i, j)
//
// Concurrency: building is single-threaded; a built Basis may be read from many
// goroutines. Release and Rebuild must not race with readers.
package basis
