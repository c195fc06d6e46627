// SPDX-License-Identifier: MIT

package orbital

import "github.com/katalvlaran/symbasis/symmetry"

// Layout is the classified orbital space. Construct it with Classify.
type Layout struct {
	spaces Spaces

	symmetry         []symmetry.Irrep // active-local → irrep
	symmetryFull     []symmetry.Irrep // Pitzer → irrep
	symmetryPlusCore []symmetry.Irrep // plus-core → irrep
	fullBasis        []int            // active-local → Pitzer
	activeLocal      []int            // Pitzer → active-local, -1 if not active

	pitzerOffset         []int
	pitzerOffsetFull     []int
	pitzerOffsetPlusCore []int
}

// Classify validates s and builds its Layout.
//
// Implementation:
//   - Stage 1: validate counts (Spaces.Validate).
//   - Stage 2: walk irreps in order, emitting active labels and the
//     active-local → Pitzer map while skipping each irrep's frozen orbitals.
//   - Stage 3: emit full and plus-core labels.
//   - Stage 4: prefix sums for the three offset tables.
//
// Complexity: O(N) time and memory, N = grand total of orbitals.
func Classify(s Spaces) (*Layout, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s = s.Clone()
	nirrep := s.NIrrep()
	nact, ntot := s.NActive(), s.NTotal()

	l := &Layout{
		spaces:               s,
		symmetry:             make([]symmetry.Irrep, 0, nact),
		symmetryFull:         make([]symmetry.Irrep, 0, ntot),
		symmetryPlusCore:     make([]symmetry.Irrep, 0, ntot-s.NFrozenVirtual()),
		fullBasis:            make([]int, 0, nact),
		activeLocal:          make([]int, ntot),
		pitzerOffset:         make([]int, nirrep),
		pitzerOffsetFull:     make([]int, nirrep),
		pitzerOffsetPlusCore: make([]int, nirrep),
	}

	for i := range l.activeLocal {
		l.activeLocal[i] = -1
	}
	full := 0
	for h := 0; h < nirrep; h++ {
		full += s.FrozenCore[h]
		for p := 0; p < s.ActiveIn(h); p++ {
			l.activeLocal[full] = len(l.fullBasis)
			l.fullBasis = append(l.fullBasis, full)
			l.symmetry = append(l.symmetry, symmetry.Irrep(h))
			full++
		}
		full += s.FrozenVirtual[h]
	}
	for h := 0; h < nirrep; h++ {
		for p := 0; p < s.Total[h]; p++ {
			l.symmetryFull = append(l.symmetryFull, symmetry.Irrep(h))
		}
		for p := 0; p < s.Total[h]-s.FrozenVirtual[h]; p++ {
			l.symmetryPlusCore = append(l.symmetryPlusCore, symmetry.Irrep(h))
		}
	}
	var act, tot, plus int
	for h := 0; h < nirrep; h++ {
		l.pitzerOffset[h] = act
		l.pitzerOffsetFull[h] = tot
		l.pitzerOffsetPlusCore[h] = plus
		act += s.ActiveIn(h)
		tot += s.Total[h]
		plus += s.Total[h] - s.FrozenVirtual[h]
	}

	return l, nil
}

// Spaces returns a copy of the counts the layout was built from.
func (l *Layout) Spaces() Spaces { return l.spaces.Clone() }

// NIrrep returns the number of irreps.
func (l *Layout) NIrrep() int { return l.spaces.NIrrep() }

// NActive returns the number of active orbitals.
func (l *Layout) NActive() int { return len(l.symmetry) }

// NTotal returns the grand total of orbitals.
func (l *Layout) NTotal() int { return len(l.symmetryFull) }

// NPlusCore returns the number of orbitals that are not frozen virtuals.
func (l *Layout) NPlusCore() int { return len(l.symmetryPlusCore) }

// Symmetry returns the irrep of each active orbital in active-local order.
func (l *Layout) Symmetry() []symmetry.Irrep { return cloneIrreps(l.symmetry) }

// SymmetryFull returns the irrep of every orbital in Pitzer order.
func (l *Layout) SymmetryFull() []symmetry.Irrep { return cloneIrreps(l.symmetryFull) }

// SymmetryPlusCore returns the irrep of every non-frozen-virtual orbital.
func (l *Layout) SymmetryPlusCore() []symmetry.Irrep { return cloneIrreps(l.symmetryPlusCore) }

// FullBasis maps active-local indices to Pitzer indices.
func (l *Layout) FullBasis() []int { return cloneInts(l.fullBasis) }

// PitzerOffset returns, per irrep, the number of active orbitals in earlier irreps.
func (l *Layout) PitzerOffset() []int { return cloneInts(l.pitzerOffset) }

// PitzerOffsetFull returns, per irrep, the number of orbitals in earlier irreps.
func (l *Layout) PitzerOffsetFull() []int { return cloneInts(l.pitzerOffsetFull) }

// PitzerOffsetPlusCore returns, per irrep, the number of non-frozen-virtual
// orbitals in earlier irreps.
func (l *Layout) PitzerOffsetPlusCore() []int { return cloneInts(l.pitzerOffsetPlusCore) }

// IrrepOf returns the irrep of active-local orbital i. It panics when i is
// out of range, like a slice index.
func (l *Layout) IrrepOf(i int) symmetry.Irrep { return l.symmetry[i] }

// IrrepOfFull returns the irrep of Pitzer orbital p. It panics when p is
// out of range.
func (l *Layout) IrrepOfFull(p int) symmetry.Irrep { return l.symmetryFull[p] }

// ActiveLocal maps a Pitzer index to its active-local index.
// ok is false for frozen orbitals and out-of-range input.
func (l *Layout) ActiveLocal(p int) (int, bool) {
	if p < 0 || p >= len(l.activeLocal) || l.activeLocal[p] < 0 {
		return 0, false
	}

	return l.activeLocal[p], true
}

// Position splits a Pitzer index into its irrep and its position inside the
// irrep block.
func (l *Layout) Position(p int) (h symmetry.Irrep, within int, ok bool) {
	if p < 0 || p >= len(l.symmetryFull) {
		return 0, 0, false
	}
	h = l.symmetryFull[p]

	return h, p - l.pitzerOffsetFull[h], true
}

// ClassOf reports which space Pitzer orbital p belongs to.
func (l *Layout) ClassOf(p int) (Class, bool) {
	h, within, ok := l.Position(p)
	if !ok {
		return 0, false
	}
	switch {
	case within < l.spaces.FrozenCore[h]:
		return FrozenCore, true
	case within < l.spaces.Total[h]-l.spaces.FrozenVirtual[h]:
		return Active, true
	default:
		return FrozenVirtual, true
	}
}

func cloneInts(xs []int) []int {
	return append([]int(nil), xs...)
}

func cloneIrreps(xs []symmetry.Irrep) []symmetry.Irrep {
	return append([]symmetry.Irrep(nil), xs...)
}
