// SPDX-License-Identifier: MIT

package energy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/symbasis/orbital"
)

var (
	// ErrShape indicates that energies do not match the orbital counts.
	ErrShape = errors.New("energy: energies do not match orbital counts")

	// ErrNonFiniteEnergy indicates a NaN or ±Inf orbital energy.
	ErrNonFiniteEnergy = errors.New("energy: NaN or Inf orbital energy")
)

// Ordering holds the energy ranks of all orbitals. It is immutable.
type Ordering struct {
	symmetryEnergyOrder []int // rank → irrep+1
	pitzerToEnergy      []int
	energyToPitzer      []int
	poolStart           [3]int // first rank of each orbital.Class
}

// Order ranks every orbital of s by energy. eps[h][p] is the energy of the
// p-th orbital (Pitzer position within the block) of irrep h.
//
// Implementation:
//   - Stage 1: validate s, the shape of eps and that every energy is finite.
//   - Stage 2: rank the frozen-core pool, then the active pool, then the
//     frozen-virtual pool, each by repeated selection.
//
// Errors: the errors of orbital.Spaces.Validate, ErrShape, ErrNonFiniteEnergy.
func Order(s orbital.Spaces, eps [][]float64) (*Ordering, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(eps) != s.NIrrep() {
		return nil, fmt.Errorf("%w: %d irreps of energies for %d irreps", ErrShape, len(eps), s.NIrrep())
	}
	for h := range eps {
		if len(eps[h]) != s.Total[h] {
			return nil, fmt.Errorf("%w: irrep %d has %d energies for %d orbitals",
				ErrShape, h, len(eps[h]), s.Total[h])
		}
		for p, e := range eps[h] {
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return nil, fmt.Errorf("%w: irrep %d orbital %d", ErrNonFiniteEnergy, h, p)
			}
		}
	}

	n := s.NTotal()
	o := &Ordering{
		symmetryEnergyOrder: make([]int, n),
		pitzerToEnergy:      make([]int, n),
		energyToPitzer:      make([]int, n),
	}
	sel := selector{spaces: s, eps: eps, taken: make([]bool, n)}

	rank := 0
	for _, c := range []orbital.Class{orbital.FrozenCore, orbital.Active, orbital.FrozenVirtual} {
		o.poolStart[c] = rank
		for k := sel.poolSize(c); k > 0; k-- {
			pitzer, h := sel.next(c)
			o.symmetryEnergyOrder[rank] = h + 1
			o.pitzerToEnergy[pitzer] = rank
			o.energyToPitzer[rank] = pitzer
			rank++
		}
	}

	return o, nil
}

// selector scans one pool at a time, remembering which orbitals are ranked.
type selector struct {
	spaces orbital.Spaces
	eps    [][]float64
	taken  []bool // indexed by Pitzer
}

// window returns the [lo, hi) positions of pool c inside irrep h.
func (s *selector) window(c orbital.Class, h int) (lo, hi int) {
	core := s.spaces.FrozenCore[h]
	act := core + s.spaces.ActiveIn(h)
	switch c {
	case orbital.FrozenCore:
		return 0, core
	case orbital.Active:
		return core, act
	default:
		return act, s.spaces.Total[h]
	}
}

func (s *selector) poolSize(c orbital.Class) int {
	n := 0
	for h := range s.spaces.Total {
		lo, hi := s.window(c, h)
		n += hi - lo
	}

	return n
}

// next returns the Pitzer index and irrep of the lowest unselected orbital of
// pool c and marks it selected. The pool must not be exhausted.
func (s *selector) next(c orbital.Class) (pitzer, irrep int) {
	found := false
	var best float64
	base := 0
	for h := range s.spaces.Total {
		lo, hi := s.window(c, h)
		for p := lo; p < hi; p++ {
			if s.taken[base+p] {
				continue
			}
			if e := s.eps[h][p]; !found || e < best {
				found, best = true, e
				pitzer, irrep = base+p, h
			}
		}
		base += s.spaces.Total[h]
	}
	s.taken[pitzer] = true

	return pitzer, irrep
}

// Len returns the number of ranked orbitals.
func (o *Ordering) Len() int { return len(o.energyToPitzer) }

// SymmetryEnergyOrder returns, per energy rank, the 1-based irrep label.
func (o *Ordering) SymmetryEnergyOrder() []int { return append([]int(nil), o.symmetryEnergyOrder...) }

// PitzerToEnergy maps Pitzer indices to energy ranks.
func (o *Ordering) PitzerToEnergy() []int { return append([]int(nil), o.pitzerToEnergy...) }

// EnergyToPitzer maps energy ranks to Pitzer indices.
func (o *Ordering) EnergyToPitzer() []int { return append([]int(nil), o.energyToPitzer...) }

// Rank returns the energy rank of Pitzer orbital p. It panics when p is out
// of range.
func (o *Ordering) Rank(p int) int { return o.pitzerToEnergy[p] }

// Pitzer returns the Pitzer index of energy rank r. It panics when r is out
// of range.
func (o *Ordering) Pitzer(r int) int { return o.energyToPitzer[r] }

// PoolStart returns the first rank given to orbitals of class c.
func (o *Ordering) PoolStart(c orbital.Class) int { return o.poolStart[c] }
