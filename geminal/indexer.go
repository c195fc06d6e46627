// SPDX-License-Identifier: MIT

package geminal

import (
	"fmt"

	"github.com/katalvlaran/symbasis/energy"
	"github.com/katalvlaran/symbasis/orbital"
	"github.com/katalvlaran/symbasis/symmetry"
	"github.com/katalvlaran/symbasis/table"
)

// Indexer holds every pair table. It is immutable after Build.
type Indexer struct {
	nirrep   int
	nact     int
	ntotal   int
	sectors  [numSectors]*blocks
	plusCore []int
}

// Build constructs all pair sectors from a classified layout and the energy
// ordering of the same orbital space.
//
// Implementation:
//   - Stage 1: validate inputs and allocate nirrep inverse grids per sector,
//     nact×nact for the active sectors and N×N for the full sector.
//   - Stage 2: traversal A over active-local (i, j) fills ab, 00 and aa.
//   - Stage 3: traversal B over energy ranks (ieo, jeo ≤ ieo) fills full and
//     counts plus-core pairs.
//
// Complexity: O(nirrep·N²) memory, O(N²) time.
func Build(l *orbital.Layout, o *energy.Ordering) (*Indexer, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	if o == nil {
		return nil, ErrNilOrdering
	}
	if o.Len() != l.NTotal() {
		return nil, fmt.Errorf("%w: %d ranks for %d orbitals", ErrOrderingMismatch, o.Len(), l.NTotal())
	}

	x := &Indexer{
		nirrep:   l.NIrrep(),
		nact:     l.NActive(),
		ntotal:   l.NTotal(),
		plusCore: make([]int, l.NIrrep()),
	}
	for _, s := range Sectors {
		dim := x.nact
		if s == SectorFull {
			dim = x.ntotal
		}
		b, err := newBlocks(x.nirrep, dim)
		if err != nil {
			return nil, err
		}
		x.sectors[s] = b
	}

	if err := x.buildActive(l); err != nil {
		return nil, err
	}
	if err := x.buildFull(l, o); err != nil {
		return nil, err
	}

	return x, nil
}

// buildActive runs traversal A. One pass feeds all three nested sectors.
func (x *Indexer) buildActive(l *orbital.Layout) error {
	ab, s00, aa := x.sectors[SectorAB], x.sectors[Sector00], x.sectors[SectorAA]
	for i := 0; i < x.nact; i++ {
		hi := l.IrrepOf(i)
		for j := 0; j < x.nact; j++ {
			h := symmetry.Product(hi, l.IrrepOf(j))
			if err := ab.add(h, i, j, false); err != nil {
				return err
			}
			if i < j {
				continue
			}
			if err := s00.add(h, i, j, true); err != nil {
				return err
			}
			if i == j {
				continue
			}
			if err := aa.add(h, i, j, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildFull runs traversal B in energy order over Pitzer indices.
func (x *Indexer) buildFull(l *orbital.Layout, o *energy.Ordering) error {
	full := x.sectors[SectorFull]
	// ranks below the virtual pool belong to core or active orbitals
	limit := o.PoolStart(orbital.FrozenVirtual)
	for ieo := 0; ieo < x.ntotal; ieo++ {
		ip := o.Pitzer(ieo)
		hi := l.IrrepOfFull(ip)
		for jeo := 0; jeo <= ieo; jeo++ {
			jp := o.Pitzer(jeo)
			h := symmetry.Product(hi, l.IrrepOfFull(jp))
			if err := full.add(h, ip, jp, true); err != nil {
				return err
			}
			if ieo < limit && jeo < limit {
				x.plusCore[h]++
			}
		}
	}

	return nil
}

// NIrrep returns the number of symmetry blocks.
func (x *Indexer) NIrrep() int { return x.nirrep }

// Dim returns the orbital range a sector's indices live in: the active count
// for ab/00/aa, the grand total for full, 0 for an unknown sector.
func (x *Indexer) Dim(s Sector) int {
	switch s {
	case SectorAB, Sector00, SectorAA:
		return x.nact
	case SectorFull:
		return x.ntotal
	default:
		return 0
	}
}

func (x *Indexer) block(s Sector, h symmetry.Irrep) (*blocks, bool) {
	if s < 0 || s >= numSectors || !h.Valid(x.nirrep) {
		return nil, false
	}

	return x.sectors[s], true
}

// Count returns the number of pairs of sector s in block h (gems_ab[h] and
// friends). Unknown sectors and blocks count zero.
func (x *Indexer) Count(s Sector, h symmetry.Irrep) int {
	b, ok := x.block(s, h)
	if !ok {
		return 0
	}

	return len(b.bas[h])
}

// Counts returns Count(s, h) for every block.
func (x *Indexer) Counts(s Sector) []int {
	out := make([]int, x.nirrep)
	for h := range out {
		out[h] = x.Count(s, symmetry.Irrep(h))
	}

	return out
}

// PlusCoreCount returns the number of full-sector pairs of block h whose
// members are both frozen-core or active.
func (x *Indexer) PlusCoreCount(h symmetry.Irrep) int {
	if !h.Valid(x.nirrep) {
		return 0
	}

	return x.plusCore[h]
}

// PlusCoreCounts returns PlusCoreCount for every block.
func (x *Indexer) PlusCoreCounts() []int { return append([]int(nil), x.plusCore...) }

// Index returns the index of pair (i, j) in block h of sector s.
// ok is false when the pair is outside the sector's domain.
func (x *Indexer) Index(s Sector, h symmetry.Irrep, i, j int) (int, bool) {
	b, ok := x.block(s, h)
	if !ok {
		return table.Unassigned, false
	}

	return b.ibas[h].Lookup(i, j)
}

// RawIndex is Index with the legacy contract: table.Unassigned when the pair
// has no index.
func (x *Indexer) RawIndex(s Sector, h symmetry.Irrep, i, j int) int {
	n, _ := x.Index(s, h, i, j)

	return n
}

// Pair returns the orbitals of pair n in block h of sector s.
func (x *Indexer) Pair(s Sector, h symmetry.Irrep, n int) (i, j int, ok bool) {
	b, ok := x.block(s, h)
	if !ok || n < 0 || n >= len(b.bas[h]) {
		return table.Unassigned, table.Unassigned, false
	}
	g := b.bas[h][n]

	return g[0], g[1], true
}

// Pairs returns a copy of the forward table of block h of sector s.
func (x *Indexer) Pairs(s Sector, h symmetry.Irrep) []Geminal {
	b, ok := x.block(s, h)
	if !ok {
		return nil
	}

	return append([]Geminal(nil), b.bas[h]...)
}
