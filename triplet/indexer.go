// SPDX-License-Identifier: MIT

package triplet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symbasis/orbital"
	"github.com/katalvlaran/symbasis/symmetry"
	"github.com/katalvlaran/symbasis/table"
)

// ErrNilLayout indicates that Build received no orbital layout.
var ErrNilLayout = errors.New("triplet: nil orbital layout")

// Sector selects one of the triple numberings.
type Sector int

const (
	// SectorABA numbers ordered triples.
	SectorABA Sector = iota
	// SectorAAB numbers triples with i < j, symmetric in the first two slots.
	SectorAAB
	// SectorAAA numbers triples with i < j < k, fully symmetric.
	SectorAAA

	numSectors = 3
)

// Sectors lists every sector in canonical order.
var Sectors = []Sector{SectorABA, SectorAAB, SectorAAA}

// String returns the conventional sector label.
func (s Sector) String() string {
	switch s {
	case SectorABA:
		return "aba"
	case SectorAAB:
		return "aab"
	case SectorAAA:
		return "aaa"
	default:
		return fmt.Sprintf("Sector(%d)", int(s))
	}
}

// Triple is a forward-table entry.
type Triple [3]int

type blocks struct {
	bas  [][]Triple
	ibas []*table.Cube
}

// Indexer holds the triple tables. It is immutable after Build.
type Indexer struct {
	nirrep  int
	nact    int
	sectors [numSectors]*blocks
}

// Build numbers all active triples of l.
//
// Implementation:
//   - Stage 1: allocate nirrep nact³ grids per sector.
//   - Stage 2: scan (i, j, k); every triple enters aba, those with i < j
//     enter aab under (i,j,k) and (j,i,k), those with also j < k enter aaa
//     under all six permutations.
//
// Complexity: O(nirrep·nact³) memory, O(nact³) time.
func Build(l *orbital.Layout) (*Indexer, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	x := &Indexer{nirrep: l.NIrrep(), nact: l.NActive()}
	for _, s := range Sectors {
		b := &blocks{bas: make([][]Triple, x.nirrep), ibas: make([]*table.Cube, x.nirrep)}
		for h := range b.ibas {
			c, err := table.NewCube(x.nact)
			if err != nil {
				return nil, err
			}
			b.ibas[h] = c
		}
		x.sectors[s] = b
	}

	aba, aab, aaa := x.sectors[SectorABA], x.sectors[SectorAAB], x.sectors[SectorAAA]
	for i := 0; i < x.nact; i++ {
		for j := 0; j < x.nact; j++ {
			hij := symmetry.Product(l.IrrepOf(i), l.IrrepOf(j))
			for k := 0; k < x.nact; k++ {
				h := symmetry.Product(hij, l.IrrepOf(k))
				if err := aba.add(h, Triple{i, j, k}, [3]int{i, j, k}); err != nil {
					return nil, err
				}
				if i >= j {
					continue
				}
				if err := aab.add(h, Triple{i, j, k}, [3]int{i, j, k}, [3]int{j, i, k}); err != nil {
					return nil, err
				}
				if j >= k {
					continue
				}
				perms := [6][3]int{{i, j, k}, {i, k, j}, {j, i, k}, {j, k, i}, {k, i, j}, {k, j, i}}
				if err := aaa.add(h, Triple{i, j, k}, perms[:]...); err != nil {
					return nil, err
				}
			}
		}
	}

	return x, nil
}

// add appends t to block h and stores its index under every cell in at.
func (b *blocks) add(h symmetry.Irrep, t Triple, at ...[3]int) error {
	n := len(b.bas[h])
	b.bas[h] = append(b.bas[h], t)
	for _, c := range at {
		if err := b.ibas[h].Set(c[0], c[1], c[2], n); err != nil {
			return err
		}
	}

	return nil
}

// NIrrep returns the number of symmetry blocks.
func (x *Indexer) NIrrep() int { return x.nirrep }

// Dim returns the number of active orbitals the indices range over.
func (x *Indexer) Dim() int { return x.nact }

func (x *Indexer) block(s Sector, h symmetry.Irrep) (*blocks, bool) {
	if s < 0 || s >= numSectors || !h.Valid(x.nirrep) {
		return nil, false
	}

	return x.sectors[s], true
}

// Count returns the number of triples of sector s in block h (trip_aba[h]
// and friends).
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

// Index returns the index of (i, j, k) in block h of sector s.
func (x *Indexer) Index(s Sector, h symmetry.Irrep, i, j, k int) (int, bool) {
	b, ok := x.block(s, h)
	if !ok {
		return table.Unassigned, false
	}

	return b.ibas[h].Lookup(i, j, k)
}

// RawIndex is Index with the legacy contract: table.Unassigned when the
// triple has no index.
func (x *Indexer) RawIndex(s Sector, h symmetry.Irrep, i, j, k int) int {
	n, _ := x.Index(s, h, i, j, k)

	return n
}

// Triple returns the orbitals of triple n in block h of sector s.
func (x *Indexer) Triple(s Sector, h symmetry.Irrep, n int) (Triple, bool) {
	b, ok := x.block(s, h)
	if !ok || n < 0 || n >= len(b.bas[h]) {
		return Triple{table.Unassigned, table.Unassigned, table.Unassigned}, false
	}

	return b.bas[h][n], true
}

// Triples returns a copy of the forward table of block h of sector s.
func (x *Indexer) Triples(s Sector, h symmetry.Irrep) []Triple {
	b, ok := x.block(s, h)
	if !ok {
		return nil
	}

	return append([]Triple(nil), b.bas[h]...)
}
