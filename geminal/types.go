// SPDX-License-Identifier: MIT

package geminal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symbasis/symmetry"
	"github.com/katalvlaran/symbasis/table"
)

var (
	// ErrNilLayout indicates that Build received no orbital layout.
	ErrNilLayout = errors.New("geminal: nil orbital layout")

	// ErrNilOrdering indicates that Build received no energy ordering.
	ErrNilOrdering = errors.New("geminal: nil energy ordering")

	// ErrOrderingMismatch indicates an energy ordering built for another orbital space.
	ErrOrderingMismatch = errors.New("geminal: energy ordering does not match layout")
)

// Sector selects one of the pair numberings.
type Sector int

const (
	// SectorAB numbers ordered active pairs.
	SectorAB Sector = iota
	// Sector00 numbers active pairs with i >= j.
	Sector00
	// SectorAA numbers active pairs with i > j.
	SectorAA
	// SectorFull numbers unordered pairs of all orbitals in energy order.
	SectorFull

	numSectors = 4
)

// Sectors lists every tabulated sector in canonical order.
var Sectors = []Sector{SectorAB, Sector00, SectorAA, SectorFull}

// String returns the conventional sector label.
func (s Sector) String() string {
	switch s {
	case SectorAB:
		return "ab"
	case Sector00:
		return "00"
	case SectorAA:
		return "aa"
	case SectorFull:
		return "full"
	default:
		return fmt.Sprintf("Sector(%d)", int(s))
	}
}

// Symmetric reports whether (i, j) and (j, i) share one index in s.
func (s Sector) Symmetric() bool { return s != SectorAB }

// Geminal is a forward-table entry: the two orbital indices of a pair.
type Geminal [2]int

// blocks holds one sector's forward and inverse tables for every irrep.
type blocks struct {
	bas  [][]Geminal
	ibas []*table.Square
}

func newBlocks(nirrep, dim int) (*blocks, error) {
	b := &blocks{
		bas:  make([][]Geminal, nirrep),
		ibas: make([]*table.Square, nirrep),
	}
	for h := range b.ibas {
		sq, err := table.NewSquare(dim)
		if err != nil {
			return nil, err
		}
		b.ibas[h] = sq
	}

	return b, nil
}

// add gives (i, j) the next index of block h, and (j, i) too when sym is set.
func (b *blocks) add(h symmetry.Irrep, i, j int, sym bool) error {
	n := len(b.bas[h])
	b.bas[h] = append(b.bas[h], Geminal{i, j})
	if err := b.ibas[h].Set(i, j, n); err != nil {
		return err
	}
	if sym {
		return b.ibas[h].Set(j, i, n)
	}

	return nil
}
