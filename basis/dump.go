// SPDX-License-Identifier: MIT

package basis

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/symbasis/geminal"
	"github.com/katalvlaran/symbasis/symmetry"
	"github.com/katalvlaran/symbasis/triplet"
)

// dumpVersion is bumped whenever the dump layout changes.
const dumpVersion = 1

// WriteTo writes the canonical text form of every table to w and implements
// io.WriterTo. The dump lists inputs, per-orbital arrays, block sizes and
// forward tables; inverse tables are fully determined by the forward ones and
// are omitted.
//
// Line grammar: a key followed by space-separated values. Pairs print as
// "i,j" and triples as "i,j,k".
func (b *Basis) WriteTo(w io.Writer) (int64, error) {
	if b.tables == nil {
		return 0, ErrReleased
	}
	var buf bytes.Buffer
	b.tables.dump(&buf)

	return buf.WriteTo(w)
}

// Fingerprint returns the hex SHA-256 of the canonical dump.
func (b *Basis) Fingerprint() (string, error) {
	if b.tables == nil {
		return "", ErrReleased
	}
	h := sha256.New()
	var buf bytes.Buffer
	b.tables.dump(&buf)
	h.Write(buf.Bytes())

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (t *tables) dump(buf *bytes.Buffer) {
	l, o, p := t.layout, t.ordering, t.pairs
	s := l.Spaces()

	fmt.Fprintf(buf, "symbasis %d\n", dumpVersion)
	fmt.Fprintf(buf, "nirrep %d\n", l.NIrrep())
	ints(buf, "total", s.Total)
	ints(buf, "frozen_core", s.FrozenCore)
	ints(buf, "frozen_virtual", s.FrozenVirtual)
	fmt.Fprintf(buf, "constraints t1=%t t2=%t d3=%t\n", t.constraints.T1, t.constraints.T2, t.constraints.D3)

	irreps(buf, "symmetry", l.Symmetry())
	irreps(buf, "symmetry_full", l.SymmetryFull())
	irreps(buf, "symmetry_plus_core", l.SymmetryPlusCore())
	ints(buf, "full_basis", l.FullBasis())
	ints(buf, "pitzer_offset", l.PitzerOffset())
	ints(buf, "pitzer_offset_full", l.PitzerOffsetFull())
	ints(buf, "pitzer_offset_plus_core", l.PitzerOffsetPlusCore())
	ints(buf, "symmetry_energy_order", o.SymmetryEnergyOrder())
	ints(buf, "pitzer_to_energy", o.PitzerToEnergy())
	ints(buf, "energy_to_pitzer", o.EnergyToPitzer())

	for _, sec := range geminal.Sectors {
		ints(buf, "gems "+sec.String(), p.Counts(sec))
	}
	ints(buf, "gems plus_core", p.PlusCoreCounts())
	if t.triplets != nil {
		for _, sec := range triplet.Sectors {
			ints(buf, "trip "+sec.String(), t.triplets.Counts(sec))
		}
	}

	for _, sec := range geminal.Sectors {
		for h := 0; h < p.NIrrep(); h++ {
			fmt.Fprintf(buf, "bas %s %d", sec, h)
			for _, g := range p.Pairs(sec, symmetry.Irrep(h)) {
				fmt.Fprintf(buf, " %d,%d", g[0], g[1])
			}
			buf.WriteByte('\n')
		}
	}
	if t.triplets != nil {
		for _, sec := range triplet.Sectors {
			for h := 0; h < t.triplets.NIrrep(); h++ {
				fmt.Fprintf(buf, "bas %s %d", sec, h)
				for _, tr := range t.triplets.Triples(sec, symmetry.Irrep(h)) {
					fmt.Fprintf(buf, " %d,%d,%d", tr[0], tr[1], tr[2])
				}
				buf.WriteByte('\n')
			}
		}
	}
}

func ints(buf *bytes.Buffer, key string, vals []int) {
	buf.WriteString(key)
	for _, v := range vals {
		buf.WriteByte(' ')
		buf.WriteString(strconv.Itoa(v))
	}
	buf.WriteByte('\n')
}

func irreps(buf *bytes.Buffer, key string, vals []symmetry.Irrep) {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	ints(buf, key, out)
}
