// SPDX-License-Identifier: MIT

package orbital

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symbasis/symmetry"
)

// Sentinel errors. Detection sites wrap them with the offending irrep.
var (
	// ErrLengthMismatch indicates per-irrep slices of different lengths.
	ErrLengthMismatch = errors.New("orbital: per-irrep count slices differ in length")

	// ErrNegativeCount indicates a negative total, frozen-core or frozen-virtual count.
	ErrNegativeCount = errors.New("orbital: negative orbital count")

	// ErrInconsistentCount indicates frozen-core + frozen-virtual > total in an irrep.
	ErrInconsistentCount = errors.New("orbital: frozen orbitals exceed total")

	// ErrNoActive indicates that no irrep has an active orbital.
	ErrNoActive = errors.New("orbital: active space is empty")
)

// Class is the space an orbital belongs to.
type Class int

const (
	// FrozenCore orbitals are doubly occupied and excluded from the active space.
	FrozenCore Class = iota
	// Active orbitals carry the density-matrix variables.
	Active
	// FrozenVirtual orbitals are empty and excluded from the active space.
	FrozenVirtual
)

// String returns a short name for the class.
func (c Class) String() string {
	switch c {
	case FrozenCore:
		return "frozen-core"
	case Active:
		return "active"
	case FrozenVirtual:
		return "frozen-virtual"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Spaces holds per-irrep orbital counts as supplied by the host program.
// All three slices are indexed by irrep and must share one length.
type Spaces struct {
	Total         []int `yaml:"total" json:"total"`
	FrozenCore    []int `yaml:"frozen_core" json:"frozen_core"`
	FrozenVirtual []int `yaml:"frozen_virtual" json:"frozen_virtual"`
}

// NIrrep returns the number of irreps described by s.
func (s Spaces) NIrrep() int { return len(s.Total) }

// ActiveIn returns the number of active orbitals of irrep h.
func (s Spaces) ActiveIn(h int) int {
	return s.Total[h] - s.FrozenCore[h] - s.FrozenVirtual[h]
}

// NTotal returns the grand total of orbitals.
func (s Spaces) NTotal() int { return sum(s.Total) }

// NFrozenCore returns the total number of frozen-core orbitals.
func (s Spaces) NFrozenCore() int { return sum(s.FrozenCore) }

// NFrozenVirtual returns the total number of frozen-virtual orbitals.
func (s Spaces) NFrozenVirtual() int { return sum(s.FrozenVirtual) }

// NActive returns the total number of active orbitals.
func (s Spaces) NActive() int {
	return s.NTotal() - s.NFrozenCore() - s.NFrozenVirtual()
}

// Validate checks the preconditions every later stage relies on:
//   - the irrep count is that of a D2h subgroup;
//   - the three slices have equal length;
//   - counts are non-negative and frozen orbitals fit inside each irrep;
//   - at least one active orbital exists.
//
// The first violation found is returned, wrapped with its irrep.
func (s Spaces) Validate() error {
	if err := symmetry.ValidateCount(len(s.Total)); err != nil {
		return err
	}
	if len(s.FrozenCore) != len(s.Total) || len(s.FrozenVirtual) != len(s.Total) {
		return fmt.Errorf("%w: total=%d frozen_core=%d frozen_virtual=%d",
			ErrLengthMismatch, len(s.Total), len(s.FrozenCore), len(s.FrozenVirtual))
	}
	for h := range s.Total {
		if s.Total[h] < 0 || s.FrozenCore[h] < 0 || s.FrozenVirtual[h] < 0 {
			return fmt.Errorf("%w: irrep %d", ErrNegativeCount, h)
		}
		if s.FrozenCore[h]+s.FrozenVirtual[h] > s.Total[h] {
			return fmt.Errorf("%w: irrep %d has %d+%d frozen of %d",
				ErrInconsistentCount, h, s.FrozenCore[h], s.FrozenVirtual[h], s.Total[h])
		}
	}
	if s.NActive() == 0 {
		return ErrNoActive
	}

	return nil
}

// Clone returns a deep copy of s.
func (s Spaces) Clone() Spaces {
	return Spaces{
		Total:         append([]int(nil), s.Total...),
		FrozenCore:    append([]int(nil), s.FrozenCore...),
		FrozenVirtual: append([]int(nil), s.FrozenVirtual...),
	}
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}

	return n
}
