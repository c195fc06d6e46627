// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/symbasis/energy"
	"github.com/katalvlaran/symbasis/geminal"
	"github.com/katalvlaran/symbasis/orbital"
	"github.com/katalvlaran/symbasis/triplet"
)

var (
	// ErrReleased indicates use of a Basis after Release.
	ErrReleased = errors.New("basis: tables have been released")

	// ErrUnknownPositivity indicates an unrecognised POSITIVITY keyword.
	ErrUnknownPositivity = errors.New("basis: unknown positivity condition")

	// ErrConfig indicates a malformed configuration document.
	ErrConfig = errors.New("basis: invalid configuration")
)

// Basis owns the complete set of index tables of one orbital space.
type Basis struct {
	tables *tables
	logger *slog.Logger
}

// tables is everything a build produces; it is replaced or dropped whole.
type tables struct {
	constraints Constraints
	layout      *orbital.Layout
	ordering    *energy.Ordering
	pairs       *geminal.Indexer
	triplets    *triplet.Indexer // nil unless constraints.NeedTriplets()
}

// Build constructs every table for the orbital space s with energies eps
// (eps[h][p]: p-th orbital of irrep h, Pitzer order within the irrep).
//
// Implementation:
//   - Stage 1: classify orbitals (orbital.Classify).
//   - Stage 2: rank energies (energy.Order).
//   - Stage 3: pair tables (geminal.Build).
//   - Stage 4: triple tables when T1, T2 or D3 is enabled (triplet.Build).
//
// Errors: any validation error of the stages, wrapped sentinels from
// packages orbital, energy, symmetry, geminal and triplet.
func Build(s orbital.Spaces, eps [][]float64, opts ...Option) (*Basis, error) {
	cfg := newConfig(opts...)
	t, err := build(s, eps, cfg)
	if err != nil {
		return nil, err
	}

	return &Basis{tables: t, logger: cfg.logger}, nil
}

func build(s orbital.Spaces, eps [][]float64, cfg config) (*tables, error) {
	layout, err := orbital.Classify(s)
	if err != nil {
		return nil, err
	}
	ordering, err := energy.Order(s, eps)
	if err != nil {
		return nil, err
	}
	pairs, err := geminal.Build(layout, ordering)
	if err != nil {
		return nil, err
	}
	t := &tables{
		constraints: cfg.constraints,
		layout:      layout,
		ordering:    ordering,
		pairs:       pairs,
	}
	if cfg.constraints.NeedTriplets() {
		if t.triplets, err = triplet.Build(layout); err != nil {
			return nil, err
		}
	}

	attrs := []any{
		slog.Int("nirrep", layout.NIrrep()),
		slog.Int("nactive", layout.NActive()),
		slog.Int("ntotal", layout.NTotal()),
		slog.Any("gems_ab", pairs.Counts(geminal.SectorAB)),
		slog.Any("gems_full", pairs.Counts(geminal.SectorFull)),
		slog.Bool("triplets", t.triplets != nil),
	}
	if t.triplets != nil {
		attrs = append(attrs, slog.Any("trip_aba", t.triplets.Counts(triplet.SectorABA)))
	}
	cfg.logger.Debug("basis built", attrs...)

	return t, nil
}

// Rebuild replaces every table with ones built from new inputs. Options are
// resolved afresh; the logger of the first Build is kept unless a
// WithLogger option is given. On error the current tables stay in place.
func (b *Basis) Rebuild(s orbital.Spaces, eps [][]float64, opts ...Option) error {
	cfg := newConfig(append([]Option{WithLogger(b.logger)}, opts...)...)
	t, err := build(s, eps, cfg)
	if err != nil {
		cfg.logger.Warn("basis rebuild failed, keeping previous tables", slog.Any("err", err))

		return err
	}
	b.tables, b.logger = t, cfg.logger

	return nil
}

// Release drops every table. Accessors return nil afterwards and WriteTo
// reports ErrReleased. Releasing twice is harmless.
func (b *Basis) Release() {
	if b.tables != nil {
		b.logger.Debug("basis released")
	}
	b.tables = nil
}

// Built reports whether the Basis currently holds tables.
func (b *Basis) Built() bool { return b.tables != nil }

// Constraints returns the conditions the tables were built for.
func (b *Basis) Constraints() Constraints {
	if b.tables == nil {
		return Constraints{}
	}

	return b.tables.constraints
}

// Layout returns the orbital classification, or nil after Release.
func (b *Basis) Layout() *orbital.Layout {
	if b.tables == nil {
		return nil
	}

	return b.tables.layout
}

// Ordering returns the energy ordering, or nil after Release.
func (b *Basis) Ordering() *energy.Ordering {
	if b.tables == nil {
		return nil
	}

	return b.tables.ordering
}

// Pairs returns the geminal tables, or nil after Release.
func (b *Basis) Pairs() *geminal.Indexer {
	if b.tables == nil {
		return nil
	}

	return b.tables.pairs
}

// Triplets returns the triple tables. It is nil after Release and when no
// condition needing them was enabled.
func (b *Basis) Triplets() *triplet.Indexer {
	if b.tables == nil {
		return nil
	}

	return b.tables.triplets
}
