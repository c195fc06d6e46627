// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symbasis/basis"
	"github.com/katalvlaran/symbasis/geminal"
	"github.com/katalvlaran/symbasis/triplet"
)

// Summary is the output of the summary command.
type Summary struct {
	NIrrep         int               `json:"nirrep"`
	NTotal         int               `json:"ntotal"`
	NFrozenCore    int               `json:"nfrozen_core"`
	NActive        int               `json:"nactive"`
	NFrozenVirtual int               `json:"nfrozen_virtual"`
	Positivity     string            `json:"positivity"`
	Constraints    basis.Constraints `json:"constraints"`
	Geminals       map[string][]int  `json:"geminals"`
	PlusCore       []int             `json:"plus_core"`
	Triplets       map[string][]int  `json:"triplets,omitempty"`
	EnergyOrder    []int             `json:"symmetry_energy_order"`
	Fingerprint    string            `json:"fingerprint"`
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "summary <config.yaml>",
		Short: "Print orbital counts and block sizes",
		Long: `Build every table described by the config file and print the orbital
counts, the size of each geminal and triple block per irrep, the irrep of
each orbital in energy order and the table fingerprint.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(rootOpts, flags, args[0], cmd)
		},
	}
	flags.register(cmd)

	return cmd
}

func runSummary(opts *RootOptions, flags *buildFlags, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	cfg, b, err := loadBasis(opts, flags, path, f)
	if err != nil {
		return err
	}
	p, err := basis.ParsePositivity(cfg.Positivity)
	if err != nil {
		return f.fail(ErrCodeBuildFailed, "parsing positivity", err)
	}
	fp, err := b.Fingerprint()
	if err != nil {
		return f.fail(ErrCodeGeneric, "hashing tables", err)
	}

	return f.Success(newSummary(b, p, fp))
}

func newSummary(b *basis.Basis, p basis.Positivity, fp string) *Summary {
	l, pairs := b.Layout(), b.Pairs()
	s := l.Spaces()
	out := &Summary{
		NIrrep:         l.NIrrep(),
		NTotal:         l.NTotal(),
		NFrozenCore:    s.NFrozenCore(),
		NActive:        l.NActive(),
		NFrozenVirtual: s.NFrozenVirtual(),
		Positivity:     p.String(),
		Constraints:    b.Constraints(),
		Geminals:       make(map[string][]int, len(geminal.Sectors)),
		PlusCore:       pairs.PlusCoreCounts(),
		EnergyOrder:    b.Ordering().SymmetryEnergyOrder(),
		Fingerprint:    fp,
	}
	for _, sec := range geminal.Sectors {
		out.Geminals[sec.String()] = pairs.Counts(sec)
	}
	if t := b.Triplets(); t != nil {
		out.Triplets = make(map[string][]int, len(triplet.Sectors))
		for _, sec := range triplet.Sectors {
			out.Triplets[sec.String()] = t.Counts(sec)
		}
	}

	return out
}

// String renders the text form.
func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "irreps:       %d\n", s.NIrrep)
	fmt.Fprintf(&sb, "orbitals:     %d (core %d, active %d, virtual %d)\n",
		s.NTotal, s.NFrozenCore, s.NActive, s.NFrozenVirtual)
	fmt.Fprintf(&sb, "positivity:   %s (d3=%t)\n", s.Positivity, s.Constraints.D3)
	fmt.Fprintf(&sb, "energy order: %v\n", s.EnergyOrder)
	for _, sec := range geminal.Sectors {
		fmt.Fprintf(&sb, "gems %-5s %v\n", sec, s.Geminals[sec.String()])
	}
	fmt.Fprintf(&sb, "gems %-5s %v\n", "core", s.PlusCore)
	if s.Triplets != nil {
		for _, sec := range triplet.Sectors {
			fmt.Fprintf(&sb, "trip %-5s %v\n", sec, s.Triplets[sec.String()])
		}
	}
	fmt.Fprintf(&sb, "fingerprint:  %s\n", s.Fingerprint)

	return sb.String()
}
