// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symbasis/basis"
)

// buildFlags are the per-command overrides of the config file.
type buildFlags struct {
	positivity string
	d3         bool
}

func (b *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.positivity, "positivity", "", "override the positivity keyword (D, DQ, DG, DQG, DQGT1, DQGT2, DQGT1T2)")
	cmd.Flags().BoolVar(&b.d3, "d3", false, "enable the D3 partial-trace constraint")
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadBasis reads the config at path, applies flag overrides and builds the
// tables. Failures are reported through f.
func loadBasis(opts *RootOptions, flags *buildFlags, path string, f *OutputFormatter) (*basis.Config, *basis.Basis, error) {
	cfg, err := basis.LoadConfig(path)
	if err != nil {
		if errors.Is(err, basis.ErrConfig) {
			return nil, nil, f.fail(ErrCodeBadConfig, "decoding "+path, err)
		}
		return nil, nil, f.fail(ErrCodeNotFound, "reading "+path, err)
	}
	if flags.positivity != "" {
		cfg.Positivity = flags.positivity
	}
	if flags.d3 {
		cfg.ConstrainD3 = true
	}

	b, err := cfg.Build(basis.WithLogger(newLogger(opts, f.ErrWriterOrDefault())))
	if err != nil {
		return nil, nil, f.fail(ErrCodeBuildFailed, "building tables", err)
	}

	return cfg, b, nil
}
