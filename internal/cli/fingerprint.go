// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// FingerprintResult is the output of the fingerprint command.
type FingerprintResult struct {
	Config      string `json:"config"`
	Fingerprint string `json:"fingerprint"`
}

// String renders the text form, sha256sum style.
func (r FingerprintResult) String() string {
	return r.Fingerprint + "  " + r.Config + "\n"
}

// NewFingerprintCommand creates the fingerprint command.
func NewFingerprintCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "fingerprint <config.yaml>",
		Short: "Print the SHA-256 of the canonical dump",
		Long: `Build every table described by the config file and print the SHA-256 of
its canonical dump. Restart logic compares fingerprints to confirm that a
checkpoint was written with the same variable numbering.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFingerprint(rootOpts, flags, args[0], cmd)
		},
	}
	flags.register(cmd)

	return cmd
}

func runFingerprint(opts *RootOptions, flags *buildFlags, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	_, b, err := loadBasis(opts, flags, path, f)
	if err != nil {
		return err
	}
	fp, err := b.Fingerprint()
	if err != nil {
		return f.fail(ErrCodeGeneric, "hashing tables", err)
	}

	return f.Success(FingerprintResult{Config: path, Fingerprint: fp})
}
