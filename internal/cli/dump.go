// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// DumpResult is the JSON payload of the dump command.
type DumpResult struct {
	Dump        string `json:"dump,omitempty"`
	Output      string `json:"output,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &buildFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "dump <config.yaml>",
		Short: "Write the canonical text dump of every table",
		Long: `Build every table described by the config file and write its canonical
text dump: one line per array, block size list and forward table. Two dumps
are byte-identical exactly when the tables number every variable the same
way.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, flags, output, args[0], cmd)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the dump to a file instead of stdout")

	return cmd
}

func runDump(opts *RootOptions, flags *buildFlags, output, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	_, b, err := loadBasis(opts, flags, path, f)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return f.fail(ErrCodeGeneric, "dumping tables", err)
	}
	fp, err := b.Fingerprint()
	if err != nil {
		return f.fail(ErrCodeGeneric, "hashing tables", err)
	}

	if output != "" {
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return f.fail(ErrCodeWriteFailed, "writing "+output, err)
		}
		if f.Format == "json" {
			return f.Success(DumpResult{Output: output, Fingerprint: fp})
		}
		_, err := fmt.Fprintf(f.Writer, "wrote %s\n", output)
		return err
	}

	if f.Format == "json" {
		return f.Success(DumpResult{Dump: buf.String(), Fingerprint: fp})
	}
	_, err = buf.WriteTo(f.Writer)
	return err
}
