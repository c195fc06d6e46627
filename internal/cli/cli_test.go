// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairsYAML = `positivity: DQG
irreps:
  - {total: 4, frozen_core: 1, energies: [-10, 0.3, -0.2, 0.1]}
  - {total: 2, frozen_virtual: 1, energies: [-0.4, -50]}
`

const pairsFingerprint = "58f1740165feab35c88165a08a1c95df82baad7c16e84edb4ee8484a67fc7899"

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "space.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_InvalidFormat(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	_, _, err := execute("--format", "xml", "summary", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRoot_RequiresConfigArg(t *testing.T) {
	for _, sub := range []string{"summary", "dump", "fingerprint"} {
		_, _, err := execute(sub)
		assert.Error(t, err, sub)
	}
}

func TestFingerprint_Text(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	out, _, err := execute("fingerprint", path)
	require.NoError(t, err)
	assert.Equal(t, pairsFingerprint+"  "+path+"\n", out)
}

func TestFingerprint_JSON(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	out, _, err := execute("--format", "json", "fingerprint", path)
	require.NoError(t, err)

	var resp struct {
		Status string            `json:"status"`
		Data   FingerprintResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, pairsFingerprint, resp.Data.Fingerprint)
	assert.Equal(t, path, resp.Data.Config)
}

func TestFingerprint_Overrides(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	for _, args := range [][]string{
		{"fingerprint", "--positivity", "DQGT1", path},
		{"fingerprint", "--d3", path},
	} {
		out, _, err := execute(args...)
		require.NoError(t, err)
		assert.NotContains(t, out, pairsFingerprint, args)
	}

	// positivity without three-particle conditions keeps the numbering
	out, _, err := execute("fingerprint", "--positivity", "dq", path)
	require.NoError(t, err)
	assert.Contains(t, out, pairsFingerprint)
}

func TestSummary_Text(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	out, _, err := execute("summary", "--positivity", "DQGT2", path)
	require.NoError(t, err)

	assert.Contains(t, out, "irreps:       2\n")
	assert.Contains(t, out, "orbitals:     6 (core 1, active 4, virtual 1)\n")
	assert.Contains(t, out, "positivity:   DQGT2 (d3=false)\n")
	assert.Contains(t, out, "energy order: [1 2 1 1 1 2]\n")
	assert.Contains(t, out, "gems ab    [10 6]\n")
	assert.Contains(t, out, "gems 00    [7 3]\n")
	assert.Contains(t, out, "gems aa    [3 3]\n")
	assert.Contains(t, out, "gems full  [13 8]\n")
	assert.Contains(t, out, "gems core  [11 4]\n")
	assert.Contains(t, out, "trip aaa   [1 3]\n")
}

func TestSummary_JSON(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	out, _, err := execute("--format", "json", "summary", path)
	require.NoError(t, err)

	var resp struct {
		Status string  `json:"status"`
		Data   Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Data.NActive)
	assert.Equal(t, "DQG", resp.Data.Positivity)
	assert.Equal(t, []int{7, 3}, resp.Data.Geminals["00"])
	assert.Equal(t, []int{11, 4}, resp.Data.PlusCore)
	assert.Nil(t, resp.Data.Triplets)
	assert.Equal(t, pairsFingerprint, resp.Data.Fingerprint)
}

func TestDump_MatchesGolden(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	out, _, err := execute("dump", path)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "basis", "testdata", "golden", "pairs_only.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestDump_OutputFile(t *testing.T) {
	path := writeConfig(t, pairsYAML)
	target := filepath.Join(t.TempDir(), "tables.txt")

	out, _, err := execute("--format", "json", "dump", "-o", target, path)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   DumpResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, target, resp.Data.Output)
	assert.Empty(t, resp.Data.Dump)
	assert.Equal(t, pairsFingerprint, resp.Data.Fingerprint)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), "gems ab 10 6\n")
}

func TestVerbose_LogsToStderr(t *testing.T) {
	path := writeConfig(t, pairsYAML)

	out, errOut, err := execute("--verbose", "fingerprint", path)
	require.NoError(t, err)
	assert.Contains(t, out, pairsFingerprint)
	assert.Contains(t, errOut, "basis built")

	_, errOut, err = execute("fingerprint", path)
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		code string
		exit int
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"summary", filepath.Join(t.TempDir(), "absent.yaml")}
			},
			code: ErrCodeNotFound,
			exit: ExitCommandError,
		},
		{
			name: "unknown key",
			args: func(t *testing.T) []string {
				return []string{"summary", writeConfig(t, pairsYAML+"basis: sto-3g\n")}
			},
			code: ErrCodeBadConfig,
			exit: ExitCommandError,
		},
		{
			name: "three irreps",
			args: func(t *testing.T) []string {
				doc := "irreps: [{total: 1, energies: [0]}, {total: 1, energies: [0]}, {total: 1, energies: [0]}]\n"
				return []string{"dump", writeConfig(t, doc)}
			},
			code: ErrCodeBuildFailed,
			exit: ExitCommandError,
		},
		{
			name: "unknown positivity",
			args: func(t *testing.T) []string {
				return []string{"fingerprint", "--positivity", "DQGT3", writeConfig(t, pairsYAML)}
			},
			code: ErrCodeBuildFailed,
			exit: ExitCommandError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(append([]string{"--format", "json"}, tt.args(t)...)...)
			require.Error(t, err)
			assert.Equal(t, tt.exit, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
	assert.Equal(t, "x: "+assert.AnError.Error(), WrapExitError(ExitFailure, "x", assert.AnError).Error())
	assert.Equal(t, "x", (&ExitError{Code: ExitFailure, Message: "x"}).Error())
}
