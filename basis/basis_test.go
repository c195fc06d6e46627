// SPDX-License-Identifier: MIT

package basis_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/symbasis/basis"
	"github.com/katalvlaran/symbasis/energy"
	"github.com/katalvlaran/symbasis/geminal"
	"github.com/katalvlaran/symbasis/orbital"
	"github.com/katalvlaran/symbasis/symmetry"
	"github.com/katalvlaran/symbasis/triplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairsInput: Pitzer 0c 1a 2a 3a | 4a 5v.
func pairsInput() (orbital.Spaces, [][]float64) {
	return orbital.Spaces{
			Total:         []int{4, 2},
			FrozenCore:    []int{1, 0},
			FrozenVirtual: []int{0, 1},
		}, [][]float64{
			{-10, 0.3, -0.2, 0.1},
			{-0.4, -50},
		}
}

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBuild_PairsOnly(t *testing.T) {
	s, eps := pairsInput()
	b, err := basis.Build(s, eps)
	require.NoError(t, err)

	require.True(t, b.Built())
	assert.Equal(t, basis.Constraints{}, b.Constraints())
	assert.Nil(t, b.Triplets())
	assert.Equal(t, 4, b.Layout().NActive())
	assert.Equal(t, 6, b.Ordering().Len())
	assert.Equal(t, []int{10, 6}, b.Pairs().Counts(geminal.SectorAB))
	assert.Equal(t, []int{7, 3}, b.Pairs().Counts(geminal.Sector00))
	assert.Equal(t, []int{3, 3}, b.Pairs().Counts(geminal.SectorAA))

	n, ok := b.Pairs().Index(geminal.Sector00, 1, 3, 0)
	require.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestBuild_WithTriplets(t *testing.T) {
	s, eps := pairsInput()
	for name, opt := range map[string]basis.Option{
		"T1": basis.WithT1(),
		"T2": basis.WithT2(),
		"D3": basis.WithD3(),
	} {
		t.Run(name, func(t *testing.T) {
			b, err := basis.Build(s, eps, opt)
			require.NoError(t, err)
			require.NotNil(t, b.Triplets())
			assert.True(t, b.Constraints().NeedTriplets())
			assert.Equal(t, []int{1, 3}, b.Triplets().Counts(triplet.SectorAAA))
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	s, eps := pairsInput()

	_, err := basis.Build(orbital.Spaces{
		Total: []int{1, 1, 1}, FrozenCore: []int{0, 0, 0}, FrozenVirtual: []int{0, 0, 0},
	}, [][]float64{{0}, {0}, {0}})
	assert.ErrorIs(t, err, symmetry.ErrIrrepCount)

	_, err = basis.Build(s, eps[:1])
	assert.ErrorIs(t, err, energy.ErrShape)

	bad := [][]float64{{-10, 0.3, math.NaN(), 0.1}, {-0.4, -50}}
	_, err = basis.Build(s, bad)
	assert.ErrorIs(t, err, energy.ErrNonFiniteEnergy)

	s.FrozenCore[0] = 5
	_, err = basis.Build(s, eps)
	assert.ErrorIs(t, err, orbital.ErrInconsistentCount)
}

func TestBuild_DoesNotAliasInputs(t *testing.T) {
	s, eps := pairsInput()
	b, err := basis.Build(s, eps)
	require.NoError(t, err)
	before, err := b.Fingerprint()
	require.NoError(t, err)

	s.Total[0] = 9
	after, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRebuild(t *testing.T) {
	s, eps := pairsInput()
	var logs bytes.Buffer
	b, err := basis.Build(s, eps, basis.WithLogger(debugLogger(&logs)))
	require.NoError(t, err)
	first, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "basis built")

	// same inputs, same numbering
	require.NoError(t, b.Rebuild(s, eps))
	again, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// different constraints change the dump
	require.NoError(t, b.Rebuild(s, eps, basis.WithD3()))
	withD3, err := b.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, first, withD3)
	assert.NotNil(t, b.Triplets())

	// a failed rebuild keeps what was there
	logs.Reset()
	err = b.Rebuild(s, eps[:1])
	require.ErrorIs(t, err, energy.ErrShape)
	kept, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, withD3, kept)
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestRelease(t *testing.T) {
	s, eps := pairsInput()
	var logs bytes.Buffer
	b, err := basis.Build(s, eps, basis.WithT1(), basis.WithLogger(debugLogger(&logs)))
	require.NoError(t, err)

	b.Release()
	assert.False(t, b.Built())
	assert.Nil(t, b.Layout())
	assert.Nil(t, b.Ordering())
	assert.Nil(t, b.Pairs())
	assert.Nil(t, b.Triplets())
	assert.Equal(t, basis.Constraints{}, b.Constraints())
	assert.Contains(t, logs.String(), "basis released")

	_, err = b.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, basis.ErrReleased)
	_, err = b.Fingerprint()
	assert.ErrorIs(t, err, basis.ErrReleased)

	b.Release()

	require.NoError(t, b.Rebuild(s, eps))
	assert.True(t, b.Built())
}

func TestFingerprint_HashesDump(t *testing.T) {
	s, eps := pairsInput()
	b, err := basis.Build(s, eps)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	sum := sha256.Sum256(buf.Bytes())
	fp, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(sum[:]), fp)
	assert.Equal(t, "58f1740165feab35c88165a08a1c95df82baad7c16e84edb4ee8484a67fc7899", fp)
}
