// SPDX-License-Identifier: MIT

package triplet_test

import (
	"testing"

	"github.com/katalvlaran/symbasis/orbital"
	"github.com/katalvlaran/symbasis/symmetry"
	"github.com/katalvlaran/symbasis/table"
	"github.com/katalvlaran/symbasis/triplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, s orbital.Spaces) (*orbital.Layout, *triplet.Indexer) {
	t.Helper()
	l, err := orbital.Classify(s)
	require.NoError(t, err)
	x, err := triplet.Build(l)
	require.NoError(t, err)

	return l, x
}

// small: active irreps [0 0 0 1].
func small(t *testing.T) *triplet.Indexer {
	_, x := mustBuild(t, orbital.Spaces{
		Total: []int{3, 1}, FrozenCore: []int{0, 0}, FrozenVirtual: []int{0, 0},
	})

	return x
}

func TestBuild_SmallCounts(t *testing.T) {
	x := small(t)

	assert.Equal(t, []int{36, 28}, x.Counts(triplet.SectorABA))
	assert.Equal(t, []int{12, 12}, x.Counts(triplet.SectorAAB))
	assert.Equal(t, []int{1, 3}, x.Counts(triplet.SectorAAA))

	assert.Equal(t, []triplet.Triple{{0, 1, 2}}, x.Triples(triplet.SectorAAA, 0))
	assert.Equal(t, []triplet.Triple{{0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, x.Triples(triplet.SectorAAA, 1))
}

func TestBuild_SmallAABNumbering(t *testing.T) {
	x := small(t)

	// The scan reaches (0,1,0) (0,1,1) (0,1,2) first in block 0.
	got := x.Triples(triplet.SectorAAB, 0)
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, []triplet.Triple{{0, 1, 0}, {0, 1, 1}, {0, 1, 2}}, got[:3])
	assert.Equal(t, 2, x.RawIndex(triplet.SectorAAB, 0, 1, 0, 2))
}

func TestBuild_Permutations(t *testing.T) {
	_, x := mustBuild(t, orbital.Spaces{
		Total:         []int{3, 2, 2, 1},
		FrozenCore:    []int{1, 0, 0, 0},
		FrozenVirtual: []int{0, 0, 1, 0},
	})

	for h := symmetry.Irrep(0); int(h) < x.NIrrep(); h++ {
		for n := 0; n < x.Count(triplet.SectorAAA, h); n++ {
			tr, ok := x.Triple(triplet.SectorAAA, h, n)
			require.True(t, ok)
			i, j, k := tr[0], tr[1], tr[2]
			require.True(t, i < j && j < k)
			for _, p := range [][3]int{{i, j, k}, {i, k, j}, {j, i, k}, {j, k, i}, {k, i, j}, {k, j, i}} {
				require.Equal(t, n, x.RawIndex(triplet.SectorAAA, h, p[0], p[1], p[2]))
			}
		}
		for n := 0; n < x.Count(triplet.SectorAAB, h); n++ {
			tr, ok := x.Triple(triplet.SectorAAB, h, n)
			require.True(t, ok)
			require.Less(t, tr[0], tr[1])
			require.Equal(t, n, x.RawIndex(triplet.SectorAAB, h, tr[0], tr[1], tr[2]))
			require.Equal(t, n, x.RawIndex(triplet.SectorAAB, h, tr[1], tr[0], tr[2]))
		}
		for n := 0; n < x.Count(triplet.SectorABA, h); n++ {
			tr, ok := x.Triple(triplet.SectorABA, h, n)
			require.True(t, ok)
			require.Equal(t, n, x.RawIndex(triplet.SectorABA, h, tr[0], tr[1], tr[2]))
		}
	}
}

func TestBuild_TotalsAndNesting(t *testing.T) {
	l, x := mustBuild(t, orbital.Spaces{
		Total:         []int{4, 1, 2, 2, 1, 0, 1, 1},
		FrozenCore:    []int{1, 0, 0, 0, 0, 0, 0, 0},
		FrozenVirtual: []int{0, 0, 0, 1, 0, 0, 0, 0},
	})
	n := l.NActive()

	var aba, aab, aaa int
	for h := symmetry.Irrep(0); int(h) < x.NIrrep(); h++ {
		a, b, c := x.Count(triplet.SectorABA, h), x.Count(triplet.SectorAAB, h), x.Count(triplet.SectorAAA, h)
		assert.LessOrEqual(t, c, b)
		assert.LessOrEqual(t, b, a)
		aba, aab, aaa = aba+a, aab+b, aaa+c
	}
	assert.Equal(t, n*n*n, aba)
	assert.Equal(t, n*n*(n-1)/2, aab)
	assert.Equal(t, n*(n-1)*(n-2)/6, aaa)
}

func TestBuild_BlockOfTriple(t *testing.T) {
	l, x := mustBuild(t, orbital.Spaces{
		Total: []int{2, 1, 1, 1}, FrozenCore: []int{0, 0, 0, 0}, FrozenVirtual: []int{0, 0, 0, 0},
	})
	sym := l.Symmetry()

	for h := symmetry.Irrep(0); int(h) < x.NIrrep(); h++ {
		for _, tr := range x.Triples(triplet.SectorABA, h) {
			require.Equal(t, h, symmetry.Product3(sym[tr[0]], sym[tr[1]], sym[tr[2]]))
		}
	}
}

func TestLookups_Sentinel(t *testing.T) {
	x := small(t)

	// aab needs i != j, aaa needs distinct members.
	_, ok := x.Index(triplet.SectorAAB, 0, 1, 1, 0)
	assert.False(t, ok)
	assert.Equal(t, table.Unassigned, x.RawIndex(triplet.SectorAAA, 0, 0, 0, 1))
	// (0,1,2) is in block 0, not block 1.
	assert.Equal(t, table.Unassigned, x.RawIndex(triplet.SectorAAA, 1, 0, 1, 2))
	assert.Equal(t, table.Unassigned, x.RawIndex(triplet.SectorABA, 0, 4, 0, 0))
	assert.Equal(t, table.Unassigned, x.RawIndex(triplet.Sector(5), 0, 0, 0, 0))
	assert.Equal(t, table.Unassigned, x.RawIndex(triplet.SectorABA, 2, 0, 0, 0))

	tr, ok := x.Triple(triplet.SectorAAA, 0, 1)
	assert.False(t, ok)
	assert.Equal(t, triplet.Triple{table.Unassigned, table.Unassigned, table.Unassigned}, tr)
	assert.Nil(t, x.Triples(triplet.SectorAAA, 7))
	assert.Zero(t, x.Count(triplet.Sector(-1), 0))
	assert.Equal(t, 4, x.Dim())
}

func TestBuild_NilLayout(t *testing.T) {
	_, err := triplet.Build(nil)
	require.ErrorIs(t, err, triplet.ErrNilLayout)
}

func TestSector_String(t *testing.T) {
	assert.Equal(t, "aba", triplet.SectorABA.String())
	assert.Equal(t, "aab", triplet.SectorAAB.String())
	assert.Equal(t, "aaa", triplet.SectorAAA.String())
	assert.Equal(t, "Sector(3)", triplet.Sector(3).String())
}
