// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdsort

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(r *rand.Rand, n int, grid int) ([]uint32, []float64) {
	ids := make([]uint32, n)
	coords := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		ids[i] = uint32(i)
		if grid > 0 {
			// Small integer grid to force lots of ties.
			coords[2*i] = float64(r.Intn(grid))
			coords[2*i+1] = float64(r.Intn(grid))
		} else {
			coords[2*i] = r.Float64()*2000 - 1000
			coords[2*i+1] = r.Float64()*2000 - 1000
		}
	}
	return ids, coords
}

func requireKDSorted(t *testing.T, ids []uint32, coords []float64, nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}
	m := (left + right) >> 1
	split := coords[2*m+axis]
	for i := left; i < m; i++ {
		require.LessOrEqual(t, coords[2*i+axis], split, "i=%d m=%d axis=%d", i, m, axis)
	}
	for i := m + 1; i <= right; i++ {
		require.GreaterOrEqual(t, coords[2*i+axis], split, "i=%d m=%d axis=%d", i, m, axis)
	}
	requireKDSorted(t, ids, coords, nodeSize, left, m-1, 1-axis)
	requireKDSorted(t, ids, coords, nodeSize, m+1, right, 1-axis)
}

func requirePaired(t *testing.T, origCoords []float64, ids []uint32, coords []float64) {
	seen := make([]bool, len(ids))
	for i, id := range ids {
		require.Less(t, int(id), len(ids))
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
		assert.Equal(t, origCoords[2*id], coords[2*i])
		assert.Equal(t, origCoords[2*id+1], coords[2*i+1])
	}
}

func TestSort(t *testing.T) {
	t.Run("Panics", func(t *testing.T) {
		testCases := []struct {
			name     string
			ids      []uint32
			coords   []float64
			nodeSize int
			expected string
		}{
			{
				name:     "LengthMismatch",
				ids:      []uint32{0, 1},
				coords:   []float64{0, 0, 1},
				nodeSize: 1,
				expected: "kdsort: coords length must be twice ids length (len(ids)=2, len(coords)=3)",
			},
			{
				name:     "NegativeNodeSize",
				ids:      []uint32{0},
				coords:   []float64{0, 0},
				nodeSize: -1,
				expected: "kdsort: node size must not be negative (nodeSize=-1)",
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.PanicsWithValue(t, testCase.expected, func() {
					Sort(testCase.ids, testCase.coords, testCase.nodeSize)
				})
			})
		}
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Sort([]uint32{}, []float64{}, 0)
		})
	})

	t.Run("Invariants", func(t *testing.T) {
		testCases := []struct {
			n        int
			nodeSize int
			grid     int
		}{
			{1, 0, 0},
			{2, 0, 0},
			{3, 0, 0},
			{17, 0, 0},
			{100, 10, 0},
			{100, 10, 5},
			{257, 1, 3},
			{1000, 16, 0},
			{1000, 0, 0},
			{5000, 64, 0},
			{5000, 8, 10},
		}

		for _, testCase := range testCases {
			name := fmt.Sprintf("n=%d,nodeSize=%d,grid=%d", testCase.n, testCase.nodeSize, testCase.grid)
			t.Run(name, func(t *testing.T) {
				r := rand.New(rand.NewSource(int64(testCase.n*31 + testCase.nodeSize)))
				ids, coords := randomPoints(r, testCase.n, testCase.grid)
				orig := append([]float64(nil), coords...)

				Sort(ids, coords, testCase.nodeSize)

				requirePaired(t, orig, ids, coords)
				requireKDSorted(t, ids, coords, testCase.nodeSize, 0, testCase.n-1, 0)
			})
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		ids1, coords1 := randomPoints(r, 2000, 0)
		ids2 := append([]uint32(nil), ids1...)
		coords2 := append([]float64(nil), coords1...)

		Sort(ids1, coords1, 10)
		Sort(ids2, coords2, 10)

		assert.Equal(t, ids1, ids2)
		assert.Equal(t, coords1, coords2)
	})

	t.Run("NodeSizeZeroSortsEveryLevel", func(t *testing.T) {
		// Points on a diagonal line: with no leaves, every split is
		// exact on both axes, which makes the array fully sorted.
		n := 15
		ids := make([]uint32, n)
		coords := make([]float64, 2*n)
		for i := 0; i < n; i++ {
			ids[i] = uint32(i)
			coords[2*i] = float64(n - i)
			coords[2*i+1] = float64(n - i)
		}

		Sort(ids, coords, 0)

		xs := make([]float64, n)
		for i := range xs {
			xs[i] = coords[2*i]
		}
		assert.True(t, sort.Float64sAreSorted(xs), "%v", xs)
	})
}

func TestSelect(t *testing.T) {
	t.Run("Panics", func(t *testing.T) {
		ids := []uint32{0, 1, 2}
		coords := []float64{0, 0, 1, 1, 2, 2}
		testCases := []struct {
			name                 string
			k, left, right, axis int
			expected             string
		}{
			{"KBelowLeft", 0, 1, 2, 0, "kdsort: invalid selection (k=0, left=1, right=2, len=3)"},
			{"KAboveRight", 2, 0, 1, 0, "kdsort: invalid selection (k=2, left=0, right=1, len=3)"},
			{"RightOutOfRange", 1, 0, 3, 0, "kdsort: invalid selection (k=1, left=0, right=3, len=3)"},
			{"NegativeLeft", 0, -1, 2, 0, "kdsort: invalid selection (k=0, left=-1, right=2, len=3)"},
			{"BadAxis", 1, 0, 2, 2, "kdsort: axis must be 0 or 1 (axis=2)"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.PanicsWithValue(t, testCase.expected, func() {
					Select(ids, coords, testCase.k, testCase.left, testCase.right, testCase.axis)
				})
			})
		}
	})

	t.Run("Partition", func(t *testing.T) {
		testCases := []struct {
			n    int
			k    int
			axis int
			grid int
		}{
			{10, 0, 0, 0},
			{10, 9, 1, 0},
			{10, 4, 0, 3},
			{601, 300, 0, 0},
			{602, 300, 1, 0},
			{3000, 17, 0, 0},
			{3000, 2990, 1, 0},
			{3000, 1500, 0, 20},
			{10000, 5000, 1, 0},
		}

		for _, testCase := range testCases {
			name := fmt.Sprintf("n=%d,k=%d,axis=%d,grid=%d", testCase.n, testCase.k, testCase.axis, testCase.grid)
			t.Run(name, func(t *testing.T) {
				r := rand.New(rand.NewSource(int64(testCase.n + testCase.k)))
				ids, coords := randomPoints(r, testCase.n, testCase.grid)
				orig := append([]float64(nil), coords...)
				values := make([]float64, testCase.n)
				for i := range values {
					values[i] = coords[2*i+testCase.axis]
				}
				sort.Float64s(values)

				Select(ids, coords, testCase.k, 0, testCase.n-1, testCase.axis)

				requirePaired(t, orig, ids, coords)
				kth := coords[2*testCase.k+testCase.axis]
				assert.Equal(t, values[testCase.k], kth)
				for i := 0; i < testCase.k; i++ {
					require.LessOrEqual(t, coords[2*i+testCase.axis], kth)
				}
				for i := testCase.k + 1; i < testCase.n; i++ {
					require.GreaterOrEqual(t, coords[2*i+testCase.axis], kth)
				}
			})
		}
	})

	t.Run("SubRange", func(t *testing.T) {
		ids := []uint32{0, 1, 2, 3, 4, 5}
		coords := []float64{9, 0, 5, 0, 4, 0, 3, 0, 2, 0, -1, 0}

		Select(ids, coords, 2, 1, 4, 0)

		assert.Equal(t, uint32(0), ids[0], "left of range untouched")
		assert.Equal(t, uint32(5), ids[5], "right of range untouched")
		assert.Equal(t, float64(3), coords[4])
	})
}

func TestItems_swap(t *testing.T) {
	it := newItems([]uint32{10, 20}, []float64{1, 2, 3, 4})

	it.swap(0, 1)

	assert.Equal(t, []uint32{20, 10}, it.ids)
	assert.Equal(t, []float64{3, 4, 1, 2}, it.coords)
}
