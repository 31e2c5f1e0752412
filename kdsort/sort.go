// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdsort

import (
	"fmt"
	"math"
)

const packageName = "kdsort: "

// selectThreshold is the range length above which Select narrows the
// range around k using a sub-sample estimate before partitioning.
const selectThreshold = 600

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}

// items is a view over the parallel id and coordinate slices. The
// point stored at position i has id ids[i] and coordinates
// (coords[2*i], coords[2*i+1]).
type items struct {
	ids    []uint32
	coords []float64
}

func newItems(ids []uint32, coords []float64) items {
	if 2*len(ids) != len(coords) {
		fmtPanic("coords length must be twice ids length (len(ids)=%d, len(coords)=%d)", len(ids), len(coords))
	}
	return items{ids: ids, coords: coords}
}

// value returns the coordinate of point i on the given axis.
func (it items) value(i, axis int) float64 {
	return it.coords[2*i+axis]
}

// swap exchanges the points at positions i and j, moving the id and
// both coordinates together.
func (it items) swap(i, j int) {
	it.ids[i], it.ids[j] = it.ids[j], it.ids[i]
	it.coords[2*i], it.coords[2*j] = it.coords[2*j], it.coords[2*i]
	it.coords[2*i+1], it.coords[2*j+1] = it.coords[2*j+1], it.coords[2*i+1]
}

// Sort kd-sorts the points in place so that ids and coords form an
// implicit kd-tree whose ranges of length nodeSize+1 or less are left
// unordered leaves. The first split is on the X axis and the split
// axis alternates with each level.
//
// coords must hold the interleaved X and Y coordinates of the points,
// so its length must be exactly twice the length of ids. Sort panics if
// this is not so, or if nodeSize is negative.
func Sort(ids []uint32, coords []float64, nodeSize int) {
	it := newItems(ids, coords)
	if nodeSize < 0 {
		fmtPanic("node size must not be negative (nodeSize=%d)", nodeSize)
	}
	it.sort(nodeSize, 0, len(ids)-1, 0)
}

func (it items) sort(nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}

	m := (left + right) >> 1

	// Partition around the middle so that the halves lie either
	// left/right or below/above it, depending on the axis.
	it.selectK(m, left, right, axis)

	it.sort(nodeSize, left, m-1, 1-axis)
	it.sort(nodeSize, m+1, right, 1-axis)
}

// Select partially orders the points in the closed range [left, right]
// on the given axis (0 for X, 1 for Y) so that the point at position k
// is the one which would be there if the range were sorted, every point
// before k has an axis value less than or equal to it, and every point
// after k has an axis value greater than or equal to it.
//
// Select uses the Floyd-Rivest selection algorithm and runs in expected
// linear time. It panics if k is outside [left, right], if the range is
// outside the slices, if axis is not 0 or 1, or if the slice lengths
// disagree as described for Sort.
func Select(ids []uint32, coords []float64, k, left, right, axis int) {
	it := newItems(ids, coords)
	if left < 0 || right >= len(ids) || k < left || k > right {
		fmtPanic("invalid selection (k=%d, left=%d, right=%d, len=%d)", k, left, right, len(ids))
	}
	if axis != 0 && axis != 1 {
		fmtPanic("axis must be 0 or 1 (axis=%d)", axis)
	}
	it.selectK(k, left, right, axis)
}

func (it items) selectK(k, left, right, axis int) {
	for right > left {
		if right-left > selectThreshold {
			n := right - left + 1
			m := k - left + 1
			z := math.Log(float64(n))
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(float64(n)-s)/float64(n))
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := max(left, int(math.Floor(float64(k)-float64(m)*s/float64(n)+sd)))
			newRight := min(right, int(math.Floor(float64(k)+float64(n-m)*s/float64(n)+sd)))
			it.selectK(k, newLeft, newRight, axis)
		}

		t := it.value(k, axis)
		i := left
		j := right

		it.swap(left, k)
		if it.value(right, axis) > t {
			it.swap(left, right)
		}

		for i < j {
			it.swap(i, j)
			i++
			j--
			for it.value(i, axis) < t {
				i++
			}
			for it.value(j, axis) > t {
				j--
			}
		}

		if it.value(left, axis) == t {
			it.swap(left, j)
		} else {
			j++
			it.swap(j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}
