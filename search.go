// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import "math/bits"

// A frame is a pending work item in the search loop: the closed range
// [left, right] of the kd-sorted arrays, split on axis.
type frame struct {
	left, right int
	axis        int
}

// A frameStack holds the pending frames of a search. Frames are popped
// in last-in, first-out order, so when both halves of a range are
// pushed the upper half is searched first. Result order depends on
// this.
type frameStack []frame

func (fs *frameStack) push(f frame) {
	*fs = append(*fs, f)
}

func (fs *frameStack) pop() frame {
	old := *fs
	n := len(old)
	f := old[n-1]
	*fs = old[0 : n-1]
	return f
}

// stackCap returns a capacity for the frame stack of a search over
// numItems points. Each pop pushes at most two frames one level
// deeper, so the stack never holds more than one frame per tree level
// plus one.
func stackCap(numItems int) int {
	return bits.Len(uint(numItems)) + 2
}

// search walks the kd-sorted arrays with an explicit stack, appending
// the ids of points matched by p in visiting order.
func (idx *Index) search(p Predicate) Results {
	r := make(Results, 0, idx.numItems)
	s := make(frameStack, 0, stackCap(idx.numItems))
	s.push(frame{left: 0, right: idx.numItems - 1, axis: 0})

	for len(s) > 0 {
		f := s.pop()

		// Leaf range: scan linearly.
		if f.right-f.left <= idx.nodeSize {
			for i := f.left; i <= f.right; i++ {
				if p.Contains(idx.coords[2*i], idx.coords[2*i+1]) {
					r = append(r, idx.ids[i])
				}
			}
			continue
		}

		// The split point belongs to neither half, so test it on its
		// own.
		m := (f.left + f.right) >> 1
		x := idx.coords[2*m]
		y := idx.coords[2*m+1]
		if p.Contains(x, y) {
			r = append(r, idx.ids[m])
		}

		split := x
		if f.axis == 1 {
			split = y
		}
		if p.Lower(f.axis) <= split {
			s.push(frame{left: f.left, right: m - 1, axis: 1 - f.axis})
		}
		if p.Upper(f.axis) >= split {
			s.push(frame{left: m + 1, right: f.right, axis: 1 - f.axis})
		}
	}

	return r
}
