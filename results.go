// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import "github.com/RoaringBitmap/roaring/v2"

// Results is the list of point ids matched by an index search, in the
// order the search visited them.
//
// Results implements sort.Interface. The sort.Sort function will sort
// Results in ascending order of point id, which discards the search
// order.
type Results []uint32

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by ascending point id. It
// implements the corresponding method of sort.Interface.
func (rs Results) Less(i, j int) bool {
	return rs[i] < rs[j]
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// Contains reports whether id is among the results.
func (rs Results) Contains(id uint32) bool {
	for _, r := range rs {
		if r == id {
			return true
		}
	}
	return false
}

// Bitmap returns a new Roaring bitmap holding the result ids. Bitmaps
// are convenient for combining the results of several searches, for
// example intersecting a Range with a Within.
func (rs Results) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(rs)
	return rb
}
