// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdsort lays out a set of two-dimensional points as an
// implicit kd-tree by permuting a pair of parallel slices in place.
//
// No tree nodes are allocated. After Sort, the point at the midpoint of
// any range produced by the recursion is the split value for that range
// and the halves on either side of it are the two subtrees.
package kdsort
