// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdbush provides a static spatial index for two-dimensional
// points, stored as an implicit kd-tree in two flat slices.
//
// An Index is built once from a known number of points: create it with
// New, Add every point, then call Finish. Once finished, the index is
// read-only and answers box queries (Range) and radius queries (Within)
// in sub-linear time. Because a finished index is never mutated, it is
// safe to search from multiple goroutines.
//
// Search results are point ids, which are the insertion order of the
// points, and are returned in an order that depends only on the layout
// of the finished index. Repeating a query always yields the same
// results in the same order.
package kdbush
