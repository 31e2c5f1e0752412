// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/gogama/kdbush/kdsort"
)

// Index is a static spatial index of two-dimensional points.
//
// The zero value is not usable; create an Index with New. An Index is
// not safe for concurrent use until Finish has returned successfully,
// after which it is read-only.
type Index struct {
	stateful
	// numItems is the number of points declared to New.
	numItems int
	// nodeSize is the range length below which the kd-tree is not
	// split any further. Ranges of nodeSize+1 points or fewer are
	// scanned linearly during a search.
	nodeSize int
	// ids holds the id of the point at each position. Before Finish it
	// is the identity; afterward it is in kd-sorted order.
	ids []uint32
	// coords holds the interleaved X and Y coordinates of the point at
	// each position, permuted together with ids.
	coords []float64
	// pos is the number of points added so far.
	pos int
	// logger receives construction events.
	logger *slog.Logger
}

// New creates an empty index for exactly numItems points. Ranges of
// nodeSize+1 points or fewer are left unsorted and scanned linearly
// during search. A larger nodeSize makes Finish faster and searches
// slightly slower; 64 is a reasonable default.
//
// New returns ErrInvalidCapacity if numItems is zero.
func New(numItems uint32, nodeSize uint16, opts ...Option) (*Index, error) {
	if numItems == 0 {
		return nil, ErrInvalidCapacity
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Index{
		stateful: stateful{state: building},
		numItems: int(numItems),
		nodeSize: int(nodeSize),
		ids:      make([]uint32, numItems),
		coords:   make([]float64, 2*int(numItems)),
		logger:   o.logger,
	}, nil
}

// Add adds a point to the index and returns its id, which is the
// number of points added before it.
//
// Add panics if the index is finished or if numItems points have
// already been added.
func (idx *Index) Add(x, y float64) uint32 {
	if !idx.is(building) {
		textPanic("add to finished index")
	}
	if idx.pos == idx.numItems {
		fmtPanic("too many points (numItems=%d)", idx.numItems)
	}

	id := uint32(idx.pos)
	idx.ids[idx.pos] = id
	idx.coords[2*idx.pos] = x
	idx.coords[2*idx.pos+1] = y
	idx.pos++
	return id
}

// Finish kd-sorts the points, making the index ready to search.
//
// If fewer points have been added than were declared to New, Finish
// returns an error wrapping ErrIncomplete and leaves the index
// unchanged; more points may then be added and Finish called again. If
// the index is already finished, Finish returns ErrFinished.
func (idx *Index) Finish() error {
	if idx.is(finished) {
		return ErrFinished
	}
	if idx.pos != idx.numItems {
		idx.logger.Warn("kdbush: finish called on incomplete index",
			"added", idx.pos,
			"num_items", idx.numItems,
		)
		return wrapErr("added %d of %d points", ErrIncomplete, idx.pos, idx.numItems)
	}

	kdsort.Sort(idx.ids, idx.coords, idx.nodeSize)

	if !idx.toState(building, finished) {
		textPanic("logic error: index not building")
	}

	idx.logger.Debug("kdbush: index finished",
		"num_items", idx.numItems,
		"node_size", idx.nodeSize,
		"footprint", humanize.IBytes(idx.footprint()),
	)
	return nil
}

// footprint returns the size in bytes of the index's point storage.
func (idx *Index) footprint() uint64 {
	return uint64(len(idx.ids))*uint64(unsafe.Sizeof(uint32(0))) +
		uint64(len(idx.coords))*uint64(unsafe.Sizeof(float64(0)))
}

// NumItems returns the number of points declared to New.
func (idx *Index) NumItems() int {
	return idx.numItems
}

// NodeSize returns the node size declared to New.
func (idx *Index) NodeSize() int {
	return idx.nodeSize
}

// Finished reports whether Finish has succeeded.
func (idx *Index) Finished() bool {
	return idx.is(finished)
}

// Point returns the id and coordinates of the point at position i of
// the index's internal arrays, which are in kd-sorted order once the
// index is finished. It panics if i is out of range.
func (idx *Index) Point(i int) (id uint32, x, y float64) {
	if i < 0 || i >= idx.numItems {
		fmtPanic("point position out of range (i=%d, numItems=%d)", i, idx.numItems)
	}
	return idx.ids[i], idx.coords[2*i], idx.coords[2*i+1]
}

// String returns a summary description of the index.
func (idx *Index) String() string {
	return fmt.Sprintf("Index{NumItems:%d,NodeSize:%d,Finished:%t}", idx.numItems, idx.nodeSize, idx.Finished())
}

// Search returns the ids of all points matched by a predicate. Results
// are in the order the search visits them, which is fixed for a given
// finished index and predicate.
//
// Search returns ErrNotReady if the index is not finished and
// ErrInvalidRadius if p is a Circle with a negative or NaN radius. It
// panics if p is nil.
func (idx *Index) Search(p Predicate) (Results, error) {
	if p == nil {
		textPanic("nil predicate")
	}
	if !idx.is(finished) {
		return nil, ErrNotReady
	}
	if c, ok := p.(Circle); ok && !c.valid() {
		return nil, ErrInvalidRadius
	}
	return idx.search(p), nil
}

// Range returns the ids of all points inside the axis-aligned box from
// (minX, minY) to (maxX, maxY), boundary included.
//
// Range returns ErrNotReady if the index is not finished.
func (idx *Index) Range(minX, minY, maxX, maxY float64) (Results, error) {
	return idx.Search(Box{XMin: minX, YMin: minY, XMax: maxX, YMax: maxY})
}

// Within returns the ids of all points whose distance from (qx, qy) is
// at most r.
//
// Within returns ErrNotReady if the index is not finished and
// ErrInvalidRadius if r is negative or NaN.
func (idx *Index) Within(qx, qy, r float64) (Results, error) {
	return idx.Search(Circle{X: qx, Y: qy, R: r})
}
