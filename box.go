// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"math"
	"strconv"
)

// A Predicate selects points during an index search.
//
// Contains reports whether a point matches. Lower and Upper return the
// smallest and largest coordinate on an axis (0 for X, 1 for Y) that a
// matching point can have; the search uses them to decide which halves
// of the tree to visit. A Predicate whose Contains accepts a point
// outside [Lower, Upper] will miss matches.
type Predicate interface {
	Contains(x, y float64) bool
	Lower(axis int) float64
	Upper(axis int) float64
}

// Box is an axis-aligned rectangle. A Box contains its boundary.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Contains reports whether the point (x, y) is inside or on the
// boundary of the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Lower returns XMin for axis 0 and YMin otherwise.
func (b Box) Lower(axis int) float64 {
	if axis == 0 {
		return b.XMin
	}
	return b.YMin
}

// Upper returns XMax for axis 0 and YMax otherwise.
func (b Box) Upper(axis int) float64 {
	if axis == 0 {
		return b.XMax
	}
	return b.YMax
}

// String returns a compact representation of the box in the form
// [XMin,YMin,XMax,YMax].
func (b Box) String() string {
	return "[" + formatFloat(b.XMin) + "," + formatFloat(b.YMin) + "," + formatFloat(b.XMax) + "," + formatFloat(b.YMax) + "]"
}

// Circle is the set of points whose Euclidean distance from the center
// (X, Y) is at most R. A Circle with a negative or NaN R contains no
// points.
type Circle struct {
	X float64
	Y float64
	R float64
}

// Contains reports whether the point (x, y) is inside or on the circle.
// It compares squared distances, so no square root is taken.
func (c Circle) Contains(x, y float64) bool {
	if !c.valid() {
		return false
	}
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Lower returns X-R for axis 0 and Y-R otherwise.
func (c Circle) Lower(axis int) float64 {
	if axis == 0 {
		return c.X - c.R
	}
	return c.Y - c.R
}

// Upper returns X+R for axis 0 and Y+R otherwise.
func (c Circle) Upper(axis int) float64 {
	if axis == 0 {
		return c.X + c.R
	}
	return c.Y + c.R
}

func (c Circle) valid() bool {
	return c.R >= 0 && !math.IsNaN(c.R)
}

// String returns a compact representation of the circle in the form
// (X,Y;R).
func (c Circle) String() string {
	return "(" + formatFloat(c.X) + "," + formatFloat(c.Y) + ";" + formatFloat(c.R) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
