// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New when the declared point
	// count is zero.
	ErrInvalidCapacity = textErr("invalid capacity")
	// ErrIncomplete is returned by Index.Finish when fewer points have
	// been added than were declared to New. The returned error wraps
	// ErrIncomplete with the actual counts.
	ErrIncomplete = textErr("incomplete index")
	// ErrFinished is returned by Index.Finish when the index has
	// already been finished.
	ErrFinished = textErr("index already finished")
	// ErrNotReady is returned when searching an index which has not
	// been successfully finished.
	ErrNotReady = textErr("index not ready")
	// ErrInvalidRadius is returned by Index.Within and Index.Search
	// when a circle's radius is negative or NaN.
	ErrInvalidRadius = textErr("invalid radius")
)

const packageName = "kdbush: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
