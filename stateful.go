// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

// stateful tracks the lifecycle of an Index. The only legal transition
// is from building to finished, and it happens at most once.
type stateful struct {
	state state
}

type state int

const (
	uninitialized state = 0x00
	invalid       state = 0x01
	building      state = 0x10
	finished      state = 0x20
)

func (s *stateful) sanityCheckState() {
	if s.state&invalid == invalid || s.state == uninitialized {
		fmtPanic("logic error: invalid state 0x%x", int(s.state))
	}
}

// toState moves from the expected state to the target state, returning
// false if the current state is some other valid state.
func (s *stateful) toState(expected, to state) bool {
	if s.state == expected {
		s.state = to
		return true
	}

	s.sanityCheckState()

	return false
}

func (s *stateful) is(st state) bool {
	return s.state == st
}
