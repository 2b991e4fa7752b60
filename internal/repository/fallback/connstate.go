package fallback

import "sync/atomic"

// ConnState tracks whether the remote document store is believed reachable.
// It is shared by everything that needs to branch on connectivity and is
// injected rather than read from a package global so tests can force either
// side of the branch.
//
// The flag is sticky-true: once a probe succeeds it stays set even if a later
// call fails, so a single transient error does not flip the whole storefront
// into offline mode. Only a failed probe clears it.
type ConnState struct {
	connected atomic.Bool
}

// NewConnState returns a ConnState with the given initial belief.
func NewConnState(connected bool) *ConnState {
	s := &ConnState{}
	s.connected.Store(connected)
	return s
}

// Connected reports the current belief about remote reachability.
func (s *ConnState) Connected() bool {
	return s.connected.Load()
}

// MarkConnected records a successful remote probe.
func (s *ConnState) MarkConnected() {
	s.connected.Store(true)
}

// MarkDisconnected records a failed remote probe.
func (s *ConnState) MarkDisconnected() {
	s.connected.Store(false)
}
