package relay

import (
	errs "WProject/tools/errs"
)

// Role is fixed for a connection's lifetime, supplied at handshake.
type Role string

const (
	// RoleHorizon owns the real resource; at most one authoritative sink per session.
	RoleHorizon Role = "horizon"
	// RoleVoyager observes and sends control input; zero or more per session.
	RoleVoyager Role = "voyager"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleHorizon:
		return RoleHorizon, nil
	case RoleVoyager:
		return RoleVoyager, nil
	default:
		return "", errs.ErrInvalidRole.WithDetail(raw)
	}
}

// Session groups one optional Horizon queue with any number of Voyager
// queues. It holds send capabilities only, never sockets; teardown of a
// member is that member's own job.
type Session struct {
	horizon  *Outbound
	voyagers []*Outbound
}

func newSession() *Session {
	return &Session{}
}

// empty sessions are garbage-collected immediately after every departure.
func (s *Session) empty() bool {
	return s.horizon == nil && len(s.voyagers) == 0
}

// SessionStatus is the admin-facing view of one session.
type SessionStatus struct {
	Session          string `json:"session"`
	HorizonConnected bool   `json:"horizon_connected"`
	VoyagerCount     int    `json:"voyager_count"`
}

func (s *Session) status(id string) SessionStatus {
	return SessionStatus{
		Session:          id,
		HorizonConnected: s.horizon != nil,
		VoyagerCount:     len(s.voyagers),
	}
}
