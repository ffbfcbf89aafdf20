package relay

import (
	"sync"

	errs "WProject/tools/errs"
	ids "WProject/tools/ids"
)

// Registry is the process-wide session table, the only state touched by
// more than one goroutine. One coarse mutex serializes every operation:
// they are all O(1)-ish map work, and the per-connection Outbound queues
// keep socket I/O out of the critical section.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Join registers a queue under a session, creating the session if needed.
// An empty sessionID is only legal for a Horizon and gets a generated code;
// generation runs under the same lock as the insert so two Horizons can
// never be handed the same code.
//
// A joining Horizon unconditionally displaces any existing one
// (last-writer-wins); replaced reports whether that happened so the caller
// can log it. The displaced connection is not closed — it is simply no
// longer reachable through the session.
func (r *Registry) Join(sessionID string, role Role, q *Outbound) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sessionID == "" {
		if role != RoleHorizon {
			return "", false, errs.ErrMissingSession
		}
		sessionID = ids.NewSessionCode(func(code string) bool {
			_, live := r.sessions[code]
			return live
		})
	}

	s := r.sessions[sessionID]
	if s == nil {
		s = newSession()
		r.sessions[sessionID] = s
	}

	replaced := false
	switch role {
	case RoleHorizon:
		replaced = s.horizon != nil
		s.horizon = q
	case RoleVoyager:
		s.voyagers = append(s.voyagers, q)
	}
	return sessionID, replaced, nil
}

// Leave removes this exact queue from the session. The comparison is
// pointer identity: a slow-closing Horizon whose slot was already taken by
// a replacement must not erase the replacement. No-op when the session is
// already gone.
func (r *Registry) Leave(sessionID string, role Role, q *Outbound) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.sessions[sessionID]
	if s == nil {
		return
	}

	switch role {
	case RoleHorizon:
		if s.horizon == q {
			s.horizon = nil
		}
	case RoleVoyager:
		kept := s.voyagers[:0]
		for _, v := range s.voyagers {
			if v != q {
				kept = append(kept, v)
			}
		}
		s.voyagers = kept
	}

	if s.empty() {
		delete(r.sessions, sessionID)
	}
}

// Snapshot enumerates every live session for the admin listing.
func (r *Registry) Snapshot() []SessionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]SessionStatus, 0, len(r.sessions))
	for id, s := range r.sessions {
		out = append(out, s.status(id))
	}
	return out
}

// Get reports one session's status; ok is false when the id has no live entry.
func (r *Registry) Get(sessionID string) (SessionStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.sessions[sessionID]
	if s == nil {
		return SessionStatus{}, false
	}
	return s.status(sessionID), true
}

// Close pushes a close signal to every member queue (horizon first, then
// voyagers) and removes the entry. Returns whether a session existed.
// Each member's own handler performs its Leave independently; by then the
// entry is gone and Leave no-ops.
func (r *Registry) Close(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.sessions[sessionID]
	if s == nil {
		return false
	}

	if s.horizon != nil {
		_ = s.horizon.Push(CloseSignal())
	}
	for _, v := range s.voyagers {
		_ = v.Push(CloseSignal())
	}
	delete(r.sessions, sessionID)
	return true
}
