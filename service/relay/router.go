package relay

// Route forwards one inbound frame according to the sender's role.
// It runs under the registry lock so failed-send pruning and the
// membership it observes are a single atomic step; the actual socket
// writes happen later on each peer's own writer goroutine, so the lock is
// never held across I/O.
//
// Rules:
//   - Horizon frame: fan out to every voyager queue; any queue that
//     rejects the push is a dead Voyager and is pruned in the same pass.
//   - Voyager frame with a Horizon present: send to the horizon queue; a
//     failed push means the Horizon is gone, clear the slot (its handler
//     runs its own identity-guarded Leave later).
//   - Voyager frame with no Horizon: drop, unless the frame declares a
//     control-intent type, in which case the origin gets a horizon_offline
//     error frame.
//   - Unknown session: drop silently.
//
// No retries anywhere: a failed push is proof of peer death, not a
// transient condition.
func (r *Registry) Route(sessionID string, role Role, f Frame, origin *Outbound) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.sessions[sessionID]
	if s == nil {
		return
	}

	switch role {
	case RoleHorizon:
		kept := s.voyagers[:0]
		for _, v := range s.voyagers {
			if v.Push(f) == nil {
				kept = append(kept, v)
			}
		}
		s.voyagers = kept

	case RoleVoyager:
		if s.horizon != nil {
			if s.horizon.Push(f) != nil {
				s.horizon = nil
			}
			return
		}
		if origin == nil {
			return
		}
		if reply, ok := BuildHorizonOfflineReply(f); ok {
			_ = origin.Push(reply)
		}
	}
}
