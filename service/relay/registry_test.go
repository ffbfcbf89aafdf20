package relay

import (
	"strings"
	"testing"

	errs "WProject/tools/errs"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func TestJoinHorizonGeneratesCode(t *testing.T) {
	r := NewRegistry()
	q := NewOutbound()

	id, replaced, err := r.Join("", RoleHorizon, q)
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Len(t, id, 6)
	for _, ch := range id {
		assert.True(t, strings.ContainsRune(codeAlphabet, ch), "unexpected rune %q", ch)
	}

	status, ok := r.Get(id)
	require.True(t, ok)
	assert.True(t, status.HorizonConnected)
	assert.Zero(t, status.VoyagerCount)
}

func TestJoinVoyagerRequiresSession(t *testing.T) {
	r := NewRegistry()
	_, _, err := r.Join("", RoleVoyager, NewOutbound())
	require.Error(t, err)
	assert.Equal(t, errs.ErrMissingSession, err)
}

func TestJoinVoyagerCreatesSession(t *testing.T) {
	r := NewRegistry()
	id, replaced, err := r.Join("KXWQ23", RoleVoyager, NewOutbound())
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Equal(t, "KXWQ23", id)

	status, ok := r.Get(id)
	require.True(t, ok)
	assert.False(t, status.HorizonConnected)
	assert.Equal(t, 1, status.VoyagerCount)
}

func TestGeneratedCodesUniqueWhileLive(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		id, _, err := r.Join("", RoleHorizon, NewOutbound())
		require.NoError(t, err)
		assert.False(t, seen[id], "code %s assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, r.Snapshot(), 64)
}

// Last-writer-wins: a reconnecting Horizon displaces the previous one, and
// the stale connection's later Leave must not erase the replacement.
func TestHorizonReplaceNotStack(t *testing.T) {
	r := NewRegistry()
	old := NewOutbound()
	id, replaced, err := r.Join("", RoleHorizon, old)
	require.NoError(t, err)
	require.False(t, replaced)

	fresh := NewOutbound()
	id2, replaced, err := r.Join(id, RoleHorizon, fresh)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
	assert.True(t, replaced)

	// keep a voyager attached so the session outlives the horizon churn
	_, _, err = r.Join(id, RoleVoyager, NewOutbound())
	require.NoError(t, err)

	// stale connection finally cleans up: identity check must protect fresh
	r.Leave(id, RoleHorizon, old)
	status, ok := r.Get(id)
	require.True(t, ok)
	assert.True(t, status.HorizonConnected)

	// the live one leaving does clear the slot
	r.Leave(id, RoleHorizon, fresh)
	status, ok = r.Get(id)
	require.True(t, ok)
	assert.False(t, status.HorizonConnected)
}

func TestEmptySessionGarbageCollected(t *testing.T) {
	r := NewRegistry()

	// horizon-only session dies with the horizon
	h := NewOutbound()
	id, _, err := r.Join("", RoleHorizon, h)
	require.NoError(t, err)
	r.Leave(id, RoleHorizon, h)
	_, ok := r.Get(id)
	assert.False(t, ok)

	// horizon-absent session persists while voyagers remain
	v1, v2 := NewOutbound(), NewOutbound()
	_, _, err = r.Join("WAIT42", RoleVoyager, v1)
	require.NoError(t, err)
	_, _, err = r.Join("WAIT42", RoleVoyager, v2)
	require.NoError(t, err)

	r.Leave("WAIT42", RoleVoyager, v1)
	status, ok := r.Get("WAIT42")
	require.True(t, ok)
	assert.Equal(t, 1, status.VoyagerCount)

	r.Leave("WAIT42", RoleVoyager, v2)
	_, ok = r.Get("WAIT42")
	assert.False(t, ok)
}

func TestLeaveUnknownSessionNoop(t *testing.T) {
	r := NewRegistry()
	r.Leave("GONE99", RoleHorizon, NewOutbound())
	r.Leave("GONE99", RoleVoyager, NewOutbound())
	assert.Empty(t, r.Snapshot())
}

func TestCloseSendsSignalsAndRemoves(t *testing.T) {
	r := NewRegistry()
	h := NewOutbound()
	v1, v2 := NewOutbound(), NewOutbound()

	id, _, err := r.Join("", RoleHorizon, h)
	require.NoError(t, err)
	_, _, err = r.Join(id, RoleVoyager, v1)
	require.NoError(t, err)
	_, _, err = r.Join(id, RoleVoyager, v2)
	require.NoError(t, err)

	require.True(t, r.Close(id))

	for _, q := range []*Outbound{h, v1, v2} {
		f, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, websocket.CloseMessage, f.MsgType)
	}

	_, ok := r.Get(id)
	assert.False(t, ok)
}

func TestCloseMissingSession(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Close("NOPE11"))
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	h := NewOutbound()
	id, _, err := r.Join("", RoleHorizon, h)
	require.NoError(t, err)
	_, _, err = r.Join(id, RoleVoyager, NewOutbound())
	require.NoError(t, err)
	_, _, err = r.Join("LONELY", RoleVoyager, NewOutbound())
	require.NoError(t, err)

	snap := r.Snapshot()
	require.Len(t, snap, 2)

	byID := make(map[string]SessionStatus)
	for _, st := range snap {
		byID[st.Session] = st
	}
	assert.True(t, byID[id].HorizonConnected)
	assert.Equal(t, 1, byID[id].VoyagerCount)
	assert.False(t, byID["LONELY"].HorizonConnected)
	assert.Equal(t, 1, byID["LONELY"].VoyagerCount)
}
