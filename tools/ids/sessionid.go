package ids

import (
	"crypto/rand"
	"encoding/hex"
)

// sessionAlphabet drops visually ambiguous glyphs (0/O, 1/I).
// Exactly 32 runes so a masked random byte maps uniformly.
const sessionAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const sessionCodeLen = 6

// NewSessionCode draws a 6-character code and redraws while exists reports
// the code as a live key. The caller is expected to hold whatever lock
// makes exists authoritative for the subsequent insert.
func NewSessionCode(exists func(string) bool) string {
	for {
		code := randomCode()
		if exists == nil || !exists(code) {
			return code
		}
	}
}

func randomCode() string {
	var raw [sessionCodeLen]byte
	if _, err := rand.Read(raw[:]); err != nil {
		panic("ids: crypto/rand unavailable: " + err.Error())
	}
	out := make([]byte, sessionCodeLen)
	for i, b := range raw {
		out[i] = sessionAlphabet[b&31]
	}
	return string(out)
}

// NewConnID returns a short random id used to tag a single socket in logs.
func NewConnID() string {
	var raw [3]byte
	if _, err := rand.Read(raw[:]); err != nil {
		panic("ids: crypto/rand unavailable: " + err.Error())
	}
	return "c-" + hex.EncodeToString(raw[:])
}
