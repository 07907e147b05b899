package core

import (
	"strings"
	"time"
)

const (
	// ChordLeader starts a navigation chord.
	ChordLeader = "g"
	// ChordTimeout bounds how long a chord stays armed.
	ChordTimeout = 800 * time.Millisecond
)

// ChordDecision is the outcome of feeding one key-down into the chord
// recognizer.
type ChordDecision struct {
	// Armed is set when this key armed the chord; the caller must
	// schedule exactly one expiry carrying Seq.
	Armed bool
	// Seq identifies the pending expiry. Stale expiries are ignored.
	Seq int
	// Path is the navigation target of a completed chord, empty otherwise.
	Path string
	// Consumed is set when an armed chord swallowed the key (mapped or not).
	Consumed bool
}

// Chord recognizes two-key leader sequences: the leader arms it, and the
// next key within the timeout either navigates (mapped) or is dropped
// (unmapped). At most one chord is armed at a time; every transition out
// of the armed state invalidates the pending expiry by bumping the
// sequence counter, so no expiry can fire twice or after a completed
// chord.
type Chord struct {
	armed   bool
	seq     int
	targets map[string]string
}

// NewChord builds a recognizer over a static follow-up-key to path map.
// The map is read-only after construction.
func NewChord(targets map[string]string) *Chord {
	t := make(map[string]string, len(targets))
	for k, v := range targets {
		t[strings.ToLower(k)] = v
	}
	return &Chord{targets: t}
}

// Armed exposes the in-progress state for UI feedback.
func (c *Chord) Armed() bool { return c.armed }

// Targets returns the follow-up key map, for help overlays.
func (c *Chord) Targets() map[string]string {
	out := make(map[string]string, len(c.targets))
	for k, v := range c.targets {
		out[k] = v
	}
	return out
}

// HandleKey feeds one key-down into the recognizer. Keys carrying a
// modifier and keys typed while an input is focused are ignored entirely:
// they neither arm, disarm, nor complete a chord (the pending expiry
// timer stays the sole cancellation mechanism in that case). The guard
// flags are evaluated by the caller fresh on every key-down.
func (c *Chord) HandleKey(key string, modified, inputFocused bool) ChordDecision {
	if modified || inputFocused {
		return ChordDecision{}
	}
	k := strings.ToLower(key)

	if !c.armed {
		if k == ChordLeader {
			c.armed = true
			c.seq++
			return ChordDecision{Armed: true, Seq: c.seq}
		}
		return ChordDecision{}
	}

	// Armed: un-arm first regardless of outcome. The leader itself is not
	// a target, so leader-then-leader cancels rather than re-arming.
	c.armed = false
	c.seq++
	if path, ok := c.targets[k]; ok {
		return ChordDecision{Path: path, Consumed: true}
	}
	return ChordDecision{Consumed: true}
}

// Expire handles a fired timeout. Only the expiry matching the arming
// that scheduled it un-arms; anything else is stale and ignored.
// Reports whether the state changed.
func (c *Chord) Expire(seq int) bool {
	if c.armed && seq == c.seq {
		c.armed = false
		return true
	}
	return false
}
