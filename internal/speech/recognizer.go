// Package speech wraps the platform's speech-to-text capability in an
// explicit finite-state machine: Idle -> Listening -> {Result | Error}
// -> Idle. One listening session at a time; exactly one final
// transcript per session, no interim results.
package speech

import (
	"context"
	"errors"
)

// Sentinel conditions surfaced by recognizers.
var (
	// ErrUnsupported means this machine offers no speech recognition.
	// Detected once at initialization; the feature degrades to an
	// unavailable state instead of retrying.
	ErrUnsupported = errors.New("speech recognition is not supported on this system")

	// ErrBusy means a listening session is already active.
	ErrBusy = errors.New("a listening session is already active")

	// ErrNoSpeech means a session ended without hearing anything.
	ErrNoSpeech = errors.New("no speech detected")
)

// EventKind discriminates recognition events.
type EventKind int

const (
	// EventStart fires when the session actually begins listening.
	EventStart EventKind = iota
	// EventResult carries the single final transcript of a session.
	EventResult
	// EventError ends a session without a transcript.
	EventError
)

// Event is a discrete recognition event.
type Event struct {
	Kind       EventKind
	Transcript string
	Err        error
}

// Recognizer is the speech-to-text session contract.
type Recognizer interface {
	// Supported reports whether the capability exists at all.
	Supported() bool

	// Listening reports whether a session is active.
	Listening() bool

	// Start begins a listening session. Returns ErrUnsupported or
	// ErrBusy without side effects when the preconditions fail.
	Start(ctx context.Context) error

	// Stop requests the active session to finish and emit its final
	// transcript. No-op when idle.
	Stop()
}
