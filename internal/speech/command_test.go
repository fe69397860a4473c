package speech

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripmate/internal/config"
)

// eventSink collects recognizer events for assertions.
type eventSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *eventSink) add(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *eventSink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *eventSink) waitKind(t *testing.T, kind EventKind) Event {
	t.Helper()
	var found Event
	require.Eventually(t, func() bool {
		for _, ev := range s.snapshot() {
			if ev.Kind == kind {
				found = ev
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	return found
}

func TestMissingCommandIsPermanentlyUnsupported(t *testing.T) {
	r := NewCommandRecognizer(config.SpeechConfig{Command: "definitely-not-a-real-transcriber"}, nil)
	require.False(t, r.Supported())
	require.ErrorIs(t, r.Start(context.Background()), ErrUnsupported)
}

func TestEmptyCommandIsUnsupported(t *testing.T) {
	r := NewCommandRecognizer(config.SpeechConfig{}, nil)
	require.False(t, r.Supported())
}

func TestTranscriptDeliveredAsResult(t *testing.T) {
	sink := &eventSink{}
	// echo stands in for a transcriber that prints its transcript and
	// exits on its own.
	r := NewCommandRecognizer(config.SpeechConfig{
		Command: "echo",
		Args:    []string{"where is the station"},
	}, sink.add)
	require.True(t, r.Supported())

	require.NoError(t, r.Start(context.Background()))
	sink.waitKind(t, EventStart)
	ev := sink.waitKind(t, EventResult)
	require.Equal(t, "where is the station", ev.Transcript)

	require.Eventually(t, func() bool { return !r.Listening() },
		5*time.Second, 10*time.Millisecond)
}

func TestEmptyTranscriptIsNoSpeech(t *testing.T) {
	sink := &eventSink{}
	r := NewCommandRecognizer(config.SpeechConfig{Command: "true"}, sink.add)
	require.True(t, r.Supported())

	require.NoError(t, r.Start(context.Background()))
	ev := sink.waitKind(t, EventError)
	require.ErrorIs(t, ev.Err, ErrNoSpeech)
}

func TestStartWhileListeningIsBusy(t *testing.T) {
	sink := &eventSink{}
	r := NewCommandRecognizer(config.SpeechConfig{
		Command: "sleep",
		Args:    []string{"5"},
	}, sink.add)
	require.True(t, r.Supported())

	require.NoError(t, r.Start(context.Background()))
	sink.waitKind(t, EventStart)
	require.ErrorIs(t, r.Start(context.Background()), ErrBusy)

	r.Stop()
	require.Eventually(t, func() bool { return !r.Listening() },
		5*time.Second, 10*time.Millisecond)
}

func TestLanguageFlagAppended(t *testing.T) {
	sink := &eventSink{}
	r := NewCommandRecognizer(config.SpeechConfig{
		Command:  "echo",
		Args:     []string{"hola"},
		Language: "es",
	}, sink.add)

	require.NoError(t, r.Start(context.Background()))
	ev := sink.waitKind(t, EventResult)
	// echo prints its arguments, so the language flag shows up in the
	// transcript and proves it was passed through.
	require.Equal(t, "hola --language es", ev.Transcript)
}
