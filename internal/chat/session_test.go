package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewSessionOpensWithGreeting(t *testing.T) {
	s := NewSession()

	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	require.Equal(t, RoleModel, transcript[0].Role)
	require.Equal(t, Greeting, transcript[0].Text)

	// The greeting is display-only.
	require.Zero(t, s.HistoryLen())
}

func TestAppendChunkAccumulatesInOrder(t *testing.T) {
	s := NewSession()
	s.AppendUser("hi", "")
	s.BeginModelMessage()

	for _, chunk := range []string{"Hel", "lo", " there"} {
		s.AppendChunk(chunk)
	}

	transcript := s.Transcript()
	require.Equal(t, "Hello there", transcript[len(transcript)-1].Text)
}

func TestCompleteExchangeAppendsOneHistoryPair(t *testing.T) {
	s := NewSession()
	s.AppendUser("best cafes?", "")
	s.BeginModelMessage()
	s.AppendChunk("Try Cafe X.")
	s.CompleteExchange("best cafes?", nil, "Try Cafe X.")

	history := s.History()
	require.Len(t, history, 2)
	require.Equal(t, string(genai.RoleUser), string(history[0].Role))
	require.Equal(t, "best cafes?", history[0].Parts[0].Text)
	require.Equal(t, string(genai.RoleModel), string(history[1].Role))
	require.Equal(t, "Try Cafe X.", history[1].Parts[0].Text)
}

func TestCompleteExchangeImagePrecedesText(t *testing.T) {
	s := NewSession()
	image := genai.NewPartFromBytes([]byte{1}, "image/png")
	s.CompleteExchange("what is this?", image, "A landmark.")

	history := s.History()
	require.Len(t, history[0].Parts, 2)
	require.Same(t, image, history[0].Parts[0])
	require.Equal(t, "what is this?", history[0].Parts[1].Text)
}

func TestFailExchangeReusesEmptyPlaceholder(t *testing.T) {
	s := NewSession()
	s.AppendUser("hi", "")
	s.BeginModelMessage()
	s.FailExchange("it broke")

	transcript := s.Transcript()
	require.Len(t, transcript, 3) // greeting, user, error
	require.Equal(t, "it broke", transcript[2].Text)
	require.Zero(t, s.HistoryLen())
}

func TestFailExchangeKeepsPartialStreamText(t *testing.T) {
	s := NewSession()
	s.AppendUser("hi", "")
	s.BeginModelMessage()
	s.AppendChunk("partial answer")
	s.FailExchange("it broke")

	transcript := s.Transcript()
	require.Len(t, transcript, 4)
	require.Equal(t, "partial answer", transcript[2].Text)
	require.Equal(t, "it broke", transcript[3].Text)
	require.Zero(t, s.HistoryLen())
}
