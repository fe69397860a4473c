package chat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"tripmate/internal/chat"
	"tripmate/internal/client"
	"tripmate/internal/client/clienttest"
	"tripmate/internal/location"
)

func waitIdle(t *testing.T, c *chat.Controller) {
	t.Helper()
	require.Eventually(t, func() bool { return !c.Busy() },
		2*time.Second, 10*time.Millisecond)
}

func TestSendStreamsAndCommitsHistory(t *testing.T) {
	stub := &clienttest.Stub{
		StreamChatFunc: func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error) {
			return clienttest.Stream(
				client.ResponseChunk{Text: "Hel"},
				client.ResponseChunk{Text: "lo"},
				client.ResponseChunk{Text: " there", Done: true},
			), nil
		},
	}
	c := chat.NewController(stub, nil, nil)

	require.True(t, c.Send(context.Background(), "hi", nil, ""))
	waitIdle(t, c)

	transcript := c.Session().Transcript()
	require.Equal(t, "Hello there", transcript[len(transcript)-1].Text)
	require.Equal(t, 2, c.Session().HistoryLen())
}

func TestSendRejectsEmptyPrompt(t *testing.T) {
	stub := &clienttest.Stub{}
	c := chat.NewController(stub, nil, nil)

	require.False(t, c.Send(context.Background(), "   ", nil, ""))
	require.Zero(t, stub.Calls("StreamChat"))
}

func TestSendBusyGateSerializesExchanges(t *testing.T) {
	release := make(chan struct{})
	stub := &clienttest.Stub{
		StreamChatFunc: func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error) {
			<-release
			return clienttest.Stream(client.ResponseChunk{Text: "ok", Done: true}), nil
		},
	}
	c := chat.NewController(stub, nil, nil)

	require.True(t, c.Send(context.Background(), "first", nil, ""))
	require.False(t, c.Send(context.Background(), "second", nil, ""))

	close(release)
	waitIdle(t, c)
	require.Equal(t, 1, stub.Calls("StreamChat"))
}

func TestRequestFailureLeavesHistoryUntouched(t *testing.T) {
	stub := &clienttest.Stub{
		StreamChatFunc: func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error) {
			return nil, errors.New("network down")
		},
	}
	c := chat.NewController(stub, nil, nil)

	require.True(t, c.Send(context.Background(), "hi", nil, ""))
	waitIdle(t, c)

	transcript := c.Session().Transcript()
	// Optimistic user message stays, followed by the error entry.
	require.Equal(t, chat.RoleUser, transcript[1].Role)
	require.Equal(t, "hi", transcript[1].Text)
	require.Equal(t, chat.RoleModel, transcript[2].Role)
	require.NotEmpty(t, transcript[2].Text)
	require.Zero(t, c.Session().HistoryLen())
}

func TestMidStreamFailureLeavesHistoryUntouched(t *testing.T) {
	stub := &clienttest.Stub{
		StreamChatFunc: func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error) {
			return clienttest.Stream(
				client.ResponseChunk{Text: "partial"},
				client.ResponseChunk{Error: errors.New("stream cut"), Done: true},
			), nil
		},
	}
	c := chat.NewController(stub, nil, nil)

	require.True(t, c.Send(context.Background(), "hi", nil, ""))
	waitIdle(t, c)

	require.Zero(t, c.Session().HistoryLen())

	// A later exchange still works against the unchanged history.
	stub.StreamChatFunc = func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error) {
		require.Empty(t, history)
		return clienttest.Stream(client.ResponseChunk{Text: "fine", Done: true}), nil
	}
	require.True(t, c.Send(context.Background(), "again", nil, ""))
	waitIdle(t, c)
	require.Equal(t, 2, c.Session().HistoryLen())
}

func TestHistoryExcludesLocationClause(t *testing.T) {
	loc := &location.Info{Latitude: 1.5, Longitude: 2.5}
	var sentPrompt string
	stub := &clienttest.Stub{
		StreamChatFunc: func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, l *location.Info) (*client.StreamingResponse, error) {
			sentPrompt = prompt
			require.Equal(t, loc, l)
			return clienttest.Stream(client.ResponseChunk{Text: "ok", Done: true}), nil
		},
	}
	c := chat.NewController(stub, func() *location.Info { return loc }, nil)

	require.True(t, c.Send(context.Background(), "hi", nil, ""))
	waitIdle(t, c)

	require.Equal(t, "hi", sentPrompt)
	history := c.Session().History()
	require.Equal(t, "hi", history[0].Parts[0].Text)
}
