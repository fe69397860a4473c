package chat

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"tripmate/internal/client"
	"tripmate/internal/location"
	"tripmate/internal/logging"
)

// errExchangeFailed is the transcript entry shown when a send or stream
// fails. The optimistic user message stays in place.
const errExchangeFailed = "Sorry, I encountered an error. Please try again."

// Controller drives one conversation: Idle -> Sending -> Streaming ->
// Idle. A busy flag gates Send, so at most one exchange is in flight
// and repeated submissions serialize instead of cancelling.
type Controller struct {
	provider client.Client
	loc      func() *location.Info
	notify   func()

	mu   sync.Mutex
	s    *Session
	busy bool
}

// NewController creates a controller over a fresh session.
func NewController(provider client.Client, loc func() *location.Info, notify func()) *Controller {
	if notify == nil {
		notify = func() {}
	}
	if loc == nil {
		loc = func() *location.Info { return nil }
	}
	return &Controller{
		provider: provider,
		loc:      loc,
		notify:   notify,
		s:        NewSession(),
	}
}

// Session exposes the conversation state for rendering.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}

// Busy reports whether an exchange is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Send starts a new exchange. It is a no-op while a previous exchange
// is still in flight, or when there is nothing to send. Returns whether
// the exchange was started.
func (c *Controller) Send(ctx context.Context, prompt string, image *genai.Part, imageURI string) bool {
	if strings.TrimSpace(prompt) == "" && image == nil {
		return false
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return false
	}
	c.busy = true
	session := c.s
	c.mu.Unlock()

	// Optimistic append: the user message shows before the request is
	// even issued, and is never rolled back on failure.
	session.AppendUser(prompt, imageURI)
	c.notify()

	go c.exchange(ctx, session, prompt, image)
	return true
}

func (c *Controller) exchange(ctx context.Context, session *Session, prompt string, image *genai.Part) {
	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
		c.notify()
	}()

	stream, err := c.provider.StreamChat(ctx, session.History(), prompt, image, c.loc())
	if err != nil {
		logging.Warn("chat request failed", "error", err)
		session.FailExchange(errExchangeFailed)
		return
	}

	session.BeginModelMessage()
	c.notify()

	var full strings.Builder
	for chunk := range stream.Chunks {
		if chunk.Error != nil {
			logging.Warn("chat stream failed", "error", chunk.Error)
			session.FailExchange(errExchangeFailed)
			return
		}
		if chunk.Text != "" {
			full.WriteString(chunk.Text)
			session.AppendChunk(chunk.Text)
			c.notify()
		}
	}

	// History gains the pair only now that the stream fully completed.
	session.CompleteExchange(prompt, image, full.String())
}
