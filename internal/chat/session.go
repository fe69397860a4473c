// Package chat holds the assistant conversation state and its
// streaming orchestrator.
package chat

import (
	"sync"
	"time"

	"google.golang.org/genai"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one UI-facing transcript entry. The last entry may be
// mutated in place while a streaming response is still arriving; every
// other entry is append-only.
type Message struct {
	Role  Role
	Text  string
	Image string // optional data URI of an attached image
}

// Greeting opens every new conversation. It is shown in the transcript
// but never sent to the provider.
const Greeting = "Hello! How can I help you plan your trip today?"

// Session keeps the UI transcript and the provider-facing history in
// lockstep: one user+model transcript pair corresponds to exactly one
// history pair, and history gains that pair only after the streamed
// response has fully completed. A failed exchange never reaches
// history.
type Session struct {
	ID        string
	StartTime time.Time

	mu         sync.RWMutex
	transcript []Message
	history    []*genai.Content
}

// NewSession creates a session opened with the greeting.
func NewSession() *Session {
	return &Session{
		ID:         time.Now().Format("20060102-150405"),
		StartTime:  time.Now(),
		transcript: []Message{{Role: RoleModel, Text: Greeting}},
		history:    make([]*genai.Content, 0),
	}
}

// AppendUser optimistically appends the user's message to the
// transcript. History is not touched here.
func (s *Session) AppendUser(text, imageURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Message{Role: RoleUser, Text: text, Image: imageURI})
}

// BeginModelMessage appends the empty placeholder the stream will fill.
func (s *Session) BeginModelMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Message{Role: RoleModel})
}

// AppendChunk concatenates an incremental chunk into the streaming
// placeholder. Chunks must be applied in arrival order; the caller is
// the single stream consumer, so ordering holds by construction.
func (s *Session) AppendChunk(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.transcript); n > 0 && s.transcript[n-1].Role == RoleModel {
		s.transcript[n-1].Text += text
	}
}

// FailExchange surfaces an error in the transcript without touching
// history and without rolling back the optimistic user message. An
// empty streaming placeholder is reused; otherwise a new model entry is
// appended.
func (s *Session) FailExchange(errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.transcript); n > 0 && s.transcript[n-1].Role == RoleModel && s.transcript[n-1].Text == "" {
		s.transcript[n-1].Text = errText
		return
	}
	s.transcript = append(s.transcript, Message{Role: RoleModel, Text: errText})
}

// CompleteExchange appends the finished user+model pair to the provider
// history. Called only after the stream has fully completed. The image
// part, when present, precedes the text part, matching the request
// shape that was sent.
func (s *Session) CompleteExchange(prompt string, image *genai.Part, modelText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userParts := []*genai.Part{genai.NewPartFromText(prompt)}
	if image != nil {
		userParts = append([]*genai.Part{image}, userParts...)
	}

	s.history = append(s.history,
		genai.NewContentFromParts(userParts, genai.RoleUser),
		genai.NewContentFromText(modelText, genai.RoleModel),
	)
}

// Transcript returns a copy of the UI transcript.
func (s *Session) Transcript() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// History returns a copy of the provider-facing history.
func (s *Session) History() []*genai.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*genai.Content, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryLen returns the number of history entries.
func (s *Session) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
