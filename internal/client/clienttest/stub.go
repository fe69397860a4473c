// Package clienttest provides a configurable stub of the provider
// client for orchestrator tests.
package clienttest

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"tripmate/internal/client"
	"tripmate/internal/location"
	"tripmate/internal/request"
	"tripmate/internal/travel"
)

var errNotStubbed = errors.New("clienttest: operation not stubbed")

// Stub implements client.Client with per-operation hooks. Unset hooks
// fail, so a test only exercises the operations it configured. Call
// counts are recorded per operation.
type Stub struct {
	HomeDataFunc         func(ctx context.Context, loc *location.Info) (*travel.HomeData, error)
	StreamChatFunc       func(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error)
	TripPlanFunc         func(ctx context.Context, loc *location.Info, preferences string) (*travel.DayPlan, error)
	TripSummaryImageFunc func(ctx context.Context, plan *travel.DayPlan) (string, error)
	AnalyzeImageFunc     func(ctx context.Context, prompt string, image *genai.Part, loc *location.Info) (string, error)
	TranslateFunc        func(ctx context.Context, text, targetLanguage string, style request.Style) (string, error)
	SynthesizeFunc       func(ctx context.Context, text string) ([]byte, error)
	EmergencyInfoFunc    func(ctx context.Context, loc *location.Info) (*travel.EmergencyInfo, error)

	mu    sync.Mutex
	calls map[string]int
}

// Calls returns how many times the named operation was invoked.
func (s *Stub) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Stub) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[op]++
}

func (s *Stub) HomeData(ctx context.Context, loc *location.Info) (*travel.HomeData, error) {
	s.record("HomeData")
	if s.HomeDataFunc == nil {
		return nil, errNotStubbed
	}
	return s.HomeDataFunc(ctx, loc)
}

func (s *Stub) StreamChat(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*client.StreamingResponse, error) {
	s.record("StreamChat")
	if s.StreamChatFunc == nil {
		return nil, errNotStubbed
	}
	return s.StreamChatFunc(ctx, history, prompt, image, loc)
}

func (s *Stub) TripPlan(ctx context.Context, loc *location.Info, preferences string) (*travel.DayPlan, error) {
	s.record("TripPlan")
	if s.TripPlanFunc == nil {
		return nil, errNotStubbed
	}
	return s.TripPlanFunc(ctx, loc, preferences)
}

func (s *Stub) TripSummaryImage(ctx context.Context, plan *travel.DayPlan) (string, error) {
	s.record("TripSummaryImage")
	if s.TripSummaryImageFunc == nil {
		return "", errNotStubbed
	}
	return s.TripSummaryImageFunc(ctx, plan)
}

func (s *Stub) AnalyzeImage(ctx context.Context, prompt string, image *genai.Part, loc *location.Info) (string, error) {
	s.record("AnalyzeImage")
	if s.AnalyzeImageFunc == nil {
		return "", errNotStubbed
	}
	return s.AnalyzeImageFunc(ctx, prompt, image, loc)
}

func (s *Stub) Translate(ctx context.Context, text, targetLanguage string, style request.Style) (string, error) {
	s.record("Translate")
	if s.TranslateFunc == nil {
		return "", errNotStubbed
	}
	return s.TranslateFunc(ctx, text, targetLanguage, style)
}

func (s *Stub) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.record("Synthesize")
	if s.SynthesizeFunc == nil {
		return nil, errNotStubbed
	}
	return s.SynthesizeFunc(ctx, text)
}

func (s *Stub) EmergencyInfo(ctx context.Context, loc *location.Info) (*travel.EmergencyInfo, error) {
	s.record("EmergencyInfo")
	if s.EmergencyInfoFunc == nil {
		return nil, errNotStubbed
	}
	return s.EmergencyInfoFunc(ctx, loc)
}

func (s *Stub) Close() error { return nil }

// Stream builds a completed streaming response delivering the given
// chunks in order.
func Stream(chunks ...client.ResponseChunk) *client.StreamingResponse {
	ch := make(chan client.ResponseChunk, len(chunks))
	done := make(chan struct{})
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	close(done)
	return &client.StreamingResponse{Chunks: ch, Done: done}
}
