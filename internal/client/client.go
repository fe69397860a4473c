// Package client is the boundary with the generative-AI provider. One
// method per feature operation; orchestrators never touch the SDK
// directly, which keeps them testable against stubs.
package client

import (
	"context"

	"google.golang.org/genai"

	"tripmate/internal/location"
	"tripmate/internal/request"
	"tripmate/internal/travel"
)

// Client defines the provider operations used by the feature
// orchestrators. Failures never carry partial results.
type Client interface {
	// HomeData fetches the structured weather/tip/city summary.
	HomeData(ctx context.Context, loc *location.Info) (*travel.HomeData, error)

	// StreamChat sends a conversation turn and returns a streaming
	// response of incremental text chunks.
	StreamChat(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*StreamingResponse, error)

	// TripPlan fetches a structured day plan.
	TripPlan(ctx context.Context, loc *location.Info, preferences string) (*travel.DayPlan, error)

	// TripSummaryImage generates the best-effort plan collage and
	// returns it as an image/png data URI.
	TripSummaryImage(ctx context.Context, plan *travel.DayPlan) (string, error)

	// AnalyzeImage describes a picked image, optionally guided by a
	// user prompt.
	AnalyzeImage(ctx context.Context, prompt string, image *genai.Part, loc *location.Info) (string, error)

	// Translate returns the bare translated string.
	Translate(ctx context.Context, text, targetLanguage string, style request.Style) (string, error)

	// Synthesize returns raw 24 kHz mono PCM samples for the text.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// EmergencyInfo fetches the structured local emergency record.
	EmergencyInfo(ctx context.Context, loc *location.Info) (*travel.EmergencyInfo, error)

	// Close closes the client connection.
	Close() error
}

// StreamingResponse represents a streaming response from the model.
type StreamingResponse struct {
	// Chunks is a channel that receives response chunks in arrival
	// order. It is closed when the response is complete.
	Chunks <-chan ResponseChunk

	// Done is closed when the response is complete.
	Done <-chan struct{}
}

// ResponseChunk represents a single chunk in a streaming response.
type ResponseChunk struct {
	// Text contains any text content in this chunk.
	Text string

	// Error contains any error that occurred.
	Error error

	// Done indicates if this is the final chunk.
	Done bool
}

// Collect accumulates all chunks into the final text. An error chunk
// aborts the collection.
func (sr *StreamingResponse) Collect() (string, error) {
	var text string
	for chunk := range sr.Chunks {
		if chunk.Error != nil {
			return "", chunk.Error
		}
		text += chunk.Text
	}
	return text, nil
}
