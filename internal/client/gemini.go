package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"tripmate/internal/config"
	"tripmate/internal/location"
	"tripmate/internal/logging"
	"tripmate/internal/request"
	"tripmate/internal/travel"
)

// GeminiClient wraps the Google Gemini API. Requests are never retried
// here: a failed call surfaces as a feature error and every retry is a
// user re-invocation.
type GeminiClient struct {
	client   *genai.Client
	models   config.ModelConfig
	timeouts config.TimeoutConfig
	base     *genai.GenerateContentConfig
}

// NewGeminiClient creates a new Gemini API client (returns Client interface).
func NewGeminiClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.API.APIKey == "" {
		return nil, config.ErrMissingAuth
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  cfg.API.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logging.Debug("created Gemini client", "model", cfg.Model.Name)

	return &GeminiClient{
		client:   client,
		models:   cfg.Model,
		timeouts: cfg.Timeout,
		base: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(cfg.Model.Temperature),
			MaxOutputTokens: cfg.Model.MaxOutputTokens,
		},
	}, nil
}

// effectiveConfig returns the request's own config when the builder
// declared one (structured output, speech), otherwise the base tuning.
func (c *GeminiClient) effectiveConfig(req request.Request) *genai.GenerateContentConfig {
	if req.Config != nil {
		return req.Config
	}
	return c.base
}

// generate performs one synchronous call under the configured request
// timeout and returns the response text.
func (c *GeminiClient) generate(ctx context.Context, req request.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Request)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, req.Contents, c.effectiveConfig(req))
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// generateJSON performs one structured call and decodes the response
// into out. A response missing a required field is a decode failure.
func (c *GeminiClient) generateJSON(ctx context.Context, req request.Request, out interface{ Validate() error }) error {
	text, err := c.generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode structured response: %w", err)
	}
	return out.Validate()
}

// HomeData fetches the structured weather/tip/city summary.
func (c *GeminiClient) HomeData(ctx context.Context, loc *location.Info) (*travel.HomeData, error) {
	req, err := request.HomeData(c.models.Name, loc)
	if err != nil {
		return nil, err
	}
	var data travel.HomeData
	if err := c.generateJSON(ctx, req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// StreamChat sends a conversation turn and streams the model's reply.
func (c *GeminiClient) StreamChat(ctx context.Context, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) (*StreamingResponse, error) {
	req := request.Chat(c.models.Name, history, prompt, image, loc)
	return c.streamContent(ctx, req)
}

// streamContent bridges the SDK's pull iterator into the chunk channel
// shape the orchestrators consume. Chunks are forwarded strictly in
// receipt order; a stream idle for longer than the configured limit is
// failed rather than left hanging on the transport default.
func (c *GeminiClient) streamContent(ctx context.Context, req request.Request) (*StreamingResponse, error) {
	iter := c.client.Models.GenerateContentStream(ctx, req.Model, req.Contents, c.effectiveConfig(req))

	chunks := make(chan ResponseChunk, 10)
	done := make(chan struct{})
	idleTimeout := c.timeouts.StreamIdle

	go func() {
		defer close(chunks)
		defer close(done)

		type iterResult struct {
			resp *genai.GenerateContentResponse
			err  error
		}
		iterCh := make(chan iterResult)

		go func() {
			defer close(iterCh)
			for resp, err := range iter {
				iterCh <- iterResult{resp, err}
			}
		}()

		idleTimer := time.NewTimer(idleTimeout)
		defer idleTimer.Stop()

		for {
			select {
			case <-ctx.Done():
				select {
				case chunks <- ResponseChunk{Error: ctx.Err(), Done: true}:
				default:
				}
				return

			case <-idleTimer.C:
				logging.Warn("stream idle timeout exceeded", "timeout", idleTimeout)
				chunks <- ResponseChunk{
					Error: fmt.Errorf("stream idle timeout: no data received for %v", idleTimeout),
					Done:  true,
				}
				return

			case result, ok := <-iterCh:
				if !ok {
					return
				}
				if result.err != nil {
					select {
					case chunks <- ResponseChunk{Error: result.err, Done: true}:
					case <-ctx.Done():
					}
					return
				}
				if result.resp == nil {
					return
				}

				if !idleTimer.Stop() {
					select {
					case <-idleTimer.C:
					default:
					}
				}
				idleTimer.Reset(idleTimeout)

				chunk := processResponse(result.resp)
				select {
				case chunks <- chunk:
				case <-ctx.Done():
					return
				}
				if chunk.Done {
					return
				}
			}
		}
	}()

	return &StreamingResponse{Chunks: chunks, Done: done}, nil
}

// processResponse converts a Gemini response to a ResponseChunk.
func processResponse(resp *genai.GenerateContentResponse) ResponseChunk {
	chunk := ResponseChunk{}

	if len(resp.Candidates) == 0 {
		chunk.Done = true
		return chunk
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Thought {
				continue
			}
			chunk.Text += part.Text
		}
	}
	if candidate.FinishReason != "" {
		chunk.Done = true
	}
	return chunk
}

// TripPlan fetches a structured day plan.
func (c *GeminiClient) TripPlan(ctx context.Context, loc *location.Info, preferences string) (*travel.DayPlan, error) {
	req, err := request.TripPlan(c.models.Name, loc, preferences)
	if err != nil {
		return nil, err
	}
	var plan travel.DayPlan
	if err := c.generateJSON(ctx, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// TripSummaryImage generates the plan collage as an image/png data URI.
func (c *GeminiClient) TripSummaryImage(ctx context.Context, plan *travel.DayPlan) (string, error) {
	req := request.SummaryImage(c.models.ImageModel, plan)

	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Request)
	defer cancel()

	resp, err := c.client.Models.GenerateImages(ctx, req.Model, req.Prompt, req.Config)
	if err != nil {
		return "", err
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return "", fmt.Errorf("image generation returned no image")
	}

	encoded := base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes)
	return "data:image/png;base64," + encoded, nil
}

// AnalyzeImage describes a picked image.
func (c *GeminiClient) AnalyzeImage(ctx context.Context, prompt string, image *genai.Part, loc *location.Info) (string, error) {
	return c.generate(ctx, request.Analyze(c.models.Name, prompt, image, loc))
}

// Translate returns the bare translated string.
func (c *GeminiClient) Translate(ctx context.Context, text, targetLanguage string, style request.Style) (string, error) {
	return c.generate(ctx, request.Translate(c.models.Name, text, targetLanguage, style))
}

// Synthesize returns raw 24 kHz mono PCM samples for the text.
func (c *GeminiClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := request.Speech(c.models.SpeechModel, c.models.Voice, text)

	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Request)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, req.Contents, req.Config)
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("speech synthesis returned no audio")
}

// EmergencyInfo fetches the structured local emergency record.
func (c *GeminiClient) EmergencyInfo(ctx context.Context, loc *location.Info) (*travel.EmergencyInfo, error) {
	req, err := request.Emergency(c.models.Name, loc)
	if err != nil {
		return nil, err
	}
	var info travel.EmergencyInfo
	if err := c.generateJSON(ctx, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Close closes the client connection.
func (c *GeminiClient) Close() error {
	// The genai client doesn't have an explicit close method
	return nil
}
