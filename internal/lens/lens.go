// Package lens analyzes a picked image with an optional user question.
package lens

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"tripmate/internal/client"
	"tripmate/internal/location"
	"tripmate/internal/logging"
	"tripmate/internal/request"
)

const (
	errNoImage       = "Please select an image first."
	errAnalyzeFailed = "Sorry, I couldn't analyze the image. Please try again."
)

// State is the observable lens state.
type State struct {
	ImagePath string // picked image, for display
	Analysis  string
	Loading   bool
	Err       string
}

// Controller orchestrates single-shot image analysis.
type Controller struct {
	provider client.Client
	loc      func() *location.Info
	notify   func()

	mu    sync.Mutex
	state State
	image *genai.Part
}

// NewController creates a lens controller.
func NewController(provider client.Client, loc func() *location.Info, notify func()) *Controller {
	if notify == nil {
		notify = func() {}
	}
	if loc == nil {
		loc = func() *location.Info { return nil }
	}
	return &Controller{provider: provider, loc: loc, notify: notify}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetImage attaches a picked image, clearing any previous analysis.
func (c *Controller) SetImage(path string, part *genai.Part) {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return
	}
	c.image = part
	c.state = State{ImagePath: path}
	c.mu.Unlock()
	c.notify()
}

// Analyze starts analysis of the attached image. An empty prompt falls
// back to the fixed default question. No-op while a previous analysis
// is in flight. Returns whether a request was started.
func (c *Controller) Analyze(ctx context.Context, prompt string) bool {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return false
	}
	if c.image == nil {
		c.state.Err = errNoImage
		c.mu.Unlock()
		c.notify()
		return false
	}
	image := c.image
	c.state.Loading = true
	c.state.Err = ""
	c.state.Analysis = ""
	c.mu.Unlock()
	c.notify()

	if strings.TrimSpace(prompt) == "" {
		prompt = request.DefaultLensPrompt
	}

	go c.analyze(ctx, prompt, image)
	return true
}

func (c *Controller) analyze(ctx context.Context, prompt string, image *genai.Part) {
	analysis, err := c.provider.AnalyzeImage(ctx, prompt, image, c.loc())

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		logging.Warn("image analysis failed", "error", err)
		c.state.Err = errAnalyzeFailed
	} else {
		c.state.Analysis = analysis
	}
	c.mu.Unlock()
	c.notify()
}
