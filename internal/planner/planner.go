// Package planner generates a day plan and its best-effort visual
// summary.
package planner

import (
	"context"
	"strings"
	"sync"

	"tripmate/internal/client"
	"tripmate/internal/location"
	"tripmate/internal/logging"
	"tripmate/internal/travel"
)

const (
	errNoLocation    = "Location is not available. Please enable location services."
	errNoPreferences = "Please enter your preferences for the day."
	errPlanFailed    = "Sorry, I couldn't create a plan. Please try again."
)

// State is the observable planner state. The two loading flags are
// independent so the plan text can render before the image arrives.
type State struct {
	Plan            *travel.DayPlan
	SummaryImage    string // image/png data URI, empty when absent
	Loading         bool   // primary plan request in flight
	GeneratingImage bool   // secondary collage request in flight
	Err             string
}

// Controller orchestrates the two sequential, independently-failable
// requests. The secondary image failure never invalidates the plan.
type Controller struct {
	provider client.Client
	loc      func() *location.Info
	notify   func()

	mu    sync.Mutex
	state State
}

// NewController creates a planner controller.
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

// Reset discards the current plan wholesale so a new one can be made.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.state.Loading || c.state.GeneratingImage {
		c.mu.Unlock()
		return
	}
	c.state = State{}
	c.mu.Unlock()
	c.notify()
}

// Generate starts plan generation. No-op while a previous generation is
// still in flight. Returns whether a request was started.
func (c *Controller) Generate(ctx context.Context, preferences string) bool {
	loc := c.loc()

	c.mu.Lock()
	if c.state.Loading || c.state.GeneratingImage {
		c.mu.Unlock()
		return false
	}
	if loc == nil {
		c.state.Err = errNoLocation
		c.mu.Unlock()
		c.notify()
		return false
	}
	if strings.TrimSpace(preferences) == "" {
		c.state.Err = errNoPreferences
		c.mu.Unlock()
		c.notify()
		return false
	}
	c.state = State{Loading: true}
	c.mu.Unlock()
	c.notify()

	go c.generate(ctx, loc, preferences)
	return true
}

func (c *Controller) generate(ctx context.Context, loc *location.Info, preferences string) {
	plan, err := c.provider.TripPlan(ctx, loc, preferences)

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		logging.Warn("plan generation failed", "error", err)
		c.state.Err = errPlanFailed
		c.mu.Unlock()
		c.notify()
		return
	}
	c.state.Plan = plan
	c.state.GeneratingImage = true
	c.mu.Unlock()
	c.notify()

	// Best-effort secondary request: failure only suppresses the
	// image, the received plan stays valid.
	image, err := c.provider.TripSummaryImage(ctx, plan)

	c.mu.Lock()
	c.state.GeneratingImage = false
	if err != nil {
		logging.Warn("summary image generation failed", "error", err)
	} else {
		c.state.SummaryImage = image
	}
	c.mu.Unlock()
	c.notify()
}
