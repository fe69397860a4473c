// Package home fetches the weather/tip/city summary once the location
// fix arrives.
package home

import (
	"context"
	"sync"

	"tripmate/internal/client"
	"tripmate/internal/location"
	"tripmate/internal/logging"
	"tripmate/internal/travel"
)

const errHomeFailed = "Could not load local travel info."

// State is the observable home-screen state. Unavailable is terminal:
// location loading finished without a fix and nothing will retry.
type State struct {
	Data        *travel.HomeData
	Loading     bool
	Unavailable bool
	LocationErr string
	Err         string
}

// Controller issues the single structured home request.
type Controller struct {
	provider client.Client
	notify   func()

	mu      sync.Mutex
	state   State
	started bool
}

// NewController creates a home controller.
func NewController(provider client.Client, notify func()) *Controller {
	if notify == nil {
		notify = func() {}
	}
	return &Controller{provider: provider, notify: notify, state: State{Loading: true}}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnLocation reacts to the one-shot location resolution. A fix triggers
// the single data request; a finished load without a fix settles into
// the Unavailable display state. No retries either way.
func (c *Controller) OnLocation(ctx context.Context, st location.State) {
	c.mu.Lock()
	if st.Loading || c.started {
		c.mu.Unlock()
		return
	}
	c.started = true

	if st.Location == nil {
		c.state.Loading = false
		c.state.Unavailable = true
		if st.Err != nil {
			c.state.LocationErr = st.Err.Error()
		}
		c.mu.Unlock()
		c.notify()
		return
	}

	c.state.Loading = true
	c.mu.Unlock()
	c.notify()

	go c.fetch(ctx, st.Location)
}

func (c *Controller) fetch(ctx context.Context, loc *location.Info) {
	data, err := c.provider.HomeData(ctx, loc)

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		logging.Warn("home data fetch failed", "error", err)
		c.state.Err = errHomeFailed
	} else {
		c.state.Data = data
	}
	c.mu.Unlock()
	c.notify()
}
