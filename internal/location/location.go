// Package location provides a one-shot fix of the device's geographic
// coordinates. The fix is resolved once per process; every feature that
// personalizes requests by location reads the same immutable snapshot.
package location

import (
	"context"
	"sync"

	"tripmate/internal/logging"
)

// Info is a geographic coordinate pair. Immutable once captured.
type Info struct {
	Latitude  float64
	Longitude float64
}

// Provider acquires the current coordinates.
type Provider interface {
	Locate(ctx context.Context) (*Info, error)
}

// State is the observable location status. A nil Location with a nil
// Err means the fix is still pending (or was never attempted).
type State struct {
	Location *Info
	Err      error
	Loading  bool
}

// Resolver performs the one-shot acquisition and fans the result out to
// the rest of the app. Resolve may be called multiple times; only the
// first call hits the provider.
type Resolver struct {
	provider Provider
	onChange func(State)

	mu    sync.RWMutex
	state State
	once  sync.Once
}

// NewResolver creates a resolver around the given provider.
func NewResolver(p Provider, onChange func(State)) *Resolver {
	return &Resolver{
		provider: p,
		onChange: onChange,
		state:    State{Loading: true},
	}
}

// Resolve acquires the location exactly once and publishes the result.
func (r *Resolver) Resolve(ctx context.Context) {
	r.once.Do(func() {
		loc, err := r.provider.Locate(ctx)
		r.mu.Lock()
		r.state = State{Location: loc, Err: err, Loading: false}
		st := r.state
		r.mu.Unlock()

		if err != nil {
			logging.Warn("location fix failed", "error", err)
		} else {
			logging.Debug("location fix acquired",
				"latitude", loc.Latitude, "longitude", loc.Longitude)
		}
		if r.onChange != nil {
			r.onChange(st)
		}
	})
}

// Current returns the latest state snapshot.
func (r *Resolver) Current() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Location returns the fixed coordinates, or nil while loading or after
// a failed fix. Nil is a valid, must-be-handled value for callers.
func (r *Resolver) Location() *Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Location
}
