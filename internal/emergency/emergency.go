// Package emergency provides local emergency info, an instant
// phrasebook, and the outbound helpline call.
package emergency

import (
	"context"
	"fmt"
	"sync"

	"tripmate/internal/client"
	"tripmate/internal/location"
	"tripmate/internal/logging"
	"tripmate/internal/request"
	"tripmate/internal/travel"
)

// Phrases is the fixed phrasebook translated on demand.
var Phrases = []string{
	"I need help.",
	"Where is the nearest hospital?",
	"Call the police.",
	"I am lost.",
	"I need a doctor.",
}

// TODO: resolve the phrasebook target from the actual location (reverse
// geocode to a locale) instead of asking for "the local language".
const phraseTarget = "the local language"

const (
	errNoLocation = "Location is required to get emergency info."
	errInfoFailed = "Could not fetch local emergency information."
	errPhrase     = "Translation failed."
)

// State is the observable emergency-screen state. The info fetch and
// the phrase translation are independent, unordered actions.
type State struct {
	Info        *travel.EmergencyInfo
	LoadingInfo bool
	InfoErr     string

	TranslatedPhrase string // original + translation, empty when none
	Translating      bool
}

// Controller orchestrates the emergency feature.
type Controller struct {
	provider client.Client
	loc      func() *location.Info
	dial     func(number string) error
	helpline string
	notify   func()

	mu    sync.Mutex
	state State
}

// NewController creates an emergency controller. dial places the
// outbound call through the platform's telephony handler.
func NewController(provider client.Client, loc func() *location.Info, helpline string, dial func(string) error, notify func()) *Controller {
	if notify == nil {
		notify = func() {}
	}
	if loc == nil {
		loc = func() *location.Info { return nil }
	}
	if dial == nil {
		dial = DialTel
	}
	return &Controller{
		provider: provider,
		loc:      loc,
		dial:     dial,
		helpline: helpline,
		notify:   notify,
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// FetchInfo requests the structured local emergency record. A missing
// location fails fast without issuing a provider call. No-op while a
// fetch is in flight. Returns whether a request was started.
func (c *Controller) FetchInfo(ctx context.Context) bool {
	loc := c.loc()

	c.mu.Lock()
	if c.state.LoadingInfo {
		c.mu.Unlock()
		return false
	}
	if loc == nil {
		c.state.InfoErr = errNoLocation
		c.mu.Unlock()
		c.notify()
		return false
	}
	c.state.LoadingInfo = true
	c.state.InfoErr = ""
	c.mu.Unlock()
	c.notify()

	go c.fetchInfo(ctx, loc)
	return true
}

func (c *Controller) fetchInfo(ctx context.Context, loc *location.Info) {
	info, err := c.provider.EmergencyInfo(ctx, loc)

	c.mu.Lock()
	c.state.LoadingInfo = false
	if err != nil {
		logging.Warn("emergency info fetch failed", "error", err)
		c.state.InfoErr = errInfoFailed
	} else {
		c.state.Info = info
	}
	c.mu.Unlock()
	c.notify()
}

// TranslatePhrase translates one canned phrase on demand, showing the
// original and the translation together. No-op while a translation is
// in flight. Returns whether a request was started.
func (c *Controller) TranslatePhrase(ctx context.Context, phrase string) bool {
	c.mu.Lock()
	if c.state.Translating {
		c.mu.Unlock()
		return false
	}
	c.state.Translating = true
	c.state.TranslatedPhrase = ""
	c.mu.Unlock()
	c.notify()

	go c.translatePhrase(ctx, phrase)
	return true
}

func (c *Controller) translatePhrase(ctx context.Context, phrase string) {
	translated, err := c.provider.Translate(ctx, phrase, phraseTarget, request.StyleNone)

	c.mu.Lock()
	c.state.Translating = false
	if err != nil {
		logging.Warn("phrase translation failed", "error", err)
		c.state.TranslatedPhrase = errPhrase
	} else {
		c.state.TranslatedPhrase = fmt.Sprintf("%q\n\n%s", phrase, translated)
	}
	c.mu.Unlock()
	c.notify()
}

// Call places the outbound helpline call. This is a direct platform
// action, not a provider request.
func (c *Controller) Call() error {
	logging.Info("placing emergency call", "number", c.helpline)
	return c.dial(c.helpline)
}
