package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultLookupURL = "http://ip-api.com/json/"

// IPLocator resolves an approximate position from the machine's public
// IP address. It is the terminal stand-in for the mobile geolocation
// capability: one HTTP round trip, no caching, no watching.
type IPLocator struct {
	URL    string
	Client *http.Client
}

// NewIPLocator creates a locator with the given request timeout.
func NewIPLocator(timeout time.Duration) *IPLocator {
	return &IPLocator{
		URL:    defaultLookupURL,
		Client: &http.Client{Timeout: timeout},
	}
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate performs the one-shot lookup.
func (l *IPLocator) Locate(ctx context.Context) (*Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build location request: %w", err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location lookup: unexpected status %d", resp.StatusCode)
	}

	var body ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode location response: %w", err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("location lookup failed: %s", body.Message)
	}

	return &Info{Latitude: body.Lat, Longitude: body.Lon}, nil
}
