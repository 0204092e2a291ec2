package xhttp

import (
	"fmt"
	"net/http"

	"github.com/Elzoidbergo/HostPilot/internal/version"
)

type hostpilotTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*hostpilotTransport)(nil)

func (t *hostpilotTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "hostpilot/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard hostpilot headers.
func NewTransport() http.RoundTripper {
	return &hostpilotTransport{base: http.DefaultTransport}
}
