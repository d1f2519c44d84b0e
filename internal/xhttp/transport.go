package xhttp

import (
	"fmt"
	"net/http"

	"github.com/tejaswadiwala/torcc/internal/version"
)

type torccTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*torccTransport)(nil)

func (t *torccTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "torcc/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard torcc headers.
func NewTransport() http.RoundTripper {
	return &torccTransport{base: http.DefaultTransport}
}
