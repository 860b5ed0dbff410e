// Package httpclient provides the HTTP client used by taskctl. Every request
// carries client identification and a request ID the server echoes back.
package httpclient

import (
	"net/http"
	"runtime"
	"time"

	"organizer/version"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// ClientTransport wraps an http.RoundTripper and injects identification headers.
type ClientTransport struct {
	Base http.RoundTripper
	Name string
}

// RoundTrip implements http.RoundTripper.
func (t *ClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	clone := req.Clone(req.Context())

	name := t.Name
	if name == "" {
		name = "organizer-client"
	}
	clone.Header.Set("User-Agent", name+"/"+version.Version+" ("+runtime.GOOS+"/"+runtime.GOARCH+")")
	if clone.Header.Get(HeaderRequestID) == "" {
		clone.Header.Set(HeaderRequestID, uuid.NewString())
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// NewClient returns an *http.Client configured with ClientTransport and the specified timeout.
func NewClient(name string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &ClientTransport{Name: name},
		Timeout:   timeout,
	}
}
