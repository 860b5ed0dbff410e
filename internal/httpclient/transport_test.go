package httpclient

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"organizer/version"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureHeaders(t *testing.T) (*httptest.Server, *http.Header) {
	t.Helper()

	var received http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func TestClientTransport_SetsIdentification(t *testing.T) {
	server, received := captureHeaders(t)

	resp, err := NewClient("taskctl", 5*time.Second).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	want := "taskctl/" + version.Version + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
	assert.Equal(t, want, received.Get("User-Agent"))

	_, err = uuid.Parse(received.Get(HeaderRequestID))
	assert.NoError(t, err, "request ID should be a UUID")
}

func TestClientTransport_DefaultName(t *testing.T) {
	server, received := captureHeaders(t)

	resp, err := NewClient("", 5*time.Second).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, received.Get("User-Agent"), "organizer-client/")
}

func TestClientTransport_KeepsCallerRequestID(t *testing.T) {
	server, received := captureHeaders(t)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, "req-fixed")
	req.Header.Set("X-Custom-Header", "custom-value")

	resp, err := NewClient("taskctl", 5*time.Second).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-fixed", received.Get(HeaderRequestID))
	assert.Equal(t, "custom-value", received.Get("X-Custom-Header"))
}

func TestClientTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	server, _ := captureHeaders(t)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := NewClient("taskctl", 5*time.Second).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("User-Agent"))
	assert.Empty(t, req.Header.Get(HeaderRequestID))
}

func TestClientTransport_UsesCustomBase(t *testing.T) {
	server, _ := captureHeaders(t)

	called := false
	transport := &ClientTransport{
		Base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			called = true
			return http.DefaultTransport.RoundTrip(r)
		}),
	}

	resp, err := (&http.Client{Transport: transport}).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.True(t, called)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
