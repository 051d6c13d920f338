package coggle

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// recordedRequest is what the stub server saw for one request.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     string
}

// stubServer is an httptest server that records and counts requests.
type stubServer struct {
	*httptest.Server

	count    atomic.Int32
	mu       sync.Mutex
	requests []recordedRequest
}

// newStubServer starts a server that answers every request with status and
// response.
func newStubServer(t *testing.T, status int, response string) *stubServer {
	return newStubServerFunc(t, func(w http.ResponseWriter, r *http.Request, n int) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	})
}

// newStubServerFunc starts a server delegating to handler; n is the 1-based
// request number.
func newStubServerFunc(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, n int)) *stubServer {
	t.Helper()

	s := &stubServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		n := int(s.count.Add(1))

		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     string(body),
		})
		s.mu.Unlock()

		handler(w, r, n)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) Requests() int {
	return int(s.count.Load())
}

func (s *stubServer) Last(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests, "no request was recorded")
	return s.requests[len(s.requests)-1]
}

// newTestClient creates a client pointed at baseURL. Options mutate the
// config before the client is built.
func newTestClient(t *testing.T, baseURL string, opts ...func(*Config)) *Client {
	t.Helper()

	cfg := &Config{
		BaseURL: baseURL,
		Token:   testToken,
		Logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

// roundTripperFunc lets a function stand in for the HTTP transport.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
