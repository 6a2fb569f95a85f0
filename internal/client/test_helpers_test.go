package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// recordedRequest is one call seen by a test server.
type recordedRequest struct {
	Path string
	Body map[string]interface{}
}

// testServer answers every call with the response registered for its path and
// records what was sent.
type testServer struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]testResponse
}

type testResponse struct {
	Status int
	Body   string
}

func newTestServer(t *testing.T, responses map[string]testResponse) *testServer {
	t.Helper()

	srv := &testServer{responses: responses}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		raw, err := io.ReadAll(request.Body)
		assert.NoError(t, err)

		var body map[string]interface{}

		assert.NoError(t, json.Unmarshal(raw, &body))

		srv.mu.Lock()
		srv.requests = append(srv.requests, recordedRequest{Path: request.URL.Path, Body: body})
		resp, ok := srv.responses[request.URL.Path]
		srv.mu.Unlock()

		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"error":"no route"}`)

			return
		}

		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, resp.Body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func (s *testServer) SetResponse(path string, resp testResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.responses == nil {
		s.responses = make(map[string]testResponse)
	}

	s.responses[path] = resp
}

func (s *testServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

func (s *testServer) LastBody(t *testing.T) map[string]interface{} {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1].Body
}

// NewTestClient creates a client pointed at srv's v1 API.
func NewTestClient(t *testing.T, srv *testServer) *Client {
	t.Helper()

	client, err := New(&canny.Config{APIURL: srv.URL + "/api/v1", APIKey: testAPIKey})
	require.NoError(t, err)

	return client
}

func keys(body map[string]interface{}) []string {
	out := make([]string, 0, len(body))
	for key := range body {
		out = append(out, key)
	}

	return out
}
