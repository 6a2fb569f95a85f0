package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	cannyhttp "github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful post", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/boards/list", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("X-Request-ID"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "secret", body["apiKey"])

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"boards": []interface{}{}})
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL + "/api/v1")

		resp, err := client.Post(context.Background(), "boards/list", map[string]string{"apiKey": "secret"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"boards":[]}`, string(resp.Body))
		assert.False(t, resp.Cached)
	})

	t.Run("base url override", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/users/list", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL + "/api/v1/")

		resp, err := client.PostURL(context.Background(), server.URL+"/api/v2", "users/list", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, server.URL+"/api/v1", client.BaseURL())
	})

	t.Run("error response keeps body verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(writer, `{"error":"invalid board"}`)
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "posts/list", map[string]string{})
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		apiErr := &canny.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, `{"error":"invalid board"}`, apiErr.Body)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		url := server.URL
		server.Close()

		client := cannyhttp.NewClient(url)

		resp, err := client.Post(context.Background(), "boards/list", map[string]string{})
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, canny.IsTransportError(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "canny-test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL, cannyhttp.WithUserAgent("canny-test"))

		resp, err := client.Do(context.Background(), &cannyhttp.Request{
			Method:  "POST",
			Path:    "boards/list",
			Body:    map[string]string{},
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := cannyhttp.NewClient(server.URL, cannyhttp.WithLogger(logger), cannyhttp.WithDebug(true))

		_, err := client.Post(context.Background(), "boards/list", map[string]string{"apiKey": "secret"})
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
		assert.NotContains(t, logger.logs[0]["fields"], "body")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "boards/list", map[string]string{})
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.True(t, canny.IsStatus(err, 500))
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL, cannyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Post(context.Background(), "boards/list", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("retries on rate limiting when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL, cannyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Post(context.Background(), "boards/list", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := cannyhttp.NewClient(server.URL, cannyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Post(context.Background(), "boards/list", map[string]string{})
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})
}

func TestClient_Cache(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = io.WriteString(writer, `{"boards":[{"id":"b1","name":"Feature Requests"}]}`)
	}))
	defer server.Close()

	cache := canny.NewMemoryCache(10)
	client := cannyhttp.NewClient(server.URL, cannyhttp.WithCache(cache, time.Minute))
	ctx := context.Background()
	body := map[string]string{"apiKey": "secret"}

	first, err := client.Post(ctx, "boards/list", body)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := client.Post(ctx, "boards/list", body)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err = client.Post(ctx, "boards/create", map[string]string{"apiKey": "secret", "name": "New"})
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())

	third, err := client.Post(ctx, "boards/list", body)
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestIsReadOnlyPath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"posts/list":        true,
		"/posts/retrieve":   true,
		"users/find":        true,
		"posts/create":      false,
		"posts/delete":      false,
		"autopilot/enqueue": false,
	}

	for path, want := range tests {
		assert.Equal(t, want, cannyhttp.IsReadOnlyPath(path), path)
	}
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	a := cannyhttp.CacheKey("https://canny.io/api/v1/posts/list", []byte(`{"boardID":"a"}`))
	b := cannyhttp.CacheKey("https://canny.io/api/v1/posts/list", []byte(`{"boardID":"b"}`))
	c := cannyhttp.CacheKey("https://canny.io/api/v2/posts/list", []byte(`{"boardID":"a"}`))

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}
