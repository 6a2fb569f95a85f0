package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fivetwenty-io/canny-cli/internal/credentials"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

type recordedRequest struct {
	Path string
	Body map[string]interface{}
}

type handlerFunc func(body map[string]interface{}) (int, string)

// harness runs the canny command tree against a fake Canny API.
type harness struct {
	t      *testing.T
	server *httptest.Server
	store  *credentials.MemoryStore
	stdin  string
	stdout bytes.Buffer
	stderr bytes.Buffer

	terminal bool
	exitCode int
	exited   bool
	config   string

	mu       sync.Mutex
	requests []recordedRequest
	handlers map[string]handlerFunc
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		t:        t,
		store:    credentials.NewMemoryStore(),
		handlers: map[string]handlerFunc{},
		config:   filepath.Join(t.TempDir(), "config.yml"),
	}

	h.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		var body map[string]interface{}
		_ = json.Unmarshal(data, &body)

		h.mu.Lock()
		h.requests = append(h.requests, recordedRequest{Path: r.URL.Path, Body: body})
		handler, ok := h.handlers[r.URL.Path]
		h.mu.Unlock()

		status, response := http.StatusOK, "{}"
		if ok {
			status, response = handler(body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(h.server.Close)

	return h
}

func (h *harness) apiURL() string {
	return h.server.URL + "/api/v1"
}

// respond serves a fixed body for path, e.g. "/api/v1/posts/list".
func (h *harness) respond(path string, status int, response string) {
	h.handle(path, func(map[string]interface{}) (int, string) {
		return status, response
	})
}

func (h *harness) handle(path string, handler handlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.handlers[path] = handler
}

func (h *harness) Requests() []recordedRequest {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]recordedRequest(nil), h.requests...)
}

func (h *harness) lastRequest() recordedRequest {
	h.t.Helper()

	requests := h.Requests()
	require.NotEmpty(h.t, requests, "no request was sent")

	return requests[len(requests)-1]
}

// execute runs the root command with args as given.
func (h *harness) execute(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()

	root := NewRootCommand(Options{
		Version:    "1.2.3",
		Commit:     "abc1234",
		Date:       "2026-01-02",
		Store:      h.store,
		Stdin:      strings.NewReader(h.stdin),
		Stdout:     &h.stdout,
		Stderr:     &h.stderr,
		Viper:      viper.New(),
		IsTerminal: func() bool { return h.terminal },
		Exit: func(code int) {
			h.exited = true
			h.exitCode = code
		},
	})
	root.SetArgs(args)

	return root.Execute()
}

// run executes args with an API key, the fake server URL, an isolated config
// file and colors off.
func (h *harness) run(args ...string) error {
	base := []string{
		"--api-key", "test-key",
		"--api-url", h.apiURL(),
		"--config", h.config,
		"--no-color",
	}

	return h.execute(append(base, args...)...)
}

func bodyKeys(body map[string]interface{}) []string {
	keys := make([]string, 0, len(body))
	for key := range body {
		keys = append(keys, key)
	}

	return keys
}
