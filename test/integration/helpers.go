//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey    string
	APIURL    string
	BoardID   string
	AuthorID  string
	CannyPath string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:    os.Getenv("CANNY_API_KEY"),
		APIURL:    os.Getenv("CANNY_API_URL"),
		BoardID:   os.Getenv("CANNY_TEST_BOARD_ID"),
		AuthorID:  os.Getenv("CANNY_TEST_AUTHOR_ID"),
		CannyPath: getCannyPath(),
		Verbose:   os.Getenv("CANNY_VERBOSE") == "true",
	}
}

// getCannyPath determines the path to the canny binary
func getCannyPath() string {
	if path := os.Getenv("CANNY_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../canny",
		"./canny",
		"../canny",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "canny"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("CANNY_API_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.CannyPath); err != nil {
		t.Skipf("canny binary not found at %s, skipping integration test", config.CannyPath)
	}
}

// SkipIfNoBoard skips tests that write to a board
func (config *TestConfig) SkipIfNoBoard(t *testing.T) {
	t.Helper()

	if config.BoardID == "" || config.AuthorID == "" {
		t.Skip("CANNY_TEST_BOARD_ID or CANNY_TEST_AUTHOR_ID not set, skipping write test")
	}
}

// CommandRunner provides utilities for running canny commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a canny command and returns output. Colors are always off.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	args = append([]string{"--no-color"}, args...)

	// #nosec G204 -- test binary path comes from the test environment
	cmd := exec.Command(runner.config.CannyPath, args...)
	cmd.Env = append(os.Environ(), "CANNY_API_KEY="+runner.config.APIKey)

	if runner.config.APIURL != "" {
		cmd.Env = append(cmd.Env, "CANNY_API_URL="+runner.config.APIURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.CannyPath, strings.Join(args, " "))
	}

	err := cmd.Run()
	stdout := stdoutBuf.String()
	stderr := stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a canny command with --json and decodes stdout into v.
func (runner *CommandRunner) RunJSON(v interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--json")...)
	require.NoError(runner.t, err, "canny %s failed: %s", strings.Join(args, " "), stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), v), "invalid JSON output: %s", stdout)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupPost attempts to delete a test post
func (runner *CommandRunner) CleanupPost(id string) {
	stdout, stderr, err := runner.Run("posts", "delete", "--id", id)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for post %s: %s\nStderr: %s", id, stdout, stderr)
	}
}
