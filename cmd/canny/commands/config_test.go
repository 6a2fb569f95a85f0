package commands

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readConfigFile(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	settings := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal(data, &settings))

	return settings
}

func TestConfigSetAndUnset(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.NoError(t, h.run("config", "set", "output", "json"))
	assert.Equal(t, "✓ Set output to json.\n", h.stdout.String())
	assert.Equal(t, "json", readConfigFile(t, h.config)["output"])

	info, err := os.Stat(h.config)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	require.NoError(t, h.run("version"))
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc1234","built":"2026-01-02"}`, h.stdout.String())

	require.NoError(t, h.run("config", "unset", "output", "-o", "table"))
	assert.NotContains(t, readConfigFile(t, h.config), "output")
}

func TestConfigSetNestedKey(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.NoError(t, h.run("config", "set", "cache.type", "memory"))
	require.NoError(t, h.run("config", "set", "http.retry-max", "3"))

	settings := readConfigFile(t, h.config)
	assert.Equal(t, map[string]interface{}{"type": "memory"}, settings["cache"])
	assert.Equal(t, map[string]interface{}{"retry-max": "3"}, settings["http"])

	require.NoError(t, h.run("config", "unset", "cache.type"))

	settings = readConfigFile(t, h.config)
	assert.NotContains(t, settings, "cache")
	assert.Contains(t, settings, "http")
}

func TestConfigSetRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	err := h.run("config", "set", "output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutputValue)

	err = h.run("config", "set", "colour", "red")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	err = h.run("config", "set", "cache.type", "redis")
	require.Error(t, err)

	err = h.run("config", "set", "api-key", "secret")

	var validation *canny.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "canny auth")

	_, statErr := os.Stat(h.config)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.NoError(t, h.run("config", "path"))
	assert.Equal(t, h.config+"\n", h.stdout.String())
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.NoError(t, h.run("config", "show", "--json"))

	var settings map[string]string
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &settings))
	assert.Equal(t, "****", settings["api-key"])
	assert.Equal(t, h.apiURL(), settings["api-url"])
	assert.Equal(t, "none", settings["cache.type"])
	assert.Equal(t, "table", settings["output"])

	require.NoError(t, h.run("config", "show"))
	assert.Contains(t, h.stdout.String(), "cache.nats.bucket")
	assert.NotContains(t, h.stdout.String(), "test-key")
}
