package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/credentials"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configKeys lists the settings config set and unset accept.
var configKeys = []string{
	"api-url",
	"output",
	"verbose",
	"no-color",
	"http.timeout",
	"http.retry-max",
	"http.retry-wait-min",
	"http.retry-wait-max",
	"cache.type",
	"cache.ttl",
	"cache.nats.url",
	"cache.nats.bucket",
}

// NewConfigCommand creates the config command group
func NewConfigCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the settings in the canny config file ($HOME/.canny/config.yml)",
	}

	cmd.AddCommand(newConfigShowCommand(rt))
	cmd.AddCommand(newConfigSetCommand(rt))
	cmd.AddCommand(newConfigUnsetCommand(rt))
	cmd.AddCommand(newConfigPathCommand(rt))

	return cmd
}

func newConfigShowCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := make(map[string]string, len(configKeys)+1)
			for _, key := range configKeys {
				settings[key] = rt.v.GetString(key)
			}

			// Only a key given by flag, environment or config file is shown here.
			if apiKey := rt.v.GetString("api-key"); apiKey != "" {
				settings["api-key"] = credentials.Mask(apiKey)
			}

			handled, err := rt.renderStructured(settings)
			if handled {
				return err
			}

			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}

			sort.Strings(keys)

			table := tablewriter.NewWriter(rt.stdout)
			table.Header("Key", "Value")

			for _, key := range keys {
				_ = table.Append(key, settings[key])
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value in the config file. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			err := validateConfigValue(key, value)
			if err != nil {
				return err
			}

			return rt.updateConfigFile(func(settings map[string]interface{}) {
				setNested(settings, strings.Split(key, "."), value)
			}, fmt.Sprintf("Set %s to %s.", key, value))
		},
	}
}

func newConfigUnsetCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			err := validateConfigKey(key)
			if err != nil {
				return err
			}

			return rt.updateConfigFile(func(settings map[string]interface{}) {
				unsetNested(settings, strings.Split(key, "."))
			}, fmt.Sprintf("Unset %s.", key))
		},
	}
}

func newConfigPathCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Long:  "Print the path of the config file that is read and written",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rt.configFilePath()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(rt.stdout, path)

			return nil
		},
	}
}

func validateConfigKey(key string) error {
	if key == "api-key" {
		return canny.NewValidationError("key", constants.ErrAPIKeyNotInConfig.Error())
	}

	for _, known := range configKeys {
		if key == known {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
}

func validateConfigValue(key, value string) error {
	err := validateConfigKey(key)
	if err != nil {
		return err
	}

	switch key {
	case "output":
		switch value {
		case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		default:
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputValue, value)
		}
	case "cache.type":
		_, err = canny.ParseCacheType(value)
	}

	return err
}

// updateConfigFile loads the config file as a map, applies change and writes it back.
func (rt *Runtime) updateConfigFile(change func(map[string]interface{}), message string) error {
	path, err := rt.configFilePath()
	if err != nil {
		return err
	}

	settings := map[string]interface{}{}

	// path is the user's own config file
	// #nosec G304
	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &settings)
		if err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}

		if settings == nil {
			settings = map[string]interface{}{}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}

	change(settings)

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	err = os.WriteFile(path, out, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return rt.printSuccess(message)
}

func setNested(settings map[string]interface{}, path []string, value string) {
	if len(path) == 1 {
		settings[path[0]] = value

		return
	}

	child, ok := settings[path[0]].(map[string]interface{})
	if !ok {
		child = map[string]interface{}{}
		settings[path[0]] = child
	}

	setNested(child, path[1:], value)
}

func unsetNested(settings map[string]interface{}, path []string) {
	if len(path) == 1 {
		delete(settings, path[0])

		return
	}

	child, ok := settings[path[0]].(map[string]interface{})
	if !ok {
		return
	}

	unsetNested(child, path[1:])

	if len(child) == 0 {
		delete(settings, path[0])
	}
}
