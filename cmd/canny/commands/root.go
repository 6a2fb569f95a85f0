package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/credentials"
	"github.com/fivetwenty-io/canny-cli/internal/logging"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/fivetwenty-io/canny-cli/pkg/cannyclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Options carries the process level collaborators of the command tree.
// Zero values fall back to the real process: os streams, the OS keyring,
// os.Exit and a fresh viper instance.
type Options struct {
	Version string
	Commit  string
	Date    string

	Store  credentials.Store
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)
	Viper  *viper.Viper

	// IsTerminal reports whether stdin is an interactive terminal.
	IsTerminal func() bool
}

// Runtime is the state shared by every command of one invocation.
type Runtime struct {
	opts   Options
	v      *viper.Viper
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer

	colors  palette
	logger  *logging.ZapLogger
	closers []io.Closer
}

func newRuntime(opts Options) *Runtime {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	if opts.Store == nil {
		opts.Store = credentials.NewKeyringStore()
	}

	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if opts.Exit == nil {
		opts.Exit = os.Exit
	}

	if opts.Viper == nil {
		opts.Viper = viper.New()
	}

	if opts.IsTerminal == nil {
		opts.IsTerminal = func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		}
	}

	return &Runtime{
		opts:   opts,
		v:      opts.Viper,
		stdin:  bufio.NewReader(opts.Stdin),
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		colors: newPalette(false),
	}
}

// NewRootCommand builds the canny command tree.
func NewRootCommand(opts Options) *cobra.Command {
	rt := newRuntime(opts)

	rootCmd := &cobra.Command{
		Use:   "canny",
		Short: "Canny feedback API CLI",
		Long: `A command-line interface for the Canny feedback API.

Manage posts, comments, categories, users, boards, tags, companies, votes,
changelog entries and more from the terminal.

Credentials are resolved in this order: --api-key, CANNY_API_KEY, the config
file, then the OS keychain (configured with 'canny auth').`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.initConfig()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			rt.close()

			return nil
		},
	}

	rootCmd.SetIn(rt.opts.Stdin)
	rootCmd.SetOut(rt.stdout)
	rootCmd.SetErr(rt.stderr)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.canny/config.yml)")
	flags.String("api-key", "", "Canny API key (defaults to CANNY_API_KEY, then the keychain)")
	flags.String("api-url", "", "override the Canny API URL")
	flags.Bool("json", false, "output as JSON instead of formatted text")
	flags.StringP("output", "o", "table", "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("no-color", false, "disable colored output")

	// Bind flags to viper
	for _, name := range []string{"config", "api-key", "api-url", "json", "output", "verbose", "no-color"} {
		_ = rt.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(rt))
	rootCmd.AddCommand(NewAuthCommand(rt))
	rootCmd.AddCommand(NewConfigCommand(rt))
	rootCmd.AddCommand(NewPostsCommand(rt))
	rootCmd.AddCommand(NewCommentsCommand(rt))
	rootCmd.AddCommand(NewCategoriesCommand(rt))
	rootCmd.AddCommand(NewUsersCommand(rt))
	rootCmd.AddCommand(NewBoardsCommand(rt))
	rootCmd.AddCommand(NewTagsCommand(rt))
	rootCmd.AddCommand(NewCompaniesCommand(rt))
	rootCmd.AddCommand(NewVotesCommand(rt))
	rootCmd.AddCommand(NewStatusChangesCommand(rt))
	rootCmd.AddCommand(NewChangelogCommand(rt))
	rootCmd.AddCommand(NewOpportunitiesCommand(rt))
	rootCmd.AddCommand(NewGroupsCommand(rt))
	rootCmd.AddCommand(NewInsightsCommand(rt))
	rootCmd.AddCommand(NewIdeasCommand(rt))
	rootCmd.AddCommand(NewAutopilotCommand(rt))

	return rootCmd
}

func (rt *Runtime) initConfig() error {
	rt.v.SetDefault("output", OutputFormatTable)
	rt.v.SetDefault("http.timeout", constants.DefaultHTTPTimeout)
	rt.v.SetDefault("http.retry-max", 0)
	rt.v.SetDefault("http.retry-wait-min", constants.DefaultRetryWaitMin)
	rt.v.SetDefault("http.retry-wait-max", constants.DefaultRetryWaitMax)
	rt.v.SetDefault("cache.type", string(canny.CacheTypeNone))
	rt.v.SetDefault("cache.ttl", canny.DefaultCacheTTL)
	rt.v.SetDefault("cache.nats.url", "nats://127.0.0.1:4222")
	rt.v.SetDefault("cache.nats.bucket", canny.DefaultNATSBucket)

	cfgFile := rt.v.GetString("config")
	if cfgFile != "" {
		rt.v.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}

		rt.v.AddConfigPath(configDir)
		rt.v.SetConfigType(constants.ConfigFileType)
		rt.v.SetConfigName(constants.ConfigFileName)
	}

	// CANNY_API_KEY binds to api-key, CANNY_HTTP_RETRY_MAX to http.retry-max.
	rt.v.SetEnvPrefix(constants.EnvPrefix)
	rt.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	rt.v.AutomaticEnv()

	err := rt.v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	_, err = rt.format()
	if err != nil {
		return err
	}

	rt.colors = newPalette(rt.v.GetBool("no-color"))

	rt.logger, err = logging.NewZapLogger(rt.v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if used := rt.v.ConfigFileUsed(); used != "" {
		rt.logger.Debug("Using config file", map[string]interface{}{"path": used})
	}

	return nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}

// configFilePath is the file config set and unset write to.
func (rt *Runtime) configFilePath() (string, error) {
	if used := rt.v.ConfigFileUsed(); used != "" {
		return used, nil
	}

	if cfgFile := rt.v.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func (rt *Runtime) resolver() *credentials.Resolver {
	return credentials.NewResolver(rt.opts.Store)
}

// credentials returns the API key and URL for this invocation.
func (rt *Runtime) credentials() (string, string, error) {
	resolver := rt.resolver()

	apiKey, err := resolver.APIKey(rt.v.GetString("api-key"))
	if err != nil {
		return "", "", err
	}

	return apiKey, resolver.APIURL(rt.v.GetString("api-url")), nil
}

// Client builds an API client from the resolved credentials and http/cache settings.
func (rt *Runtime) Client() (canny.Client, error) {
	apiKey, apiURL, err := rt.credentials()
	if err != nil {
		return nil, err
	}

	return rt.clientFor(apiKey, apiURL)
}

func (rt *Runtime) clientFor(apiKey, apiURL string) (canny.Client, error) {
	cache, err := rt.cache()
	if err != nil {
		return nil, err
	}

	config := &canny.Config{
		APIURL:       apiURL,
		APIKey:       apiKey,
		UserAgent:    constants.DefaultUserAgent + "/" + rt.opts.Version,
		Timeout:      rt.v.GetDuration("http.timeout"),
		RetryMax:     rt.v.GetInt("http.retry-max"),
		RetryWaitMin: rt.v.GetDuration("http.retry-wait-min"),
		RetryWaitMax: rt.v.GetDuration("http.retry-wait-max"),
		Cache:        cache,
		CacheTTL:     rt.v.GetDuration("cache.ttl"),
		Debug:        rt.v.GetBool("verbose"),
	}

	if rt.logger != nil {
		config.Logger = rt.logger
	}

	return cannyclient.New(config)
}

// cache returns the configured read cache, or nil when caching is off.
func (rt *Runtime) cache() (canny.Cache, error) {
	cacheType, err := canny.ParseCacheType(rt.v.GetString("cache.type"))
	if err != nil {
		return nil, err
	}

	if cacheType == canny.CacheTypeNone {
		return nil, nil
	}

	cache, err := canny.NewCacheFromConfig(&canny.CacheConfig{
		Type:    cacheType,
		MaxSize: canny.DefaultCacheSize,
		NATS: &canny.NATSKVConfig{
			URL:            rt.v.GetString("cache.nats.url"),
			Bucket:         rt.v.GetString("cache.nats.bucket"),
			TTL:            rt.v.GetDuration("cache.ttl"),
			ConnectTimeout: canny.DefaultNATSConnectTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	if closer, ok := cache.(io.Closer); ok {
		rt.closers = append(rt.closers, closer)
	}

	return cache, nil
}

func (rt *Runtime) close() {
	for _, closer := range rt.closers {
		_ = closer.Close()
	}

	rt.closers = nil

	if rt.logger != nil {
		_ = rt.logger.Sync()
	}
}

// exit releases resources and ends the process with code.
func (rt *Runtime) exit(code int) {
	rt.close()
	rt.opts.Exit(code)
}
