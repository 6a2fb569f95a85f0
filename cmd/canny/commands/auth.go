package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/credentials"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command
func NewAuthCommand(rt *Runtime) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with the Canny API",
		Long: `Show and verify the current credentials, or prompt for new ones.

When an API key is already available the masked key and API URL are shown and
verified with a lightweight request. Otherwise you are asked for your company
subdomain and API key, which are saved to the OS keychain.

Examples:
  canny auth
  canny auth --reset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset {
				_ = rt.resolver().Clear()
				_, _ = fmt.Fprintf(rt.stdout, "  %s Credentials cleared.\n\n", rt.colors.green.Sprint("✓"))
			}

			apiKey, apiURL, err := rt.credentials()
			if err == nil {
				return rt.showAuthStatus(cmd, apiKey, apiURL)
			}

			if !errors.Is(err, constants.ErrAPIKeyNotFound) {
				return err
			}

			return rt.promptCredentials()
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "clear stored credentials and re-authenticate")

	return cmd
}

func (rt *Runtime) showAuthStatus(cmd *cobra.Command, apiKey, apiURL string) error {
	out := rt.stdout

	_, _ = fmt.Fprintf(out, "%s\n\n", rt.colors.bold.Sprint("Canny CLI"))
	_, _ = fmt.Fprintf(out, "  %s %s\n", rt.colors.dim.Sprint("API URL:"), apiURL)
	_, _ = fmt.Fprintf(out, "  %s %s\n", rt.colors.dim.Sprint("API key:"), credentials.Mask(apiKey))
	_, _ = fmt.Fprintf(out, "  %s", rt.colors.dim.Sprint("Verifying..."))

	client, err := rt.clientFor(apiKey, apiURL)
	if err != nil {
		return err
	}

	boards, err := client.Boards().List(cmd.Context())
	if err != nil {
		_, _ = fmt.Fprintf(out, "\r  %s Authentication failed: %v\n", rt.colors.red.Sprint("✗"), err)
		_, _ = fmt.Fprintf(out, "\n  Run %s to re-authenticate.\n", rt.colors.cyan.Sprint("canny auth --reset"))

		return nil
	}

	noun := "boards"
	if len(boards) == 1 {
		noun = "board"
	}

	_, _ = fmt.Fprintf(out, "\r  %s Authenticated (%d %s)   \n", rt.colors.green.Sprint("✓"), len(boards), noun)

	return nil
}

func (rt *Runtime) promptCredentials() error {
	out := rt.stdout

	_, _ = fmt.Fprintf(out, "%s\n\n", rt.colors.bold.Sprint("Canny CLI Authentication"))
	_, _ = fmt.Fprintf(out, "  %s (e.g. 'mycompany' for mycompany.canny.io) [%s]: ",
		rt.colors.cyan.Sprint("Subdomain"), rt.colors.dim.Sprint(constants.DefaultSubdomain))

	subdomain, err := rt.readLine()
	if err != nil {
		return fmt.Errorf("failed to read subdomain: %w", err)
	}

	apiURL := credentials.SubdomainURL(subdomain)

	_, _ = fmt.Fprintf(out, "  %s: ", rt.colors.cyan.Sprint("API key"))

	apiKey, err := rt.readSecret()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	err = rt.resolver().Save(apiKey, apiURL)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\n  %s Credentials saved to Keychain.\n", rt.colors.green.Sprint("✓"))
	_, _ = fmt.Fprintf(out, "  %s %s\n", rt.colors.dim.Sprint("API URL:"), apiURL)

	return nil
}

func (rt *Runtime) readLine() (string, error) {
	line, err := rt.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readSecret reads without echo when stdin is a terminal.
func (rt *Runtime) readSecret() (string, error) {
	if !rt.opts.IsTerminal() {
		return rt.readLine()
	}

	secret, err := term.ReadPassword(int(syscall.Stdin))
	_, _ = fmt.Fprintln(rt.stdout)

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(secret)), nil
}
