package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo is the build metadata printed by the version command.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the version, commit and build date of the canny CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version: rt.opts.Version,
				Commit:  valueOr(&rt.opts.Commit, "none"),
				Built:   valueOr(&rt.opts.Date, "unknown"),
			}

			handled, err := rt.renderStructured(info)
			if handled {
				return err
			}

			_, _ = fmt.Fprintf(rt.stdout, "canny version %s (commit %s, built %s)\n", info.Version, info.Commit, info.Built)

			return nil
		},
	}
}
