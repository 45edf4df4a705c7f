package version

import (
	"fmt"

	"cartesian-plane/internal/cliutil"
	"cartesian-plane/internal/version"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates a new command that displays version information
func NewVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  `Display the version, git commit, and build time of planerender.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if format == cliutil.FormatText {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "planerender "+info.String())
				return err
			}
			return cliutil.WriteOutput(cmd.OutOrStdout(), format, info)
		},
	}

	cmd.Flags().StringVar(&format, "format", cliutil.FormatText, "Output format. Accepts 'text', 'json', or 'yaml'")

	return cmd
}
