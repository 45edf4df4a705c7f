package root

import (
	"fmt"
	"strings"

	"cartesian-plane/cmd/planerender/root/lines"
	"cartesian-plane/cmd/planerender/root/profile"
	"cartesian-plane/cmd/planerender/root/render"
	"cartesian-plane/cmd/planerender/root/version"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override flags, for
// example PLANERENDER_WIDTH.
const EnvPrefix = "PLANERENDER"

// NewRootCmd creates the planerender command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "planerender <command> [flags]",
		Short: "Render and inspect Cartesian plane profiles",
		Long: heredoc.Doc(`
			Render Cartesian plane profiles to images and inspect the
			geometry the renderer draws.

			Flags may also be set in $HOME/.planerender.yaml or through
			PLANERENDER_* environment variables.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)

			viper.SetEnvPrefix(EnvPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			return viper.BindPFlags(cmd.Flags())
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(render.NewRenderCmd())
	cmd.AddCommand(lines.NewLinesCmd())
	cmd.AddCommand(profile.NewProfileCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
