package profile

import (
	"errors"
	"fmt"

	"cartesian-plane/internal/profile"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewProfileCmd creates the profile command group.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <command>",
		Short: "Work with profile files",
	}

	cmd.AddCommand(newDefaultCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

func newDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the built-in profile",
		Example: heredoc.Doc(`
			# Start a new profile from the defaults
			$ planerender profile default > my.profile
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return profile.Write(cmd.OutOrStdout(), profile.Default())
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report every invalid line of a profile",
		Long: heredoc.Doc(`
			Parse a profile and list each line that would be skipped when
			it is loaded. Exits non-zero when any line is invalid.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			p, err := profile.LoadFile(path)

			var list profile.ErrorList
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: profile %q is valid\n", path, p.Name)
				return nil
			case errors.As(err, &list):
				for _, e := range list {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %v: %q\n", path, e.Line, e.Err, e.Text)
				}
				return fmt.Errorf("%s: %d invalid lines", path, len(list))
			default:
				log.Error("Failed to read profile", "path", path, "error", err)
				return fmt.Errorf("failed to read profile: %w", err)
			}
		},
	}
}
