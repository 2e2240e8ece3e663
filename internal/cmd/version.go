package cmd

import (
	"github.com/spf13/cobra"

	"github.com/appforge/cli/internal/output"
	"github.com/appforge/cli/internal/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			output.Println(version.GetInfo().String())
		},
	}
}
