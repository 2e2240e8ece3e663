package cmd

import (
	"github.com/spf13/cobra"

	"github.com/appforge/cli/internal/output"
	"github.com/appforge/cli/internal/version"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the base command for the forge CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "forge",
		Short: "Web-app project generator",
		Long: `forge scaffolds a Next.js/TypeScript starter application.

It collects a project name and a set of optional features (database,
authentication, render-performance instrumentation), writes the project
skeleton, and initializes a git repository.`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: FORGE_CONFIG)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	// Add subcommands
	root.AddCommand(NewNewCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// initializeGlobals sets up logging based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	info := version.GetInfo()
	output.Debug("forge started", "version", info.Version)

	return nil
}
