/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Running cafeval without a command runs the self-test battery, so the bare
// binary doubles as a health check. Configuration is loaded once in Execute
// because it decides whether the audit log is opened at all.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/cafeval/internal/config"
	"github.com/jpl-au/cafeval/internal/log"
	"github.com/jpl-au/cafeval/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cafeval",
	Short: "Validate cafeteria product records",
	Long: `Validate comma-separated product records: a product name followed by its sizes.

Run without a command to execute the built-in self-test battery.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSelftest,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		diag = logger.Verbose("cli", os.Stderr, verbose)
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Loads configuration, opens audit logging when enabled, and exits 1 on error.
func Execute() {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		c = &config.Config{}
	}
	cfg = c

	if cfg.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}
	defer log.Close()

	err = rootCmd.Execute()
	if err != nil {
		if !JSON() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(
		newSelftestCmd(),
		newCheckCmd(),
		newNormaliseCmd(),
		newLogCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newVersionCmd(),
		newServeCmd(),
	)
}
