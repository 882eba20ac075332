// serve.go implements "cafeval serve", an MCP server over stdio.
//
// Serve blocks until stdin closes. Stdout carries the protocol, so all
// diagnostics go to stderr.

package cmd

import (
	"os"

	"github.com/jpl-au/cafeval/internal/logger"
	"github.com/jpl-au/cafeval/internal/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

Tools: cafeval_validate, cafeval_validate_fields, cafeval_normalise,
cafeval_selftest, cafeval_guide. See "cafeval guide mcp".`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return mcp.Serve(logger.New("mcp", os.Stderr, level), Author())
}
