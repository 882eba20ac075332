/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Flags are package-level variables bound to the root command. Commands read
// them through the accessors below rather than the variables directly.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/cafeval/internal/config"
	"github.com/jpl-au/cafeval/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	author  string
	verbose bool
)

// cfg is the effective configuration, loaded by Execute.
var cfg = &config.Config{}

// diag receives diagnostics; a Nop logger unless --verbose is set.
var diag = logger.Nop()

// out is the output writer for commands. Defaults to os.Stdout.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns who is running the command.
// Priority: --author flag > CAFEVAL_AUTHOR > author.name config > empty.
func Author() string {
	if author != "" {
		return author
	}
	return cfg.AuthorName()
}

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Colour reports whether output to stdout may use ANSI colours.
func Colour() bool {
	return !JSON() && cfg.Colour() && term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// The error is still returned so the process exits non-zero; Execute does
// not print it again in JSON mode.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Attribution for the audit log")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
