// logcmd.go implements "cafeval log", listing recent audit log entries.
//
// The audit log is opened by Execute; when log.enabled is false there is
// nothing to read and the command fails rather than printing an empty list.

package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jpl-au/cafeval/internal/duration"
	"github.com/jpl-au/cafeval/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent validations",
		Long: `Show recent entries from the audit log, newest first.

  cafeval log              # default limit (config log.limit)
  cafeval log --limit 5
  cafeval log --since 7d   # entries from the last 7 days
  cafeval log --prune 3m   # delete entries older than 3 months

Durations are a count followed by h, d, w or m (30 days).

Entries are stored in ~/.cafeval/log/cafeval-log.db.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP("limit", "n", 0, "Maximum entries to show")
	c.Flags().String("since", "", "Only show entries newer than this (e.g. 7d)")
	c.Flags().String("prune", "", "Delete entries older than this (e.g. 3m)")
	c.MarkFlagsMutuallyExclusive("since", "prune")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.LogLimit()
	}
	sinceFlag, _ := c.Flags().GetString("since")
	pruneFlag, _ := c.Flags().GetString("prune")

	if pruneFlag != "" {
		return runPrune(pruneFlag)
	}

	var since time.Time
	if sinceFlag != "" {
		t, err := duration.Before(time.Now(), sinceFlag)
		if err != nil {
			return PrintJSONError(err)
		}
		since = t
	}

	entries, err := log.Since(since, limit)
	if err != nil {
		if errors.Is(err, log.ErrNotOpen) {
			err = fmt.Errorf("%w (is log.enabled false?)", err)
		}
		return PrintJSONError(err)
	}

	if JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return PrintJSON(entries)
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "rejected"
		}
		ts := time.Unix(e.Start, 0).Format(time.DateTime)
		fmt.Fprintf(out, "%s  %-14s %-9s %-8s", ts, e.Source, e.Action, status)
		if e.Input != "" {
			fmt.Fprintf(out, " %q", e.Input)
		}
		if e.Author != "" {
			fmt.Fprintf(out, " by %s", e.Author)
		}
		if e.Error != "" {
			fmt.Fprintf(out, " (%s)", e.Error)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runPrune(age string) error {
	cutoff, err := duration.Before(time.Now(), age)
	if err != nil {
		return PrintJSONError(err)
	}
	n, err := log.Prune(cutoff)
	if err != nil {
		return PrintJSONError(err)
	}
	diag.Debug().Int64("removed", n).Time("before", cutoff).Msg("log pruned")

	if JSON() {
		return PrintJSON(map[string]any{"removed": n, "before": cutoff.Unix()})
	}
	fmt.Fprintf(out, "Removed %d entries older than %s\n", n, age)
	return nil
}
