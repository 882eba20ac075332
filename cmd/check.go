// check.go implements "cafeval check" for validating records.
//
// Records come from arguments or, with --file, one per line from a file.
// Every record is checked and logged even after a failure; the command
// exits non-zero if any record was rejected.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/cafeval/internal/log"
	"github.com/jpl-au/cafeval/internal/progress"
	"github.com/jpl-au/cafeval/internal/validate"
	"github.com/spf13/cobra"
)

// ErrRejected is returned when at least one checked record is invalid.
var ErrRejected = errors.New("invalid records")

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check [record...]",
		Short: "Validate product records",
		Long: `Validate one or more product records.

  cafeval check "ZumoNa,1,2,3"
  cafeval check "tt,1" "a,1"
  cafeval check -f menu.txt       # one record per line, blank lines skipped

Exits 1 if any record is invalid.`,
		RunE: runCheck,
	}
	c.Flags().StringP("file", "f", "", "Read records from a file, one per line")
	return c
}

func runCheck(c *cobra.Command, args []string) error {
	file, _ := c.Flags().GetString("file")

	records := args
	if file != "" {
		lines, err := readRecords(file)
		if err != nil {
			return PrintJSONError(err)
		}
		records = append(records, lines...)
	}
	if len(records) == 0 {
		return PrintJSONError(errors.New("no records given (pass them as arguments or use --file)"))
	}

	verdicts := make([]validate.Verdict, 0, len(records))
	rejected := 0
	prog := progress.New("checking", len(records))
	for _, rec := range records {
		prog.Step()
		v := validate.Check(rec)
		log.Event("cli:check", "check").Author(Author()).Input(rec).Write(v.Err())
		diag.Debug().Str("input", rec).Bool("valid", v.Valid).Str("reason", v.Reason).Msg("check")

		if !v.Valid {
			rejected++
		}
		verdicts = append(verdicts, v)
	}
	prog.Done()

	if JSON() {
		if err := PrintJSON(verdicts); err != nil {
			return err
		}
	} else {
		for _, v := range verdicts {
			if v.Valid {
				fmt.Fprintf(out, "valid: %q\n", v.Input)
				continue
			}
			fmt.Fprintf(out, "invalid: %q: %s\n", v.Input, v.Reason)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejected, rejected, len(records))
	}
	return nil
}

// readRecords returns the non-blank lines of path.
func readRecords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	var records []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, line)
	}
	return records, nil
}
