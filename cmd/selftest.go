// selftest.go implements "cafeval selftest", also the root command's
// default action.
//
// The run aborts at the first mismatch and exits non-zero; on success it
// prints "All N test cases passed".

package cmd

import (
	"fmt"
	"io"

	"github.com/jpl-au/cafeval/internal/log"
	"github.com/jpl-au/cafeval/internal/selftest"
	"github.com/jpl-au/cafeval/internal/validate"
	"github.com/spf13/cobra"
)

func newSelftestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "selftest",
		Short: "Run the self-test battery",
		Long: `Run a battery of known records through the validator.

  cafeval                              # built-in battery
  cafeval selftest                     # same
  cafeval selftest -f battery.yaml     # custom battery

A battery file is a YAML list of cases:

  - input: "ZumoNa,1"
    valid: true
    note: optional description`,
		Args: cobra.NoArgs,
		RunE: runSelftest,
	}
	c.Flags().StringP("file", "f", "", "YAML battery to run instead of the built-in one")
	return c
}

func runSelftest(c *cobra.Command, _ []string) error {
	var file string
	if f := c.Flags().Lookup("file"); f != nil {
		file = f.Value.String()
	}

	cases, err := loadBattery(file)
	if err != nil {
		return PrintJSONError(err)
	}

	var w io.Writer = out
	if JSON() {
		w = nil
	}
	res, runErr := selftest.Run(w, cases, validate.Valid)

	l := log.Event("cli:selftest", "selftest").Author(Author()).
		Detail("cases", res.Total).Detail("passed", res.Passed)
	if file != "" {
		l.Detail("file", file)
	}
	l.Write(runErr)
	diag.Debug().Int("cases", res.Total).Int("passed", res.Passed).Msg("selftest finished")

	if JSON() {
		if err := PrintJSON(res); err != nil {
			return err
		}
		return runErr
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(out, "\nAll %d test cases passed\n", res.Total)
	return nil
}

func loadBattery(file string) ([]selftest.Case, error) {
	if file == "" {
		return selftest.Builtin()
	}
	return selftest.Load(file)
}
