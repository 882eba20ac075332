// normalise.go implements "cafeval normalise", which shows how a record is
// split into fields and which spaces the validator removes.

package cmd

import (
	"fmt"

	"github.com/jpl-au/cafeval/internal/diff"
	"github.com/jpl-au/cafeval/internal/log"
	"github.com/jpl-au/cafeval/internal/validate"
	"github.com/spf13/cobra"
)

func newNormaliseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalise <record>",
		Aliases: []string{"normalize"},
		Short:   "Show the normalised fields of a record",
		Long: `Show the fields a record is split into after spaces are removed,
with a diff against the raw input.

  cafeval normalise " Zum oNa, 1 ,2"`,
		Args: cobra.ExactArgs(1),
		RunE: runNormalise,
	}
}

func runNormalise(_ *cobra.Command, args []string) error {
	input := args[0]
	fields := validate.Fields(input)
	d := diff.Fields(input)
	v := validate.Check(input)

	log.Event("cli:normalise", "normalise").Author(Author()).Input(input).Write(nil)

	if JSON() {
		return PrintJSON(map[string]any{
			"input":   input,
			"fields":  fields,
			"changed": d.Changed(),
			"diff":    d.Diff,
			"valid":   v.Valid,
			"reason":  v.Reason,
		})
	}

	for i, f := range fields {
		fmt.Fprintf(out, "%d: %q\n", i, f)
	}
	if d.Changed() {
		fmt.Fprintln(out)
		fmt.Fprint(out, d.Format(Colour()))
	}
	if v.Valid {
		fmt.Fprintf(out, "\nvalid: %s\n", v.Record)
	} else {
		fmt.Fprintf(out, "\ninvalid: %s\n", v.Reason)
	}
	return nil
}
