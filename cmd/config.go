// config.go implements "cafeval config" for configuration management.
//
// Local config (.cafeval/config.yaml) takes precedence over global
// (~/.cafeval/config.yaml). Writes go back to whichever file was read;
// --local forces the local file even before it exists.

package cmd

import (
	"fmt"
	"slices"

	"github.com/jpl-au/cafeval/internal/config"
	"github.com/jpl-au/cafeval/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  cafeval config                     # show config
  cafeval config author.name         # show one value
  cafeval config log.enabled false   # set a value

Configuration locations:
  Global: ~/.cafeval/config.yaml
  Local:  .cafeval/config.yaml

Environment overrides: CAFEVAL_AUTHOR, CAFEVAL_LOG_ENABLED, CAFEVAL_COLOUR.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.cafeval/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	var conf *config.Config
	var err error
	if forceLocal {
		conf, err = config.LoadScope(config.ScopeLocal)
	} else {
		conf, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scope := "global"
	if conf.Scope() == config.ScopeLocal {
		scope = "local"
	}

	switch len(args) {
	case 0:
		all := conf.All()
		log.Event("cli:config", "list").Author(Author()).Write(nil)
		if JSON() {
			return PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := conf.Get(args[0])
		log.Event("cli:config", "get").Author(Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(out, v)

	case 2:
		if err := conf.Set(args[0], args[1]); err != nil {
			log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}
		saveErr := conf.Save()
		log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Detail("scope", scope).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scope})
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scope)
	}
	return nil
}
