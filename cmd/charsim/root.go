package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/charsim/internal/config"
)

// cliState carries configuration from the root command to subcommands.
type cliState struct {
	configPath string
	cfg        config.Config
}

// flagBindings maps configuration keys to the persistent flags overriding them.
var flagBindings = map[string]string{
	"dice.seed":            "seed",
	"logging.level":        "log-level",
	"scripting.script_dir": "scripts",
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:   "charsim",
		Short: "d20 character combat and progression simulator",
		Long: `charsim builds tabletop RPG characters from race and class tables,
equips them from content catalogs and resolves attacks between them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.configPath, "config", "", "path to configuration file")
	flags.Uint64("seed", 0, "dice seed for reproducible runs; 0 = non-reproducible")
	flags.String("log-level", "info", "minimum log level: debug, info, warn, error")
	flags.String("scripts", "", "directory of Lua event hooks; empty = scripting disabled")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(st.configPath, config.WithFlags(flags, flagBindings))
		if err != nil {
			return err
		}
		st.cfg = cfg
		return nil
	}

	root.AddCommand(newDuelCmd(st))
	root.AddCommand(newRollCmd(st))
	root.AddCommand(newShowCmd(st))
	return root
}
