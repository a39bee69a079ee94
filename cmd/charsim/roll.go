package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRollCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "roll <expression>",
		Short: "Roll a dice expression",
		Long: `Roll a dice expression such as 1d20, 2d6+3 or 4d6kh3.

  Example: charsim roll 2d6+3 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := initializeApp(st.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := app.Roller.RollExpr(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}
