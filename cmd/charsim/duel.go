package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/combat"
	"github.com/cory-johannsen/charsim/internal/sim"
)

func newDuelCmd(st *cliState) *cobra.Command {
	var (
		a, b   combatantFlags
		rounds int
	)
	cmd := &cobra.Command{
		Use:   "duel",
		Short: "Run a duel between two characters",
		Long: `Build two characters and have them trade attacks, the first character
striking first, until one falls or the round limit is reached.

  Example: charsim duel --a-race dwarf --a-class fighter --b-race orc --seed 7
  Example: charsim duel --a-class paladin --a-ability str=16 --b-alignment evil`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := initializeApp(st.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			first, err := a.create(app)
			if err != nil {
				return err
			}
			second, err := b.create(app)
			if err != nil {
				return err
			}
			if rounds <= 0 {
				rounds = app.Config.Simulation.MaxRounds
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n  vs\n%s\n\n", first, second)
			rep, err := app.Arena.Duel(ctx, first, second, rounds)
			printReport(out, rep, first, second)
			return err
		},
	}
	a.register(cmd, "a-", "Challenger")
	b.register(cmd, "b-", "Defender")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "maximum rounds; 0 = simulation.max_rounds from config")
	return cmd
}

func printReport(w io.Writer, rep sim.Report, a, b *character.Character) {
	names := map[string]string{
		a.ID().String(): a.Name(),
		b.ID().String(): b.Name(),
	}
	for i, atk := range rep.Attacks {
		fmt.Fprintf(w, "R%d %s -> %s: rolled %d%+d vs AC %d, %s",
			i/2+1, names[atk.AttackerID.String()], names[atk.DefenderID.String()],
			atk.Roll, atk.AttackBonus, atk.TargetArmorClass, atk.Outcome)
		if atk.Outcome != combat.Miss {
			fmt.Fprintf(w, " for %d damage", atk.Damage)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nResult: %s after %d round(s)", rep.Ending, rep.Rounds)
	if rep.Winner != nil {
		fmt.Fprintf(w, ", %s wins", rep.Winner.Name())
	}
	fmt.Fprintf(w, "\n%s\n%s\n", a, b)
}
