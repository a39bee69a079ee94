package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/charsim/internal/game/ability"
	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/sim"
)

// combatantFlags collects the flags describing one character.
type combatantFlags struct {
	name, race, class string
	alignment         string
	abilities         []string
	loadout           sim.Loadout
}

func (f *combatantFlags) register(cmd *cobra.Command, prefix, defaultName string) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, prefix+"name", defaultName, "character name")
	flags.StringVar(&f.race, prefix+"race", "human", "race: human, orc, dwarf, elf, halfling")
	flags.StringVar(&f.class, prefix+"class", "none", "class: none, fighter, rogue, monk, paladin")
	flags.StringVar(&f.alignment, prefix+"alignment", "", "alignment: good, evil, neutral; empty = class default")
	flags.StringArrayVar(&f.abilities, prefix+"ability", nil, "ability score override, e.g. str=15; repeatable")
	flags.StringVar(&f.loadout.Weapon, prefix+"weapon", "", "weapon ID")
	flags.StringVar(&f.loadout.Armor, prefix+"armor", "", "armor ID")
	flags.StringVar(&f.loadout.Shield, prefix+"shield", "", "shield ID")
	flags.StringSliceVar(&f.loadout.Items, prefix+"items", nil, "comma-separated item IDs")
}

func (f *combatantFlags) create(app *App) (*character.Character, error) {
	scores, err := sim.ParseAbilityOverrides(f.abilities)
	if err != nil {
		return nil, err
	}
	cu := sim.Customization{Alignment: f.alignment, Abilities: scores}
	return app.Factory.Create(f.name, f.race, f.class, cu, f.loadout)
}

func newShowCmd(st *cliState) *cobra.Command {
	var who combatantFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a character's derived statistics",
		Long: `Build a level 1 character and print its abilities, armor class,
critical range and equipment.

  Example: charsim show --name Legolas --race elf --class rogue --weapon dagger --ability dex=16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := initializeApp(st.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := who.create(app)
			if err != nil {
				return err
			}
			printSheet(cmd.OutOrStdout(), c)
			return nil
		},
	}
	who.register(cmd, "", "Adventurer")
	return cmd
}

func printSheet(w io.Writer, c *character.Character) {
	fmt.Fprintf(w, "%s the %s %s (%s)\n", c.Name(), c.RaceTraits().Name, c.ClassTraits().Name, c.Alignment())
	fmt.Fprintf(w, "Level %d  XP %d  HP %d  AC %d  Critical %d-20\n",
		c.Level(), c.Experience(), c.HitPoints(), c.ArmorClass(), c.CriticalRange())
	for _, k := range ability.All() {
		fmt.Fprintf(w, "  %s %2d (%+d)\n", k.Short(), c.Abilities().Score(k), c.Abilities().Mod(k))
	}
	if wpn := c.Weapon(); wpn != nil {
		fmt.Fprintf(w, "Weapon: %s (damage %d, attack %+d, damage bonus %+d)\n", wpn.Name, wpn.BaseDamage, wpn.AttackBonus, wpn.DamageBonus)
	}
	if a := c.Armor(); a != nil {
		fmt.Fprintf(w, "Armor: %s (AC %+d)\n", a.Name, a.ArmorClassBonus)
	}
	if s := c.Shield(); s != nil {
		fmt.Fprintf(w, "Shield: %s (AC %+d)\n", s.Name, s.ArmorClassBonus)
	}
	for _, item := range c.Inventory() {
		fmt.Fprintf(w, "Item: %s%s\n", item.Name, formatEffects(item.Effects))
	}
}

func formatEffects(effects map[string]int) string {
	if len(effects) == 0 {
		return ""
	}
	names := make([]string, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %+d", name, effects[name])
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
