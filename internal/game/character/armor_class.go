package character

import (
	"github.com/cory-johannsen/charsim/internal/game/ability"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
)

// ArmorClass derives the character's armor class. It is never stored.
//
// Postcondition: Returns BaseArmorClass + armor + shield + mod(dexterity)
// + class adjustment + race adjustment, applied in that order.
func (c *Character) ArmorClass() int {
	ac := BaseArmorClass
	if c.armor != nil {
		ac += c.armor.ArmorClassBonus
	}
	if c.shield != nil {
		ac += c.shield.ArmorClassBonus
	}
	ac += c.abilities.Mod(ability.Dexterity)
	ac += c.class.ArmorClassAdjustment(c.abilities)

	var attackerRace ruleset.Race
	if c.lastAttacker != nil {
		attackerRace = c.lastAttacker.Race()
	}
	ac += c.race.ArmorClassAdjustment(attackerRace, c.lastAttacker != nil)
	return ac
}

// CriticalRange returns the minimum natural roll that is a critical hit.
func (c *Character) CriticalRange() int {
	if r, ok := c.race.CriticalRangeOverride(); ok {
		return r
	}
	return ruleset.DefaultCriticalRange
}
