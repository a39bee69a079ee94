package character

import "github.com/cory-johannsen/charsim/internal/game/ability"

// ExperiencePerLevel scales the experience threshold: a character at level L
// levels up once experience reaches L * ExperiencePerLevel.
const ExperiencePerLevel = 1000

// GainExperience adds amount to experience and levels up for as long as the
// threshold for the current level is met. The threshold is recomputed after
// every level-up, so one large award can grant several levels. Non-positive
// amounts are ignored.
//
// Postcondition: Experience() < Level() * ExperiencePerLevel.
func (c *Character) GainExperience(amount int) {
	if amount <= 0 {
		return
	}
	c.experience += amount
	for c.experience >= c.level*ExperiencePerLevel {
		c.LevelUp()
	}
}

// LevelUp increments the level and grants hit points:
// max(1, class hit points per level + mod(constitution)), plus any racial bonus.
func (c *Character) LevelUp() {
	c.level++
	conMod := c.abilities.Mod(ability.Constitution)
	c.hitPoints += c.class.LevelUpHitPoints(conMod) + c.race.LevelUpBonus(conMod)
	for _, l := range c.listeners {
		l.CharacterLeveled(c, c.level)
	}
}
