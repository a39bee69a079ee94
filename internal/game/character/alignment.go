package character

import "github.com/cory-johannsen/charsim/internal/game/ruleset"

// SetAlignment changes the alignment if a is valid and permitted by both the
// class and race. A rejected change is a silent no-op; the return value only
// reports whether the change was applied.
func (c *Character) SetAlignment(a ruleset.Alignment) bool {
	if !ruleset.AlignmentAllowed(c.race, c.class, a) {
		return false
	}
	c.alignment = a
	return true
}
