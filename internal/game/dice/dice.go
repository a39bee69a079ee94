// Package dice provides the randomness abstraction and roll-result types used
// by combat resolution. Every random draw in the engine goes through a Source
// so that tests and replays can substitute a deterministic one.
package dice

import "fmt"

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6+3"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// Natural returns the first kept die, which for a single d20 is the natural roll.
//
// Precondition: len(r.Dice) > 0.
func (r RollResult) Natural() int {
	if len(r.Dice) == 0 {
		panic("dice: RollResult.Natural precondition violated: no dice rolled")
	}
	return r.Dice[0]
}

// String returns a human-readable audit string such as "2d6+3 → [4 5] +3 = 12".
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
