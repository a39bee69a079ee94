// Package combat resolves single attacks between characters.
package combat

import "github.com/google/uuid"

// Outcome is the result tier of one attack.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	CriticalHit
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case CriticalHit:
		return "critical hit"
	default:
		return "unknown"
	}
}

// ExperiencePerHit is awarded to the attacker on every hit.
const ExperiencePerHit = 10

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	AttackerID uuid.UUID
	DefenderID uuid.UUID
	// Roll is the natural d20 face.
	Roll int
	// AttackBonus is added to Roll when compared against TargetArmorClass.
	AttackBonus int
	// TargetArmorClass is the defender's armor class as seen by the attacker.
	TargetArmorClass int
	Outcome          Outcome
	// Multiplier is the critical multiplier applied; 1 unless Outcome is CriticalHit.
	Multiplier int
	// Damage is the damage dealt after the multiplier and the minimum of 1.
	// Zero on a miss.
	Damage int
}

// Hit reports whether the attack connected.
func (r AttackResult) Hit() bool { return r.Outcome != Miss }
