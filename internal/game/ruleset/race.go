package ruleset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cory-johannsen/charsim/internal/game/ability"
)

// FoeBonus grants an attack bonus against defenders of a given race.
type FoeBonus struct {
	Race        Race `yaml:"race"`
	AttackBonus int  `yaml:"attack_bonus"`
}

// WaryBonus grants armor class depending on the race of the most recent
// attacker. When Attackers is non-empty the bonus applies only to those races;
// otherwise it applies to every race not listed in ExceptAttackers.
type WaryBonus struct {
	Attackers       []Race `yaml:"attackers"`
	ExceptAttackers []Race `yaml:"except_attackers"`
	ArmorClass      int    `yaml:"armor_class"`
}

// AppliesTo reports whether an attacker of race attacker triggers the bonus.
func (w *WaryBonus) AppliesTo(attacker Race) bool {
	if len(w.Attackers) > 0 {
		return slices.Contains(w.Attackers, attacker)
	}
	return !slices.Contains(w.ExceptAttackers, attacker)
}

// RaceTraits is the race slice of a character variant.
type RaceTraits struct {
	ID          Race   `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Modifiers are one-shot ability deltas applied at character creation.
	Modifiers map[string]int `yaml:"modifiers"`
	// ArmorClassBonus is a named, always-on armor class adjustment.
	ArmorClassBonus int `yaml:"armor_class_bonus"`
	// CriticalRange overrides the minimum critical roll; 0 means no override.
	CriticalRange       int         `yaml:"critical_range"`
	ForbiddenAlignments []Alignment `yaml:"forbidden_alignments"`
	FoeBonuses          []FoeBonus  `yaml:"foe_bonuses"`
	Wary                *WaryBonus  `yaml:"wary_bonus"`
	// LevelUpConstitutionBonus adds the constitution modifier a second time on
	// level-up when it is positive.
	LevelUpConstitutionBonus bool `yaml:"level_up_constitution_bonus"`
}

// Validate checks that the RaceTraits satisfy their invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (r *RaceTraits) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if r.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for name := range r.Modifiers {
		if _, err := ability.Parse(name); err != nil {
			errs = append(errs, fmt.Errorf("modifiers: %w", err))
		}
	}
	if r.CriticalRange != 0 && (r.CriticalRange < 2 || r.CriticalRange > 20) {
		errs = append(errs, fmt.Errorf("critical_range must be 0 or within 2-20, got %d", r.CriticalRange))
	}
	for _, a := range r.ForbiddenAlignments {
		if !a.Valid() {
			errs = append(errs, fmt.Errorf("forbidden_alignments: %w: %q", ErrInvalidAlignment, a))
		}
	}
	for _, f := range r.FoeBonuses {
		if f.Race == "" {
			errs = append(errs, errors.New("foe_bonuses: race must not be empty"))
		}
	}
	if r.Wary != nil && len(r.Wary.Attackers) > 0 && len(r.Wary.ExceptAttackers) > 0 {
		errs = append(errs, errors.New("wary_bonus: attackers and except_attackers are mutually exclusive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("race %q validation failed: %w", r.ID, errors.Join(errs...))
	}
	return nil
}

// ApplyTo adds the racial ability deltas to scores. Callers apply traits once,
// at creation; later ability changes are never re-adjusted.
func (r *RaceTraits) ApplyTo(scores ability.Scores) error {
	for name, delta := range r.Modifiers {
		k, err := ability.Parse(name)
		if err != nil {
			return fmt.Errorf("applying %s traits: %w", r.ID, err)
		}
		if err := scores.Add(k, delta); err != nil {
			return fmt.Errorf("applying %s traits: %w", r.ID, err)
		}
	}
	return nil
}

// AllowsAlignment reports whether the race permits alignment a.
func (r *RaceTraits) AllowsAlignment(a Alignment) bool {
	return allows(nil, r.ForbiddenAlignments, a)
}

// CriticalRangeOverride returns the race's critical range, if it sets one.
func (r *RaceTraits) CriticalRangeOverride() (int, bool) {
	return r.CriticalRange, r.CriticalRange > 0
}

// AttackBonusAgainst returns the sum of foe bonuses that apply to a defender of race defender.
func (r *RaceTraits) AttackBonusAgainst(defender Race) int {
	bonus := 0
	for _, f := range r.FoeBonuses {
		if f.Race == defender {
			bonus += f.AttackBonus
		}
	}
	return bonus
}

// ArmorClassAdjustment returns the race's armor class term. lastAttacker is
// the race of the most recent attacker; ok is false when there is none.
func (r *RaceTraits) ArmorClassAdjustment(lastAttacker Race, ok bool) int {
	adj := r.ArmorClassBonus
	if ok && r.Wary != nil && r.Wary.AppliesTo(lastAttacker) {
		adj += r.Wary.ArmorClass
	}
	return adj
}

// LevelUpBonus returns the extra hit points granted on level-up beyond the class formula.
func (r *RaceTraits) LevelUpBonus(conMod int) int {
	if r.LevelUpConstitutionBonus && conMod > 0 {
		return conMod
	}
	return 0
}
