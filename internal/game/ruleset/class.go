package ruleset

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/charsim/internal/game/ability"
)

// DefaultCriticalRange is the natural roll at or above which an attack is a critical hit.
const DefaultCriticalRange = 20

// Progression controls how level feeds into the attack bonus.
type Progression string

const (
	// ProgressionFull adds the full level.
	ProgressionFull Progression = "full"
	// ProgressionHalf adds floor(level / 2).
	ProgressionHalf Progression = "half"
)

// CadenceBonus adds Bonus to the attack bonus when level % Modulus == Remainder.
type CadenceBonus struct {
	Modulus   int `yaml:"modulus"`
	Remainder int `yaml:"remainder"`
	Bonus     int `yaml:"bonus"`
}

// Bane strengthens attacks against defenders of a given alignment.
type Bane struct {
	Alignment          Alignment `yaml:"alignment"`
	DamageBonus        int       `yaml:"damage_bonus"`
	CriticalMultiplier int       `yaml:"critical_multiplier"`
}

// ClassTraits is the class slice of a character variant.
type ClassTraits struct {
	ID                Class         `yaml:"id"`
	Name              string        `yaml:"name"`
	Description       string        `yaml:"description"`
	StartingHitPoints int           `yaml:"starting_hit_points"`
	HitPointsPerLevel int           `yaml:"hit_points_per_level"`
	AttackAbility     ability.Kind  `yaml:"attack_ability"`
	AttackProgression Progression   `yaml:"attack_progression"`
	Cadence           *CadenceBonus `yaml:"cadence_bonus"`
	// UsesWeapon is true when the equipped weapon feeds attack and damage.
	UsesWeapon         bool         `yaml:"uses_weapon"`
	BaseDamage         int          `yaml:"base_damage"`
	DamageAbility      ability.Kind `yaml:"damage_ability"`
	CriticalMultiplier int          `yaml:"critical_multiplier"`
	Bane               *Bane        `yaml:"bane"`
	// IgnoresDexterityDefense subtracts the defender's positive dexterity
	// modifier from the armor class this class attacks against.
	IgnoresDexterityDefense bool `yaml:"ignores_dexterity_defense"`
	// DefenseAbility, when set, adds max(0, modifier) of that ability to armor class.
	DefenseAbility      ability.Kind `yaml:"defense_ability"`
	AllowedAlignments   []Alignment  `yaml:"allowed_alignments"`
	ForbiddenAlignments []Alignment  `yaml:"forbidden_alignments"`
	DefaultAlignment    Alignment    `yaml:"default_alignment"`
}

// Validate checks that the ClassTraits satisfy their invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (c *ClassTraits) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.StartingHitPoints < 1 {
		errs = append(errs, fmt.Errorf("starting_hit_points must be >= 1, got %d", c.StartingHitPoints))
	}
	if c.HitPointsPerLevel < 1 {
		errs = append(errs, fmt.Errorf("hit_points_per_level must be >= 1, got %d", c.HitPointsPerLevel))
	}
	if !c.AttackAbility.Valid() {
		errs = append(errs, fmt.Errorf("attack_ability: %w: %q", ability.ErrInvalidAbilityKind, c.AttackAbility))
	}
	if !c.DamageAbility.Valid() {
		errs = append(errs, fmt.Errorf("damage_ability: %w: %q", ability.ErrInvalidAbilityKind, c.DamageAbility))
	}
	if c.DefenseAbility != "" && !c.DefenseAbility.Valid() {
		errs = append(errs, fmt.Errorf("defense_ability: %w: %q", ability.ErrInvalidAbilityKind, c.DefenseAbility))
	}
	if c.AttackProgression != ProgressionFull && c.AttackProgression != ProgressionHalf {
		errs = append(errs, fmt.Errorf("attack_progression must be one of [full, half], got %q", c.AttackProgression))
	}
	if c.Cadence != nil && c.Cadence.Modulus < 1 {
		errs = append(errs, errors.New("cadence_bonus.modulus must be >= 1"))
	}
	if c.CriticalMultiplier < 1 {
		errs = append(errs, fmt.Errorf("critical_multiplier must be >= 1, got %d", c.CriticalMultiplier))
	}
	if c.Bane != nil && !c.Bane.Alignment.Valid() {
		errs = append(errs, fmt.Errorf("bane.alignment: %w: %q", ErrInvalidAlignment, c.Bane.Alignment))
	}
	for _, a := range append(append([]Alignment{}, c.AllowedAlignments...), c.ForbiddenAlignments...) {
		if !a.Valid() {
			errs = append(errs, fmt.Errorf("alignments: %w: %q", ErrInvalidAlignment, a))
		}
	}
	if c.DefaultAlignment != "" && !c.AllowsAlignment(c.DefaultAlignment) {
		errs = append(errs, fmt.Errorf("default_alignment %q is not allowed by the class", c.DefaultAlignment))
	}
	if len(errs) > 0 {
		return fmt.Errorf("class %q validation failed: %w", c.ID, errors.Join(errs...))
	}
	return nil
}

// AllowsAlignment reports whether the class permits alignment a.
func (c *ClassTraits) AllowsAlignment(a Alignment) bool {
	return allows(c.AllowedAlignments, c.ForbiddenAlignments, a)
}

// InitialAlignment returns the alignment a new character of this class starts with.
func (c *ClassTraits) InitialAlignment() Alignment {
	if c.DefaultAlignment != "" {
		return c.DefaultAlignment
	}
	return Neutral
}

// AttackBonus returns the class attack bonus for the given abilities and level.
//
// Postcondition: Returns mod(AttackAbility) + progression(level) + cadence(level).
func (c *ClassTraits) AttackBonus(scores ability.Scores, level int) int {
	bonus := scores.Mod(c.AttackAbility)
	switch c.AttackProgression {
	case ProgressionFull:
		bonus += level
	default:
		bonus += level / 2
	}
	if c.Cadence != nil && level%c.Cadence.Modulus == c.Cadence.Remainder {
		bonus += c.Cadence.Bonus
	}
	return bonus
}

// DamageAbilityModifier returns the modifier added to every damage roll.
func (c *ClassTraits) DamageAbilityModifier(scores ability.Scores) int {
	return scores.Mod(c.DamageAbility)
}

// DamageBonusAgainst returns extra damage against a defender of alignment a.
func (c *ClassTraits) DamageBonusAgainst(a Alignment) int {
	if c.Bane != nil && c.Bane.Alignment == a {
		return c.Bane.DamageBonus
	}
	return 0
}

// CriticalMultiplierAgainst returns the critical damage multiplier against a
// defender of alignment a.
func (c *ClassTraits) CriticalMultiplierAgainst(a Alignment) int {
	if c.Bane != nil && c.Bane.Alignment == a && c.Bane.CriticalMultiplier > 0 {
		return c.Bane.CriticalMultiplier
	}
	return c.CriticalMultiplier
}

// TargetArmorClass returns the armor class this class attacks against, given
// the defender's armor class and dexterity modifier.
func (c *ClassTraits) TargetArmorClass(armorClass, defenderDexMod int) int {
	if c.IgnoresDexterityDefense {
		return armorClass - max(0, defenderDexMod)
	}
	return armorClass
}

// ArmorClassAdjustment returns the class armor class term.
func (c *ClassTraits) ArmorClassAdjustment(scores ability.Scores) int {
	if c.DefenseAbility == "" {
		return 0
	}
	return max(0, scores.Mod(c.DefenseAbility))
}

// LevelUpHitPoints returns the hit points gained on a level-up.
//
// Postcondition: Returns max(1, HitPointsPerLevel + conMod).
func (c *ClassTraits) LevelUpHitPoints(conMod int) int {
	return max(1, c.HitPointsPerLevel+conMod)
}
