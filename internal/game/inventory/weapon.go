// Package inventory provides the equipment records a character can carry and
// equip: weapons, armor (including shields) and miscellaneous items. Records
// are inert data; the rules that read them live in the character and combat
// packages.
package inventory

import (
	"errors"
	"fmt"
)

// PropertyCriticalMultiplier is the weapon property that overrides the default
// critical damage multiplier.
const PropertyCriticalMultiplier = "criticalMultiplier"

// Weapon is a wieldable weapon.
type Weapon struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	BaseDamage  int            `yaml:"damage"`
	AttackBonus int            `yaml:"attack_bonus"`
	DamageBonus int            `yaml:"damage_bonus"`
	Properties  map[string]any `yaml:"properties"`
}

// NewWeapon returns a Weapon with no special properties.
func NewWeapon(name string, baseDamage, attackBonus, damageBonus int) *Weapon {
	return &Weapon{
		Name:        name,
		BaseDamage:  baseDamage,
		AttackBonus: attackBonus,
		DamageBonus: damageBonus,
		Properties:  map[string]any{},
	}
}

// AddProperty records a special property and returns w for chaining.
func (w *Weapon) AddProperty(name string, value any) *Weapon {
	if w.Properties == nil {
		w.Properties = map[string]any{}
	}
	w.Properties[name] = value
	return w
}

// CriticalMultiplier returns the weapon's criticalMultiplier property when it
// is set to a positive whole number.
func (w *Weapon) CriticalMultiplier() (int, bool) {
	n, ok := intProperty(w.Properties, PropertyCriticalMultiplier)
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}

// Validate checks that the Weapon satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (w *Weapon) Validate() error {
	var errs []error
	if w.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if w.BaseDamage < 0 {
		errs = append(errs, fmt.Errorf("damage must be >= 0, got %d", w.BaseDamage))
	}
	if _, set := w.Properties[PropertyCriticalMultiplier]; set {
		if _, ok := w.CriticalMultiplier(); !ok {
			errs = append(errs, fmt.Errorf("%s must be a positive integer", PropertyCriticalMultiplier))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func intProperty(props map[string]any, name string) (int, bool) {
	switch v := props[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
