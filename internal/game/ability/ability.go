// Package ability defines the six ability scores and the modifier formula
// every derived statistic is built on.
package ability

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAbilityKind is returned when an ability name is not one of the six
// recognised abilities.
var ErrInvalidAbilityKind = errors.New("invalid ability kind")

// Kind names one of the six abilities.
type Kind string

const (
	Strength     Kind = "strength"
	Dexterity    Kind = "dexterity"
	Constitution Kind = "constitution"
	Wisdom       Kind = "wisdom"
	Intelligence Kind = "intelligence"
	Charisma     Kind = "charisma"
)

// Baseline is the score every ability starts at before racial adjustment.
const Baseline = 10

// All returns the six ability kinds in canonical display order.
func All() []Kind {
	return []Kind{Strength, Dexterity, Constitution, Wisdom, Intelligence, Charisma}
}

// Valid reports whether k is one of the six abilities.
func (k Kind) Valid() bool {
	switch k {
	case Strength, Dexterity, Constitution, Wisdom, Intelligence, Charisma:
		return true
	default:
		return false
	}
}

// Short returns the three-letter label for k, e.g. "STR".
func (k Kind) Short() string {
	if !k.Valid() {
		return fmt.Sprintf("<%s>", string(k))
	}
	return strings.ToUpper(string(k)[:3])
}

// Parse converts a case-insensitive ability name into a Kind.
//
// Postcondition: Returns a valid Kind, or an error wrapping ErrInvalidAbilityKind.
func Parse(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAbilityKind, name)
	}
	return k, nil
}

// Lookup is Parse extended to the three-letter labels returned by Short,
// so "str", "STR" and "strength" all name Strength.
func Lookup(name string) (Kind, error) {
	if k, err := Parse(name); err == nil {
		return k, nil
	}
	label := strings.ToUpper(strings.TrimSpace(name))
	for _, k := range All() {
		if k.Short() == label {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAbilityKind, name)
}

// Modifier returns floor((score - 10) / 2).
//
// Go integer division truncates toward zero, so odd negative differences are
// adjusted down by one.
func Modifier(score int) int {
	diff := score - Baseline
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
