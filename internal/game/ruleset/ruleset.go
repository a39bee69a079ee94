// Package ruleset defines the race and class variant descriptors that the
// character, armor class, combat and progression rules consult. Descriptors are
// tagged data loaded from YAML; the default tables are embedded in the binary.
package ruleset

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownRace is returned when a race tag has no registered traits.
var ErrUnknownRace = errors.New("unknown race")

// ErrUnknownClass is returned when a class tag has no registered traits.
var ErrUnknownClass = errors.New("unknown class")

// ErrInvalidAlignment is returned when parsing a string that is not Good, Evil or Neutral.
var ErrInvalidAlignment = errors.New("invalid alignment")

// Race tags a race variant.
type Race string

const (
	Human    Race = "human"
	Orc      Race = "orc"
	Dwarf    Race = "dwarf"
	Elf      Race = "elf"
	Halfling Race = "halfling"
)

// ParseRace converts a case-insensitive race name into a Race tag. It does not
// check that the race is registered; Registry.Race does that.
func ParseRace(s string) Race {
	return Race(strings.ToLower(strings.TrimSpace(s)))
}

// Class tags a class variant. ClassNone is the unspecialised base character.
type Class string

const (
	ClassNone Class = "none"
	Fighter   Class = "fighter"
	Rogue     Class = "rogue"
	Monk      Class = "monk"
	Paladin   Class = "paladin"
)

// ParseClass converts a case-insensitive class name into a Class tag.
// The empty string maps to ClassNone.
func ParseClass(s string) Class {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return ClassNone
	}
	return c
}

// Alignment is a character's moral alignment.
type Alignment string

const (
	Good    Alignment = "Good"
	Evil    Alignment = "Evil"
	Neutral Alignment = "Neutral"
)

// Valid reports whether a is one of Good, Evil or Neutral.
func (a Alignment) Valid() bool {
	return a == Good || a == Evil || a == Neutral
}

// ParseAlignment converts a case-insensitive name into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return Good, nil
	case "evil":
		return Evil, nil
	case "neutral":
		return Neutral, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
	}
}

// AlignmentAllowed reports whether a character of race r and class c may hold
// alignment a. Class restrictions are checked before race restrictions; both
// must pass.
//
// Precondition: r and c must be non-nil.
func AlignmentAllowed(r *RaceTraits, c *ClassTraits, a Alignment) bool {
	if !a.Valid() {
		return false
	}
	return c.AllowsAlignment(a) && r.AllowsAlignment(a)
}

func allows(allowed, forbidden []Alignment, a Alignment) bool {
	if len(allowed) > 0 && !slices.Contains(allowed, a) {
		return false
	}
	return !slices.Contains(forbidden, a)
}
