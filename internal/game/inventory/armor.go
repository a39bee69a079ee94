package inventory

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Armor properties read by higher layers. The core never enforces them.
const (
	PropertyClassRestriction = "classRestriction"
	PropertyRaceRestriction  = "raceRestriction"
)

// Armor is a body armor piece or a shield. Both contribute ArmorClassBonus
// when equipped in their respective slot.
type Armor struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	ArmorClassBonus int            `yaml:"armor_class"`
	Properties      map[string]any `yaml:"properties"`
}

// NewArmor returns an Armor with no special properties.
func NewArmor(name string, armorClassBonus int) *Armor {
	return &Armor{Name: name, ArmorClassBonus: armorClassBonus, Properties: map[string]any{}}
}

// AddProperty records a special property and returns a for chaining.
func (a *Armor) AddProperty(name string, value any) *Armor {
	if a.Properties == nil {
		a.Properties = map[string]any{}
	}
	a.Properties[name] = value
	return a
}

// Restrictions lists the classes and races an armor piece is limited to.
// An empty list means no restriction on that axis.
type Restrictions struct {
	Classes []string
	Races   []string
}

// Restrictions returns the class and race restrictions declared on a.
func (a *Armor) Restrictions() Restrictions {
	return Restrictions{
		Classes: stringList(a.Properties[PropertyClassRestriction]),
		Races:   stringList(a.Properties[PropertyRaceRestriction]),
	}
}

// Permits reports whether a character of the given race and class satisfies
// the restrictions. Comparison is case-insensitive.
func (r Restrictions) Permits(race, class string) bool {
	return permitted(r.Classes, class) && permitted(r.Races, race)
}

func permitted(list []string, v string) bool {
	if len(list) == 0 {
		return true
	}
	return slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, v) })
}

// Validate checks that the Armor satisfies its invariants.
func (a *Armor) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.ArmorClassBonus < 0 {
		errs = append(errs, fmt.Errorf("armor_class must be >= 0, got %d", a.ArmorClassBonus))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func stringList(v any) []string {
	switch vs := v.(type) {
	case string:
		return []string{vs}
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
