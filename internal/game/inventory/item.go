package inventory

import (
	"errors"
	"fmt"
)

// Item is a carried item with named numeric effects, e.g. a ring granting
// "armorClass": 2. Effects are descriptive; the core does not apply them.
type Item struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Effects map[string]int `yaml:"effects"`
}

// NewItem returns an Item with no effects.
func NewItem(name string) *Item {
	return &Item{Name: name, Effects: map[string]int{}}
}

// AddEffect records an effect and returns i for chaining.
func (i *Item) AddEffect(name string, value int) *Item {
	if i.Effects == nil {
		i.Effects = map[string]int{}
	}
	i.Effects[name] = value
	return i
}

// Validate checks that the Item satisfies its invariants.
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item validation failed: %w", errors.New("name must not be empty"))
	}
	return nil
}
