// Package sim builds equipped characters from content catalogs and runs
// simulated encounters between them.
package sim

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/inventory"
)

// ErrUnknownEquipment is returned when a loadout names an ID the catalog lacks.
var ErrUnknownEquipment = errors.New("unknown equipment")

// Catalog looks up equipment definitions by ID. *inventory.Registry satisfies it.
type Catalog interface {
	Weapon(id string) (*inventory.Weapon, bool)
	Armor(id string) (*inventory.Armor, bool)
	Item(id string) (*inventory.Item, bool)
	WeaponIDs() []string
	ArmorIDs() []string
	ItemIDs() []string
}

var _ Catalog = (*inventory.Registry)(nil)

// Loadout names the equipment a character starts with. Empty IDs are skipped.
type Loadout struct {
	Weapon string   `yaml:"weapon"`
	Armor  string   `yaml:"armor"`
	Shield string   `yaml:"shield"`
	Items  []string `yaml:"items"`
}

// Apply equips the loadout on c. Armor and shields whose restrictions exclude
// c's race or class are skipped with a warning; the character keeps whatever
// was equipped before.
//
// Precondition: c, cat and logger must be non-nil.
// Postcondition: Returns an error wrapping ErrUnknownEquipment if any ID is
// missing from cat; nothing is equipped in that case.
func (l Loadout) Apply(c *character.Character, cat Catalog, logger *zap.Logger) error {
	var (
		weapon        *inventory.Weapon
		armor, shield *inventory.Armor
		items         []*inventory.Item
		errs          []error
	)
	if l.Weapon != "" {
		w, ok := cat.Weapon(l.Weapon)
		if !ok {
			errs = append(errs, unknown("weapon", l.Weapon, cat.WeaponIDs()))
		}
		weapon = w
	}
	if l.Armor != "" {
		a, ok := cat.Armor(l.Armor)
		if !ok {
			errs = append(errs, unknown("armor", l.Armor, cat.ArmorIDs()))
		}
		armor = a
	}
	if l.Shield != "" {
		s, ok := cat.Armor(l.Shield)
		if !ok {
			errs = append(errs, unknown("shield", l.Shield, cat.ArmorIDs()))
		}
		shield = s
	}
	for _, id := range l.Items {
		i, ok := cat.Item(id)
		if !ok {
			errs = append(errs, unknown("item", id, cat.ItemIDs()))
			continue
		}
		items = append(items, i)
	}
	if len(errs) > 0 {
		return fmt.Errorf("applying loadout to %s: %w", c.Name(), errors.Join(errs...))
	}

	if weapon != nil {
		c.EquipWeapon(weapon)
	}
	if armor != nil && permits(c, armor, logger) {
		c.EquipArmor(armor)
	}
	if shield != nil && permits(c, shield, logger) {
		c.EquipShield(shield)
	}
	for _, i := range items {
		c.AddItem(i)
	}
	return nil
}

func unknown(kind, id string, known []string) error {
	return fmt.Errorf("%s %q: %w (known: %s)", kind, id, ErrUnknownEquipment, strings.Join(known, ", "))
}

func permits(c *character.Character, a *inventory.Armor, logger *zap.Logger) bool {
	r := a.Restrictions()
	if r.Permits(string(c.Race()), string(c.Class())) {
		return true
	}
	logger.Warn("equipment restricted; skipping",
		zap.String("character", c.Name()),
		zap.String("equipment", a.Name),
		zap.String("race", string(c.Race())),
		zap.String("class", string(c.Class())),
		zap.Strings("allowed_races", r.Races),
		zap.Strings("allowed_classes", r.Classes),
	)
	return false
}
