package character

import "github.com/cory-johannsen/charsim/internal/game/inventory"

// EquipWeapon equips w, replacing any equipped weapon. nil unequips.
func (c *Character) EquipWeapon(w *inventory.Weapon) { c.weapon = w }

// EquipArmor equips a as body armor, replacing any equipped armor. nil unequips.
func (c *Character) EquipArmor(a *inventory.Armor) { c.armor = a }

// EquipShield equips s as a shield, replacing any equipped shield. nil unequips.
func (c *Character) EquipShield(s *inventory.Armor) { c.shield = s }

// AddItem appends i to the inventory.
func (c *Character) AddItem(i *inventory.Item) {
	c.inventory = append(c.inventory, i)
}

// Weapon returns the equipped weapon, or nil.
func (c *Character) Weapon() *inventory.Weapon { return c.weapon }

// Armor returns the equipped armor, or nil.
func (c *Character) Armor() *inventory.Armor { return c.armor }

// Shield returns the equipped shield, or nil.
func (c *Character) Shield() *inventory.Armor { return c.shield }

// Inventory returns a copy of the carried items in insertion order.
func (c *Character) Inventory() []*inventory.Item {
	out := make([]*inventory.Item, len(c.inventory))
	copy(out, c.inventory)
	return out
}
