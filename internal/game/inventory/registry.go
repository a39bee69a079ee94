package inventory

import (
	"fmt"
	"sort"
)

// Registry holds loaded weapon, armor, and item records indexed by ID.
type Registry struct {
	weapons map[string]*Weapon
	armors  map[string]*Armor
	items   map[string]*Item
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		weapons: make(map[string]*Weapon),
		armors:  make(map[string]*Armor),
		items:   make(map[string]*Item),
	}
}

// LoadRegistry loads weapons, armors and items from the given directories.
// An empty path selects the embedded catalog for that kind.
func LoadRegistry(weaponsDir, armorsDir, itemsDir string) (*Registry, error) {
	var (
		weapons []*Weapon
		armors  []*Armor
		items   []*Item
		err     error
	)
	if weaponsDir == "" {
		weapons, err = loadDefs[Weapon](defaultContent, "content/weapons", "weapon")
	} else {
		weapons, err = LoadWeapons(weaponsDir)
	}
	if err != nil {
		return nil, err
	}
	if armorsDir == "" {
		armors, err = loadDefs[Armor](defaultContent, "content/armors", "armor")
	} else {
		armors, err = LoadArmors(armorsDir)
	}
	if err != nil {
		return nil, err
	}
	if itemsDir == "" {
		items, err = loadDefs[Item](defaultContent, "content/items", "item")
	} else {
		items, err = LoadItems(itemsDir)
	}
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()
	for _, w := range weapons {
		if err := reg.RegisterWeapon(w); err != nil {
			return nil, err
		}
	}
	for _, a := range armors {
		if err := reg.RegisterArmor(a); err != nil {
			return nil, err
		}
	}
	for _, i := range items {
		if err := reg.RegisterItem(i); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RegisterWeapon adds w to the registry.
//
// Precondition: w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID is already registered.
func (r *Registry) RegisterWeapon(w *Weapon) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
func (r *Registry) RegisterArmor(a *Armor) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterArmor: armor ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// RegisterItem adds i to the registry.
func (r *Registry) RegisterItem(i *Item) error {
	if _, exists := r.items[i.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %q already registered", i.ID)
	}
	r.items[i.ID] = i
	return nil
}

// Weapon returns the Weapon for id and whether it was found.
func (r *Registry) Weapon(id string) (*Weapon, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// Armor returns the Armor for id and whether it was found.
func (r *Registry) Armor(id string) (*Armor, bool) {
	a, ok := r.armors[id]
	return a, ok
}

// Item returns the Item for id and whether it was found.
func (r *Registry) Item(id string) (*Item, bool) {
	i, ok := r.items[id]
	return i, ok
}

// WeaponIDs returns the registered weapon IDs, sorted.
func (r *Registry) WeaponIDs() []string { return sortedKeys(r.weapons) }

// ArmorIDs returns the registered armor IDs, sorted.
func (r *Registry) ArmorIDs() []string { return sortedKeys(r.armors) }

// ItemIDs returns the registered item IDs, sorted.
func (r *Registry) ItemIDs() []string { return sortedKeys(r.items) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
