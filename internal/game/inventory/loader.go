package inventory

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed content/weapons/*.yaml content/armors/*.yaml content/items/*.yaml
var defaultContent embed.FS

type definition interface {
	Validate() error
	id() string
}

func (w *Weapon) id() string { return w.ID }
func (a *Armor) id() string  { return a.ID }
func (i *Item) id() string   { return i.ID }

// LoadWeapons reads all *.yaml and *.yml files from dir and parses each as a Weapon.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Weapons or the first encountered error.
func LoadWeapons(dir string) ([]*Weapon, error) {
	return loadDefs[Weapon](os.DirFS(dir), ".", "weapon")
}

// LoadArmors reads all *.yaml and *.yml files from dir and parses each as an Armor.
func LoadArmors(dir string) ([]*Armor, error) {
	return loadDefs[Armor](os.DirFS(dir), ".", "armor")
}

// LoadItems reads all *.yaml and *.yml files from dir and parses each as an Item.
func LoadItems(dir string) ([]*Item, error) {
	return loadDefs[Item](os.DirFS(dir), ".", "item")
}

func loadDefs[T any, PT interface {
	*T
	definition
}](fsys fs.FS, dir, kind string) ([]*T, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("loading %ss: cannot read directory %q: %w", kind, dir, err)
	}
	var names []string
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]*T, 0, len(names))
	for _, name := range names {
		p := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("loading %ss: cannot read file %q: %w", kind, p, err)
		}
		var def T
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("loading %ss: cannot parse file %q: %w", kind, p, err)
		}
		pd := PT(&def)
		if pd.id() == "" {
			return nil, fmt.Errorf("loading %ss: %q has no id", kind, p)
		}
		if err := pd.Validate(); err != nil {
			return nil, fmt.Errorf("loading %ss: invalid %s in %q: %w", kind, kind, p, err)
		}
		out = append(out, &def)
	}
	return out, nil
}
