package ruleset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/races/*.yaml content/classes/*.yaml
var defaultContent embed.FS

// LoadRaces reads all .yaml files in dir and parses each as RaceTraits.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed and validated races or a non-nil error.
func LoadRaces(dir string) ([]*RaceTraits, error) {
	return loadRacesFS(os.DirFS(dir), ".")
}

// LoadClasses reads all .yaml files in dir and parses each as ClassTraits.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed and validated classes or a non-nil error.
func LoadClasses(dir string) ([]*ClassTraits, error) {
	return loadClassesFS(os.DirFS(dir), ".")
}

func loadRacesFS(fsys fs.FS, dir string) ([]*RaceTraits, error) {
	files, err := yamlFiles(fsys, dir)
	if err != nil {
		return nil, err
	}
	races := make([]*RaceTraits, 0, len(files))
	for _, p := range files {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var r RaceTraits
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parsing race file %s: %w", p, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid race in %s: %w", p, err)
		}
		races = append(races, &r)
	}
	return races, nil
}

func loadClassesFS(fsys fs.FS, dir string) ([]*ClassTraits, error) {
	files, err := yamlFiles(fsys, dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*ClassTraits, 0, len(files))
	for _, p := range files {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var c ClassTraits
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", p, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid class in %s: %w", p, err)
		}
		classes = append(classes, &c)
	}
	return classes, nil
}

func yamlFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, path.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
