package ruleset

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps race and class tags to their trait descriptors.
//
// A Registry is immutable after construction and safe for concurrent reads.
type Registry struct {
	races   map[Race]*RaceTraits
	classes map[Class]*ClassTraits
}

// NewRegistry builds a Registry from the given descriptors.
//
// Postcondition: Returns an error if any descriptor fails validation, if a tag
// is registered twice, or if ClassNone is missing.
func NewRegistry(races []*RaceTraits, classes []*ClassTraits) (*Registry, error) {
	reg := &Registry{
		races:   make(map[Race]*RaceTraits, len(races)),
		classes: make(map[Class]*ClassTraits, len(classes)),
	}
	for _, r := range races {
		if r == nil {
			return nil, fmt.Errorf("ruleset: nil race descriptor")
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := reg.races[r.ID]; dup {
			return nil, fmt.Errorf("ruleset: duplicate race %q", r.ID)
		}
		reg.races[r.ID] = r
	}
	for _, c := range classes {
		if c == nil {
			return nil, fmt.Errorf("ruleset: nil class descriptor")
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := reg.classes[c.ID]; dup {
			return nil, fmt.Errorf("ruleset: duplicate class %q", c.ID)
		}
		reg.classes[c.ID] = c
	}
	if _, ok := reg.classes[ClassNone]; !ok {
		return nil, fmt.Errorf("ruleset: class %q must be registered", ClassNone)
	}
	return reg, nil
}

// LoadRegistry loads race and class descriptors from directories. An empty
// directory path selects the embedded default table for that half.
func LoadRegistry(racesDir, classesDir string) (*Registry, error) {
	var (
		races   []*RaceTraits
		classes []*ClassTraits
		err     error
	)
	if racesDir == "" {
		races, err = loadRacesFS(defaultContent, "content/races")
	} else {
		races, err = LoadRaces(racesDir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}
	if classesDir == "" {
		classes, err = loadClassesFS(defaultContent, "content/classes")
	} else {
		classes, err = LoadClasses(classesDir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	return NewRegistry(races, classes)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the Registry built from the embedded tables.
//
// Postcondition: Returns a non-nil Registry; panics if the embedded content is malformed.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		reg, err := LoadRegistry("", "")
		if err != nil {
			panic("ruleset: embedded content is invalid: " + err.Error())
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Race returns the traits for race id.
//
// Postcondition: Returns an error wrapping ErrUnknownRace if id is not registered.
func (r *Registry) Race(id Race) (*RaceTraits, error) {
	t, ok := r.races[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRace, string(id))
	}
	return t, nil
}

// Class returns the traits for class id.
//
// Postcondition: Returns an error wrapping ErrUnknownClass if id is not registered.
func (r *Registry) Class(id Class) (*ClassTraits, error) {
	t, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, string(id))
	}
	return t, nil
}

// Races returns all registered race tags, sorted.
func (r *Registry) Races() []Race {
	out := make([]Race, 0, len(r.races))
	for id := range r.races {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Classes returns all registered class tags, sorted.
func (r *Registry) Classes() []Class {
	out := make([]Class, 0, len(r.classes))
	for id := range r.classes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
