package sim

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
)

// Factory creates equipped characters wired to a shared resolver and
// listeners.
type Factory struct {
	registry  *ruleset.Registry
	catalog   Catalog
	resolver  character.AttackResolver
	listeners []character.Listener
	logger    *zap.Logger
}

// NewFactory creates a Factory.
//
// Precondition: registry, catalog, resolver and logger must be non-nil.
func NewFactory(registry *ruleset.Registry, catalog Catalog, resolver character.AttackResolver, logger *zap.Logger, listeners ...character.Listener) *Factory {
	if registry == nil || catalog == nil || resolver == nil || logger == nil {
		panic("sim: NewFactory precondition violated: registry, catalog, resolver and logger must be non-nil")
	}
	return &Factory{
		registry:  registry,
		catalog:   catalog,
		resolver:  resolver,
		listeners: listeners,
		logger:    logger,
	}
}

// Create builds a character from user-facing race and class names, applies
// cu and then equips lo.
//
// Postcondition: Returns a level 1 character or the first error from
// character.New, Customization.Apply or Loadout.Apply.
func (f *Factory) Create(name, race, class string, cu Customization, lo Loadout) (*character.Character, error) {
	opts := []character.Option{
		character.WithRegistry(f.registry),
		character.WithResolver(f.resolver),
	}
	for _, l := range f.listeners {
		opts = append(opts, character.WithListener(l))
	}
	c, err := character.New(name, ruleset.ParseRace(race), ruleset.ParseClass(class), opts...)
	if err != nil {
		return nil, err
	}
	if err := cu.Apply(c, f.logger); err != nil {
		return nil, err
	}
	if err := lo.Apply(c, f.catalog, f.logger); err != nil {
		return nil, err
	}
	f.logger.Debug("character created",
		zap.String("name", c.Name()),
		zap.Stringer("id", c.ID()),
		zap.String("race", string(c.Race())),
		zap.String("class", string(c.Class())),
		zap.String("alignment", string(c.Alignment())),
	)
	return c, nil
}
