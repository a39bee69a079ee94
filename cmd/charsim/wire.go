//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/cory-johannsen/charsim/internal/config"
	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/combat"
	"github.com/cory-johannsen/charsim/internal/game/dice"
	"github.com/cory-johannsen/charsim/internal/game/inventory"
	"github.com/cory-johannsen/charsim/internal/sim"
)

var appSet = wire.NewSet(
	provideLoggingConfig,
	provideLogger,
	provideSource,
	dice.NewLoggedRoller,
	combat.NewResolver,
	wire.Bind(new(character.AttackResolver), new(*combat.Resolver)),
	provideRules,
	provideCatalog,
	wire.Bind(new(sim.Catalog), new(*inventory.Registry)),
	provideScripts,
	provideListeners,
	provideFactory,
	sim.NewArena,
	newApp,
)

func initializeApp(cfg config.Config) (*App, func(), error) {
	wire.Build(appSet)
	return nil, nil, nil
}
