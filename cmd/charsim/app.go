package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/config"
	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/dice"
	"github.com/cory-johannsen/charsim/internal/game/inventory"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
	"github.com/cory-johannsen/charsim/internal/observability"
	"github.com/cory-johannsen/charsim/internal/scripting"
	"github.com/cory-johannsen/charsim/internal/sim"
)

// App holds the wired components shared by every subcommand.
type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Roller  *dice.Roller
	Rules   *ruleset.Registry
	Catalog *inventory.Registry
	Factory *sim.Factory
	Arena   *sim.Arena
}

func newApp(cfg config.Config, logger *zap.Logger, roller *dice.Roller, rules *ruleset.Registry, catalog *inventory.Registry, factory *sim.Factory, arena *sim.Arena) *App {
	return &App{
		Config:  cfg,
		Logger:  logger,
		Roller:  roller,
		Rules:   rules,
		Catalog: catalog,
		Factory: factory,
		Arena:   arena,
	}
}

func provideLoggingConfig(cfg config.Config) config.LoggingConfig {
	return cfg.Logging
}

func provideLogger(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideSource(cfg config.Config) dice.Source {
	if cfg.Dice.Seed == 0 {
		return dice.NewCryptoSource()
	}
	return dice.NewSeededSource(cfg.Dice.Seed)
}

func provideRules(cfg config.Config) (*ruleset.Registry, error) {
	return ruleset.LoadRegistry(cfg.Content.RacesDir, cfg.Content.ClassesDir)
}

func provideCatalog(cfg config.Config) (*inventory.Registry, error) {
	return inventory.LoadRegistry(cfg.Content.WeaponsDir, cfg.Content.ArmorsDir, cfg.Content.ItemsDir)
}

func provideScripts(cfg config.Config, roller *dice.Roller, logger *zap.Logger) (*scripting.Manager, func(), error) {
	mgr := scripting.NewManager(roller, logger)
	if cfg.Scripting.ScriptDir != "" {
		if err := mgr.Load(cfg.Scripting.ScriptDir, cfg.Scripting.InstructionLimit); err != nil {
			mgr.Close()
			return nil, nil, err
		}
	}
	return mgr, mgr.Close, nil
}

func provideListeners(logger *zap.Logger, scripts *scripting.Manager) []character.Listener {
	return []character.Listener{
		observability.NewEventLogger(logger),
		scripting.NewHookListener(scripts),
	}
}

func provideFactory(rules *ruleset.Registry, catalog sim.Catalog, resolver character.AttackResolver, logger *zap.Logger, listeners []character.Listener) *sim.Factory {
	return sim.NewFactory(rules, catalog, resolver, logger, listeners...)
}
