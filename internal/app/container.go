// Package app wires the dependency graph. Terminal-bound adapters (line
// reader, clipboard, spinner) are attached by the CLI layer after the
// container is built so tests and one-shot mode can substitute their own.
package app

import (
	"context"
	"os"

	"github.com/doeshing/wtf/internal/infrastructure/cache"
	"github.com/doeshing/wtf/internal/infrastructure/config"
	"github.com/doeshing/wtf/internal/infrastructure/contextinfo"
	"github.com/doeshing/wtf/internal/infrastructure/executor"
	"github.com/doeshing/wtf/internal/infrastructure/history"
	"github.com/doeshing/wtf/internal/infrastructure/provider"
	"github.com/doeshing/wtf/internal/pkg/logger"
	"github.com/doeshing/wtf/internal/ports"
	"github.com/doeshing/wtf/internal/services"
)

// Container holds the wired session and the pieces subcommands need
// directly.
type Container struct {
	Session      *services.Session
	ConfigLoader *config.FileLoader
	History      ports.HistoryStore
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph. It fails fast when the
// configuration cannot be loaded or no API key is set.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	providerCfg, err := config.ResolveProvider(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	var store ports.HistoryStore
	switch cfg.History.Backend {
	case "sqlite":
		store = history.NewSQLiteStore(cfg.History.Path)
	default:
		store = history.NewFileStore(cfg.History.Path)
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	session := &services.Session{
		Provider:  provider.New(providerCfg),
		Harvester: contextinfo.New(workDir, cfg.Context.Disabled),
		History:   store,
		Executor:  executor.NewLocal(""),
		Cache:     cache.NewMemory(),
		Logger:    log,
		Out:       os.Stdout,
	}

	return &Container{
		Session:      session,
		ConfigLoader: cfgLoader,
		History:      store,
		Logger:       log,
	}, nil
}
