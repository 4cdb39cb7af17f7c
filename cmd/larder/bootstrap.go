package main

import (
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/larder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/larder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/larder/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/larder/internal/adapters/driving/cli"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
	"github.com/custodia-labs/larder/internal/core/services"
	"github.com/custodia-labs/larder/internal/logger"
	"github.com/custodia-labs/larder/internal/units"
)

// bootstrap wires the adapters and services for one command run.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	table, err := units.Load(settings.Units.ExtraFile)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := historyStore(opts, settings.History)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config: %s, history: %v", configStore.Path(), store != nil)

	return &cli.Services{
		Parse:    services.NewParseService(table, store, settings.Parser),
		History:  services.NewHistoryService(store),
		Settings: settingsService,
		Units:    table,
		Close:    closeStore,
	}, nil
}

// historyStore opens the configured history backend. It returns a nil
// store when history is disabled.
func historyStore(opts cli.Options, hs domain.HistorySettings) (driven.HistoryStore, func() error, error) {
	if !hs.Enabled {
		return nil, nil, nil
	}

	switch hs.Backend {
	case domain.HistoryBackendMemory:
		return memory.NewHistoryStore(), nil, nil
	default:
		dir := hs.Dir
		if dir == "" && opts.ConfigDir != "" {
			dir = filepath.Join(opts.ConfigDir, "data")
		}
		db, err := sqlite.NewStore(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening history: %w", err)
		}
		return db.HistoryStore(), db.Close, nil
	}
}
