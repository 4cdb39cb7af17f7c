package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxInputLength = "parser.max_input_length"
	keyWorkers        = "parser.workers"
	keyUnitsExtraFile = "units.extra_file"
	keyOutputFormat   = "output.format"
	keyHistoryEnabled = "history.enabled"
	keyHistoryBackend = "history.backend"
	keyHistoryDir     = "history.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Parser: domain.ParserSettings{
			MaxInputLength: s.getInt(keyMaxInputLength, defaults.Parser.MaxInputLength),
			Workers:        s.getInt(keyWorkers, defaults.Parser.Workers),
		},
		Units: domain.UnitSettings{
			ExtraFile: s.configStore.GetString(keyUnitsExtraFile),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Backend: s.getHistoryBackend(defaults.History.Backend),
			Dir:     s.configStore.GetString(keyHistoryDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyMaxInputLength, settings.Parser.MaxInputLength); err != nil {
		return fmt.Errorf("save max input length: %w", err)
	}
	if err := s.configStore.Set(keyWorkers, settings.Parser.Workers); err != nil {
		return fmt.Errorf("save workers: %w", err)
	}
	if err := s.configStore.Set(keyUnitsExtraFile, settings.Units.ExtraFile); err != nil {
		return fmt.Errorf("save units extra_file: %w", err)
	}
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryBackend, settings.History.Backend.String()); err != nil {
		return fmt.Errorf("save history backend: %w", err)
	}
	if err := s.configStore.Set(keyHistoryDir, settings.History.Dir); err != nil {
		return fmt.Errorf("save history dir: %w", err)
	}
	return nil
}

// Set validates and stores one setting given as text.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case keyMaxInputLength, keyWorkers:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = n
	case keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = b
	case keyOutputFormat:
		if !domain.OutputFormat(value).IsValid() {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, value)
		}
		stored = value
	case keyHistoryBackend:
		if !domain.HistoryBackend(value).IsValid() {
			return fmt.Errorf("%w: unknown history backend %q", domain.ErrInvalidInput, value)
		}
		stored = value
	case keyUnitsExtraFile, keyHistoryDir:
		stored = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, stored)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyMaxInputLength,
		keyWorkers,
		keyUnitsExtraFile,
		keyOutputFormat,
		keyHistoryEnabled,
		keyHistoryBackend,
		keyHistoryDir,
	}
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Parser.MaxInputLength <= 0 {
		return fmt.Errorf("%w: max input length must be positive", domain.ErrInvalidInput)
	}
	if settings.Parser.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", domain.ErrInvalidInput)
	}
	if raw := s.configStore.GetString(keyOutputFormat); raw != "" && !domain.OutputFormat(raw).IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, raw)
	}
	if raw := s.configStore.GetString(keyHistoryBackend); raw != "" && !domain.HistoryBackend(raw).IsValid() {
		return fmt.Errorf("%w: unknown history backend %q", domain.ErrInvalidInput, raw)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getHistoryBackend(defaultVal domain.HistoryBackend) domain.HistoryBackend {
	backend := domain.HistoryBackend(s.configStore.GetString(keyHistoryBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
