package driving

import "github.com/custodia-labs/larder/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set validates and stores a single dotted key ("parser.workers").
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
