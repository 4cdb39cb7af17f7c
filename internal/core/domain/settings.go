package domain

// OutputFormat selects how parse results are rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText is one summary line per result.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON is the structured result shape as JSON.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML is the structured result shape as YAML.
	OutputFormatYAML OutputFormat = "yaml"

	// OutputFormatTable is a styled terminal table.
	OutputFormatTable OutputFormat = "table"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatTable:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatText,
		OutputFormatJSON,
		OutputFormatYAML,
		OutputFormatTable,
	}
}

// HistoryBackend selects where parse history is kept.
type HistoryBackend string

// Available history backends.
const (
	// HistoryBackendSQLite persists history in a local SQLite database.
	HistoryBackendSQLite HistoryBackend = "sqlite"

	// HistoryBackendMemory keeps history for the lifetime of the process.
	HistoryBackendMemory HistoryBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b HistoryBackend) IsValid() bool {
	return b == HistoryBackendSQLite || b == HistoryBackendMemory
}

// String returns the string representation.
func (b HistoryBackend) String() string {
	return string(b)
}

// ParserSettings bounds the work the parse service accepts.
type ParserSettings struct {
	// MaxInputLength is the longest accepted line in bytes.
	MaxInputLength int

	// Workers caps concurrent parses in a batch.
	Workers int
}

// UnitSettings holds unit table configuration.
type UnitSettings struct {
	// ExtraFile is a YAML file with additional unit spellings. Optional.
	ExtraFile string
}

// OutputSettings holds rendering configuration.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat
}

// HistorySettings holds parse history configuration.
type HistorySettings struct {
	// Enabled turns history recording on.
	Enabled bool

	// Backend is where history is stored.
	Backend HistoryBackend

	// Dir is the directory for the SQLite database.
	// Empty means the config directory.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Parser  ParserSettings
	Units   UnitSettings
	Output  OutputSettings
	History HistorySettings
}

// Default limits.
const (
	DefaultMaxInputLength = 512
	DefaultWorkers        = 4
)

// DefaultAppSettings returns settings with sensible defaults.
// History is off until the user enables it.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Parser: ParserSettings{
			MaxInputLength: DefaultMaxInputLength,
			Workers:        DefaultWorkers,
		},
		Output: OutputSettings{
			Format: OutputFormatText,
		},
		History: HistorySettings{
			Enabled: false,
			Backend: HistoryBackendSQLite,
		},
	}
}
