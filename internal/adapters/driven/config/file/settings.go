package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/matching"
)

// Settings is the on-disk engine configuration.
type Settings struct {
	// Weights distributes the fused score across the four signals.
	Weights WeightSettings `toml:"weights"`

	// TopK is the maximum number of results per matching pass.
	TopK int `toml:"top_k"`

	// MinScore drops results below this threshold.
	MinScore float64 `toml:"min_score"`

	// TickIntervalSeconds is the monitor scan interval.
	TickIntervalSeconds int `toml:"tick_interval_seconds"`

	// TablesPath optionally points at a TOML file overriding the
	// built-in normalisation tables.
	TablesPath string `toml:"tables_path"`
}

// WeightSettings mirrors domain.Weights for TOML decoding.
type WeightSettings struct {
	Text     float64 `toml:"text"`
	Category float64 `toml:"category"`
	Location float64 `toml:"location"`
	Date     float64 `toml:"date"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	w := domain.DefaultWeights()
	return Settings{
		Weights:             WeightSettings{Text: w.Text, Category: w.Category, Location: w.Location, Date: w.Date},
		TopK:                domain.DefaultTopK,
		MinScore:            domain.DefaultMinScore,
		TickIntervalSeconds: int(domain.DefaultTickInterval / time.Second),
	}
}

// LoadSettings reads settings from the given path, falling back to
// defaults when the file does not exist. If path is empty it defaults
// to ~/.reunite/config.toml.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return settings, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".reunite", "config.toml")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing config: %w", err)
	}
	return settings, nil
}

// MatchConfig converts the settings into a matching configuration.
func (s Settings) MatchConfig() domain.MatchConfig {
	return domain.MatchConfig{
		Weights: domain.Weights{
			Text:     s.Weights.Text,
			Category: s.Weights.Category,
			Location: s.Weights.Location,
			Date:     s.Weights.Date,
		},
		TopK:     s.TopK,
		MinScore: s.MinScore,
	}
}

// TickInterval returns the monitor scan interval.
func (s Settings) TickInterval() time.Duration {
	if s.TickIntervalSeconds <= 0 {
		return domain.DefaultTickInterval
	}
	return time.Duration(s.TickIntervalSeconds) * time.Second
}

// LoadTables reads the normalisation tables referenced by the
// settings, or the embedded defaults when no override is configured.
func (s Settings) LoadTables() (*matching.Tables, error) {
	if s.TablesPath == "" {
		return matching.DefaultTables(), nil
	}
	data, err := os.ReadFile(s.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("reading tables: %w", err)
	}
	return matching.ParseTables(data)
}
