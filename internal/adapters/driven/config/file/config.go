// Package file provides TOML file-based configuration for the server.
//
// The API credential is deliberately not part of the file: it is read from
// the PERPLEXITY_API_KEY environment variable at client construction time
// and never written to disk.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTimeoutMS is the per-attempt provider call deadline.
const DefaultTimeoutMS = 5000

// Config is the on-disk configuration.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	Search   SearchConfig   `toml:"search"`
}

// ProviderConfig configures the Perplexity API client.
type ProviderConfig struct {
	// BaseURL overrides the API base URL. Empty uses the client default.
	BaseURL string `toml:"base_url"`

	// RequestsPerSecond caps the sustained provider call rate.
	// Zero uses the client default; negative disables limiting.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// BurstSize is the rate limiter burst. Zero uses the client default.
	BurstSize int `toml:"burst_size"`
}

// SearchConfig configures the search pipeline.
type SearchConfig struct {
	// TimeoutMS is the per-attempt deadline in milliseconds.
	// Each of the up to two attempts gets this full budget.
	TimeoutMS int `toml:"timeout_ms"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Search: SearchConfig{TimeoutMS: DefaultTimeoutMS},
	}
}

// DefaultPath returns the default config file location,
// ~/.perplexity-mcp/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".perplexity-mcp", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Search.TimeoutMS <= 0 {
		cfg.Search.TimeoutMS = DefaultTimeoutMS
	}
	return cfg, nil
}

// Timeout returns the per-attempt deadline as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Search.TimeoutMS) * time.Millisecond
}
