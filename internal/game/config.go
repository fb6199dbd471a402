package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClientConfig holds the top-level client configuration. Values come from
// an optional YAML file and may be overridden by flags or environment.
type ClientConfig struct {
	// ServerURL is the game server root.
	ServerURL string `yaml:"server_url"`
	// UseFake runs the client against the in-memory fake world instead
	// of a server. Explicit opt-in only.
	UseFake bool `yaml:"use_fake"`
	// CatalogPath points to a YAML display catalog; empty uses the
	// built-in defaults.
	CatalogPath string `yaml:"catalog"`
	// RequestTimeoutSeconds is the per-request transport timeout.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	// BuyCeiling caps the quantity of a single market purchase, since
	// the market side has no ledger-derived availability.
	BuyCeiling int64 `yaml:"buy_ceiling"`
}

// DefaultClientConfig returns a ClientConfig with reasonable defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ServerURL:             "http://localhost:3000",
		RequestTimeoutSeconds: 10,
		BuyCeiling:            9999,
	}
}

// LoadClientConfig reads configuration from a YAML file. An empty path
// returns the defaults.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = DefaultClientConfig().RequestTimeoutSeconds
	}
	if cfg.BuyCeiling <= 0 {
		cfg.BuyCeiling = DefaultClientConfig().BuyCeiling
	}
	return cfg, nil
}
