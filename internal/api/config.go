package api

import "time"

// Mode selects which Client implementation the application runs against.
type Mode string

const (
	// ModeHTTP talks to a real game server.
	ModeHTTP Mode = "http"
	// ModeFake runs against the in-memory fake, for tests and offline
	// demos.
	ModeFake Mode = "fake"
)

// Config holds configuration for the remote client.
type Config struct {
	// Mode picks the implementation.
	Mode Mode `yaml:"mode"`
	// BaseURL is the game server root, e.g. "http://localhost:3000".
	BaseURL string `yaml:"base_url"`
	// Timeout is the per-request transport timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Mode:    ModeHTTP,
		BaseURL: "http://localhost:3000",
		Timeout: 10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	return c
}
