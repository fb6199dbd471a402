package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/catalog"
	"github.com/eragame/erachange/internal/game"
	"github.com/eragame/erachange/tui"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file")
		serverURL   = flag.String("server", "", "game server URL (overrides config)")
		catalogPath = flag.String("catalog", "", "display catalog YAML (overrides config)")
		useFake     = flag.Bool("fake", false, "run against the built-in fake world, no server needed")
	)
	flag.Parse()

	cfg, err := game.LoadClientConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if v := os.Getenv("ERACHANGE_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *useFake || os.Getenv("ERACHANGE_FAKE") == "1" {
		cfg.UseFake = true
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}

	var client api.Client
	if cfg.UseFake {
		client = api.NewSeededFake()
	} else {
		client = api.NewHTTPClient(api.Config{
			Mode:    api.ModeHTTP,
			BaseURL: cfg.ServerURL,
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		})
	}

	p := tea.NewProgram(tui.NewModel(client, cat, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
