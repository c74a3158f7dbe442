// cmd/idswatch/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/idswatch/internal/api"
	"github.com/rusenback/idswatch/internal/config"
	"github.com/rusenback/idswatch/internal/logging"
	"github.com/rusenback/idswatch/internal/session"
	"github.com/rusenback/idswatch/internal/storage"
	"github.com/rusenback/idswatch/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	backendURL := flag.String("backend", "", "backend base URL (overrides config)")
	initConfig := flag.Bool("init-config", false, "write a default config file and exit")
	flag.Parse()

	if *initConfig {
		path := *configPath
		if path == "" {
			path = filepath.Join(config.DataDir(), "config.yaml")
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *backendURL != "" {
		cfg.BackendURL = *backendURL
		if err := cfg.Validate(); err != nil {
			fmt.Printf("❌ Invalid -backend: %v\n", err)
			os.Exit(1)
		}
	}

	if err := logging.Init(cfg.LogDir); err != nil {
		fmt.Printf("❌ Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	client, err := api.NewClient(api.Config{BaseURL: cfg.BackendURL, Timeout: cfg.RequestTimeout})
	if err != nil {
		fmt.Printf("❌ Failed to create backend client: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewStorage(cfg.HistoryRetention)
	if err != nil {
		fmt.Printf("❌ Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctrl := session.NewController(cfg.PollInterval)
	defer ctrl.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logging.Info("idswatch started, backend %s", client.BaseURL())

	m := tui.NewModel(ctx, client, ctrl, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("program exited: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logging.Info("idswatch stopped")
}
