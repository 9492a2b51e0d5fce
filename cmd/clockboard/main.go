package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockboard/internal/config"
	"github.com/jask/clockboard/internal/database"
	"github.com/jask/clockboard/internal/database/repository"
	"github.com/jask/clockboard/internal/logx"
	"github.com/jask/clockboard/internal/rotation"
	"github.com/jask/clockboard/internal/timezones"
	"github.com/jask/clockboard/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file (default ~/.config/clockboard/config.toml)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := *cfgPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal belongs to the TUI from here on; logx writes to the
	// configured file or nowhere.
	logSvc, logger := logx.New(logx.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	defer logSvc.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		log.Fatalf("mkdir storage dir: %v", err)
	}

	db, err := database.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repos := tui.Repos{
		Dashboards: repository.NewDashboardRepo(db),
		Instances:  repository.NewInstanceRepo(db),
	}

	app := tui.New(ctx, cfg, path, repos, logger, nil)
	p := tea.NewProgram(app, tea.WithAltScreen())

	rot := rotation.New(p.Send, logger)
	defer rot.Stop()
	if err := rot.Apply(cfg.Rotation.Enabled, cfg.Rotation.Schedule, timezones.Locate(cfg.UI.Timezone)); err != nil {
		logger.Warn("rotation disabled at startup", logx.Err(err))
	}

	// External edits and in-app saves both land here; the app treats a
	// reload of the same values as a no-op.
	go func() {
		err := config.Watch(ctx, path, cfg, logger, func(next config.Config) {
			logSvc.Apply(logx.Config{Level: next.Log.Level, File: next.Log.File})
			if err := rot.Apply(next.Rotation.Enabled, next.Rotation.Schedule, timezones.Locate(next.UI.Timezone)); err != nil {
				logger.Warn("rotation not applied", logx.Err(err))
			}
			p.Send(tui.ConfigReloadedMsg{Config: next})
		})
		if err != nil {
			logger.Warn("config watcher stopped", logx.Err(err))
		}
	}()

	logger.Info("clockboard starting",
		logx.String("config", path),
		logx.String("db", cfg.Storage.Path))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
