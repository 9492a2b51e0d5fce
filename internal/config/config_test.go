package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jask/clockboard/internal/logx"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("language = %q, want en", cfg.UI.Language)
	}
	if cfg.UI.Theme != "blue" {
		t.Errorf("theme = %q, want blue", cfg.UI.Theme)
	}
	if cfg.UI.HourCycle != HourCycleAuto {
		t.Errorf("hour_cycle = %q, want auto", cfg.UI.HourCycle)
	}
	if cfg.Rotation.Enabled {
		t.Error("rotation should default off")
	}
	if cfg.Storage.Path == "" {
		t.Error("storage path should have a default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[ui]
language = "ja"
timezone = "Asia/Tokyo"
theme = "mauve"
hour_cycle = "24"

[storage]
path = "/tmp/clocks.db"

[log]
level = "debug"
file = "/tmp/clockboard.log"

[rotation]
enabled = true
schedule = "@every 2m"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Language != "ja" {
		t.Errorf("language = %q", cfg.UI.Language)
	}
	if cfg.UI.Timezone != "Asia/Tokyo" {
		t.Errorf("timezone = %q", cfg.UI.Timezone)
	}
	if cfg.UI.HourCycle != HourCycle24 {
		t.Errorf("hour_cycle = %q", cfg.UI.HourCycle)
	}
	if cfg.Storage.Path != "/tmp/clocks.db" {
		t.Errorf("storage path = %q", cfg.Storage.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if !cfg.Rotation.Enabled || cfg.Rotation.Schedule != "@every 2m" {
		t.Errorf("rotation = %+v", cfg.Rotation)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[ui]\nlanguage = \"de\"\n")
	t.Setenv("CLOCKBOARD_UI_LANGUAGE", "ko")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Language != "ko" {
		t.Errorf("language = %q, want env override ko", cfg.UI.Language)
	}
}

func TestBadHourCycleNormalizes(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[ui]\nhour_cycle = \"13\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.HourCycle != HourCycleAuto {
		t.Errorf("hour_cycle = %q, want auto", cfg.UI.HourCycle)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	in := Config{
		UI:       UIConfig{Language: "fr", Timezone: "Europe/Paris", Theme: "peach", HourCycle: HourCycle12},
		Storage:  StorageConfig{Path: "/tmp/cb.db"},
		Log:      LogConfig{Level: "warn", File: "/tmp/cb.log"},
		Rotation: RotationConfig{Enabled: true, Schedule: "0 * * * *"},
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestWatchDeliversChangedConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[ui]\nlanguage = \"en\"\n")
	initial, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, path, initial, logx.Nop(), func(c Config) {
			select {
			case got <- c:
			default:
			}
		})
	}()

	// Give the watcher a beat to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, dir, "[ui]\nlanguage = \"ja\"\n")

	select {
	case cfg := <-got:
		if cfg.UI.Language != "ja" {
			t.Fatalf("delivered language = %q, want ja", cfg.UI.Language)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no config delivered after change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
