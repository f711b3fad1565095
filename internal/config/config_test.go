package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 960 {
		t.Errorf("expected width 960, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Game.StartRoom != "street" {
		t.Errorf("expected start room 'street', got %s", cfg.Game.StartRoom)
	}
	if cfg.Game.WalkSpeed != 120.0 {
		t.Errorf("expected walk speed 120, got %f", cfg.Game.WalkSpeed)
	}
	if cfg.Game.ZombieCount != 2 {
		t.Errorf("expected 2 zombies, got %d", cfg.Game.ZombieCount)
	}

	if cfg.Data.RoomsDir != "rooms" {
		t.Errorf("expected rooms dir 'rooms', got %s", cfg.Data.RoomsDir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1280
  height: 800
  fullscreen: true
  vsync: false

game:
  start_room: record_store
  walk_speed: 90
  zombie_count: 5
  language: de

data:
  rooms_dir: /srv/zq/rooms

logging:
  level: debug
  log_file: zq.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 800 {
		t.Errorf("unexpected size %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false")
	}
	if cfg.Game.StartRoom != "record_store" {
		t.Errorf("unexpected start room %s", cfg.Game.StartRoom)
	}
	if cfg.Game.WalkSpeed != 90 {
		t.Errorf("unexpected walk speed %f", cfg.Game.WalkSpeed)
	}
	if cfg.Game.ZombieCount != 5 {
		t.Errorf("unexpected zombie count %d", cfg.Game.ZombieCount)
	}
	if cfg.Data.RoomsDir != "/srv/zq/rooms" {
		t.Errorf("unexpected rooms dir %s", cfg.Data.RoomsDir)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "zq.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFile_PartialOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only the log level is set; everything else keeps defaults.
	if err := os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn level, got %s", cfg.Logging.Level)
	}
	if cfg.Graphics.Width != 960 {
		t.Error("untouched fields must keep their defaults")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Game.StartRoom = "alley"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading failed: %v", err)
	}
	if loaded.Game.StartRoom != "alley" {
		t.Errorf("round trip lost start room, got %s", loaded.Game.StartRoom)
	}
}
