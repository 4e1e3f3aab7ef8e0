package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sweeney/button-monitor/internal/config"
)

func TestInstallWritesFiles(t *testing.T) {
	prefix := t.TempDir()

	if err := install(prefix); err != nil {
		t.Fatalf("install: %v", err)
	}

	binPath := filepath.Join(prefix, "usr/bin/button-monitor")
	if fi, err := os.Stat(binPath); err != nil {
		t.Errorf("binary not installed: %v", err)
	} else if fi.Mode().Perm()&0111 == 0 {
		t.Errorf("binary not executable: mode %v", fi.Mode())
	}

	unit, err := os.ReadFile(filepath.Join(prefix, "usr/lib/systemd/system/button-monitor.service"))
	if err != nil {
		t.Fatalf("unit not installed: %v", err)
	}
	if !strings.Contains(string(unit), "ExecStart="+binPath+" run -c "+configPath) {
		t.Errorf("unit ExecStart wrong:\n%s", unit)
	}

	cfg, err := os.ReadFile(filepath.Join(prefix, configPath))
	if err != nil {
		t.Fatalf("default config not installed: %v", err)
	}
	if string(cfg) != defaultConfig {
		t.Error("installed config does not match defaultConfig")
	}
}

func TestInstallKeepsExistingConfig(t *testing.T) {
	prefix := t.TempDir()

	cfgPath := filepath.Join(prefix, configPath)
	os.MkdirAll(filepath.Dir(cfgPath), 0755)
	existing := "broker = \"tcp://10.0.0.5:1883\"\n"
	if err := os.WriteFile(cfgPath, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if err := install(prefix); err != nil {
		t.Fatalf("install: %v", err)
	}

	got, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != existing {
		t.Errorf("existing config was overwritten:\n%s", got)
	}
}

// The shipped default config must load and validate cleanly.
func TestDefaultConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "button-monitor.toml")
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("default config failed to load: %v", err)
	}

	if len(cfg.Button) != 2 {
		t.Fatalf("expected 2 example buttons, got %d", len(cfg.Button))
	}
	if cfg.Button[0].Name != "power" || cfg.Button[1].Name != "mode" {
		t.Errorf("unexpected button names: %q, %q", cfg.Button[0].Name, cfg.Button[1].Name)
	}
	if cfg.Broker == "" {
		t.Error("default config should set a broker")
	}
}
