package config

import (
	"path/filepath"
	"testing"
)

func TestLoadOrDefault_MissingFile(t *testing.T) {
	home := setHome(t)
	cfg, err := LoadOrDefault()
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.DataPath != filepath.Join(home, ".certview", "learning-data.json") {
		t.Fatalf("unexpected data path: %q", cfg.DataPath)
	}
	if cfg.Lang != "en" || cfg.Sort != "date-desc" || len(cfg.DomainRules) == 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	setHome(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveLoad_RoundTripWithOverrides(t *testing.T) {
	home := setHome(t)
	cfg := &Config{DataPath: "~/data/learning.json", Lang: "en", Layout: "grid"}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	writeDotEnv(t, home, "CERTVIEW_LANG=fr\n")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataPath != filepath.Join(home, "data", "learning.json") {
		t.Fatalf("~ not expanded: %q", got.DataPath)
	}
	if got.Lang != "fr" {
		t.Fatalf("dotenv override not applied: %q", got.Lang)
	}
	if got.Layout != "grid" {
		t.Fatalf("unexpected layout: %q", got.Layout)
	}

	t.Setenv("CERTVIEW_DATA", "https://example.com/learning-data.json")
	got, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataPath != "https://example.com/learning-data.json" {
		t.Fatalf("env override not applied: %q", got.DataPath)
	}
}
