package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultLibraryPath(t *testing.T) {
	path := DefaultLibraryPath()
	if !strings.Contains(path, "promptlib") || filepath.Base(path) != "library.json" {
		t.Fatalf("unexpected default library path: %q", path)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LibraryPath != DefaultLibraryPath() {
		t.Fatalf("expected default library path, got %q", cfg.LibraryPath)
	}
	if cfg.NoColor || cfg.Verbose {
		t.Fatalf("expected quiet defaults, got %+v", cfg)
	}
}

func TestLoadFlagOverrideWins(t *testing.T) {
	t.Setenv("PROMPTLIB_LIBRARY", "/from/env/library.json")

	v := viper.New()
	v.Set("library", "/from/flag/library.json")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LibraryPath != "/from/flag/library.json" {
		t.Fatalf("flag override lost: %q", cfg.LibraryPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PROMPTLIB_LIBRARY", "/from/env/library.json")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LibraryPath != "/from/env/library.json" {
		t.Fatalf("env override lost: %q", cfg.LibraryPath)
	}
}
