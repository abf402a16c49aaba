package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_ExplicitDir(t *testing.T) {
	cfg, err := New("/tmp/custom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/tmp/custom" {
		t.Errorf("expected /tmp/custom, got %s", cfg.Dir)
	}
	if cfg.RecordPath() != filepath.Join("/tmp/custom", RecordFile) {
		t.Errorf("unexpected record path %s", cfg.RecordPath())
	}
	if cfg.TermWidth() != DefaultWidth {
		t.Errorf("expected default width %d, got %d", DefaultWidth, cfg.TermWidth())
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got := DefaultConfigDir(); got != filepath.Join(xdg, AppName) {
		t.Errorf("expected XDG dir, got %s", got)
	}
}

func TestDefaultConfigDir_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	if got := DefaultConfigDir(); got != filepath.Join(home, ".config", AppName) {
		t.Errorf("expected home dir, got %s", got)
	}
}

func TestEnsureDir(t *testing.T) {
	cfg := &Config{Dir: filepath.Join(t.TempDir(), "nested", AppName)}

	if err := cfg.EnsureDir(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		t.Fatalf("expected dir to exist: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("expected mode 0700, got %o", perm)
	}
	if cfg.HasRecord() {
		t.Error("expected no record in a fresh dir")
	}
}

func TestClockAndLog(t *testing.T) {
	fixed := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	cfg := &Config{Now: func() time.Time { return fixed }}

	if !cfg.Clock().Equal(fixed) {
		t.Errorf("expected fixed clock, got %v", cfg.Clock())
	}
	if cfg.Log() == nil {
		t.Error("expected a discard logger when none is set")
	}
	if (&Config{Width: -3}).TermWidth() != DefaultWidth {
		t.Error("expected default width for non-positive width")
	}
}
