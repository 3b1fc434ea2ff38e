package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basket", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if want := filepath.Join(dir, "basket", DefaultDBName); cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
	}
	if cfg.DefaultListName != DefaultListName {
		t.Errorf("DefaultListName = %q", cfg.DefaultListName)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Errorf("reloaded config differs (-first +second):\n%s", diff)
	}
}

func TestLoadOrCreateKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	content := strings.Join([]string{
		`db_path = "/var/lib/basket/lists.db"`,
		`log_level = "debug"`,
		``,
		`[keys]`,
		`quit = "x"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.DBPath != "/var/lib/basket/lists.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Keys.Quit != "x" {
		t.Errorf("Keys.Quit = %q", cfg.Keys.Quit)
	}
	if cfg.Keys.Add != "a" || cfg.Keys.NextList != "tab" {
		t.Errorf("unset keys lost their defaults: %+v", cfg.Keys)
	}
	if cfg.DefaultListName != DefaultListName {
		t.Errorf("DefaultListName = %q", cfg.DefaultListName)
	}
}

func TestLoadOrCreateMemoryDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(`db_path = ":memory:"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.DBPath != ":memory:" {
		t.Errorf("DBPath = %q, want :memory:", cfg.DBPath)
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte("db_path = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/basket.toml")

	if got := ResolveConfigPath("/flag/basket.toml"); got != "/flag/basket.toml" {
		t.Errorf("flag path = %q", got)
	}
	if got := ResolveConfigPath(""); got != "/env/basket.toml" {
		t.Errorf("env path = %q", got)
	}

	t.Setenv(EnvConfigPath, "")
	if got := ResolveConfigPath(""); filepath.Base(got) != DefaultConfigFileName {
		t.Errorf("default path = %q", got)
	}
}

func TestLockWait(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"500ms", 500 * time.Millisecond},
		{"10s", 10 * time.Second},
		{"", DefaultLockTimeout},
		{"soon", DefaultLockTimeout},
		{"-1s", DefaultLockTimeout},
	}
	for _, tt := range tests {
		if got := (Config{LockTimeout: tt.in}).LockWait(); got != tt.want {
			t.Errorf("LockWait(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
