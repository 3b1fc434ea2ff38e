package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "basket.db"
	DefaultListName       = "My Grocery List"
	DefaultLockTimeout    = 3 * time.Second

	// EnvConfigPath overrides the config location when no flag is given.
	EnvConfigPath = "BASKET_CONFIG"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Detail     string `toml:"detail"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Edit       string `toml:"edit"`
	NextList   string `toml:"next_list"`
	PrevList   string `toml:"prev_list"`
	NewList    string `toml:"new_list"`
	DeleteList string `toml:"delete_list"`
}

type Config struct {
	DBPath          string `toml:"db_path"`
	LogLevel        string `toml:"log_level"`
	LogPath         string `toml:"log_path"`
	DefaultListName string `toml:"default_list_name"`
	LockTimeout     string `toml:"lock_timeout"`
	Keys            Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config file: the explicit path if given, then
// $BASKET_CONFIG, then basket/config.toml under the user config directory.
func ResolveConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "basket", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist. Fields missing from the file keep their defaults.
// A relative db_path is taken relative to the config file's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(path), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if strings.TrimSpace(cfg.DefaultListName) == "" {
		cfg.DefaultListName = DefaultListName
	}
	return cfg.resolve(path), nil
}

// LockWait returns lock_timeout as a duration, or the default when it is
// empty or malformed.
func (c Config) LockWait() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.LockTimeout))
	if err != nil || d <= 0 {
		return DefaultLockTimeout
	}
	return d
}

func (c Config) resolve(path string) Config {
	if c.DBPath != ":memory:" && !filepath.IsAbs(c.DBPath) {
		c.DBPath = filepath.Join(filepath.Dir(path), c.DBPath)
	}
	return c
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default is the configuration written on first launch.
func Default() Config {
	return Config{
		DBPath:          DefaultDBName,
		LogLevel:        "info",
		DefaultListName: DefaultListName,
		LockTimeout:     DefaultLockTimeout.String(),
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Delete:     "d",
			Detail:     "i",
			Confirm:    "enter",
			Cancel:     "esc",
			Edit:       "e",
			NextList:   "tab",
			PrevList:   "shift+tab",
			NewList:    "n",
			DeleteList: "D",
		},
	}
}
