package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todo.db"
	DefaultLogName        = "todo.log"
	DefaultLogLevel       = "info"

	appDirName = "checklist"
	envConfig  = "TODO_CONFIG"
)

type Keymap struct {
	Quit            string `toml:"quit"`
	Add             string `toml:"add"`
	Up              string `toml:"up"`
	Down            string `toml:"down"`
	Toggle          string `toml:"toggle"`
	Delete          string `toml:"delete"`
	Edit            string `toml:"edit"`
	Confirm         string `toml:"confirm"`
	Cancel          string `toml:"cancel"`
	ClearCompleted  string `toml:"clear_completed"`
	FilterAll       string `toml:"filter_all"`
	FilterActive    string `toml:"filter_active"`
	FilterCompleted string `toml:"filter_completed"`
	CycleFilter     string `toml:"cycle_filter"`
	Theme           string `toml:"theme"`
}

type Config struct {
	DBPath   string `toml:"db_path"`
	LogPath  string `toml:"log_path"`
	LogLevel string `toml:"log_level"`
	// MaxValueBytes caps a single stored value; 0 means unlimited.
	MaxValueBytes int    `toml:"max_value_bytes"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns $TODO_CONFIG when set, otherwise the config
// file inside the user config directory.
func ResolveConfigPath() string {
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(path), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillBlanks()
	return cfg.resolve(path), nil
}

// resolve makes relative file paths relative to the config file's directory.
func (c Config) resolve(configPath string) Config {
	dir := filepath.Dir(configPath)
	if c.DBPath != "" && !filepath.IsAbs(c.DBPath) && !isURI(c.DBPath) {
		c.DBPath = filepath.Join(dir, c.DBPath)
	}
	if c.LogPath != "" && !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(dir, c.LogPath)
	}
	return c
}

func isURI(p string) bool {
	return len(p) > 5 && p[:5] == "file:"
}

func (c *Config) fillBlanks() {
	def := defaultConfig()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.LogPath == "" {
		c.LogPath = def.LogPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.MaxValueBytes < 0 {
		c.MaxValueBytes = 0
	}
	k, d := &c.Keys, def.Keys
	for _, pair := range []struct {
		v   *string
		def string
	}{
		{&k.Quit, d.Quit}, {&k.Add, d.Add}, {&k.Up, d.Up}, {&k.Down, d.Down},
		{&k.Toggle, d.Toggle}, {&k.Delete, d.Delete}, {&k.Edit, d.Edit},
		{&k.Confirm, d.Confirm}, {&k.Cancel, d.Cancel},
		{&k.ClearCompleted, d.ClearCompleted}, {&k.FilterAll, d.FilterAll},
		{&k.FilterActive, d.FilterActive}, {&k.FilterCompleted, d.FilterCompleted},
		{&k.CycleFilter, d.CycleFilter}, {&k.Theme, d.Theme},
	} {
		if *pair.v == "" {
			*pair.v = pair.def
		}
	}
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:   DefaultDBName,
		LogPath:  DefaultLogName,
		LogLevel: DefaultLogLevel,
		Keys: Keymap{
			Quit:            "q",
			Add:             "a",
			Up:              "k",
			Down:            "j",
			Toggle:          " ",
			Delete:          "d",
			Edit:            "e",
			Confirm:         "enter",
			Cancel:          "esc",
			ClearCompleted:  "c",
			FilterAll:       "1",
			FilterActive:    "2",
			FilterCompleted: "3",
			CycleFilter:     "f",
			Theme:           "t",
		},
	}
}
