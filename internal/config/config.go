package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/bolan/internal/tui/theme"
)

// Environment overrides, applied after the config file.
const (
	EnvTheme = "BOLAN_THEME"
	EnvAddr  = "BOLAN_ADDR"
	EnvDebug = "BOLAN_DEBUG"
)

// Config holds all bolan configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds settings for `bolan serve`.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	LogLevel string `toml:"log_level,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: theme.FlexokiDark.Name,
		},
		Server: ServerConfig{
			Addr:     "127.0.0.1:8788",
			LogLevel: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bolan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bolan")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads only the config file, without environment overrides.
// Anything that writes the file back starts from here.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}
	return cfg, nil
}

// LoadOrDefault loads config, returning defaults on error so interactive
// commands can always start.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		cfg = DefaultConfig()
		ApplyEnv(&cfg)
	}
	return cfg
}

// ApplyEnv overrides cfg fields from BOLAN_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
}

// LoadDotEnv loads KEY=value pairs from the given files (default ".env")
// into the process environment. Variables already set win. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, ok := theme.Lookup(c.Appearance.Theme); !ok {
		errs = append(errs, fmt.Errorf("appearance.theme %q: unknown theme, want one of %s",
			c.Appearance.Theme, strings.Join(theme.Names(), ", ")))
	}
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		errs = append(errs, fmt.Errorf("server.addr %q: %w", c.Server.Addr, err))
	}
	switch c.Server.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("server.log_level %q: want debug, info, warn or error", c.Server.LogLevel))
	}
	return errors.Join(errs...)
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DebugEnabled reports whether BOLAN_DEBUG asks for a TUI debug log.
func DebugEnabled() bool {
	switch os.Getenv(EnvDebug) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
