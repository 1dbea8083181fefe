package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/input/mouse"
	"github.com/dshills/termstack/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "TERMSTACK_LOG_LEVEL"
	EnvLogFile     = "TERMSTACK_LOG_FILE"
	EnvQuitKey     = "TERMSTACK_QUIT_KEY"
	EnvKeyBindings = "TERMSTACK_KEYBINDINGS"
	EnvScripts     = "TERMSTACK_SCRIPTS"
)

// Config is the complete termstack configuration.
type Config struct {
	App         AppConfig         `toml:"app"`
	Mouse       MouseConfig       `toml:"mouse"`
	KeyBindings KeyBindingsConfig `toml:"keybindings"`
	Scripts     ScriptsConfig     `toml:"scripts"`
	Search      SearchConfig      `toml:"search"`

	// path is the file the configuration was loaded from.
	path string
}

// AppConfig holds application settings.
type AppConfig struct {
	// QuitKey stops the current toplevel, in key.TryParse syntax.
	QuitKey string `toml:"quit_key"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFile receives log output. Empty discards it, since the terminal
	// is owned by the driver.
	LogFile string `toml:"log_file"`
}

// MouseConfig holds click synthesis thresholds.
type MouseConfig struct {
	DoubleClickMs       int `toml:"double_click_ms"`
	DoubleClickDistance int `toml:"double_click_distance"`
}

// KeyBindingsConfig lists binding files applied at startup.
type KeyBindingsConfig struct {
	Files []string `toml:"files"`
	// Watch reloads the files when they change.
	Watch bool `toml:"watch"`
}

// ScriptsConfig lists Lua scripts run at startup.
type ScriptsConfig struct {
	Files []string `toml:"files"`
}

// SearchConfig configures the background file search.
type SearchConfig struct {
	MaxResults int      `toml:"max_results"`
	Ignore     []string `toml:"ignore"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			QuitKey:  "Ctrl+Q",
			LogLevel: "info",
		},
		Mouse: MouseConfig{
			DoubleClickMs:       400,
			DoubleClickDistance: 1,
		},
		Search: SearchConfig{
			MaxResults: 200,
			Ignore:     []string{".git", "node_modules", "vendor"},
		},
	}
}

// Load reads the configuration at path, applies environment overrides
// and validates the result. A missing file yields the defaults.
// Relative file lists are resolved against the directory of path.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			cfg, err = parse(path, data)
			if err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		cfg.path = path
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if path != "" {
		cfg.resolvePaths(filepath.Dir(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	return parse("<data>", data)
}

func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
		}
		return nil, perr
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// ApplyEnv applies TERMSTACK_* overrides found through lookup.
// TERMSTACK_KEYBINDINGS and TERMSTACK_SCRIPTS hold path lists
// separated by the OS path list separator.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.App.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.App.LogFile = v
	}
	if v, ok := lookup(EnvQuitKey); ok {
		c.App.QuitKey = v
	}
	if v, ok := lookup(EnvKeyBindings); ok {
		c.KeyBindings.Files = splitList(v)
	}
	if v, ok := lookup(EnvScripts); ok {
		c.Scripts.Files = splitList(v)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range filepath.SplitList(v) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) resolvePaths(dir string) {
	resolve := func(files []string) {
		for i, f := range files {
			if f != "" && !filepath.IsAbs(f) {
				files[i] = filepath.Join(dir, f)
			}
		}
	}
	resolve(c.KeyBindings.Files)
	resolve(c.Scripts.Files)
}

// Validate checks every setting and reports all failures, each wrapping
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.App.LogLevel); err != nil {
		errs = append(errs, invalid("app.log_level", c.App.LogLevel, err.Error()))
	}
	if c.App.QuitKey != "" {
		if _, ok := key.TryParse(c.App.QuitKey); !ok {
			errs = append(errs, invalid("app.quit_key", c.App.QuitKey, "not a key"))
		}
	}
	if c.Mouse.DoubleClickMs < 0 {
		errs = append(errs, invalid("mouse.double_click_ms", c.Mouse.DoubleClickMs, "must not be negative"))
	}
	if c.Mouse.DoubleClickDistance < 0 {
		errs = append(errs, invalid("mouse.double_click_distance", c.Mouse.DoubleClickDistance, "must not be negative"))
	}
	for _, f := range c.KeyBindings.Files {
		if _, err := keybinding.FormatForPath(f); err != nil {
			errs = append(errs, invalid("keybindings.files", f, err.Error()))
		}
	}
	for _, f := range c.Scripts.Files {
		if filepath.Ext(f) != ".lua" {
			errs = append(errs, invalid("scripts.files", f, "not a .lua file"))
		}
	}
	if c.Search.MaxResults < 0 {
		errs = append(errs, invalid("search.max_results", c.Search.MaxResults, "must not be negative"))
	}
	return errors.Join(errs...)
}

// QuitKey returns the configured quit key, or key.Empty when unset.
func (c *Config) QuitKey() key.Key {
	k, _ := key.TryParse(c.App.QuitKey)
	return k
}

// LogLevel returns the configured log level, or info when invalid.
func (c *Config) LogLevel() logging.Level {
	lvl, err := logging.ParseLevel(c.App.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}
	return lvl
}

// MouseSettings returns the click thresholds. Zero values fall back to
// the mouse package defaults.
func (c *Config) MouseSettings() mouse.Config {
	mc := mouse.DefaultConfig()
	if c.Mouse.DoubleClickMs > 0 {
		mc.DoubleClickTime = time.Duration(c.Mouse.DoubleClickMs) * time.Millisecond
	}
	if c.Mouse.DoubleClickDistance > 0 {
		mc.DoubleClickDistance = c.Mouse.DoubleClickDistance
	}
	return mc
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
