package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/hecto/internal/input/key"
	"github.com/dshills/hecto/internal/renderer/backend"
)

// Default values.
const (
	DefaultLogLevel      = "info"
	DefaultBackend       = backend.NameTcell
	DefaultStatusTimeout = "5s"
	DefaultStatusFg      = "#3f3f3f"
	DefaultStatusBg      = "#efefef"
	DefaultSaveKey       = "C-s"
	DefaultQuitKey       = "C-q"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds every editor setting.
type Config struct {
	Log  LogConfig  `toml:"log" yaml:"log"`
	UI   UIConfig   `toml:"ui" yaml:"ui"`
	Keys KeysConfig `toml:"keys" yaml:"keys"`
}

// LogConfig configures the session log.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File is the log file path. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// UIConfig configures the terminal and the bars below the text area.
type UIConfig struct {
	// Backend selects the terminal driver: tcell or ansi.
	Backend string `toml:"backend" yaml:"backend"`

	// StatusTimeout is how long a status message stays visible, as a
	// duration string such as "5s".
	StatusTimeout string `toml:"statusTimeout" yaml:"statusTimeout"`

	StatusBar StatusBarConfig `toml:"statusBar" yaml:"statusBar"`
}

// StatusBarConfig holds the status bar colors as #rrggbb strings.
type StatusBarConfig struct {
	Foreground string `toml:"fg" yaml:"fg"`
	Background string `toml:"bg" yaml:"bg"`
}

// KeysConfig holds the key specifications of the control commands.
type KeysConfig struct {
	Save string `toml:"save" yaml:"save"`
	Quit string `toml:"quit" yaml:"quit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Backend:       DefaultBackend,
			StatusTimeout: DefaultStatusTimeout,
			StatusBar: StatusBarConfig{
				Foreground: DefaultStatusFg,
				Background: DefaultStatusBg,
			},
		},
		Keys: KeysConfig{
			Save: DefaultSaveKey,
			Quit: DefaultQuitKey,
		},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if !isLogLevel(c.Log.Level) {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   c.Log.Level,
		})
	}

	switch c.UI.Backend {
	case backend.NameTcell, backend.NameANSI:
	default:
		errs = append(errs, &ValidationError{
			Path:    "ui.backend",
			Message: fmt.Sprintf("must be %s or %s", backend.NameTcell, backend.NameANSI),
			Value:   c.UI.Backend,
		})
	}

	if d, err := time.ParseDuration(c.UI.StatusTimeout); err != nil || d <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "ui.statusTimeout",
			Message: "must be a positive duration",
			Value:   c.UI.StatusTimeout,
		})
	}

	for path, v := range map[string]string{
		"ui.statusBar.fg": c.UI.StatusBar.Foreground,
		"ui.statusBar.bg": c.UI.StatusBar.Background,
	} {
		if _, err := ParseColor(v); err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: err.Error(), Value: v})
		}
	}

	save, saveErr := key.Parse(c.Keys.Save)
	if saveErr != nil {
		errs = append(errs, &ValidationError{Path: "keys.save", Message: saveErr.Error(), Value: c.Keys.Save})
	}
	quit, quitErr := key.Parse(c.Keys.Quit)
	if quitErr != nil {
		errs = append(errs, &ValidationError{Path: "keys.quit", Message: quitErr.Error(), Value: c.Keys.Quit})
	}
	if saveErr == nil && quitErr == nil && save == quit {
		errs = append(errs, &ValidationError{
			Path:    "keys.quit",
			Message: "must differ from keys.save",
			Value:   c.Keys.Quit,
		})
	}

	return errors.Join(errs...)
}

// StatusTimeout returns the status message timeout, falling back to the
// default when the setting does not parse.
func (c *Config) StatusTimeout() time.Duration {
	d, err := time.ParseDuration(c.UI.StatusTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// StatusColors returns the status bar foreground and background colors.
// Malformed values fall back to the defaults.
func (c *Config) StatusColors() (fg, bg backend.Color) {
	fg, err := ParseColor(c.UI.StatusBar.Foreground)
	if err != nil {
		fg, _ = ParseColor(DefaultStatusFg)
	}
	bg, err = ParseColor(c.UI.StatusBar.Background)
	if err != nil {
		bg, _ = ParseColor(DefaultStatusBg)
	}
	return fg, bg
}

// ParseColor parses a "#rrggbb" color.
func ParseColor(s string) (backend.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return backend.Color{}, fmt.Errorf("color %q is not in #rrggbb form", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return backend.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return backend.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func isLogLevel(s string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(s, l) {
			return true
		}
	}
	return false
}
