package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/twinscroll/internal/gesture"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

const appName = "twinscroll"

type Config struct {
	Scroll    ScrollConfig    `koanf:"scroll"`
	Animation AnimationConfig `koanf:"animation"`
	Fling     FlingConfig     `koanf:"fling"`
	Lists     ListsConfig     `koanf:"lists"`
	Log       LogConfig       `koanf:"log"`
}

// ScrollConfig holds the multipliers applied to drags and flings.
type ScrollConfig struct {
	LeftFactor  *float64 `koanf:"left_factor"`  // default: 1.4
	RightFactor *float64 `koanf:"right_factor"` // default: 0.8
}

// AnimationConfig holds the idle drift settings.
type AnimationConfig struct {
	LeftFactor          *float64 `koanf:"left_factor"`            // default: 1.0
	RightFactor         *float64 `koanf:"right_factor"`           // default: 0.9
	Velocity            float64  `koanf:"velocity"`               // px per minute at density 1 (default: 1500)
	Density             float64  `koanf:"density"`                // default: 1
	CycleDurationMs     int      `koanf:"cycle_duration_ms"`      // default: 60000
	StartDelayMs        *int     `koanf:"start_delay_ms"`         // default: 10
	ScrollResumeDelayMs *int     `koanf:"scroll_resume_delay_ms"` // default: start_delay_ms
	Autostart           *bool    `koanf:"autostart"`              // default: true
	Easing              string   `koanf:"easing"`                 // "linear" or "ease-in-out" (default: "linear")
}

// FlingConfig tunes fling detection and decay.
type FlingConfig struct {
	Deceleration float64 `koanf:"deceleration"` // px/s² (default: 2000)
	MinVelocity  float64 `koanf:"min_velocity"` // px/s (default: 50)
	MaxVelocity  float64 `koanf:"max_velocity"` // px/s (default: 8000)
	TouchSlop    float64 `koanf:"touch_slop"`   // px (default: 8)
}

// ListsConfig describes the two demo lists.
type ListsConfig struct {
	LeftItems        []string `koanf:"left_items"`
	RightItems       []string `koanf:"right_items"`
	LeftItemHeight   int      `koanf:"left_item_height"`   // px (default: 96)
	RightItemHeight  int      `koanf:"right_item_height"`  // px (default: 64)
	LeftStart        int      `koanf:"left_start"`         // label index shown first (default: 0)
	RightStart       int      `koanf:"right_start"`        // label index shown first (default: 0)
	RowHeight        int      `koanf:"row_height"`         // px per terminal row (default: 16)
	LeftWidthPercent int      `koanf:"left_width_percent"` // 1-99 (default: 50)
	FrameIntervalMs  int      `koanf:"frame_interval_ms"`  // default: 16
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/twinscroll/twinscroll.log
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
}

// Default item labels for the demo lists.
var (
	DefaultLeftItems = []string{
		"Aurora", "Basalt", "Cirrus", "Delta", "Ember", "Fjord",
		"Glacier", "Harbor", "Isle", "Juniper", "Kelp", "Lagoon",
	}
	DefaultRightItems = []string{
		"01", "02", "03", "04", "05", "06", "07", "08", "09",
	}
)

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/twinscroll/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ScrollOptions builds the controller options, applying defaults to unset
// values and rejecting values outside their domain.
func (c *Config) ScrollOptions() (syncscroll.Options, error) {
	opts := syncscroll.DefaultOptions()
	if err := c.checkFinite(); err != nil {
		return opts, err
	}

	opts.LeftScrollFactor = floatOr(c.Scroll.LeftFactor, opts.LeftScrollFactor)
	opts.RightScrollFactor = floatOr(c.Scroll.RightFactor, opts.RightScrollFactor)
	opts.LeftAnimationFactor = floatOr(c.Animation.LeftFactor, opts.LeftAnimationFactor)
	opts.RightAnimationFactor = floatOr(c.Animation.RightFactor, opts.RightAnimationFactor)

	a := c.Animation
	if a.Velocity < 0 || a.Density < 0 || a.CycleDurationMs < 0 {
		return opts, fmt.Errorf("%w: animation velocity, density and cycle_duration_ms must not be negative",
			syncscroll.ErrInvalidConfiguration)
	}
	velocity := a.Velocity
	if velocity == 0 {
		velocity = syncscroll.DefaultAnimationVelocity
	}
	density := a.Density
	if density == 0 {
		density = 1
	}
	opts.AnimationVelocity = velocity * density
	if a.CycleDurationMs > 0 {
		opts.AnimationCycle = time.Duration(a.CycleDurationMs) * time.Millisecond
	}
	if a.StartDelayMs != nil {
		opts.StartAnimationDelay = time.Duration(*a.StartDelayMs) * time.Millisecond
	}
	opts.ScrollResumeDelay = opts.StartAnimationDelay
	if a.ScrollResumeDelayMs != nil {
		opts.ScrollResumeDelay = time.Duration(*a.ScrollResumeDelayMs) * time.Millisecond
	}

	switch strings.ToLower(a.Easing) {
	case "", "linear":
		opts.Interpolator = syncscroll.Linear
	case "ease-in-out":
		opts.Interpolator = syncscroll.EaseInOut
	default:
		return opts, fmt.Errorf("%w: unknown easing %q", syncscroll.ErrInvalidConfiguration, a.Easing)
	}

	f := c.Fling
	if f.Deceleration > 0 {
		opts.Fling.Deceleration = f.Deceleration
	}
	if f.MinVelocity > 0 {
		opts.Fling.MinVelocity = f.MinVelocity
	}
	if f.MaxVelocity > 0 {
		opts.Fling.MaxVelocity = f.MaxVelocity
	}
	if f.Deceleration < 0 || f.MinVelocity < 0 || f.MaxVelocity < 0 {
		return opts, fmt.Errorf("%w: fling settings must not be negative", syncscroll.ErrInvalidConfiguration)
	}

	return opts, opts.Validate()
}

// checkFinite rejects nan and inf, which TOML accepts as float literals.
func (c *Config) checkFinite() error {
	values := map[string]*float64{
		"scroll.left_factor":     c.Scroll.LeftFactor,
		"scroll.right_factor":    c.Scroll.RightFactor,
		"animation.left_factor":  c.Animation.LeftFactor,
		"animation.right_factor": c.Animation.RightFactor,
		"animation.velocity":     &c.Animation.Velocity,
		"animation.density":      &c.Animation.Density,
		"fling.deceleration":     &c.Fling.Deceleration,
		"fling.min_velocity":     &c.Fling.MinVelocity,
		"fling.max_velocity":     &c.Fling.MaxVelocity,
		"fling.touch_slop":       &c.Fling.TouchSlop,
	}
	for key, v := range values {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%w: %s must be finite, got %g", syncscroll.ErrInvalidConfiguration, key, *v)
		}
	}
	return nil
}

// GestureOptions returns the pointer classification thresholds.
func (c *Config) GestureOptions() gesture.Options {
	opts := gesture.DefaultOptions()
	if c.Fling.TouchSlop > 0 {
		opts.TouchSlop = c.Fling.TouchSlop
	}
	if c.Fling.MinVelocity > 0 {
		opts.MinFlingVelocity = c.Fling.MinVelocity
	}
	if c.Fling.MaxVelocity > 0 {
		opts.MaxFlingVelocity = c.Fling.MaxVelocity
	}
	return opts
}

// GetListsConfig returns the list configuration with defaults applied.
func (c *Config) GetListsConfig() (ListsConfig, error) {
	cfg := c.Lists

	if cfg.LeftItemHeight < 0 || cfg.RightItemHeight < 0 || cfg.RowHeight < 0 || cfg.FrameIntervalMs < 0 {
		return cfg, fmt.Errorf("%w: list heights and frame interval must not be negative", syncscroll.ErrInvalidConfiguration)
	}
	if cfg.LeftWidthPercent != 0 && (cfg.LeftWidthPercent < 1 || cfg.LeftWidthPercent > 99) {
		return cfg, fmt.Errorf("%w: left_width_percent must be within 1-99, got %d",
			syncscroll.ErrInvalidConfiguration, cfg.LeftWidthPercent)
	}

	if len(cfg.LeftItems) == 0 {
		cfg.LeftItems = DefaultLeftItems
	}
	if len(cfg.RightItems) == 0 {
		cfg.RightItems = DefaultRightItems
	}
	if cfg.LeftItemHeight == 0 {
		cfg.LeftItemHeight = 96
	}
	if cfg.RightItemHeight == 0 {
		cfg.RightItemHeight = 64
	}
	if cfg.RowHeight == 0 {
		cfg.RowHeight = 16
	}
	if cfg.LeftWidthPercent == 0 {
		cfg.LeftWidthPercent = 50
	}
	if cfg.FrameIntervalMs == 0 {
		cfg.FrameIntervalMs = 16
	}

	return cfg, nil
}

// FrameInterval returns the display frame length.
func (l ListsConfig) FrameInterval() time.Duration {
	return time.Duration(l.FrameIntervalMs) * time.Millisecond
}

// AutostartAnimation reports whether idle animation starts with the program.
func (c *Config) AutostartAnimation() bool {
	return c.Animation.Autostart == nil || *c.Animation.Autostart
}

// LogPath returns where the debug log is written.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// LogLevel parses the configured level, defaulting to info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, errors.Join(syncscroll.ErrInvalidConfiguration, err)
	}
	return level, nil
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
