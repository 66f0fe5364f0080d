package camgesture

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Defaults for Config fields.
const (
	DefaultFinePointerThreshold   = 2.0
	DefaultCoarsePointerThreshold = 4.0
	DefaultWheelEndDebounce       = 150 * time.Millisecond
)

// Config holds the tunable thresholds of a Controller. Zero fields fall back
// to the defaults above. The accumulation window and minimum magnitude are
// fixed (see AccumulationWindow and MinAccumulatedMagnitude).
type Config struct {
	// FinePointerThreshold is the mouse/pen drag-start distance in CSS-like
	// pixels; it is multiplied by PixelRatio.
	FinePointerThreshold float64 `toml:"fine_pointer_threshold" env:"CAMGESTURE_FINE_POINTER_THRESHOLD"`
	// CoarsePointerThreshold is the touch drag-start distance; it is
	// multiplied by PixelRatio.
	CoarsePointerThreshold float64 `toml:"coarse_pointer_threshold" env:"CAMGESTURE_COARSE_POINTER_THRESHOLD"`
	// PixelRatio is the device pixel density of sample coordinates.
	PixelRatio float64 `toml:"pixel_ratio" env:"CAMGESTURE_PIXEL_RATIO"`
	// PrimaryInteraction is bound to primary-button drag.
	PrimaryInteraction PrimaryInteraction `toml:"primary_interaction" env:"CAMGESTURE_PRIMARY_INTERACTION"`
	// WheelEndDebounce is how long after the last wheel zoom the wheel
	// interaction is closed.
	WheelEndDebounce time.Duration `toml:"mouse_wheel_interaction_end_debounce" env:"CAMGESTURE_WHEEL_END_DEBOUNCE"`
	// TapSlop is the tap recognizer's slop radius.
	TapSlop float64 `toml:"tap_slop" env:"CAMGESTURE_TAP_SLOP"`
	// LineHeight and PageHeight are fallbacks for wheel delta normalization.
	LineHeight float64 `toml:"line_height" env:"CAMGESTURE_LINE_HEIGHT"`
	PageHeight float64 `toml:"page_height" env:"CAMGESTURE_PAGE_HEIGHT"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{
		FinePointerThreshold:   DefaultFinePointerThreshold,
		CoarsePointerThreshold: DefaultCoarsePointerThreshold,
		PixelRatio:             1,
		PrimaryInteraction:     InteractionRotate,
		WheelEndDebounce:       DefaultWheelEndDebounce,
		TapSlop:                DefaultTapSlop,
		LineHeight:             DefaultLineHeight,
		PageHeight:             DefaultPageHeight,
	}
}

// withDefaults replaces zero or negative fields with defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FinePointerThreshold <= 0 {
		c.FinePointerThreshold = d.FinePointerThreshold
	}
	if c.CoarsePointerThreshold <= 0 {
		c.CoarsePointerThreshold = d.CoarsePointerThreshold
	}
	if c.PixelRatio <= 0 {
		c.PixelRatio = d.PixelRatio
	}
	if c.WheelEndDebounce <= 0 {
		c.WheelEndDebounce = d.WheelEndDebounce
	}
	if c.TapSlop <= 0 {
		c.TapSlop = d.TapSlop
	}
	if c.LineHeight <= 0 {
		c.LineHeight = d.LineHeight
	}
	if c.PageHeight <= 0 {
		c.PageHeight = d.PageHeight
	}
	return c
}

// fineThreshold returns the mouse/pen drag threshold in sample pixels.
func (c Config) fineThreshold() float64 {
	return c.FinePointerThreshold * c.PixelRatio
}

// coarseThreshold returns the touch drag threshold in sample pixels.
func (c Config) coarseThreshold() float64 {
	return c.CoarsePointerThreshold * c.PixelRatio
}

// ParseConfig decodes TOML data over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadConfig reads a TOML file over the defaults, then applies any
// CAMGESTURE_* environment variables on top. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}
