// Package config loads and validates the button-monitor TOML configuration.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sweeney/button-monitor/internal/button"
)

// Event names accepted in a button's `events` list.
const (
	EventNameDoubleTap = "double_tap"
	EventNameLongPress = "long_press"
)

// Config is the top-level daemon configuration.
type Config struct {
	// PollIntervalMs is the GPIO sampling cadence. It should be shorter
	// than the debounce period.
	PollIntervalMs int64 `toml:"poll_interval_ms"`

	// Global timing overrides; 0 keeps the detector defaults.
	DebounceMs        int64 `toml:"debounce_ms"`
	DoubleTapWindowMs int64 `toml:"double_tap_window_ms"`
	LongPressMs       int64 `toml:"long_press_ms"`

	Broker      string `toml:"broker"`
	HTTPAddr    string `toml:"http_addr"`
	HeartbeatMs int64  `toml:"heartbeat_ms"`
	Chip        string `toml:"chip"`

	Button []Button `toml:"button"`
}

// Button describes one monitored pushbutton.
type Button struct {
	Name      string   `toml:"name"`
	Pin       int      `toml:"pin"`
	ActiveLow bool     `toml:"active_low"`
	PullUp    bool     `toml:"pull_up"`
	Events    []string `toml:"events"`

	// Per-button timing overrides; 0 inherits the global value (which in
	// turn may be 0, inheriting the detector default).
	DebounceMs        int64 `toml:"debounce_ms"`
	DoubleTapWindowMs int64 `toml:"double_tap_window_ms"`
	LongPressMs       int64 `toml:"long_press_ms"`
}

// PollInterval returns the poll cadence, defaulting to 20ms.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return 20 * time.Millisecond
	}
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Heartbeat returns the heartbeat interval; 0 disables heartbeats.
func (c *Config) Heartbeat() time.Duration {
	if c.HeartbeatMs <= 0 {
		return 0
	}
	return time.Duration(c.HeartbeatMs) * time.Millisecond
}

func ms(v int64) time.Duration {
	if v <= 0 {
		return 0
	}
	return time.Duration(v) * time.Millisecond
}

// ActiveLevel returns the raw level that means "pressed" for this button.
func (b Button) ActiveLevel() button.Level {
	if b.ActiveLow {
		return button.Low
	}
	return button.High
}

// Mask returns the optional-event mask for this button.
func (b Button) Mask() button.EventMask {
	var mask button.EventMask
	for _, e := range b.Events {
		switch e {
		case EventNameDoubleTap:
			mask |= button.MaskDoubleTap
		case EventNameLongPress:
			mask |= button.MaskLongPress
		}
	}
	return mask
}

// Delays returns the effective timing overrides for this button, with
// per-button values taking precedence over the global ones. Zeros mean
// "keep the detector default".
func (b Button) Delays(c *Config) (debounce, doubleTap, longPress time.Duration) {
	debounce = ms(c.DebounceMs)
	doubleTap = ms(c.DoubleTapWindowMs)
	longPress = ms(c.LongPressMs)
	if d := ms(b.DebounceMs); d > 0 {
		debounce = d
	}
	if d := ms(b.DoubleTapWindowMs); d > 0 {
		doubleTap = d
	}
	if d := ms(b.LongPressMs); d > 0 {
		longPress = d
	}
	return debounce, doubleTap, longPress
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for caller mistakes the daemon cannot
// work around.
func (c *Config) Validate() error {
	if len(c.Button) == 0 {
		return fmt.Errorf("config: no [[button]] entries")
	}

	names := make(map[string]bool, len(c.Button))
	pins := make(map[int]bool, len(c.Button))
	for i, b := range c.Button {
		if b.Name == "" {
			return fmt.Errorf("config: button #%d has no name", i)
		}
		if names[b.Name] {
			return fmt.Errorf("config: duplicate button name %q", b.Name)
		}
		names[b.Name] = true

		if b.Pin < 0 {
			return fmt.Errorf("config: button %q has negative pin %d", b.Name, b.Pin)
		}
		if pins[b.Pin] {
			return fmt.Errorf("config: pin %d used by more than one button", b.Pin)
		}
		pins[b.Pin] = true

		for _, e := range b.Events {
			if e != EventNameDoubleTap && e != EventNameLongPress {
				return fmt.Errorf("config: button %q: unknown event %q", b.Name, e)
			}
		}
	}

	return nil
}
