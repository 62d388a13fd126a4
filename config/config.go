// Package config holds the injected constants of the ball transport system:
// motor speed targets, sensor thresholds, timeout buckets, and bench/monitor
// settings. Values are configuration data, not computed; a YAML file can
// override the tunable subset for bench experiments. Durations in the YAML
// file are nanosecond counts.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// IndexerConfig groups the scoring controller constants.
type IndexerConfig struct {
	// StorageCapacity is the number of balls the top storage can hold.
	StorageCapacity int `yaml:"storage_capacity"`

	// SettleDelay is how long the coupling needs after a switch toward
	// the scorer position before roller commands may be issued.
	SettleDelay time.Duration `yaml:"settle_delay"`

	// StorageSettleDelay is the longer settle used before a storage fill,
	// where the switch is verified by read-back.
	StorageSettleDelay time.Duration `yaml:"storage_settle_delay"`

	// PushSettleDelay is the settle after switching the coupling back to
	// drivetrain position for push mode.
	PushSettleDelay time.Duration `yaml:"push_settle_delay"`

	// Timeout buckets, first match wins.
	LowGoalTimeout time.Duration `yaml:"low_goal_timeout"`
	StorageTimeout time.Duration `yaml:"storage_timeout"`
	PushTimeout    time.Duration `yaml:"push_timeout"`
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// DisplayInterval throttles operator display refreshes.
	DisplayInterval time.Duration `yaml:"display_interval"`
}

// SortConfig groups the color sorter constants.
type SortConfig struct {
	// MaxProximity is the presence threshold: a ball is in front of a
	// checkpoint when proximity is at or below this value.
	MaxProximity float64 `yaml:"max_proximity"`

	// MinSaturation and MinBrightness gate color classification; below
	// either, the sample classifies as unknown.
	MinSaturation float64 `yaml:"min_saturation"`
	MinBrightness float64 `yaml:"min_brightness"`

	// Hue windows in degrees. Red wraps around 0/360.
	RedHueMin     float64 `yaml:"red_hue_min"`
	RedHueMax     float64 `yaml:"red_hue_max"`
	RedHueHighMin float64 `yaml:"red_hue_high_min"`
	RedHueHighMax float64 `yaml:"red_hue_high_max"`
	BlueHueMin    float64 `yaml:"blue_hue_min"`
	BlueHueMax    float64 `yaml:"blue_hue_max"`

	// ConfirmationCount is the debounce depth: a color is confirmed only
	// after this many identical consecutive classifications.
	ConfirmationCount int `yaml:"confirmation_count"`

	// EjectDelay extends the arming window after checkpoint 2 untriggers.
	EjectDelay time.Duration `yaml:"eject_delay"`

	// EjectDuration is the default ejection length; runtime adjustments
	// clamp to [EjectMinDuration, EjectMaxDuration].
	EjectDuration    time.Duration `yaml:"eject_duration"`
	EjectMinDuration time.Duration `yaml:"eject_min_duration"`
	EjectMaxDuration time.Duration `yaml:"eject_max_duration"`

	// DirectionWindow bounds the inter-checkpoint interval used for
	// direction inference.
	DirectionWindow time.Duration `yaml:"direction_window"`

	// PassageTimeout resets a checkpoint that stays triggered too long.
	PassageTimeout time.Duration `yaml:"passage_timeout"`
}

// LoopConfig groups control loop settings.
type LoopConfig struct {
	FreqHz        float64       `yaml:"freq_hz"`
	MatchDuration time.Duration `yaml:"match_duration"`
}

// MonitorConfig groups the HTTP monitor settings.
type MonitorConfig struct {
	Port int `yaml:"port"`
}

// RecorderConfig groups telemetry recording settings.
type RecorderConfig struct {
	Path string `yaml:"path"`
}

// Config is the full configuration surface of the system.
type Config struct {
	Indexer  IndexerConfig  `yaml:"indexer"`
	Sort     SortConfig     `yaml:"sort"`
	Loop     LoopConfig     `yaml:"loop"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	Recorder RecorderConfig `yaml:"recorder"`
}

// Default returns the tuned on-robot configuration.
func Default() Config {
	return Config{
		Indexer: IndexerConfig{
			StorageCapacity:    3,
			SettleDelay:        50 * time.Millisecond,
			StorageSettleDelay: 200 * time.Millisecond,
			PushSettleDelay:    300 * time.Millisecond,
			LowGoalTimeout:     3000 * time.Millisecond,
			StorageTimeout:     8000 * time.Millisecond,
			PushTimeout:        3000 * time.Millisecond,
			DefaultTimeout:     5000 * time.Millisecond,
			DisplayInterval:    200 * time.Millisecond,
		},
		Sort: SortConfig{
			MaxProximity:      100,
			MinSaturation:     50,
			MinBrightness:     30,
			RedHueMin:         0,
			RedHueMax:         30,
			RedHueHighMin:     330,
			RedHueHighMax:     360,
			BlueHueMin:        200,
			BlueHueMax:        250,
			ConfirmationCount: 3,
			EjectDelay:        250 * time.Millisecond,
			EjectDuration:     500 * time.Millisecond,
			EjectMinDuration:  200 * time.Millisecond,
			EjectMaxDuration:  2000 * time.Millisecond,
			DirectionWindow:   500 * time.Millisecond,
			PassageTimeout:    3000 * time.Millisecond,
		},
		Loop: LoopConfig{
			FreqHz:        50,
			MatchDuration: 105 * time.Second,
		},
		Monitor: MonitorConfig{
			Port: 3001,
		},
		Recorder: RecorderConfig{
			Path: "",
		},
	}
}

// Load returns the default configuration with overrides applied from the
// given YAML file. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Indexer.StorageCapacity < 1 {
		return fmt.Errorf("storage capacity %d is not positive",
			c.Indexer.StorageCapacity)
	}

	if c.Sort.ConfirmationCount < 1 {
		return fmt.Errorf("confirmation count %d is not positive",
			c.Sort.ConfirmationCount)
	}

	if c.Sort.EjectMinDuration > c.Sort.EjectMaxDuration {
		return fmt.Errorf("ejection duration bounds inverted: %v > %v",
			c.Sort.EjectMinDuration, c.Sort.EjectMaxDuration)
	}

	if c.Loop.FreqHz <= 0 {
		return fmt.Errorf("loop frequency %f is not positive", c.Loop.FreqHz)
	}

	return nil
}
