package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the watermark settings for a single run.
// It is built once from the command line and read-only afterwards.
type Config struct {
	FontSize int    `mapstructure:"font-size"` // font size in pixels
	Color    string `mapstructure:"color"`     // text color, hex or name
	Position string `mapstructure:"position"`  // one of the five anchors
	Opacity  int    `mapstructure:"opacity"`   // text alpha, 0-255
	FontPath string `mapstructure:"font-path"` // optional .ttf path
}

// Positions lists the recognized watermark anchors.
var Positions = []string{"top-left", "top-right", "center", "bottom-left", "bottom-right"}

// RegisterFlags defines the watermark flags with their defaults on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("font-size", 32, "font size in pixels")
	fs.String("color", "#FFFFFF", "text color (hex or name)")
	fs.String("position", "bottom-right", "watermark position: top-left|top-right|center|bottom-left|bottom-right")
	fs.Int("opacity", 220, "text opacity 0-255")
	fs.String("font-path", "", "path to a .ttf font file")
}

// Load binds the parsed flag set through viper and validates the result.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	ok := false
	for _, p := range Positions {
		if c.Position == p {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("invalid position %q (choose from %v)", c.Position, Positions)
	}

	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %d", c.FontSize)
	}

	return nil
}
