// Package config loads command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Kit is the iconkit configuration. Flags override these values.
type Kit struct {
	Size       int    `env:"APPICON_SIZE"       envDefault:"1024"`
	PNG        string `env:"APPICON_PNG"        envDefault:"AppIcon.png"`
	Iconset    string `env:"APPICON_ICONSET"`
	ICO        string `env:"APPICON_ICO"`
	SVG        string `env:"APPICON_SVG"`
	Background string `env:"APPICON_BACKGROUND"`
	Badge      string `env:"APPICON_BADGE"`
	Glyph      string `env:"APPICON_GLYPH"`
	Verbose    bool   `env:"APPICON_VERBOSE"`

	// Menu-bar level indicator.
	Indicator     string  `env:"APPICON_INDICATOR"`
	IndicatorSize int     `env:"APPICON_INDICATOR_SIZE" envDefault:"22"`
	Level         float64 `env:"APPICON_LEVEL"`
}

// LoadKit parses the iconkit environment.
func LoadKit() (Kit, error) {
	var cfg Kit
	if err := ParseEnv(&cfg); err != nil {
		return Kit{}, err
	}
	return cfg, nil
}
