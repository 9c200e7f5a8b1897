package models

import (
	"github.com/mattsolo1/grove-datesort/pkg/datesort"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// Labels names the two holder nodes a sort creates.
type Labels struct {
	Sorted   string `mapstructure:"sorted"`
	Original string `mapstructure:"original"`
}

// ColorOverrides replaces individual palette entries when set. A nil entry
// keeps the theme color; tree.ColorNone turns the color off.
type ColorOverrides struct {
	Sorted    *tree.Color `mapstructure:"sorted"`
	Hierarchy *tree.Color `mapstructure:"hierarchy"`
	Demoted   *tree.Color `mapstructure:"demoted"`
}

// Config is the user configuration.
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	LogLevel string         `mapstructure:"log_level"`
	DarkMode bool           `mapstructure:"dark_mode"`
	Labels   Labels         `mapstructure:"labels"`
	Colors   ColorOverrides `mapstructure:"colors"`
}

// Palette returns the theme palette with any overrides applied.
func (c *Config) Palette() datesort.Palette {
	p := datesort.DefaultPalette(c.DarkMode)
	if c.Colors.Sorted != nil {
		p.Collection = *c.Colors.Sorted
	}
	if c.Colors.Hierarchy != nil {
		p.Hierarchy = *c.Colors.Hierarchy
	}
	if c.Colors.Demoted != nil {
		p.Demoted = *c.Colors.Demoted
	}
	return p
}

// SortedLabel returns the configured sorted holder label or the default.
func (c *Config) SortedLabel() string {
	if c.Labels.Sorted == "" {
		return datesort.DefaultSortedLabel
	}
	return c.Labels.Sorted
}

// OriginalLabel returns the configured original holder label or the default.
func (c *Config) OriginalLabel() string {
	if c.Labels.Original == "" {
		return datesort.DefaultOriginalLabel
	}
	return c.Labels.Original
}
