// Package config provides plot profile loading and validation for GraphDrawer.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Config is the root structure of a plot profile.
type Config struct {
	Plot   PlotConfig   `yaml:"plot"`
	Render RenderConfig `yaml:"render"`
	Export ExportConfig `yaml:"export"`
	Parse  ParseConfig  `yaml:"parse"`
}

// PlotConfig holds the user's plot choices. Numeric fields are text, as typed
// by the user; empty or malformed values fall back to defaults when the plot
// is built.
type PlotConfig struct {
	Title string `yaml:"title,omitempty"`

	X XAxisConfig `yaml:"x"`
	Y YAxisConfig `yaml:"y"`

	// TMin and TMax bound the sample window in time-axis units.
	TMin string `yaml:"t_min,omitempty"`
	TMax string `yaml:"t_max,omitempty"`

	// Measurement is the block index, used only for multi-block files.
	Measurement string `yaml:"measurement,omitempty"`

	Grayscale Flag `yaml:"grayscale,omitempty"`
}

// XAxisConfig selects the X channel by index or legend name.
type XAxisConfig struct {
	Channel string `yaml:"channel"`
	Unit    string `yaml:"unit,omitempty"`
	Min     string `yaml:"min,omitempty"`
	Max     string `yaml:"max,omitempty"`
}

// YAxisConfig selects one or more Y channels by index or legend name.
type YAxisConfig struct {
	Channels []string `yaml:"channels"`
	Unit     string   `yaml:"unit,omitempty"`
	Min      string   `yaml:"min,omitempty"`
	Max      string   `yaml:"max,omitempty"`
}

// RenderConfig controls the output image.
type RenderConfig struct {
	// Output is the image path. Each plot overwrites it.
	Output string `yaml:"output"`

	// DPI is the raster resolution for PNG output.
	DPI int `yaml:"dpi"`

	// Width and Height accept gonum lengths such as "8in", "20cm" or "600pt".
	Width  string `yaml:"width"`
	Height string `yaml:"height"`

	width  vg.Length
	height vg.Length
}

// Size returns the validated image dimensions.
func (r *RenderConfig) Size() (vg.Length, vg.Length) {
	return r.width, r.height
}

// ExportConfig controls dataset export.
type ExportConfig struct {
	// Format is csv or xlsx.
	Format string `yaml:"format"`
}

// ParseConfig controls log parsing.
type ParseConfig struct {
	// SkipMalformedRows drops rows with non-numeric values instead of failing.
	SkipMalformedRows bool `yaml:"skip_malformed_rows"`
}

// Flag is a yes/no answer. It accepts YAML booleans as well as the
// "Y"/"N" answers of the interactive prompt.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a yes/no value", value.Line)
	}
	*f = Flag(ParseFlag(value.Value))
	return nil
}

// ParseFlag reports whether s is an affirmative answer. Anything else,
// including empty text, is false.
func ParseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "y") || strings.EqualFold(s, "yes") {
		return true
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
