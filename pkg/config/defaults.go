package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultOutput       = "graph.png"
	DefaultDPI          = 600
	DefaultWidth        = "8in"
	DefaultHeight       = "6in"
	DefaultExportFormat = "csv"
	DefaultXChannel     = "0"
	DefaultYChannel     = "1"
)

// Environment variable names.
const (
	EnvOutput = "GRAPHDRAWER_OUTPUT"
	EnvDPI    = "GRAPHDRAWER_DPI"
)

// DefaultConfig returns a configuration with sensible defaults: time on X,
// the first recorded channel on Y.
func DefaultConfig() *Config {
	return &Config{
		Plot: PlotConfig{
			X: XAxisConfig{Channel: DefaultXChannel},
			Y: YAxisConfig{Channels: []string{DefaultYChannel}},
		},
		Render: RenderConfig{
			Output: DefaultOutput,
			DPI:    DefaultDPI,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Export: ExportConfig{
			Format: DefaultExportFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if output := os.Getenv(EnvOutput); output != "" {
		c.Render.Output = output
	}
	if dpi, err := strconv.Atoi(os.Getenv(EnvDPI)); err == nil {
		c.Render.DPI = dpi
	}
}
