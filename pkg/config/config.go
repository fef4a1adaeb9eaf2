package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a plot profile.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	return cfg, nil
}

// Read loads a plot profile over the defaults and applies environment
// overrides without validating, so callers can layer flags on top first.
// An empty path yields the defaults.
func Read(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided profile path is expected
		if err != nil {
			return nil, fmt.Errorf("reading profile: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing profile: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Validate checks a configuration for errors and resolves image sizes.
// Plot fields are not checked here: they are soft inputs with defaults.
func Validate(cfg *Config) error {
	if err := validateRender(&cfg.Render); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	switch cfg.Export.Format {
	case "csv", "xlsx":
	case "":
		cfg.Export.Format = DefaultExportFormat
	default:
		return fmt.Errorf("export: invalid format %q (must be csv or xlsx)", cfg.Export.Format)
	}

	if cfg.Plot.X.Channel == "" {
		cfg.Plot.X.Channel = DefaultXChannel
	}
	if len(cfg.Plot.Y.Channels) == 0 {
		return errors.New("plot.y.channels: at least one channel is required")
	}

	return nil
}

func validateRender(r *RenderConfig) error {
	if r.Output == "" {
		r.Output = DefaultOutput
	}
	r.Output = os.ExpandEnv(r.Output)

	if r.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", r.DPI)
	}

	w, err := parseLength("width", r.Width, DefaultWidth)
	if err != nil {
		return err
	}
	h, err := parseLength("height", r.Height, DefaultHeight)
	if err != nil {
		return err
	}
	r.width, r.height = w, h

	return nil
}

func parseLength(field, value, fallback string) (vg.Length, error) {
	if value == "" {
		value = fallback
	}
	l, err := vg.ParseLength(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if l <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", field, value)
	}
	return l, nil
}
