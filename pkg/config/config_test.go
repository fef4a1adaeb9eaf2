package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
plot:
  title: "Run 4"
  x:
    channel: "0"
    unit: s
  y:
    channels: ["Voltage", "2"]
    unit: V
    max: "12"
  t_min: "2"
  measurement: "1"
  grayscale: "Y"
render:
  output: out.png
  dpi: 300
  width: 20cm
  height: 10cm
export:
  format: xlsx
parse:
  skip_malformed_rows: true
`
	path := writeTempFile(t, "profile.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Plot.Title != "Run 4" {
		t.Errorf("Title = %q, want %q", cfg.Plot.Title, "Run 4")
	}
	if !reflect.DeepEqual(cfg.Plot.Y.Channels, []string{"Voltage", "2"}) {
		t.Errorf("Y channels = %q", cfg.Plot.Y.Channels)
	}
	if cfg.Plot.Y.Max != "12" || cfg.Plot.TMin != "2" || cfg.Plot.Measurement != "1" {
		t.Errorf("numeric fields = %q, %q, %q", cfg.Plot.Y.Max, cfg.Plot.TMin, cfg.Plot.Measurement)
	}
	if !cfg.Plot.Grayscale {
		t.Error("Grayscale = false, want true")
	}
	if cfg.Render.Output != "out.png" || cfg.Render.DPI != 300 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	w, h := cfg.Render.Size()
	if w != 20*vg.Centimeter || h != 10*vg.Centimeter {
		t.Errorf("Size() = %v x %v, want 20cm x 10cm", w, h)
	}
	if cfg.Export.Format != "xlsx" {
		t.Errorf("Export.Format = %q, want xlsx", cfg.Export.Format)
	}
	if !cfg.Parse.SkipMalformedRows {
		t.Error("SkipMalformedRows = false, want true")
	}
}

func TestLoad_PartialProfileKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", "plot:\n  title: only a title\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Plot.X.Channel != DefaultXChannel {
		t.Errorf("X channel = %q, want %q", cfg.Plot.X.Channel, DefaultXChannel)
	}
	if !reflect.DeepEqual(cfg.Plot.Y.Channels, []string{DefaultYChannel}) {
		t.Errorf("Y channels = %q, want [%q]", cfg.Plot.Y.Channels, DefaultYChannel)
	}
	if cfg.Render.Output != DefaultOutput || cfg.Render.DPI != DefaultDPI {
		t.Errorf("Render = %+v, want defaults", cfg.Render)
	}
	w, h := cfg.Render.Size()
	if w != 8*vg.Inch || h != 6*vg.Inch {
		t.Errorf("Size() = %v x %v, want 8in x 6in", w, h)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/profile.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvOutput, "/tmp/override.svg")
	t.Setenv(EnvDPI, "150")

	path := writeTempFile(t, "profile.yaml", "render:\n  output: graph.png\n  dpi: 600\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Output != "/tmp/override.svg" {
		t.Errorf("Output = %q, want /tmp/override.svg", cfg.Render.Output)
	}
	if cfg.Render.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.Render.DPI)
	}
}

func TestLoad_ExpandsOutputPath(t *testing.T) {
	t.Setenv("GRAPHDRAWER_TEST_DIR", "/data/plots")

	path := writeTempFile(t, "profile.yaml", "render:\n  output: ${GRAPHDRAWER_TEST_DIR}/run.png\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Output != "/data/plots/run.png" {
		t.Errorf("Output = %q, want /data/plots/run.png", cfg.Render.Output)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dpi", func(c *Config) { c.Render.DPI = 0 }},
		{"negative dpi", func(c *Config) { c.Render.DPI = -72 }},
		{"bad width", func(c *Config) { c.Render.Width = "wide" }},
		{"negative height", func(c *Config) { c.Render.Height = "-2in" }},
		{"unknown export format", func(c *Config) { c.Export.Format = "parquet" }},
		{"no y channels", func(c *Config) { c.Plot.Y.Channels = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}

func TestValidate_FillsBlankDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Output = ""
	cfg.Render.Width = ""
	cfg.Export.Format = ""
	cfg.Plot.X.Channel = ""

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Render.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Render.Output, DefaultOutput)
	}
	if w, _ := cfg.Render.Size(); w != 8*vg.Inch {
		t.Errorf("width = %v, want 8in", w)
	}
	if cfg.Export.Format != DefaultExportFormat {
		t.Errorf("Format = %q, want %q", cfg.Export.Format, DefaultExportFormat)
	}
	if cfg.Plot.X.Channel != DefaultXChannel {
		t.Errorf("X channel = %q, want %q", cfg.Plot.X.Channel, DefaultXChannel)
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"grayscale: Y", true},
		{"grayscale: y", true},
		{"grayscale: yes", true},
		{"grayscale: true", true},
		{"grayscale: N", false},
		{"grayscale: false", false},
		{"grayscale: maybe", false},
		{`grayscale: ""`, false},
	}

	for _, tt := range tests {
		path := writeTempFile(t, "profile.yaml", "plot:\n  "+tt.content+"\n")
		cfg, err := Load(context.Background(), path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", tt.content, err)
		}
		if bool(cfg.Plot.Grayscale) != tt.want {
			t.Errorf("%q: Grayscale = %v, want %v", tt.content, cfg.Plot.Grayscale, tt.want)
		}
	}

	path := writeTempFile(t, "profile.yaml", "plot:\n  grayscale: [Y]\n")
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for a list grayscale value")
	}
}

func TestParseFlag(t *testing.T) {
	for _, s := range []string{"Y", " y ", "YES", "1", "True"} {
		if !ParseFlag(s) {
			t.Errorf("ParseFlag(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "N", "no", "0", "x"} {
		if ParseFlag(s) {
			t.Errorf("ParseFlag(%q) = true, want false", s)
		}
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", "plot:\n  y:\n    channels: []\nrender:\n  dpi: 0\n")

	cfg, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(cfg.Plot.Y.Channels) != 0 || cfg.Render.DPI != 0 {
		t.Errorf("Read() = %+v, want profile values as written", cfg)
	}
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for the unvalidated profile")
	}
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error")
	}
}

func TestRead_EmptyPathYieldsDefaults(t *testing.T) {
	t.Setenv(EnvDPI, "72")

	cfg, err := Read(context.Background(), "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Render.DPI != 72 {
		t.Errorf("DPI = %d, want 72 from the environment", cfg.Render.DPI)
	}
	if cfg.Export.Format != DefaultExportFormat {
		t.Errorf("Format = %q, want %q", cfg.Export.Format, DefaultExportFormat)
	}
}
