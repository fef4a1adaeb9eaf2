package output

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

func createTestDataset() *logfile.Dataset {
	return &logfile.Dataset{
		DeviceName:       "DX-200",
		MeasurementCount: 2,
		Legend:           []string{logfile.TimeLabel, "Voltage", "Current"},
		Measurements: []logfile.Measurement{
			{{1, 2}, {3, 4}, {5, 6}},
			{{7, 8}},
		},
		Source: "run4.log",
	}
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(createTestDataset())

	if s.Device != "DX-200" {
		t.Errorf("Device = %q, want DX-200", s.Device)
	}
	if s.Source != "run4.log" {
		t.Errorf("Source = %q, want run4.log", s.Source)
	}
	if s.DeclaredMeasurements != 2 || s.ParsedMeasurements != 2 {
		t.Errorf("measurements = %d/%d, want 2/2", s.ParsedMeasurements, s.DeclaredMeasurements)
	}
	if !reflect.DeepEqual(s.Channels, []string{"Time", "Voltage", "Current"}) {
		t.Errorf("Channels = %q", s.Channels)
	}
	if !reflect.DeepEqual(s.Samples, []int{3, 1}) {
		t.Errorf("Samples = %v, want [3 1]", s.Samples)
	}
	if s.TotalSamples() != 4 {
		t.Errorf("TotalSamples() = %d, want 4", s.TotalSamples())
	}
	if s.HasWarnings() {
		t.Errorf("Warnings = %q, want none", s.Warnings)
	}
}

func TestNewSummary_Warnings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*logfile.Dataset)
		contain string
	}{
		{
			name:    "count mismatch",
			mutate:  func(ds *logfile.Dataset) { ds.MeasurementCount = 1 },
			contain: "declares 1 measurement(s) but 2 were found",
		},
		{
			name: "block longer than time axis",
			mutate: func(ds *logfile.Dataset) {
				long := make(logfile.Measurement, logfile.GridPoints+1)
				for i := range long {
					long[i] = logfile.Sample{0, 0}
				}
				ds.Measurements[1] = long
			},
			contain: "measurement 1 has 501 samples",
		},
		{
			name:    "skipped rows",
			mutate:  func(ds *logfile.Dataset) { ds.SkippedRows = 3 },
			contain: "3 malformed row(s) skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := createTestDataset()
			tt.mutate(ds)
			s := NewSummary(ds)
			if len(s.Warnings) != 1 {
				t.Fatalf("Warnings = %q, want exactly one", s.Warnings)
			}
			if !strings.Contains(s.Warnings[0], tt.contain) {
				t.Errorf("Warning = %q, want it to contain %q", s.Warnings[0], tt.contain)
			}
		})
	}
}

func TestNewSummary_DoesNotAliasLegend(t *testing.T) {
	ds := createTestDataset()
	s := NewSummary(ds)
	s.Channels[1] = "changed"
	if ds.Legend[1] != "Voltage" {
		t.Errorf("Legend[1] = %q, summary must not share the legend slice", ds.Legend[1])
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "text", false},
		{"text", "text", false},
		{"json", "json", false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		f, err := New(tt.name, FormatOptions{})
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && f.Name() != tt.want {
			t.Errorf("New(%q).Name() = %q, want %q", tt.name, f.Name(), tt.want)
		}
	}
}
