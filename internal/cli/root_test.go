package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// projectFile resolves a path relative to the module root.
func projectFile(t *testing.T, elem ...string) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	root := filepath.Dir(filepath.Dir(filepath.Dir(filename)))
	path := filepath.Join(append([]string{root}, elem...)...)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Required test file not found: %s", path)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "graphdrawer" {
		t.Errorf("Use = %q, want graphdrawer", cmd.Use)
	}
	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("root command must silence usage and errors")
	}

	want := map[string]bool{"plot": false, "export": false, "inspect": false, "validate": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}

	for _, flag := range []string{"debug", "quiet"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing persistent flag: %s", flag)
		}
	}
}

// TestE2E_SampleLog drives the sample instrument log through every command.
func TestE2E_SampleLog(t *testing.T) {
	logPath := projectFile(t, "pkg", "logfile", "testdata", "sample.log")
	dir := t.TempDir()

	out, err := run(t, "inspect", logPath)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "Multimètre DX-200") {
		t.Errorf("inspect output missing device name:\n%s", out)
	}

	pngPath := filepath.Join(dir, "graph.png")
	if _, err := run(t, "plot", logPath, "--y", "Voltage", "--y", "Temp", "--measurement", "1", "--output", pngPath, "--dpi", "30", "-q"); err != nil {
		t.Fatalf("plot error = %v", err)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("plot not written: %v", err)
	}

	base := filepath.Join(dir, "sample")
	if _, err := run(t, "export", logPath, "--name", base, "-q"); err != nil {
		t.Fatalf("export error = %v", err)
	}

	f, err := os.Open(base + ".csv")
	if err != nil {
		t.Fatalf("CSV not written: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.Comment = '#'
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}

	// Two blocks of header, legend and rows: 2+3 and 2+2.
	if len(records) != 9 {
		t.Fatalf("got %d records, want 9: %q", len(records), records)
	}
	last := records[len(records)-1]
	if strings.Join(last[1:], ";") != "9.0;10.0;22.5" {
		t.Errorf("last row = %q, want values 9.0;10.0;22.5", last)
	}
}

func TestE2E_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, "plot", filepath.Join(dir, "missing.log")); err == nil {
		t.Error("plot expected error for missing log")
	}
	if _, err := run(t, "unknown"); err == nil {
		t.Error("expected error for unknown command")
	}
}
