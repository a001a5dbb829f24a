package profile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweeps.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Samples != DefaultSamples {
		t.Fatalf("Samples = %d, want %d", cfg.Samples, DefaultSamples)
	}
	if len(cfg.Sweeps) != 9 || cfg.Sweeps[0].Function != "invsqrt" {
		t.Fatalf("default sweeps = %+v", cfg.Sweeps)
	}
	if s := cfg.Sweeps[3]; s.Function != "atan" || s.Min != 0 || s.Max != 1 || s.Samples != 5001 {
		t.Fatalf("fourth default sweep = %+v", s)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeFile(t, "sweeps:\n  - function: atan\n    samples: 11\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Samples != DefaultSamples {
		t.Fatalf("Samples = %d, want default %d kept", cfg.Samples, DefaultSamples)
	}
	want := []Sweep{{Function: "atan", Samples: 11}}
	if !reflect.DeepEqual(cfg.Sweeps, want) {
		t.Fatalf("Sweeps = %+v, want %+v", cfg.Sweeps, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{name: "unknown function", content: "sweeps:\n  - function: tan\n", target: errUnknownFunction},
		{name: "no sweeps", content: "sweeps: []\n", target: errNoSweeps},
		{name: "bad samples", content: "samples: 1\n"},
		{name: "malformed", content: "sweeps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Fatalf("error = %v, want %v", err, tt.target)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}
	back, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(written) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestRunAllAndWriteCSV(t *testing.T) {
	cfg := &Config{
		Samples: 101,
		Sweeps: []Sweep{
			{Function: "atan"},
			{Function: "alt", Samples: 51},
		},
	}
	reports, err := RunAll(cfg)
	if err != nil {
		t.Fatalf("RunAll error: %v", err)
	}
	if len(reports) != 2 || reports[0].Samples != 101 || reports[1].Samples != 51 {
		t.Fatalf("reports = %+v", reports)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, reports); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3:\n%s", len(lines), buf.String())
	}
	header := "function,relative,min,max,samples,max_abs_err,worst_at,min_err,max_err,mean_err,stddev_err"
	if lines[0] != header {
		t.Fatalf("CSV header = %q, want %q", lines[0], header)
	}
	if !strings.HasPrefix(lines[1], "atan,false,") || !strings.HasPrefix(lines[2], "alt,false,") {
		t.Fatalf("unexpected CSV rows:\n%s", buf.String())
	}
}

func TestRunAllErrors(t *testing.T) {
	if _, err := RunAll(&Config{Samples: 10}); !errors.Is(err, errNoSweeps) {
		t.Fatalf("RunAll(empty) error = %v, want errNoSweeps", err)
	}
	_, err := RunAll(&Config{Samples: 10, Sweeps: []Sweep{{Function: "nope"}}})
	if !errors.Is(err, errUnknownFunction) {
		t.Fatalf("RunAll(unknown) error = %v, want errUnknownFunction", err)
	}
}
