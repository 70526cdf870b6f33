package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", "does-not-exist.yml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load(tt.path)
			if cfg.DensityBucketMin != 60 {
				t.Errorf("DensityBucketMin: got %d, want 60", cfg.DensityBucketMin)
			}
			if cfg.ChartWidth != 60 {
				t.Errorf("ChartWidth: got %d, want 60", cfg.ChartWidth)
			}
			if cfg.LogLevel != "info" {
				t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
			}
			if cfg.Demo {
				t.Error("Demo should default to false")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "density_bucket_min: 30\nchart_width: 80\nlog_level: debug\ndemo: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := Load(path)
	if cfg.DensityBucketMin != 30 {
		t.Errorf("DensityBucketMin: got %d, want 30", cfg.DensityBucketMin)
	}
	if cfg.ChartWidth != 80 {
		t.Errorf("ChartWidth: got %d, want 80", cfg.ChartWidth)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if !cfg.Demo {
		t.Error("Demo: got false, want true")
	}
}

func TestLoadClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "density_bucket_min: -5\nchart_width: 3\nlog_level: \"\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := Load(path)
	if cfg.DensityBucketMin != 60 {
		t.Errorf("DensityBucketMin not clamped: got %d", cfg.DensityBucketMin)
	}
	if cfg.ChartWidth != 60 {
		t.Errorf("ChartWidth not clamped: got %d", cfg.ChartWidth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel not clamped: got %q", cfg.LogLevel)
	}
}
