package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"windarrows/internal/geo"
	"windarrows/internal/scale"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Unit != geo.UnitKilometers {
		t.Errorf("Unit = %q, want km", cfg.Unit)
	}
	if cfg.Stretch != 1 || cfg.RadiusMiles != 150 || cfg.AspectRatio != 2.0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.BasemapLayer != geo.FeatureCoastline {
		t.Errorf("BasemapLayer = %v, want Coastline", cfg.BasemapLayer)
	}
	if cfg.ScalePosition != scale.BottomRight {
		t.Errorf("ScalePosition = %v, want BottomRight", cfg.ScalePosition)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-unit", "PX", "-stretch", "2.5", "-wind", "-closing-line", "-basemap-layer", "rivers"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Unit != geo.UnitPixels {
		t.Errorf("Unit = %q, want px", cfg.Unit)
	}
	if cfg.Stretch != 2.5 || !cfg.Wind || !cfg.ClosingLine {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.BasemapLayer != geo.FeatureRiver {
		t.Errorf("BasemapLayer = %v, want River", cfg.BasemapLayer)
	}

	ac := cfg.ArrowConfig()
	if ac.DistanceUnit != geo.UnitPixels || ac.StretchFactor != 2.5 || !ac.IsWindDegree || !ac.ArrowheadClosingLine {
		t.Errorf("ArrowConfig does not reflect flags: %+v", ac)
	}
	if ac.ColorScheme == nil || ac.PopupContent == nil {
		t.Errorf("ArrowConfig should set a colour scheme and popup content")
	}
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("WINDARROWS_UNIT", "px")
	t.Setenv("WINDARROWS_STRETCH", "3")
	t.Setenv("WINDARROWS_WIND", "true")

	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Unit != geo.UnitPixels || cfg.Stretch != 3 || !cfg.Wind {
		t.Errorf("environment defaults not applied: %+v", cfg)
	}

	// Flags override the environment
	cfg, err = Parse([]string{"-stretch", "0.5"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Stretch != 0.5 {
		t.Errorf("Stretch = %v, want 0.5", cfg.Stretch)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown unit", []string{"-unit", "mi"}},
		{"aspect too small", []string{"-a", "0.5"}},
		{"aspect too large", []string{"-a", "5"}},
		{"zero radius", []string{"-r", "0"}},
		{"negative stretch", []string{"-stretch", "-1"}},
		{"zero scale width", []string{"-scale-width", "0"}},
		{"unknown layer", []string{"-basemap-layer", "roads"}},
		{"unknown scale position", []string{"-scale-position", "middle"}},
		{"unknown flag", []string{"-network", "x"}},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.args, io.Discard); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestParseScalePosition(t *testing.T) {
	tests := []struct {
		args []string
		env  string
		want scale.Position
	}{
		{[]string{"-scale-position", "topleft"}, "", scale.TopLeft},
		{[]string{"-scale-position", "BottomLeft"}, "", scale.BottomLeft},
		{nil, "topright", scale.TopRight},
		{[]string{"-scale-position", "bottomright"}, "topright", scale.BottomRight},
	}

	for _, tt := range tests {
		t.Setenv("WINDARROWS_SCALE_POSITION", tt.env)
		cfg, err := Parse(tt.args, io.Discard)
		if err != nil {
			t.Fatalf("Parse(%v) with env %q: %v", tt.args, tt.env, err)
		}
		if cfg.ScalePosition != tt.want {
			t.Errorf("Parse(%v) with env %q: ScalePosition = %v, want %v", tt.args, tt.env, cfg.ScalePosition, tt.want)
		}
	}
}

func TestParseHelp(t *testing.T) {
	cfg, err := Parse([]string{"-h", "-unit", "bogus"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Help {
		t.Errorf("Help not set")
	}
}

func TestLoadEnv(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not be an error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("WINDARROWS_SCALE_UNIT=kn\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("WINDARROWS_SCALE_UNIT") })

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ScaleUnit != "kn" {
		t.Errorf("ScaleUnit = %q, want kn", cfg.ScaleUnit)
	}
}

func TestPrintDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var out strings.Builder
	cfg.PrintDefaults(&out)
	for _, name := range []string{"-data", "-unit", "-stretch", "-geojson", "-scale-position"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("usage does not mention %s", name)
		}
	}
}
