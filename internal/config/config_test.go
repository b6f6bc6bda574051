package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default settings to validate, got %v", err)
	}
}

func TestValidateRejectsBadChunkSize(t *testing.T) {
	for _, size := range []int{0, -1, 64, 100} {
		cfg := Default()
		cfg.ChunkSize = size
		if err := cfg.Validate(); err == nil {
			t.Errorf("Expected chunk size %d to be rejected", size)
		}
	}
}

func TestValidateAcceptsLargestPackableChunk(t *testing.T) {
	cfg := Default()
	cfg.ChunkSize = 63
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected chunk size 63 to be accepted, got %v", err)
	}
}

func TestValidateRejectsBadWorldDimensions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.WorldWidth = 0 }},
		{"negative height", func(s *Settings) { s.WorldHeight = -1 }},
		{"zero depth", func(s *Settings) { s.WorldDepth = 0 }},
		{"zero fov", func(s *Settings) { s.FovDegrees = 0 }},
		{"fov too wide", func(s *Settings) { s.FovDegrees = 180 }},
		{"zero near", func(s *Settings) { s.Near = 0 }},
		{"far before near", func(s *Settings) { s.Far = 0.05 }},
		{"zero window width", func(s *Settings) { s.WindowWidth = 0 }},
		{"zero window height", func(s *Settings) { s.WindowHeight = 0 }},
		{"zero ray distance", func(s *Settings) { s.MaxRayDistance = 0 }},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Expected %s to be rejected", c.name)
		}
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()

	if got := cfg.Aspect(); math.Abs(float64(got)-16.0/9.0) > 1e-6 {
		t.Errorf("Expected aspect 16:9, got %f", got)
	}
	if got := cfg.ChunkArea(); got != 32*32 {
		t.Errorf("Expected chunk area 1024, got %d", got)
	}
	if got := cfg.ChunkVolume(); got != 32*32*32 {
		t.Errorf("Expected chunk volume 32768, got %d", got)
	}
	if got := cfg.ChunkCount(); got != 10*3*10 {
		t.Errorf("Expected 300 chunks, got %d", got)
	}

	want := 16.0 * math.Sqrt(3)
	if got := cfg.SphereRadius(); math.Abs(float64(got)-want) > 1e-4 {
		t.Errorf("Expected sphere radius %f, got %f", want, got)
	}

	spawn := cfg.SpawnPosition()
	if spawn.X() != 160 || spawn.Y() != 96 || spawn.Z() != 160 {
		t.Errorf("Expected spawn at (160, 96, 160), got %v", spawn)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("Expected an error for a missing settings file")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "chunk_size: 16\nworld_width: 4\nmax_ray_distance: 12\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Could not write settings file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected settings to load, got %v", err)
	}
	if cfg.ChunkSize != 16 {
		t.Errorf("Expected chunk size 16, got %d", cfg.ChunkSize)
	}
	if cfg.WorldWidth != 4 {
		t.Errorf("Expected world width 4, got %d", cfg.WorldWidth)
	}
	if cfg.MaxRayDistance != 12 {
		t.Errorf("Expected ray distance 12, got %f", cfg.MaxRayDistance)
	}
	// Untouched keys keep their defaults.
	if cfg.WorldHeight != 3 {
		t.Errorf("Expected world height to stay 3, got %d", cfg.WorldHeight)
	}
	if cfg.FovDegrees != 50 {
		t.Errorf("Expected fov to stay 50, got %f", cfg.FovDegrees)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("chunk_size: [oops"), 0644); err != nil {
		t.Fatalf("Could not write settings file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected malformed YAML to be rejected")
	}
}
