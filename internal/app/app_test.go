package app

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/NairodGH/Simulations/internal/soup"
)

func TestClampDT(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{"normal frame", 1.0 / 60, 1.0 / 60},
		{"slow frame", 0.5, maxDT},
		{"stalled frame", 10, maxDT},
		{"clock went backwards", -0.1, 0},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampDT(tt.elapsed); got != tt.want {
				t.Errorf("clampDT(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestLoadConfigUsesSpawnLayout(t *testing.T) {
	cfg := soup.DefaultConfig()
	cfg.PerSpecies = 5
	path := filepath.Join(t.TempDir(), "soup.json")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	particles, err := soup.NewParticles(cfg, 200, 200, rng)
	if err != nil {
		t.Fatalf("NewParticles: %v", err)
	}

	called := false
	spawn := func(c soup.Config, w, h float64, r *rand.Rand) (*soup.Particles, error) {
		called = true
		return soup.NewParticles(c, w, h, r)
	}
	g, err := New(cfg, 200, 200, 200, 200, particles, spawn, rng, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	g.loadConfig()
	if !called {
		t.Error("reloading the config respawned with a different layout than the game was started with")
	}
}
