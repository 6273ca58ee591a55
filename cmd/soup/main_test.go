package main

import (
	"math/rand"
	"testing"

	"github.com/NairodGH/Simulations/internal/soup"
)

func TestBuildConfigSeedDeterminism(t *testing.T) {
	// A reshaped species count draws a fresh matrix; the same seed must
	// draw the same matrix.
	a, err := buildConfig(false, "", 5, 100, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	b, err := buildConfig(false, "", 5, 100, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	for i := range a.Matrix {
		for j := range a.Matrix[i] {
			if a.Matrix[i][j] != b.Matrix[i][j] {
				t.Fatalf("matrix[%d][%d] differs between identically seeded runs: %v vs %v",
					i, j, a.Matrix[i][j], b.Matrix[i][j])
			}
		}
	}
}

func TestBuildConfigDefaults(t *testing.T) {
	// Matching counts keep the default cyclic matrix untouched.
	got, err := buildConfig(false, "", soup.DefaultNumSpecies, soup.DefaultPerSpecies, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	want := soup.DefaultConfig()
	for i := range want.Matrix {
		for j := range want.Matrix[i] {
			if got.Matrix[i][j] != want.Matrix[i][j] {
				t.Fatalf("matrix[%d][%d] = %v, want default %v", i, j, got.Matrix[i][j], want.Matrix[i][j])
			}
		}
	}
}
