package soup

import (
	"math/rand"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"zero species", func(c *Config) { c.NumSpecies = 0 }, true},
		{"zero per species", func(c *Config) { c.PerSpecies = 0 }, true},
		{"negative rMin", func(c *Config) { c.RMin = -1 }, true},
		{"rMin above rMax", func(c *Config) { c.RMin = c.RMax + 1 }, true},
		{"rMin equals rMax", func(c *Config) { c.RMin = c.RMax }, false},
		{"zero maxSpeed", func(c *Config) { c.MaxSpeed = 0 }, true},
		{"missing matrix row", func(c *Config) { c.Matrix = c.Matrix[:2] }, true},
		{"short matrix row", func(c *Config) { c.Matrix[1] = c.Matrix[1][:2] }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSaveLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matrix = RandomMatrix(cfg.NumSpecies, rand.New(rand.NewSource(9)))
	path := filepath.Join(t.TempDir(), "soup.json")

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.NumSpecies != cfg.NumSpecies || got.RMax != cfg.RMax || got.MaxSpeed != cfg.MaxSpeed {
		t.Errorf("round trip changed scalars: got %+v", got)
	}
	for i := range cfg.Matrix {
		for j := range cfg.Matrix[i] {
			if got.Matrix[i][j] != cfg.Matrix[i][j] {
				t.Fatalf("matrix[%d][%d] = %v, want %v", i, j, got.Matrix[i][j], cfg.Matrix[i][j])
			}
		}
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matrix = cfg.Matrix[:1] // wrong dimensions
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted a config with mismatched matrix dimensions")
	}
}

func TestRandomMatrix(t *testing.T) {
	m := RandomMatrix(5, rand.New(rand.NewSource(2)))
	if len(m) != 5 {
		t.Fatalf("got %d rows, want 5", len(m))
	}
	for i, row := range m {
		if len(row) != 5 {
			t.Fatalf("row %d has %d columns, want 5", i, len(row))
		}
		for j, v := range row {
			if v < -1 || v >= 1 {
				t.Errorf("matrix[%d][%d] = %v, outside [-1, 1)", i, j, v)
			}
		}
	}
}
