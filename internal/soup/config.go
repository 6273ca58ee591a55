package soup

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Default tuning values: three species in a cyclic hunt/flee
// arrangement with strong same-species cohesion.
const (
	DefaultNumSpecies = 3
	DefaultPerSpecies = 500

	// DefaultRMin is the repulsion-zone radius in pixels. Low values let
	// particles pass through each other, high values make hard collisions.
	DefaultRMin = 15.0
	// DefaultRMax is the interaction-zone radius in pixels. Low values
	// keep clusters small and isolated, high values make behavior global
	// (and the all-pairs step proportionally heavier).
	DefaultRMax = 200.0

	// DefaultFriction is the fractional velocity damping per step.
	DefaultFriction = 0.035
	// DefaultForceScale scales all matrix forces: the matrix encodes
	// relationships, this encodes their intensity.
	DefaultForceScale = 25.0
	// DefaultRepulsionScale is the inner-zone multiplier, larger than
	// ForceScale so fast particles cannot phase through each other.
	DefaultRepulsionScale = 250.0
	// DefaultMaxSpeed caps velocity in pixels/second. Without it a
	// particle attracted by many neighbors at once accelerates forever.
	DefaultMaxSpeed = 300.0

	defaultHunt = 0.75
	defaultFlee = -0.25
	defaultSelf = 1.0
)

// Config holds every tunable of a simulation run. A Config is immutable
// once a Simulation is built from it; changing parameters means building
// a new Simulation.
type Config struct {
	NumSpecies int `json:"numSpecies"`
	PerSpecies int `json:"perSpecies"`

	RMin float64 `json:"rMin"`
	RMax float64 `json:"rMax"`

	Friction       float64 `json:"friction"`
	ForceScale     float64 `json:"forceScale"`
	RepulsionScale float64 `json:"repulsionScale"`
	MaxSpeed       float64 `json:"maxSpeed"`

	// Matrix[i][j] is the force multiplier applied to a particle of
	// species i due to a particle of species j. Positive attracts,
	// negative repels. Asymmetric entries give predator/prey behavior.
	Matrix [][]float64 `json:"matrix"`
}

// DefaultConfig returns the classic parameter set: red hunts green and
// flees blue, green hunts blue and flees red, blue hunts red and flees
// green. Hunt outweighs flee so predators chase faster than prey escape,
// which keeps the soup in perpetual motion as long as friction stays low.
func DefaultConfig() Config {
	return Config{
		NumSpecies:     DefaultNumSpecies,
		PerSpecies:     DefaultPerSpecies,
		RMin:           DefaultRMin,
		RMax:           DefaultRMax,
		Friction:       DefaultFriction,
		ForceScale:     DefaultForceScale,
		RepulsionScale: DefaultRepulsionScale,
		MaxSpeed:       DefaultMaxSpeed,
		Matrix: [][]float64{
			{defaultSelf, defaultHunt, defaultFlee},
			{defaultFlee, defaultSelf, defaultHunt},
			{defaultHunt, defaultFlee, defaultSelf},
		},
	}
}

// ParticleCount returns the total particle count, NumSpecies*PerSpecies.
func (c Config) ParticleCount() int {
	return c.NumSpecies * c.PerSpecies
}

// Validate reports the first configuration problem found. A Config that
// fails validation must not be used to build a Simulation.
func (c Config) Validate() error {
	if c.NumSpecies < 1 {
		return fmt.Errorf("numSpecies must be at least 1, got %d", c.NumSpecies)
	}
	if c.PerSpecies < 1 {
		return fmt.Errorf("perSpecies must be at least 1, got %d", c.PerSpecies)
	}
	if c.RMin <= 0 || c.RMax <= 0 {
		return fmt.Errorf("radii must be positive, got rMin=%v rMax=%v", c.RMin, c.RMax)
	}
	if c.RMin > c.RMax {
		return fmt.Errorf("rMin (%v) must not exceed rMax (%v)", c.RMin, c.RMax)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("maxSpeed must be positive, got %v", c.MaxSpeed)
	}
	if len(c.Matrix) != c.NumSpecies {
		return fmt.Errorf("matrix has %d rows, want %d", len(c.Matrix), c.NumSpecies)
	}
	for i, row := range c.Matrix {
		if len(row) != c.NumSpecies {
			return fmt.Errorf("matrix row %d has %d columns, want %d", i, len(row), c.NumSpecies)
		}
	}
	return nil
}

// RandomMatrix fills a numSpecies x numSpecies matrix with uniform
// coefficients in [-1, 1).
func RandomMatrix(numSpecies int, rng *rand.Rand) [][]float64 {
	m := make([][]float64, numSpecies)
	for i := range m {
		m[i] = make([]float64, numSpecies)
		for j := range m[i] {
			m[i][j] = rng.Float64()*2 - 1
		}
	}
	return m
}

// Save writes the config as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadConfig reads a JSON config and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
