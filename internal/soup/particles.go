package soup

import (
	"fmt"
	"math/rand"
)

// Particles stores the particle set as parallel arrays rather than a
// slice of structs, so the step kernel streams over contiguous
// same-typed values. Each particle has a position, a velocity and an
// immutable species index.
type Particles struct {
	PosX, PosY []float64
	VelX, VelY []float64
	Species    []int
}

// Len returns the particle count.
func (p *Particles) Len() int {
	return len(p.PosX)
}

func newEmptyParticles(cfg Config, width, height float64) (*Particles, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world extents must be positive, got %vx%v", width, height)
	}
	n := cfg.ParticleCount()
	p := &Particles{
		PosX:    make([]float64, n),
		PosY:    make([]float64, n),
		VelX:    make([]float64, n),
		VelY:    make([]float64, n),
		Species: make([]int, n),
	}
	// Species blocks are contiguous and equal-sized.
	for i := 0; i < n; i++ {
		p.Species[i] = i / cfg.PerSpecies
	}
	return p, nil
}

// NewParticles spawns the configured particle set uniformly at random
// inside [0,width) x [0,height) with zero velocity. The generator is
// injected so callers can seed from the clock while tests fix the seed.
func NewParticles(cfg Config, width, height float64, rng *rand.Rand) (*Particles, error) {
	p, err := newEmptyParticles(cfg, width, height)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.Len(); i++ {
		p.PosX[i] = rng.Float64() * width
		p.PosY[i] = rng.Float64() * height
	}
	return p, nil
}
