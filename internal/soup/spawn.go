package soup

import (
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Spawner builds an initial particle set for a world. Both spawn layouts
// satisfy it, so the chosen layout can be reused whenever the particle
// set is rebuilt.
type Spawner func(cfg Config, width, height float64, rng *rand.Rand) (*Particles, error)

// SpawnerFor maps a spawn layout name to its Spawner.
func SpawnerFor(layout string) (Spawner, error) {
	switch layout {
	case "uniform":
		return NewParticles, nil
	case "clustered":
		return NewClusteredParticles, nil
	}
	return nil, fmt.Errorf("unknown spawn layout %q", layout)
}

// Perlin field shape for clustered spawning. The frequency is expressed
// in noise periods across the world width so the clump size scales with
// the world rather than with pixel counts.
const (
	spawnNoiseAlpha   = 2.0
	spawnNoiseBeta    = 2.0
	spawnNoiseOctaves = 3
	spawnNoisePeriods = 4.0
)

// NewClusteredParticles spawns the configured particle set with a
// density that follows a perlin noise field, so the soup starts out in
// loose clumps instead of a uniform haze. Placement uses rejection
// sampling against the normalized field; after a bounded number of
// rejections the candidate is accepted as-is so pathological fields
// cannot stall startup.
func NewClusteredParticles(cfg Config, width, height float64, rng *rand.Rand) (*Particles, error) {
	p, err := newEmptyParticles(cfg, width, height)
	if err != nil {
		return nil, err
	}
	noise := perlin.NewPerlin(spawnNoiseAlpha, spawnNoiseBeta, spawnNoiseOctaves, rng.Int63())
	freq := spawnNoisePeriods / width
	const maxAttempts = 32
	for i := 0; i < p.Len(); i++ {
		var x, y float64
		for attempt := 0; attempt < maxAttempts; attempt++ {
			x = rng.Float64() * width
			y = rng.Float64() * height
			// Noise2D is roughly [-1, 1]; fold into an acceptance
			// probability and keep a floor so sparse regions still seed.
			density := (noise.Noise2D(x*freq, y*freq) + 1) / 2
			if density < 0.05 {
				density = 0.05
			}
			if rng.Float64() < density {
				break
			}
		}
		p.PosX[i] = x
		p.PosY[i] = y
	}
	return p, nil
}
