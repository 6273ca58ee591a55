// Package soup implements a multi-species particle-life simulation on a
// toroidal 2D world. Thousands of point particles attract and repel each
// other according to a per-species-pair interaction matrix, with a
// species-blind repulsion zone up close and a triangular force envelope
// further out. Force evaluation is brute-force all-pairs over
// struct-of-arrays state; there is deliberately no spatial partitioning.
package soup

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// epsilon guards every division in the kernel: a particle is at distance
// zero from itself, and two spawned particles can coincide exactly.
const epsilon = 1e-6

// Simulation owns a particle set and advances it step by step. The
// scratch arrays persist across steps so Step allocates nothing. A
// Simulation has exactly one writer; renderers read the particle arrays
// between steps, never during one.
type Simulation struct {
	cfg           Config
	width, height float64
	particles     *Particles

	// Matrix rows pre-multiplied by ForceScale, indexed [species i][species j].
	scaled [][]float64

	forceX, forceY []float64
}

// NewSimulation wraps an initialized particle set. The config and world
// extents must be the ones the particles were spawned with; both are
// fixed for the life of the Simulation.
func NewSimulation(cfg Config, width, height float64, particles *Particles) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scaled := make([][]float64, cfg.NumSpecies)
	for i := range scaled {
		scaled[i] = make([]float64, cfg.NumSpecies)
		for j := range scaled[i] {
			scaled[i][j] = cfg.Matrix[i][j] * cfg.ForceScale
		}
	}
	n := particles.Len()
	return &Simulation{
		cfg:       cfg,
		width:     width,
		height:    height,
		particles: particles,
		scaled:    scaled,
		forceX:    make([]float64, n),
		forceY:    make([]float64, n),
	}, nil
}

// Particles exposes the particle arrays for rendering. Read-only by
// contract: step, then read.
func (s *Simulation) Particles() *Particles {
	return s.particles
}

// Config returns the parameter set the simulation was built with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// wrapDelta folds a displacement component into the shortest signed
// distance under periodic wrap, so |d| <= extent/2. In a world of width
// 100, particles at 5 and 95 are 10 apart through the seam, not 90.
func wrapDelta(d, extent float64) float64 {
	return d - math.Round(d/extent)*extent
}

// zoneMagnitude maps a normalized distance (dist/rMax) to a scalar force
// magnitude. Below beta = rMin/rMax lies the species-blind repulsion
// zone: -repulsionScale at contact, fading linearly to zero at beta.
// From beta to 1 the species force applies, shaped by a triangle wave
// that is zero at both zone edges and one at the midpoint, so the total
// is continuous across every boundary. matrixForce is the pair's matrix
// entry already multiplied by ForceScale.
func zoneMagnitude(normDist, beta, repulsionScale, matrixForce float64) float64 {
	if normDist < beta {
		return (normDist/beta - 1) * repulsionScale
	}
	wave := 1 - math.Abs(1+beta-2*normDist)/(1-beta)
	return matrixForce * wave
}

// Step advances the simulation by dt seconds. Forces are accumulated for
// every particle from the pre-step positions of all others, and only
// then integrated, so the order of particles never influences the
// result. Callers must clamp dt (1/30 s is a safe ceiling); an unbounded
// dt from a stalled frame makes the integrator overshoot.
func (s *Simulation) Step(dt float64) {
	p := s.particles
	n := p.Len()
	beta := s.cfg.RMin / s.cfg.RMax
	rMaxSq := s.cfg.RMax * s.cfg.RMax

	for i := 0; i < n; i++ {
		xi, yi := p.PosX[i], p.PosY[i]
		row := s.scaled[p.Species[i]]
		var fx, fy float64
		for j := 0; j < n; j++ {
			dx := wrapDelta(p.PosX[j]-xi, s.width)
			dy := wrapDelta(p.PosY[j]-yi, s.height)
			distSq := dx*dx + dy*dy
			// Only particles within rMax contribute, and self never does.
			if distSq >= rMaxSq || distSq <= epsilon {
				continue
			}
			dist := math.Max(math.Sqrt(distSq), epsilon)
			invDist := 1 / dist
			magnitude := zoneMagnitude(dist/s.cfg.RMax, beta, s.cfg.RepulsionScale, row[p.Species[j]])
			// Magnitude along the unit displacement toward the neighbor.
			fx += magnitude * dx * invDist
			fy += magnitude * dy * invDist
		}
		s.forceX[i] = fx
		s.forceY[i] = fy
	}

	// Friction shrinks the existing velocity, then the force impulse adds
	// to it. Without friction particles accelerate forever; without force
	// friction brings everything to a stop.
	drag := 1 - s.cfg.Friction
	floats.Scale(drag, p.VelX)
	floats.Scale(drag, p.VelY)
	floats.AddScaled(p.VelX, dt, s.forceX)
	floats.AddScaled(p.VelY, dt, s.forceY)

	// Multiplicative speed cap: scales down anything over MaxSpeed,
	// leaves valid speeds untouched. No branch, so the clamp is exact at
	// the boundary.
	for i := 0; i < n; i++ {
		speed := math.Max(math.Sqrt(p.VelX[i]*p.VelX[i]+p.VelY[i]*p.VelY[i]), epsilon)
		scale := math.Min(s.cfg.MaxSpeed/speed, 1)
		p.VelX[i] *= scale
		p.VelY[i] *= scale
	}

	floats.AddScaled(p.PosX, dt, p.VelX)
	floats.AddScaled(p.PosY, dt, p.VelY)

	// Toroidal wrap back into [0, extent): a particle at 107 in a world
	// of width 100 reappears at 7.
	for i := 0; i < n; i++ {
		p.PosX[i] -= math.Floor(p.PosX[i]/s.width) * s.width
		p.PosY[i] -= math.Floor(p.PosY[i]/s.height) * s.height
	}
}
