// Package app wires the simulation core to an ebiten window: frame
// pacing, pause, camera controls and config persistence.
package app

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/NairodGH/Simulations/internal/render"
	"github.com/NairodGH/Simulations/internal/soup"
)

// maxDT caps the per-frame time step. If the window loses focus or the
// system stalls, the elapsed time balloons and a single oversized step
// would make the integrator overshoot, so the physics never simulates
// more than a 30 fps frame at once.
const maxDT = 1.0 / 30

// Game runs one simulation in a window. It implements ebiten.Game.
type Game struct {
	cfg soup.Config
	sim *soup.Simulation

	worldW, worldH   float64
	screenW, screenH int

	renderer *render.Renderer
	cam      render.Camera

	paused         bool
	prevMX, prevMY float64

	rng        *rand.Rand
	spawn      soup.Spawner
	configPath string

	last    time.Time
	elapsed float64
}

// New builds the game around an already spawned particle set. spawn is
// the layout used whenever the set must be rebuilt (config reload); nil
// falls back to the uniform layout.
func New(cfg soup.Config, worldW, worldH float64, screenW, screenH int, particles *soup.Particles, spawn soup.Spawner, rng *rand.Rand, configPath string) (*Game, error) {
	sim, err := soup.NewSimulation(cfg, worldW, worldH, particles)
	if err != nil {
		return nil, err
	}
	if spawn == nil {
		spawn = soup.NewParticles
	}
	return &Game{
		cfg:        cfg,
		sim:        sim,
		worldW:     worldW,
		worldH:     worldH,
		screenW:    screenW,
		screenH:    screenH,
		renderer:   render.New(cfg.NumSpecies),
		cam:        render.Camera{Zoom: 1},
		rng:        rng,
		spawn:      spawn,
		configPath: configPath,
	}, nil
}

// clampDT bounds a frame's elapsed seconds to the integrator's comfort
// zone. Negative values (clock adjustments) collapse to zero.
func clampDT(elapsed float64) float64 {
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxDT {
		return maxDT
	}
	return elapsed
}

// Update advances the simulation by the wall-clock time since the last
// frame, clamped.
func (g *Game) Update() error {
	g.handleInput()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := clampDT(now.Sub(g.last).Seconds())
	g.last = now
	g.elapsed += dt

	if g.paused {
		return nil
	}
	g.sim.Step(dt)
	return nil
}

// Draw renders the current particle state; it never mutates it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.Particles(), g.cam, g.elapsed, g.worldW, g.worldH)
}

// Layout reports the fixed render size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomizeMatrix()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.cfg.Save(g.configPath); err != nil {
			log.Printf("save %s: %v", g.configPath, err)
		} else {
			log.Printf("saved config to %s", g.configPath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadConfig()
	}

	_, wheelY := ebiten.Wheel()
	g.cam.Zoom += wheelY * 0.1
	if g.cam.Zoom < render.MinZoom {
		g.cam.Zoom = render.MinZoom
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cam.X -= (float64(mx) - g.prevMX) / g.cam.Zoom
		g.cam.Y -= (float64(my) - g.prevMY) / g.cam.Zoom
	}
	g.prevMX = float64(mx)
	g.prevMY = float64(my)
}

// randomizeMatrix swaps in fresh interaction coefficients. The matrix is
// fixed for a simulation's lifetime, so this builds a new simulation
// around the existing particle state rather than mutating the running one.
func (g *Game) randomizeMatrix() {
	cfg := g.cfg
	cfg.Matrix = soup.RandomMatrix(cfg.NumSpecies, g.rng)
	sim, err := soup.NewSimulation(cfg, g.worldW, g.worldH, g.sim.Particles())
	if err != nil {
		log.Printf("randomize matrix: %v", err)
		return
	}
	g.cfg = cfg
	g.sim = sim
}

// loadConfig replaces the whole parameter set from disk. Counts may
// change, so the particle set is respawned from scratch with the
// original spawn layout.
func (g *Game) loadConfig() {
	cfg, err := soup.LoadConfig(g.configPath)
	if err != nil {
		log.Printf("load %s: %v", g.configPath, err)
		return
	}
	particles, err := g.spawn(cfg, g.worldW, g.worldH, g.rng)
	if err != nil {
		log.Printf("load %s: %v", g.configPath, err)
		return
	}
	sim, err := soup.NewSimulation(cfg, g.worldW, g.worldH, particles)
	if err != nil {
		log.Printf("load %s: %v", g.configPath, err)
		return
	}
	g.cfg = cfg
	g.sim = sim
	g.renderer = render.New(cfg.NumSpecies)
	log.Printf("loaded config from %s", g.configPath)
}
