// Package render draws the particle soup with an additive neon-glow
// look: a bright disc per particle plus a gaussian halo measured from
// the disc surface, pulsing slightly out of phase per particle.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/NairodGH/Simulations/internal/soup"
)

const (
	// DiscRadius is the particle body radius in world pixels.
	DiscRadius = 3.0
	// MinZoom limits zooming out so tiling stays bounded.
	MinZoom = 0.1

	glowSigma = 8.0
	// Golden angle in turns: consecutive particles get maximally spread
	// pulse phases, so the soup shimmers instead of blinking in unison.
	goldenAngle = 0.381966
	pulseSpeed  = 3.0
	glowGain    = 0.6
)

// Camera is a pan/zoom view over the toroidal world.
type Camera struct {
	X, Y float64
	Zoom float64
}

// ScreenX maps a world x coordinate to screen space.
func (c Camera) ScreenX(wx float64) float64 { return (wx - c.X) * c.Zoom }

// ScreenY maps a world y coordinate to screen space.
func (c Camera) ScreenY(wy float64) float64 { return (wy - c.Y) * c.Zoom }

// Renderer holds the species palette and the pre-baked halo sprite. The
// sprite is white and gets tinted per species at draw time.
type Renderer struct {
	palette []color.RGBA
	glow    *ebiten.Image
	// Half the sprite's side, in world pixels.
	glowHalf float64
}

// New bakes the halo sprite for the given species count.
func New(numSpecies int) *Renderer {
	half := int(math.Ceil(DiscRadius + 3*glowSigma))
	side := half*2 + 1
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dist := math.Hypot(float64(x-half), float64(y-half))
			// Halo intensity falls off from the disc surface outward,
			// not from the center, so the rim stays bright.
			surface := math.Max(dist-DiscRadius, 0)
			v := math.Exp(-(surface * surface) / (glowSigma * glowSigma))
			b := uint8(v * 255)
			img.SetRGBA(x, y, color.RGBA{R: b, G: b, B: b, A: b})
		}
	}
	return &Renderer{
		palette:  Palette(numSpecies),
		glow:     ebiten.NewImageFromImage(img),
		glowHalf: float64(half),
	}
}

// Draw renders the particle set through the camera. elapsed drives the
// pulse effect and the world extents drive toroidal tiling: when zoomed
// out past the world edge, the soup repeats seamlessly.
func (r *Renderer) Draw(screen *ebiten.Image, p *soup.Particles, cam Camera, elapsed, worldW, worldH float64) {
	screen.Fill(color.RGBA{R: 0, G: 0, B: 3, A: 255})

	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())

	// Visible world range, then the tile range covering it.
	visMinX := cam.X
	visMaxX := cam.X + screenW/cam.Zoom
	visMinY := cam.Y
	visMaxY := cam.Y + screenH/cam.Zoom
	tileX0 := math.Floor(visMinX / worldW)
	tileX1 := math.Ceil(visMaxX / worldW)
	tileY0 := math.Floor(visMinY / worldH)
	tileY1 := math.Ceil(visMaxY / worldH)

	margin := r.glowHalf * cam.Zoom
	for tx := tileX0; tx < tileX1; tx++ {
		for ty := tileY0; ty < tileY1; ty++ {
			offsetX := tx * worldW
			offsetY := ty * worldH
			for i := 0; i < p.Len(); i++ {
				sx := cam.ScreenX(p.PosX[i] + offsetX)
				sy := cam.ScreenY(p.PosY[i] + offsetY)
				if sx < -margin || sx > screenW+margin || sy < -margin || sy > screenH+margin {
					continue
				}
				c := r.palette[p.Species[i]]
				pulse := 0.25 + 0.75*math.Abs(math.Sin(elapsed*pulseSpeed+float64(i)*goldenAngle))

				op := &ebiten.DrawImageOptions{}
				op.Blend = ebiten.BlendLighter
				op.GeoM.Translate(-r.glowHalf, -r.glowHalf)
				op.GeoM.Scale(cam.Zoom, cam.Zoom)
				op.GeoM.Translate(sx, sy)
				op.ColorScale.ScaleWithColor(c)
				op.ColorScale.ScaleAlpha(float32(pulse * glowGain))
				screen.DrawImage(r.glow, op)

				vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(DiscRadius*cam.Zoom), c, true)
			}
		}
	}
}
