// Toolpath: generates a deposition path over a tilted cube and emits it
// as JSON, either stacked linear strokes or an Archimedean spiral.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/NairodGH/Simulations/internal/toolpath"
)

// cubeInput builds the demo mesh: a cube rotated 225 degrees around y
// and shifted by its half size, sliced by a horizontal plane.
func cubeInput(size float64) toolpath.Input {
	h := size / 2
	vertices := mat.NewDense(8, 3, []float64{
		h, h, h,
		-h, -h, -h,
		-h, -h, h,
		-h, h, -h,
		h, -h, -h,
		-h, h, h,
		h, -h, h,
		h, h, -h,
	})

	angle := 225 * math.Pi / 180
	c, s := math.Cos(angle), math.Sin(angle)
	rotation := mat.NewDense(4, 4, []float64{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	})
	translation := mat.NewDense(4, 4, []float64{
		1, 0, 0, h,
		0, 1, 0, h,
		0, 0, 1, h,
		0, 0, 0, 1,
	})
	meshToWorld := mat.NewDense(4, 4, nil)
	meshToWorld.Mul(rotation, translation)

	return toolpath.Input{
		Vertices:    vertices,
		MeshToWorld: meshToWorld,
		PlaneNormal: r3.Vec{Y: 1},
	}
}

type pathJSON struct {
	Points      [][3]float64 `json:"points"`
	Orientation [][3]float64 `json:"orientation"`
}

func main() {
	kind := flag.String("kind", "linear", "Path kind: linear or spiral.")
	size := flag.Float64("size", 6, "Cube edge length.")
	width := flag.Float64("width", 10, "Linear stroke width.")
	height := flag.Float64("height", 2, "Linear ramp height.")
	spacing := flag.Float64("spacing", 1, "Linear layer spacing.")
	factor := flag.Float64("factor", 1, "Spiral growth factor.")
	length := flag.Float64("length", 10, "Spiral length in radians.")
	step := flag.Float64("step", 0.1, "Spiral angle step in radians.")
	flag.Parse()

	in := cubeInput(*size)
	switch *kind {
	case "linear":
		in.Kind = toolpath.Linear
	case "spiral":
		in.Kind = toolpath.Spiral
	default:
		log.Fatalf("unknown path kind %q", *kind)
	}
	in.Width = *width
	in.Height = *height
	in.HeightSpacing = *spacing
	in.SpiralFactor = *factor
	in.SpiralLength = *length
	in.SpiralStep = *step

	out, err := toolpath.Ramp(in)
	if err != nil {
		log.Fatal(err)
	}

	result := pathJSON{
		Points:      make([][3]float64, len(out.Points)),
		Orientation: make([][3]float64, len(out.Orientation)),
	}
	for i, p := range out.Points {
		result.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for i, o := range out.Orientation {
		result.Orientation[i] = [3]float64{o.X, o.Y, o.Z}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
}
