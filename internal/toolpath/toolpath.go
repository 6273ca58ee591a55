// Package toolpath generates deposition paths over a slicing plane:
// stacked back-and-forth lines for walls, or an Archimedean spiral for
// pads. Points ramp upward in the plane's own frame so any plane
// orientation works without special-casing.
package toolpath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kind selects the path shape.
type Kind int

const (
	Linear Kind = iota
	Spiral
)

// Input describes the mesh, the slicing plane and the path tunables.
type Input struct {
	// Vertices is an n x 3 matrix of mesh vertex positions in mesh space.
	Vertices *mat.Dense
	// MeshToWorld is the 4x4 transform from mesh space to world space;
	// nil means identity.
	MeshToWorld *mat.Dense
	// PlaneNormal is the slicing plane normal; need not be unit length.
	PlaneNormal r3.Vec

	Kind Kind

	// Linear path tunables.
	Width         float64
	Height        float64
	HeightSpacing float64

	// Spiral path tunables.
	SpiralFactor float64
	SpiralLength float64
	SpiralStep   float64
}

// Output is the generated path: one orientation per point, always the
// plane normal since the head stays perpendicular to the plane.
type Output struct {
	Points      []r3.Vec
	Orientation []r3.Vec
}

func worldVertex(in Input, row int) r3.Vec {
	v := r3.Vec{
		X: in.Vertices.At(row, 0),
		Y: in.Vertices.At(row, 1),
		Z: in.Vertices.At(row, 2),
	}
	m := in.MeshToWorld
	if m == nil {
		return v
	}
	return r3.Vec{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z + m.At(0, 3),
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z + m.At(1, 3),
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z + m.At(2, 3),
	}
}

// FirstPoint finds the world-space vertex lowest along the plane normal
// and projects it onto the plane: where the path starts.
func FirstPoint(in Input) (r3.Vec, error) {
	if in.Vertices == nil {
		return r3.Vec{}, fmt.Errorf("no mesh vertices")
	}
	rows, cols := in.Vertices.Dims()
	if rows == 0 || cols != 3 {
		return r3.Vec{}, fmt.Errorf("vertices must be n x 3 with n > 0, got %d x %d", rows, cols)
	}
	normal := r3.Unit(in.PlaneNormal)
	lowest := worldVertex(in, 0)
	minDist := r3.Dot(lowest, normal)
	for i := 1; i < rows; i++ {
		v := worldVertex(in, i)
		if d := r3.Dot(v, normal); d < minDist {
			minDist = d
			lowest = v
		}
	}
	return r3.Sub(lowest, r3.Scale(r3.Dot(lowest, normal), normal)), nil
}

// planeFrame builds two unit axes spanning the plane, perpendicular to
// each other and to the normal. Drawing in this frame keeps the path
// logic flat no matter how the plane is tilted.
func planeFrame(normal r3.Vec) (planeX, planeY r3.Vec) {
	if math.Abs(normal.Z) < 0.9 {
		planeX = r3.Unit(r3.Cross(r3.Vec{Z: 1}, normal))
	} else {
		planeX = r3.Unit(r3.Cross(r3.Vec{X: 1}, normal))
	}
	planeY = r3.Unit(r3.Cross(normal, planeX))
	return planeX, planeY
}

// Ramp generates the path. Linear paths stack width-wide strokes with
// alternating direction every HeightSpacing up the plane; spiral paths
// unwind an Archimedean spiral from the first point.
func Ramp(in Input) (Output, error) {
	first, err := FirstPoint(in)
	if err != nil {
		return Output{}, err
	}
	normal := r3.Unit(in.PlaneNormal)
	planeX, planeY := planeFrame(normal)

	var out Output
	if in.Kind == Linear {
		if in.HeightSpacing <= 0 {
			return Output{}, fmt.Errorf("height spacing must be positive, got %v", in.HeightSpacing)
		}
		for layer := 0; float64(layer) <= in.Height/in.HeightSpacing; layer++ {
			sign := 1.0
			if layer%2 == 1 {
				sign = -1.0
			}
			for _, side := range []float64{-sign, sign} {
				point := r3.Add(first, r3.Scale(side*0.5*in.Width, planeX))
				point = r3.Add(point, r3.Scale(float64(layer)*in.HeightSpacing, planeY))
				out.Points = append(out.Points, point)
				out.Orientation = append(out.Orientation, normal)
			}
		}
		return out, nil
	}

	if in.SpiralStep <= 0 {
		return Output{}, fmt.Errorf("spiral step must be positive, got %v", in.SpiralStep)
	}
	for i := 0; float64(i) <= in.SpiralLength/in.SpiralStep; i++ {
		angle := float64(i) * in.SpiralStep
		// Polar to cartesian in the plane frame; the radius grows with
		// the angle, which is what makes it Archimedean.
		radial := r3.Add(r3.Scale(math.Cos(angle), planeX), r3.Scale(math.Sin(angle), planeY))
		out.Points = append(out.Points, r3.Add(first, r3.Scale(in.SpiralFactor*angle, radial)))
		out.Orientation = append(out.Orientation, normal)
	}
	return out, nil
}
