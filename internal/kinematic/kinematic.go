// Package kinematic computes forward kinematics for a serial robot arm:
// a chain of rotary and linear axes whose transforms multiply into a
// single base-to-tip matrix.
package kinematic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// AxisKind distinguishes joints that rotate from joints that slide.
type AxisKind int

const (
	Rotary AxisKind = iota
	Linear
)

// Axis is one joint of the chain. Pivot is the joint's origin in the
// previous joint's space; PivotNormal is the rotation axis direction,
// ignored for linear joints.
type Axis struct {
	Kind        AxisKind
	Pivot       r3.Vec
	PivotNormal r3.Vec
}

// Target is a pose: a position plus an orientation expressed as an align
// direction (where the tool points) and a roll angle around it.
type Target struct {
	Position r3.Vec
	Align    r3.Vec
	Roll     float64
}

// Robot is an axis chain mounted on a base transform.
type Robot struct {
	Axes []Axis
	Base *mat.Dense // 4x4; nil means identity
}

func identity4() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// setRotationBlock writes the 3x3 rotation of alpha radians around axis
// into the upper-left block of m.
func setRotationBlock(m *mat.Dense, alpha float64, axis r3.Vec) {
	rot := r3.NewRotation(alpha, axis)
	cols := [3]r3.Vec{
		rot.Rotate(r3.Vec{X: 1}),
		rot.Rotate(r3.Vec{Y: 1}),
		rot.Rotate(r3.Vec{Z: 1}),
	}
	for j, c := range cols {
		m.Set(0, j, c.X)
		m.Set(1, j, c.Y)
		m.Set(2, j, c.Z)
	}
}

// transformPoint applies the 4x4 transform to a point (w = 1).
func transformPoint(m *mat.Dense, p r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)*p.Z + m.At(0, 3),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)*p.Z + m.At(1, 3),
		Z: m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)*p.Z + m.At(2, 3),
	}
}

// transformDirection applies only the rotation block (w = 0).
func transformDirection(m *mat.Dense, d r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.At(0, 0)*d.X + m.At(0, 1)*d.Y + m.At(0, 2)*d.Z,
		Y: m.At(1, 0)*d.X + m.At(1, 1)*d.Y + m.At(1, 2)*d.Z,
		Z: m.At(2, 0)*d.X + m.At(2, 1)*d.Y + m.At(2, 2)*d.Z,
	}
}

// Forward chains every axis transform in order and maps the tip target
// from end-effector space into base space. Each axis contributes its
// pivot translation plus either a rotation around its pivot normal or a
// slide along local x, both by the matching joint value.
func Forward(robot Robot, tip Target, joints []float64) (Target, error) {
	if len(joints) != len(robot.Axes) {
		return Target{}, fmt.Errorf("got %d joint values for %d axes", len(joints), len(robot.Axes))
	}
	cumulative := identity4()
	if robot.Base != nil {
		cumulative.Copy(robot.Base)
	}
	for i, axis := range robot.Axes {
		local := identity4()
		local.Set(0, 3, axis.Pivot.X)
		local.Set(1, 3, axis.Pivot.Y)
		local.Set(2, 3, axis.Pivot.Z)
		if axis.Kind == Rotary {
			setRotationBlock(local, joints[i], axis.PivotNormal)
		} else {
			local.Set(0, 3, local.At(0, 3)+joints[i])
		}
		next := mat.NewDense(4, 4, nil)
		next.Mul(cumulative, local)
		cumulative = next
	}
	return Target{
		Position: transformPoint(cumulative, tip.Position),
		Align:    r3.Unit(transformDirection(cumulative, tip.Align)),
		Roll:     tip.Roll,
	}, nil
}

var unitZ = r3.Vec{Z: 1}

// rotationBetween returns the rotation taking unit vector a onto unit
// vector b. Antiparallel inputs rotate half a turn around an arbitrary
// perpendicular axis.
func rotationBetween(a, b r3.Vec) r3.Rotation {
	d := r3.Dot(a, b)
	if d < -1+1e-12 {
		perp := r3.Cross(a, r3.Vec{X: 1})
		if r3.Norm(perp) < 1e-9 {
			perp = r3.Cross(a, r3.Vec{Y: 1})
		}
		return r3.NewRotation(math.Pi, perp)
	}
	c := r3.Cross(a, b)
	q := quat.Number{Real: 1 + d, Imag: c.X, Jmag: c.Y, Kmag: c.Z}
	return r3.Rotation(quat.Scale(1/quat.Abs(q), q))
}

// FromAlignRoll builds the rotation that points the z convention vector
// along align and then twists around it by roll radians.
func FromAlignRoll(align r3.Vec, roll float64) r3.Rotation {
	alignRot := rotationBetween(unitZ, r3.Unit(align))
	rollRot := r3.NewRotation(roll, unitZ)
	return r3.Rotation(quat.Mul(quat.Number(alignRot), quat.Number(rollRot)))
}

// ToAlignRoll decomposes a rotation back into an align direction and a
// signed roll angle. Reversing rotations is less direct: the align part
// is whatever the rotation does to z, and the roll is the residual twist
// left after removing it.
func ToAlignRoll(r r3.Rotation) (r3.Vec, float64) {
	align := r3.Unit(r.Rotate(unitZ))
	alignRot := rotationBetween(unitZ, align)
	q := quat.Mul(quat.Conj(quat.Number(alignRot)), quat.Number(r))
	if abs := quat.Abs(q); abs > 0 {
		q = quat.Scale(1/abs, q)
	}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	imag := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := r3.Norm(imag)
	roll := 2 * math.Atan2(n, q.Real)
	if n > 1e-12 && r3.Dot(r3.Scale(1/n, imag), unitZ) < 0 {
		roll = -roll
	}
	return align, roll
}
