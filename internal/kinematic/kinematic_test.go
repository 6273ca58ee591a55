package kinematic

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func vecNear(a, b r3.Vec) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

// sampleArm mirrors a practical 6-axis arm: a sliding base, a rotating
// base, then alternating left-right and forward-backward rotary joints
// stacked link-height apart.
func sampleArm() Robot {
	const linkHeight = 1.5
	axes := make([]Axis, 6)
	for i := range axes {
		if i == 0 {
			axes[i] = Axis{Kind: Linear}
			continue
		}
		axes[i].Kind = Rotary
		axes[i].Pivot = r3.Vec{Y: linkHeight}
		switch {
		case i == 1:
			axes[i].PivotNormal = r3.Vec{Y: 1}
		case i%2 == 0:
			axes[i].PivotNormal = r3.Vec{X: 1}
		default:
			axes[i].PivotNormal = r3.Vec{Z: 1}
		}
	}
	return Robot{Axes: axes}
}

func TestForwardZeroPose(t *testing.T) {
	robot := sampleArm()
	tip := Target{Position: r3.Vec{Y: 1.5}, Align: r3.Vec{Z: 1}}
	got, err := Forward(robot, tip, make([]float64, 6))
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	// All joints at zero: the chain is five stacked link translations
	// plus the tip offset.
	if want := (r3.Vec{Y: 9}); !vecNear(got.Position, want) {
		t.Errorf("position = %+v, want %+v", got.Position, want)
	}
	if want := (r3.Vec{Z: 1}); !vecNear(got.Align, want) {
		t.Errorf("align = %+v, want %+v", got.Align, want)
	}
}

func TestForwardLinearBase(t *testing.T) {
	robot := sampleArm()
	tip := Target{Position: r3.Vec{Y: 1.5}, Align: r3.Vec{Z: 1}}
	joints := make([]float64, 6)
	joints[0] = 2.5
	got, err := Forward(robot, tip, joints)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	// The linear base slides the whole arm along x.
	if want := (r3.Vec{X: 2.5, Y: 9}); !vecNear(got.Position, want) {
		t.Errorf("position = %+v, want %+v", got.Position, want)
	}
}

func TestForwardSingleRotary(t *testing.T) {
	robot := Robot{Axes: []Axis{{Kind: Rotary, PivotNormal: r3.Vec{Z: 1}}}}
	tip := Target{Position: r3.Vec{X: 1}, Align: r3.Vec{X: 1}}
	got, err := Forward(robot, tip, []float64{math.Pi / 2})
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if want := (r3.Vec{Y: 1}); !vecNear(got.Position, want) {
		t.Errorf("position = %+v, want %+v", got.Position, want)
	}
	if want := (r3.Vec{Y: 1}); !vecNear(got.Align, want) {
		t.Errorf("align = %+v, want %+v", got.Align, want)
	}
}

func TestForwardBaseRotationPropagates(t *testing.T) {
	// Rotating the second joint (about y) swings everything above it.
	robot := sampleArm()
	tip := Target{Position: r3.Vec{Y: 1.5}, Align: r3.Vec{Z: 1}}
	joints := make([]float64, 6)
	joints[1] = math.Pi
	got, err := Forward(robot, tip, joints)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	// Everything stays stacked on the y axis, but align flips to -z.
	if want := (r3.Vec{Y: 9}); !vecNear(got.Position, want) {
		t.Errorf("position = %+v, want %+v", got.Position, want)
	}
	if want := (r3.Vec{Z: -1}); !vecNear(got.Align, want) {
		t.Errorf("align = %+v, want %+v", got.Align, want)
	}
}

func TestForwardJointCountMismatch(t *testing.T) {
	robot := sampleArm()
	if _, err := Forward(robot, Target{Align: r3.Vec{Z: 1}}, make([]float64, 3)); err == nil {
		t.Error("Forward accepted 3 joint values for a 6-axis robot")
	}
}

func TestAlignRollRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		align r3.Vec
		roll  float64
	}{
		{"identity", r3.Vec{Z: 1}, 0},
		{"pure roll", r3.Vec{Z: 1}, 1.2},
		{"tilted no roll", r3.Vec{X: 1, Z: 1}, 0},
		{"tilted rolled", r3.Vec{X: 0.3, Y: -0.5, Z: 0.8}, -0.7},
		{"sideways", r3.Vec{X: 1}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := FromAlignRoll(tt.align, tt.roll)
			align, roll := ToAlignRoll(rot)
			if want := r3.Unit(tt.align); !vecNear(align, want) {
				t.Errorf("align = %+v, want %+v", align, want)
			}
			if math.Abs(roll-tt.roll) > 1e-9 {
				t.Errorf("roll = %v, want %v", roll, tt.roll)
			}
		})
	}
}

func TestFromAlignRollPointsZ(t *testing.T) {
	align := r3.Vec{X: 2, Y: -1, Z: 0.5}
	rot := FromAlignRoll(align, 0.9)
	got := rot.Rotate(r3.Vec{Z: 1})
	if want := r3.Unit(align); !vecNear(got, want) {
		t.Errorf("rotated z = %+v, want %+v", got, want)
	}
}
