// Kinematic: forward kinematics for a sample 6-axis arm. Prints the tip
// pose for the joint values given on the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/NairodGH/Simulations/internal/kinematic"
)

const linkHeight = 1.5

// sampleArm replicates a practical arm: a sliding base, a rotating base,
// then alternating left-right and forward-backward rotary joints.
func sampleArm() kinematic.Robot {
	axes := make([]kinematic.Axis, 6)
	for i := range axes {
		if i == 0 {
			axes[i] = kinematic.Axis{Kind: kinematic.Linear}
			continue
		}
		axes[i].Kind = kinematic.Rotary
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
	return kinematic.Robot{Axes: axes}
}

func parseJoints(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	joints := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("joint %d: %w", i, err)
		}
		joints[i] = v
	}
	return joints, nil
}

func main() {
	jointSpec := flag.String("joints", "0,0,0,0,0,0", "Comma-separated joint values: meters for the linear base, radians for rotary joints.")
	flag.Parse()

	joints, err := parseJoints(*jointSpec)
	if err != nil {
		log.Fatal(err)
	}

	robot := sampleArm()
	tip := kinematic.Target{
		Position: r3.Vec{Y: linkHeight},
		Align:    r3.Vec{Z: 1},
	}
	pose, err := kinematic.Forward(robot, tip, joints)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("position: (%.4f, %.4f, %.4f)\n", pose.Position.X, pose.Position.Y, pose.Position.Z)
	fmt.Printf("align:    (%.4f, %.4f, %.4f)\n", pose.Align.X, pose.Align.Y, pose.Align.Z)
	fmt.Printf("roll:     %.4f\n", pose.Roll)
}
