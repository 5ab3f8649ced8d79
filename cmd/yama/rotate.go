// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/yama"
	"github.com/katalvlaran/yama/matrix"
)

func newRotateCmd(a *app) *cobra.Command {
	var (
		axis, vec string
		angle     float64
	)
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Print a rotation as a quaternion and a matrix",
		Long: `Print the rotation by --angle degrees around --axis as a unit quaternion
and as a 3x3 matrix. With --vector the rotated vector is printed too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ax, err := parseList(axis)
			if err != nil {
				return fmt.Errorf("--axis: %w", err)
			}
			r := rotation{Axis: ax, Angle: yama.Preferred(angle)}
			q, err := r.quaternion()
			if err != nil {
				return err
			}
			m := matrix.RotationQuaternion3(q)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "quaternion", q)
			printMatrix3(out, m)
			a.log.Debug("rotation built", zap.String("axis", axis), zap.Float64("degrees", angle))

			if vec == "" {
				return nil
			}
			v, err := parseVec3(vec)
			if err != nil {
				return fmt.Errorf("--vector: %w", err)
			}
			fmt.Fprintln(out, "rotated", q.Rotate(v))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&axis, "axis", "0,0,1", "rotation axis x,y,z; need not be unit length")
	fl.Float64Var(&angle, "angle", 0, "angle in degrees, counter-clockwise looking down the axis")
	fl.StringVar(&vec, "vector", "", "vector x,y,z to rotate")
	return cmd
}
