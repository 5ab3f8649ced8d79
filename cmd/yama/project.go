// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectCmd(a *app) *cobra.Command {
	var frustum string
	p := projection{Width: 2, Height: 2, Fovy: 60, Aspect: 1, Near: 0.1, Far: 100}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print a projection matrix",
		Long: `Print an orthographic or perspective projection matrix.

--kind ortho and --kind perspective take --width/--height or --frustum
left,right,bottom,top. --kind fov takes --fovy in degrees and --aspect.
--cube maps depth to [-1, 1] instead of [0, 1].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseList(frustum)
			if err != nil {
				return err
			}
			p.Frustum = f
			m, err := p.matrix()
			if err != nil {
				return err
			}
			a.log.Debug("projection built",
				zap.String("kind", p.Kind),
				zap.String("hand", p.Hand),
				zap.Bool("cube", p.Cube),
			)
			printMatrix4(cmd.OutOrStdout(), m)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&p.Kind, "kind", "perspective", "ortho, perspective or fov")
	fl.StringVar(&p.Hand, "hand", "lh", "lh or rh")
	fl.BoolVar(&p.Cube, "cube", false, "map depth to [-1, 1]")
	fl.Var((*number)(&p.Width), "width", "view volume width at the near plane")
	fl.Var((*number)(&p.Height), "height", "view volume height at the near plane")
	fl.Var((*number)(&p.Fovy), "fovy", "vertical field of view in degrees")
	fl.Var((*number)(&p.Aspect), "aspect", "width / height")
	fl.Var((*number)(&p.Near), "near", "near plane distance")
	fl.Var((*number)(&p.Far), "far", "far plane distance")
	fl.StringVar(&frustum, "frustum", "", "left,right,bottom,top; overrides --width and --height")
	return cmd
}
