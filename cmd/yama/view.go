// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newViewCmd(a *app) *cobra.Command {
	var hand, eye, at, dir, up string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print a view matrix",
		Long: `Print a view matrix for a camera at --eye looking at --at, or along
--dir. The view axis maps to +Z for --hand lh and to -Z for --hand rh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				c   = camera{Hand: hand}
				err error
			)
			for _, f := range []struct {
				name string
				src  string
				dst  *vec3
			}{
				{"eye", eye, &c.Eye},
				{"at", at, &c.At},
				{"dir", dir, &c.Dir},
				{"up", up, &c.Up},
			} {
				if *f.dst, err = parseList(f.src); err != nil {
					return fmt.Errorf("--%s: %w", f.name, err)
				}
			}
			m, err := c.matrix()
			if err != nil {
				return err
			}
			a.log.Debug("view built", zap.String("hand", hand), zap.String("eye", eye))
			printMatrix4(cmd.OutOrStdout(), m)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&hand, "hand", "lh", "lh or rh")
	fl.StringVar(&eye, "eye", "0,0,0", "camera position x,y,z")
	fl.StringVar(&at, "at", "", "target point x,y,z")
	fl.StringVar(&dir, "dir", "", "view direction x,y,z")
	fl.StringVar(&up, "up", "0,1,0", "up direction x,y,z")
	cmd.MarkFlagsMutuallyExclusive("at", "dir")
	cmd.MarkFlagsOneRequired("at", "dir")
	return cmd
}
