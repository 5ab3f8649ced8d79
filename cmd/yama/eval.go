// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvalCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "eval <scene.yaml>",
		Short: "Compose the steps of a scene and transform its points",
		Long: `Read a YAML scene, compose its steps in order and transform every point
with the result. "-" reads the scene from standard input.

Output lists the composed matrix by rows, its digest, each point with its
image and the bounds of the finite images.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open scene: %w", err)
				}
				defer f.Close()
				in = f
			}

			scene, err := LoadScene(in)
			if err != nil {
				return err
			}
			if workers > 0 {
				scene.Workers = workers
			}
			a.log.Info("scene loaded",
				zap.String("path", args[0]),
				zap.Int("steps", len(scene.Steps)),
				zap.Int("points", len(scene.Points)),
			)

			res, err := scene.Evaluate(cmd.Context())
			if err != nil {
				return err
			}
			a.log.Debug("scene evaluated", zap.String("digest", fmt.Sprintf("%016x", res.Digest)))

			out := cmd.OutOrStdout()
			printMatrix4(out, res.Matrix)
			for i, p := range res.Points {
				fmt.Fprintf(out, "%v -> %v\n", scene.Points[i], p)
			}
			if res.Finite > 0 {
				fmt.Fprintln(out, "bounds", res.Bounds)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "goroutines transforming points; overrides the scene value")
	return cmd
}
