// SPDX-License-Identifier: MIT

// Command yama builds camera, projection and rotation matrices from the
// command line and evaluates small YAML scenes of composed transforms.
//
// Usage:
//
//	yama project --kind perspective --hand lh --width 8 --height 6 --near 3 --far 10
//	yama view --eye 0,0,-5 --at 0,0,0
//	yama rotate --axis 0,0,1 --angle 90 --vector 1,0,0
//	yama eval scene.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
