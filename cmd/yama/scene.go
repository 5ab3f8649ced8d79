// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/yama"
	"github.com/katalvlaran/yama/box"
	"github.com/katalvlaran/yama/layout"
	"github.com/katalvlaran/yama/matrix"
)

// Scene is the document read by "yama eval".
//
//	steps:
//	  - scale: [2]
//	  - rotate: {axis: [0, 1, 0], angle: 90}
//	  - translate: [0, 0, 5]
//	  - view: {eye: [0, 0, -5], at: [0, 0, 0]}
//	  - project: {kind: fov, fovy: 60, aspect: 1.5, near: 0.1, far: 100}
//	points:
//	  - [1, 2, 3]
//
// Steps apply in order: the first one listed acts on the points first.
type Scene struct {
	Steps   []Step `yaml:"steps"`
	Points  []vec3 `yaml:"points"`
	Workers int    `yaml:"workers,omitempty"`
}

// Step is one transform. Exactly one field is set.
type Step struct {
	Translate vec3        `yaml:"translate,omitempty"`
	Scale     vec3        `yaml:"scale,omitempty"`
	Rotate    *rotation   `yaml:"rotate,omitempty"`
	View      *camera     `yaml:"view,omitempty"`
	Project   *projection `yaml:"project,omitempty"`
}

// Result is an evaluated scene.
type Result struct {
	Matrix yama.Matrix4x4
	Digest uint64
	Points []yama.Vector3
	// Bounds holds the Finite transformed points. It stays inverted when
	// there are none.
	Bounds yama.Box3
	Finite int
}

// LoadScene decodes a scene. Unknown keys are rejected.
func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrBadScene)
		}
		return nil, fmt.Errorf("%w: %w", ErrBadScene, err)
	}
	return &s, nil
}

func (s Step) matrix() (yama.Matrix4x4, error) {
	set := 0
	for _, ok := range []bool{s.Translate != nil, s.Scale != nil, s.Rotate != nil, s.View != nil, s.Project != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return yama.Matrix4x4{}, fmt.Errorf("%w: a step sets exactly one transform, got %d", ErrBadScene, set)
	}

	switch {
	case s.Translate != nil:
		v, err := s.Translate.vector()
		if err != nil {
			return yama.Matrix4x4{}, fmt.Errorf("translate: %w", err)
		}
		return matrix.TranslationV4(v), nil
	case s.Scale != nil:
		if len(s.Scale) == 1 {
			return matrix.ScalingUniform4(s.Scale[0]), nil
		}
		v, err := s.Scale.vector()
		if err != nil {
			return yama.Matrix4x4{}, fmt.Errorf("scale: %w", err)
		}
		return matrix.ScalingV4(v), nil
	case s.Rotate != nil:
		q, err := s.Rotate.quaternion()
		if err != nil {
			return yama.Matrix4x4{}, err
		}
		return matrix.RotationQuaternion4(q), nil
	case s.View != nil:
		return s.View.matrix()
	default:
		return s.Project.matrix()
	}
}

// Compose multiplies the steps so that the first step applies first.
func (s *Scene) Compose() (yama.Matrix4x4, error) {
	m := matrix.Identity4[yama.Preferred]()
	for i, st := range s.Steps {
		sm, err := st.matrix()
		if err != nil {
			return m, fmt.Errorf("step %d: %w", i, err)
		}
		m = sm.Mul(m)
	}
	return m, nil
}

// Evaluate composes the scene and transforms its points. Points are split
// into contiguous chunks handled by at most Workers goroutines, or
// GOMAXPROCS when Workers is zero.
func (s *Scene) Evaluate(ctx context.Context) (*Result, error) {
	m, err := s.Compose()
	if err != nil {
		return nil, err
	}

	out := make([]yama.Vector3, len(s.Points))
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(s.Points) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(s.Points); lo += chunk {
		hi := min(lo+chunk, len(s.Points))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				p, err := s.Points[i].vector()
				if err != nil {
					return fmt.Errorf("%w: point %d: %w", ErrBadScene, i, err)
				}
				out[i] = m.TransformCoord(p)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bounds, finite := box.Inverted3[yama.Preferred](), 0
	for _, p := range out {
		if p.IsFinite() {
			bounds.AddPoint(p)
			finite++
		}
	}

	return &Result{
		Matrix: m,
		Digest: layout.Digest(&m),
		Points: out,
		Bounds: bounds,
		Finite: finite,
	}, nil
}
