// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/yama"
	"github.com/katalvlaran/yama/matrix"
	"github.com/katalvlaran/yama/quaternion"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// vec3 is a three-component list as written in flags and scene files.
type vec3 []yama.Preferred

// vector converts l, reporting ErrBadVector on a wrong length.
func (l vec3) vector() (yama.Vector3, error) {
	if len(l) != 3 {
		return yama.Vector3{}, fmt.Errorf("want 3 components, got %d: %w", len(l), ErrBadVector)
	}
	return yama.V3(l[0], l[1], l[2]), nil
}

// parseList splits "1,2,3" into numbers. Blanks around commas are allowed.
func parseList(s string) (vec3, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make(vec3, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w: %w", s, ErrBadVector, err)
		}
		out = append(out, yama.Preferred(f))
	}
	return out, nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (yama.Vector3, error) {
	l, err := parseList(s)
	if err != nil {
		return yama.Vector3{}, err
	}
	v, err := l.vector()
	if err != nil {
		return yama.Vector3{}, fmt.Errorf("%q: %w", s, err)
	}
	return v, nil
}

// nonZero rejects the zero vector where a direction is required.
func nonZero(name string, v yama.Vector3) error {
	if v == (yama.Vector3{}) {
		return fmt.Errorf("%s must not be zero: %w", name, ErrBadVector)
	}
	return nil
}

// handedness resolves "lh" or "rh". The empty string means "lh".
func handedness(s string) (rh bool, err error) {
	switch strings.ToLower(s) {
	case "", "lh", "left":
		return false, nil
	case "rh", "right":
		return true, nil
	default:
		return false, fmt.Errorf("hand %q: %w", s, ErrUnknownProjection)
	}
}

type (
	sizedFn   func(width, height, near, far yama.Preferred) yama.Matrix4x4
	frustumFn func(left, right, bottom, top, near, far yama.Preferred) yama.Matrix4x4
)

// Projection builders indexed by [rh][cube].
var (
	orthoSized = [2][2]sizedFn{
		{matrix.OrthoLH[yama.Preferred], matrix.OrthoLHCube[yama.Preferred]},
		{matrix.OrthoRH[yama.Preferred], matrix.OrthoRHCube[yama.Preferred]},
	}
	orthoFrustum = [2][2]frustumFn{
		{matrix.OrthoLHFrustum[yama.Preferred], matrix.OrthoLHCubeFrustum[yama.Preferred]},
		{matrix.OrthoRHFrustum[yama.Preferred], matrix.OrthoRHCubeFrustum[yama.Preferred]},
	}
	perspectiveSized = [2][2]sizedFn{
		{matrix.PerspectiveLH[yama.Preferred], matrix.PerspectiveLHCube[yama.Preferred]},
		{matrix.PerspectiveRH[yama.Preferred], matrix.PerspectiveRHCube[yama.Preferred]},
	}
	perspectiveFrustum = [2][2]frustumFn{
		{matrix.PerspectiveLHFrustum[yama.Preferred], matrix.PerspectiveLHCubeFrustum[yama.Preferred]},
		{matrix.PerspectiveRHFrustum[yama.Preferred], matrix.PerspectiveRHCubeFrustum[yama.Preferred]},
	}
	perspectiveFov = [2][2]sizedFn{
		{matrix.PerspectiveFovLH[yama.Preferred], matrix.PerspectiveFovLHCube[yama.Preferred]},
		{matrix.PerspectiveFovRH[yama.Preferred], matrix.PerspectiveFovRHCube[yama.Preferred]},
	}
)

// projection describes one projection matrix. Kind is "ortho",
// "perspective" or "fov". Frustum, when set, holds left, right, bottom and
// top and replaces Width and Height. Fovy is in degrees.
type projection struct {
	Kind    string           `yaml:"kind"`
	Hand    string           `yaml:"hand"`
	Cube    bool             `yaml:"cube"`
	Width   yama.Preferred   `yaml:"width"`
	Height  yama.Preferred   `yaml:"height"`
	Fovy    yama.Preferred   `yaml:"fovy"`
	Aspect  yama.Preferred   `yaml:"aspect"`
	Near    yama.Preferred   `yaml:"near"`
	Far     yama.Preferred   `yaml:"far"`
	Frustum []yama.Preferred `yaml:"frustum,omitempty"`
}

func (p projection) matrix() (m yama.Matrix4x4, err error) {
	rh, err := handedness(p.Hand)
	if err != nil {
		return m, err
	}
	h, c := b2i(rh), b2i(p.Cube)

	var sized [2][2]sizedFn
	var frustum [2][2]frustumFn
	switch strings.ToLower(p.Kind) {
	case "ortho", "orthographic":
		sized, frustum = orthoSized, orthoFrustum
	case "perspective":
		sized, frustum = perspectiveSized, perspectiveFrustum
	case "fov":
		if len(p.Frustum) != 0 {
			return m, fmt.Errorf("fov projection takes no frustum: %w", ErrUnknownProjection)
		}
		err = guard("project", func() {
			m = perspectiveFov[h][c](scalar.DegToRad(p.Fovy), p.Aspect, p.Near, p.Far)
		})
		return m, err
	default:
		return m, fmt.Errorf("kind %q: %w", p.Kind, ErrUnknownProjection)
	}

	switch len(p.Frustum) {
	case 0:
		err = guard("project", func() { m = sized[h][c](p.Width, p.Height, p.Near, p.Far) })
	case 4:
		f := p.Frustum
		err = guard("project", func() { m = frustum[h][c](f[0], f[1], f[2], f[3], p.Near, p.Far) })
	default:
		err = fmt.Errorf("frustum wants left,right,bottom,top, got %d values: %w", len(p.Frustum), ErrBadVector)
	}
	return m, err
}

// camera describes a view matrix. Exactly one of At and Dir is set; Up
// defaults to +Y.
type camera struct {
	Hand string `yaml:"hand"`
	Eye  vec3   `yaml:"eye"`
	At   vec3   `yaml:"at,omitempty"`
	Dir  vec3   `yaml:"dir,omitempty"`
	Up   vec3   `yaml:"up,omitempty"`
}

func (c camera) matrix() (m yama.Matrix4x4, err error) {
	rh, err := handedness(c.Hand)
	if err != nil {
		return m, err
	}
	eye := yama.Vector3{}
	if c.Eye != nil {
		if eye, err = c.Eye.vector(); err != nil {
			return m, fmt.Errorf("eye: %w", err)
		}
	}
	up := vector.UnitY3[yama.Preferred]()
	if c.Up != nil {
		if up, err = c.Up.vector(); err != nil {
			return m, fmt.Errorf("up: %w", err)
		}
	}
	if err = nonZero("up", up); err != nil {
		return m, err
	}

	switch {
	case c.At != nil && c.Dir != nil:
		return m, fmt.Errorf("camera takes at or dir, not both: %w", ErrBadVector)
	case c.At != nil:
		at, err := c.At.vector()
		if err != nil {
			return m, fmt.Errorf("at: %w", err)
		}
		if at == eye {
			return m, fmt.Errorf("at equals eye: %w", ErrBadVector)
		}
		look := matrix.LookAtLH[yama.Preferred]
		if rh {
			look = matrix.LookAtRH[yama.Preferred]
		}
		err = guard("view", func() { m = look(eye, at, up) })
		return m, err
	case c.Dir != nil:
		dir, err := c.Dir.vector()
		if err != nil {
			return m, fmt.Errorf("dir: %w", err)
		}
		if err = nonZero("dir", dir); err != nil {
			return m, err
		}
		look := matrix.LookTowardsLH[yama.Preferred]
		if rh {
			look = matrix.LookTowardsRH[yama.Preferred]
		}
		err = guard("view", func() { m = look(eye, dir, up) })
		return m, err
	default:
		return m, fmt.Errorf("camera needs at or dir: %w", ErrBadVector)
	}
}

// rotation is an axis and an angle in degrees.
type rotation struct {
	Axis  vec3           `yaml:"axis"`
	Angle yama.Preferred `yaml:"angle"`
}

func (r rotation) quaternion() (q yama.Quaternion, err error) {
	axis, err := r.Axis.vector()
	if err != nil {
		return q, fmt.Errorf("axis: %w", err)
	}
	if err = nonZero("axis", axis); err != nil {
		return q, err
	}
	err = guard("rotate", func() {
		q = quaternion.RotationAxis(axis, scalar.DegToRad(r.Angle))
	})
	return q, err
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
