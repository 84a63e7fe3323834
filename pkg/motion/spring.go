// Package motion animates math3d values over fixed time steps using
// harmonica's damped springs and projectile integrator.
package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Spring3 eases a Vector3 toward a target, one damped spring per axis.
type Spring3 struct {
	Position math3d.Vector3[float64]
	Velocity math3d.Vector3[float64]
	spring   harmonica.Spring
}

// NewSpring3 creates a spring at rest at the origin.
// Frequency sets the speed; damping 1.0 is critically damped (no overshoot).
func NewSpring3(fps int, frequency, damping float64) *Spring3 {
	return &Spring3{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame toward target and returns the new position.
func (s *Spring3) Update(target math3d.Vector3[float64]) math3d.Vector3[float64] {
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, target.X)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, target.Y)
	s.Position.Z, s.Velocity.Z = s.spring.Update(s.Position.Z, s.Velocity.Z, target.Z)
	return s.Position
}

// Spring2 eases a Vector2 toward a target.
type Spring2 struct {
	Position math3d.Vector2[float64]
	Velocity math3d.Vector2[float64]
	spring   harmonica.Spring
}

// NewSpring2 creates a spring at rest at the origin.
func NewSpring2(fps int, frequency, damping float64) *Spring2 {
	return &Spring2{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame toward target and returns the new position.
func (s *Spring2) Update(target math3d.Vector2[float64]) math3d.Vector2[float64] {
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, target.X)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, target.Y)
	return s.Position
}
