package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Spin integrates an angular velocity (radians per second) into an
// orientation quaternion. Velocity eases back to rest on its own.
type Spin struct {
	Orientation math3d.Quaternion[float64]
	Velocity    math3d.Vector3[float64]

	dt        float64
	fps       int
	velSpring harmonica.Spring
	velAccel  math3d.Vector3[float64] // spring velocity of Velocity itself
}

// NewSpin creates a spin at rest in the identity orientation, stepped at
// the given frame rate.
func NewSpin(fps int) *Spin {
	s := &Spin{fps: fps}
	s.Reset()
	return s
}

// ApplyImpulse adds v to the angular velocity.
func (s *Spin) ApplyImpulse(v math3d.Vector3[float64]) {
	s.Velocity.AddAssign(v)
}

// Update advances one frame and returns the new orientation.
func (s *Spin) Update() math3d.Quaternion[float64] {
	omega := math3d.Q(s.Velocity.X, s.Velocity.Y, s.Velocity.Z, 0)
	dq := omega.Mul(s.Orientation).Scale(s.dt / 2)
	s.Orientation = s.Orientation.Add(dq).Normalized()

	s.Velocity.X, s.velAccel.X = s.velSpring.Update(s.Velocity.X, s.velAccel.X, 0)
	s.Velocity.Y, s.velAccel.Y = s.velSpring.Update(s.Velocity.Y, s.velAccel.Y, 0)
	s.Velocity.Z, s.velAccel.Z = s.velSpring.Update(s.Velocity.Z, s.velAccel.Z, 0)
	return s.Orientation
}

// Reset returns to the identity orientation at rest.
func (s *Spin) Reset() {
	s.Orientation = math3d.Identity[float64]()
	s.Velocity = math3d.Zero3[float64]()
	s.velAccel = math3d.Zero3[float64]()
	s.dt = harmonica.FPS(s.fps)
	// Frequency 4.0 with damping 1.0 settles in about a second without overshoot.
	s.velSpring = harmonica.NewSpring(s.dt, 4.0, 1.0)
}
