package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Projectile moves a point under constant acceleration.
type Projectile struct {
	p *harmonica.Projectile
}

// Gravity returns standard gravity pointing down the Y axis.
func Gravity() math3d.Vector3[float64] {
	return fromVector(harmonica.Gravity)
}

// NewProjectile creates a projectile stepped at the given frame rate.
func NewProjectile(fps int, pos, vel, acc math3d.Vector3[float64]) *Projectile {
	return &Projectile{
		p: harmonica.NewProjectile(
			harmonica.FPS(fps),
			harmonica.Point{X: pos.X, Y: pos.Y, Z: pos.Z},
			toVector(vel),
			toVector(acc),
		),
	}
}

// Update advances one frame and returns the new position.
func (p *Projectile) Update() math3d.Vector3[float64] {
	pt := p.p.Update()
	return math3d.V3(pt.X, pt.Y, pt.Z)
}

// Position returns the current position.
func (p *Projectile) Position() math3d.Vector3[float64] {
	pt := p.p.Position()
	return math3d.V3(pt.X, pt.Y, pt.Z)
}

// Velocity returns the current velocity.
func (p *Projectile) Velocity() math3d.Vector3[float64] {
	return fromVector(p.p.Velocity())
}

// Acceleration returns the constant acceleration.
func (p *Projectile) Acceleration() math3d.Vector3[float64] {
	return fromVector(p.p.Acceleration())
}

func toVector(v math3d.Vector3[float64]) harmonica.Vector {
	return harmonica.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVector(v harmonica.Vector) math3d.Vector3[float64] {
	return math3d.V3(v.X, v.Y, v.Z)
}
