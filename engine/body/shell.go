package body

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Shell is a layer rigidly coupled to its body's rotation, such as a cloud layer.
// Its orientation is always the body orientation followed by the accumulated drift about
// the body's local +Y axis, so drags turn body and shell about the same world axis.
type Shell struct {
	orientation mgl32.Quat
	radius      float32
	driftRate   float32
	driftAngle  float32
}

// Orientation returns the shell's current orientation.
func (s *Shell) Orientation() mgl32.Quat {
	return s.orientation
}

// Radius returns the shell radius.
func (s *Shell) Radius() float32 {
	return s.radius
}

// DriftRate returns the cosmetic drift in radians per second.
func (s *Shell) DriftRate() float32 {
	return s.driftRate
}

// DriftAngle returns the accumulated drift in radians, in [0, 2π).
func (s *Shell) DriftAngle() float32 {
	return s.driftAngle
}

func (s *Shell) advance(body mgl32.Quat, deltaTime float32) {
	if s.driftRate != 0 {
		s.driftAngle = float32(math.Mod(float64(s.driftAngle+s.driftRate*deltaTime), 2*math.Pi))
		if s.driftAngle < 0 {
			s.driftAngle += 2 * math.Pi
		}
	}
	s.sync(body)
}

// sync rederives the orientation from the body's.
func (s *Shell) sync(body mgl32.Quat) {
	s.orientation = body.Mul(mgl32.QuatRotate(s.driftAngle, common.WorldUp)).Normalize()
}

// Satellite is a non-interactive companion, such as a moon, on a circular orbit in the
// XZ plane around its body.
type Satellite struct {
	distance float32
	radius   float32
	speed    float32 // radians per second
	angle    float32
	position mgl32.Vec3
}

// Position returns the satellite's world position as of the last tick.
func (s *Satellite) Position() mgl32.Vec3 {
	return s.position
}

// Angle returns the current orbital angle in radians.
func (s *Satellite) Angle() float32 {
	return s.angle
}

// Radius returns the satellite's own radius.
func (s *Satellite) Radius() float32 {
	return s.radius
}

// Distance returns the orbital distance from the body center.
func (s *Satellite) Distance() float32 {
	return s.distance
}

func (s *Satellite) advance(center mgl32.Vec3, deltaTime float32) {
	s.angle = float32(math.Mod(float64(s.angle+s.speed*deltaTime), 2*math.Pi))
	s.place(center)
}

func (s *Satellite) place(center mgl32.Vec3) {
	sin, cos := math.Sincos(float64(s.angle))
	s.position = center.Add(mgl32.Vec3{float32(sin) * s.distance, 0, float32(cos) * s.distance})
}
