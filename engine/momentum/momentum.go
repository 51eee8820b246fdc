package momentum

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Momentum integrates drag input into a decaying angular velocity and applies it to an
// orientation once per frame. The angular velocity is kept in the owning body's local
// space, so the resulting rotation follows the body as it turns.
type Momentum interface {
	// AngularVelocity returns the current local-space angular velocity.
	//
	// Returns:
	//   - mgl32.Vec3: angular velocity, zero when at rest
	AngularVelocity() mgl32.Vec3

	// Speed returns the magnitude of the angular velocity.
	//
	// Returns:
	//   - float32: |angularVelocity|
	Speed() float32

	// AtRest reports whether the angular velocity has decayed to zero.
	//
	// Returns:
	//   - bool: true when no momentum remains
	AtRest() bool

	// Orientation returns the current orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion
	Orientation() mgl32.Quat

	// SetOrientation replaces the orientation directly. Non-finite input is ignored.
	//
	// Parameters:
	//   - q: the new orientation (normalized on store)
	SetOrientation(q mgl32.Quat)

	// OnDrag converts a 2D drag delta into angular velocity.
	// The rotation axis is the cross product of the drag direction (dx, dy, 0) with the
	// camera view direction, moved into local space with the inverse world rotation.
	// The magnitude follows a non-linear response pow(s, 1.5) * gain and accumulates into
	// the current velocity, so repeated flicks compound. Zero or non-finite deltas are ignored.
	//
	// Parameters:
	//   - dx, dy: drag delta in normalized viewport units
	//   - viewDir: camera view direction in world space
	//   - worldRotation: the body's current world rotation
	OnDrag(dx, dy float32, viewDir mgl32.Vec3, worldRotation mgl32.Quat)

	// Tick advances the rotation by deltaTime seconds and applies speed-dependent damping.
	// A non-positive or non-finite deltaTime skips the frame entirely.
	//
	// Parameters:
	//   - deltaTime: elapsed frame time in seconds
	//
	// Returns:
	//   - mgl32.Quat: the local-space rotation applied this frame (identity if none)
	Tick(deltaTime float32) mgl32.Quat

	// Damping returns the damping factor that Tick would apply at the given speed.
	//
	// Parameters:
	//   - speed: angular speed
	//
	// Returns:
	//   - float32: multiplicative damping in [0, maxDamping]
	Damping(speed float32) float32

	// Stop discards all angular velocity.
	Stop()
}

type momentum struct {
	angularVelocity mgl32.Vec3
	orientation     mgl32.Quat

	gain          float32 // drag response gain
	rotationSpeed float32 // radians per unit of |ω| per second
	epsilon       float32 // rest threshold

	baseDamping float32
	dampingGain float32
	maxBoost    float32
	maxDamping  float32
}

var _ Momentum = &momentum{}

// NewMomentum creates a Momentum at rest with identity orientation.
// Defaults: gain 150, rotation speed 15, rest threshold 0.001, damping
// 0.90 + min(|ω|·0.015, 0.05).
//
// Parameters:
//   - options: functional options to configure the integrator
//
// Returns:
//   - Momentum: the newly created integrator
func NewMomentum(options ...MomentumBuilderOption) Momentum {
	m := &momentum{
		orientation:   mgl32.QuatIdent(),
		gain:          150,
		rotationSpeed: 15,
		epsilon:       0.001,
		baseDamping:   0.90,
		dampingGain:   0.015,
		maxBoost:      0.05,
		maxDamping:    0.99,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *momentum) AngularVelocity() mgl32.Vec3 {
	return m.angularVelocity
}

func (m *momentum) Speed() float32 {
	return m.angularVelocity.Len()
}

func (m *momentum) AtRest() bool {
	return m.angularVelocity == mgl32.Vec3{}
}

func (m *momentum) Orientation() mgl32.Quat {
	return m.orientation
}

func (m *momentum) SetOrientation(q mgl32.Quat) {
	if !common.IsFinite(q.W) || !common.IsFiniteVec3(q.V) || q.Len() == 0 {
		return
	}
	m.orientation = q.Normalize()
}

func (m *momentum) OnDrag(dx, dy float32, viewDir mgl32.Vec3, worldRotation mgl32.Quat) {
	if !common.IsFinite(dx, dy) || !common.IsFiniteVec3(viewDir) {
		return
	}
	s := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if s == 0 || viewDir.Len() == 0 {
		return
	}

	axis := mgl32.Vec3{dx, dy, 0}.Cross(viewDir.Normalize())
	if axis.Len() < 1e-9 {
		// drag parallel to the view direction has no in-plane axis
		return
	}
	axis = axis.Normalize()

	if worldRotation.Len() > 0 {
		axis = worldRotation.Normalize().Inverse().Rotate(axis).Normalize()
	}

	power := float32(math.Pow(float64(s), 1.5)) * m.gain
	m.angularVelocity = m.angularVelocity.Add(axis.Mul(power))
}

func (m *momentum) Tick(deltaTime float32) mgl32.Quat {
	if deltaTime <= 0 || !common.IsFinite(deltaTime) {
		return mgl32.QuatIdent()
	}

	speed := m.angularVelocity.Len()
	if speed <= m.epsilon {
		m.angularVelocity = mgl32.Vec3{}
		return mgl32.QuatIdent()
	}

	angle := speed * deltaTime * m.rotationSpeed
	delta := mgl32.QuatRotate(angle, m.angularVelocity.Mul(1/speed))
	m.orientation = m.orientation.Mul(delta).Normalize()

	m.angularVelocity = m.angularVelocity.Mul(m.Damping(speed))
	if m.angularVelocity.Len() <= m.epsilon {
		m.angularVelocity = mgl32.Vec3{}
	}
	return delta
}

func (m *momentum) Damping(speed float32) float32 {
	boost := speed * m.dampingGain
	if boost > m.maxBoost {
		boost = m.maxBoost
	}
	return common.Clamp(m.baseDamping+boost, 0, m.maxDamping)
}

func (m *momentum) Stop() {
	m.angularVelocity = mgl32.Vec3{}
}

func axisAngle(x, y, z, angle float32) mgl32.Quat {
	return common.AxisAngle(mgl32.Vec3{x, y, z}, angle)
}
