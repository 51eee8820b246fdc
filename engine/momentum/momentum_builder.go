package momentum

// MomentumBuilderOption is a functional option for configuring a Momentum.
type MomentumBuilderOption func(*momentum)

// WithGain sets the drag response gain k in pow(s, 1.5) * k.
//
// Parameters:
//   - gain: multiplier applied to the non-linear drag speed
//
// Returns:
//   - MomentumBuilderOption: functional option to set the gain
func WithGain(gain float32) MomentumBuilderOption {
	return func(m *momentum) {
		m.gain = gain
	}
}

// WithRotationSpeed sets how many radians per second one unit of angular speed produces.
//
// Parameters:
//   - speed: rotation speed constant
//
// Returns:
//   - MomentumBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) MomentumBuilderOption {
	return func(m *momentum) {
		m.rotationSpeed = speed
	}
}

// WithRestThreshold sets the speed below which the angular velocity snaps to zero.
//
// Parameters:
//   - epsilon: rest threshold (must be > 0)
//
// Returns:
//   - MomentumBuilderOption: functional option to set the threshold
func WithRestThreshold(epsilon float32) MomentumBuilderOption {
	return func(m *momentum) {
		if epsilon > 0 {
			m.epsilon = epsilon
		}
	}
}

// WithDamping configures speed-dependent damping: base + min(speed*gain, maxBoost),
// capped at maxDamping. maxDamping is forced below 1 so momentum always decays.
//
// Parameters:
//   - base: damping applied at rest speed
//   - gain: extra damping per unit of speed
//   - maxBoost: cap on the speed-dependent term
//   - maxDamping: absolute cap on the factor, < 1
//
// Returns:
//   - MomentumBuilderOption: functional option to set the damping curve
func WithDamping(base, gain, maxBoost, maxDamping float32) MomentumBuilderOption {
	return func(m *momentum) {
		if maxDamping >= 1 || maxDamping <= 0 {
			maxDamping = 0.99
		}
		m.baseDamping = base
		m.dampingGain = gain
		m.maxBoost = maxBoost
		m.maxDamping = maxDamping
	}
}

// WithOrientation sets the initial orientation.
//
// Parameters:
//   - x, y, z: axis of the initial rotation
//   - angle: rotation about the axis in radians
//
// Returns:
//   - MomentumBuilderOption: functional option to set the orientation
func WithOrientation(x, y, z, angle float32) MomentumBuilderOption {
	return func(m *momentum) {
		m.SetOrientation(axisAngle(x, y, z, angle))
	}
}
