package body

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/momentum"
	"github.com/go-gl/mathgl/mgl32"
)

// BodyBuilderOption is a functional option for configuring a Body during construction.
type BodyBuilderOption func(*body)

// WithID sets the identifier of the Body.
//
// Parameters:
//   - id: unique identifier within the scene
//
// Returns:
//   - BodyBuilderOption: functional option to set the ID
func WithID(id common.BodyID) BodyBuilderOption {
	return func(b *body) {
		b.id = id
	}
}

// WithPosition sets the world position of the Body.
//
// Parameters:
//   - x, y, z: world coordinates
//
// Returns:
//   - BodyBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) BodyBuilderOption {
	return func(b *body) {
		b.position = mgl32.Vec3{x, y, z}
	}
}

// WithRadius sets the hit-sphere radius of the Body.
//
// Parameters:
//   - radius: radius in world units (ignored if <= 0)
//
// Returns:
//   - BodyBuilderOption: functional option to set the radius
func WithRadius(radius float32) BodyBuilderOption {
	return func(b *body) {
		if radius > 0 {
			b.radius = radius
		}
	}
}

// WithMomentum supplies a preconfigured rotation integrator.
//
// Parameters:
//   - m: the integrator owning orientation and angular velocity
//
// Returns:
//   - BodyBuilderOption: functional option to set the momentum engine
func WithMomentum(m momentum.Momentum) BodyBuilderOption {
	return func(b *body) {
		b.mom = m
	}
}

// WithIdleSpin sets the automatic spin about local +Y.
//
// Parameters:
//   - rate: radians per second
//
// Returns:
//   - BodyBuilderOption: functional option to set the idle spin
func WithIdleSpin(rate float32) BodyBuilderOption {
	return func(b *body) {
		b.idleSpin = rate
	}
}

// WithShell attaches a dependent shell (cloud layer).
//
// Parameters:
//   - radius: shell radius
//   - driftRate: cosmetic drift about local +Y in radians per second
//
// Returns:
//   - BodyBuilderOption: functional option to attach the shell
func WithShell(radius, driftRate float32) BodyBuilderOption {
	return func(b *body) {
		b.shell = &Shell{
			orientation: mgl32.QuatIdent(),
			radius:      radius,
			driftRate:   driftRate,
		}
	}
}

// WithSatellite attaches an orbiting satellite (moon).
//
// Parameters:
//   - distance: orbital distance from the body center
//   - radius: satellite radius
//   - speed: orbital speed in radians per second
//
// Returns:
//   - BodyBuilderOption: functional option to attach the satellite
func WithSatellite(distance, radius, speed float32) BodyBuilderOption {
	return func(b *body) {
		b.satellite = &Satellite{
			distance: distance,
			radius:   radius,
			speed:    speed,
		}
	}
}

// WithDragThreshold sets the minimum pointer movement, in normalized viewport units,
// for a pressed move to count as a drag.
//
// Parameters:
//   - threshold: minimum movement (negative values are treated as 0)
//
// Returns:
//   - BodyBuilderOption: functional option to set the threshold
func WithDragThreshold(threshold float32) BodyBuilderOption {
	return func(b *body) {
		if threshold < 0 {
			threshold = 0
		}
		b.dragThreshold = threshold
	}
}
