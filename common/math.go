package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PolarMargin is the minimum distance kept between a polar angle and either pole.
// Orbit angles are clamped to (PolarMargin, π - PolarMargin) so the camera never flips.
const PolarMargin = 0.1

// Clamp restricts v to the closed range [lo, hi].
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// ClampPolar clamps a polar angle into (PolarMargin, π - PolarMargin).
func ClampPolar(phi float32) float32 {
	return Clamp(phi, PolarMargin, math.Pi-PolarMargin)
}

// IsFinite reports whether every value is neither NaN nor ±Inf.
//
// Parameters:
//   - vs: values to check
//
// Returns:
//   - bool: true if all values are finite
func IsFinite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// IsFiniteVec3 reports whether all components of v are finite.
func IsFiniteVec3(v mgl32.Vec3) bool {
	return IsFinite(v[0], v[1], v[2])
}

// SphericalToCartesian converts spherical coordinates to a Cartesian offset.
// Theta is the azimuth around +Y measured from +Z, phi is the polar angle from +Y.
//
//	x = r·sinφ·sinθ, y = r·cosφ, z = r·sinφ·cosθ
//
// Parameters:
//   - radius: distance from the origin
//   - theta: azimuth in radians
//   - phi: polar angle in radians
//
// Returns:
//   - mgl32.Vec3: the Cartesian offset
func SphericalToCartesian(radius, theta, phi float32) mgl32.Vec3 {
	sinPhi := float32(math.Sin(float64(phi)))
	cosPhi := float32(math.Cos(float64(phi)))
	sinTheta := float32(math.Sin(float64(theta)))
	cosTheta := float32(math.Cos(float64(theta)))

	return mgl32.Vec3{
		radius * sinPhi * sinTheta,
		radius * cosPhi,
		radius * sinPhi * cosTheta,
	}
}

// CartesianToSpherical is the inverse of SphericalToCartesian.
// A zero vector yields radius 0, theta 0 and phi π/2.
//
// Parameters:
//   - v: Cartesian offset
//
// Returns:
//   - radius: length of v
//   - theta: azimuth in radians, in (-π, π]
//   - phi: polar angle in radians, in [0, π]
func CartesianToSpherical(v mgl32.Vec3) (radius, theta, phi float32) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, math.Pi / 2
	}
	theta = float32(math.Atan2(float64(v[0]), float64(v[2])))
	phi = float32(math.Acos(float64(Clamp(v[1]/radius, -1, 1))))
	return radius, theta, phi
}

// Lerp3 linearly interpolates from a toward b by factor t.
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// AxisAngle builds a unit quaternion rotating angle radians about axis.
// A zero-length axis yields the identity rotation.
//
// Parameters:
//   - axis: rotation axis (need not be normalized)
//   - angle: rotation in radians
//
// Returns:
//   - mgl32.Quat: the rotation
func AxisAngle(axis mgl32.Vec3, angle float32) mgl32.Quat {
	if axis.Len() == 0 || !IsFinite(angle) {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(angle, axis.Normalize())
}

// RaySphere intersects a ray with a sphere and returns the distance along the ray
// to the nearest intersection in front of the origin.
//
// Parameters:
//   - ray: the world-space ray (direction must be normalized)
//   - center: sphere center
//   - radius: sphere radius
//
// Returns:
//   - float32: distance to the hit point
//   - bool: false if the ray misses or the sphere is entirely behind the origin
func RaySphere(ray Ray, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := ray.Origin.Sub(center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	t := -b - sq
	if t < 0 {
		// origin inside the sphere
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
