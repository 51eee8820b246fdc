package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSphericalRoundTrip(t *testing.T) {
	cases := []struct {
		radius, theta, phi float32
	}{
		{10, 0, math.Pi / 4},
		{42.4, 1.2, 0.3},
		{3, -2.5, 2.9},
	}
	for _, c := range cases {
		v := SphericalToCartesian(c.radius, c.theta, c.phi)
		r, theta, phi := CartesianToSpherical(v)
		assert.InDelta(t, c.radius, r, 1e-4)
		assert.InDelta(t, c.theta, theta, 1e-4)
		assert.InDelta(t, c.phi, phi, 1e-4)
	}
}

func TestSphericalDefaultOverview(t *testing.T) {
	// the original overview camera sits at (0, 30, 30)
	v := SphericalToCartesian(float32(30*math.Sqrt2), 0, math.Pi/4)
	assert.InDelta(t, 0, v.X(), 1e-4)
	assert.InDelta(t, 30, v.Y(), 1e-3)
	assert.InDelta(t, 30, v.Z(), 1e-3)
}

func TestCartesianToSphericalZero(t *testing.T) {
	r, theta, phi := CartesianToSpherical(mgl32.Vec3{})
	assert.Equal(t, float32(0), r)
	assert.Equal(t, float32(0), theta)
	assert.InDelta(t, math.Pi/2, phi, 1e-6)
}

func TestClampPolar(t *testing.T) {
	assert.InDelta(t, PolarMargin, ClampPolar(-1), 1e-6)
	assert.InDelta(t, math.Pi-PolarMargin, ClampPolar(4), 1e-6)
	assert.InDelta(t, 1.0, ClampPolar(1), 1e-6)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0, 1, -3))
	assert.False(t, IsFinite(0, float32(math.NaN())))
	assert.False(t, IsFinite(float32(math.Inf(1))))
}

func TestAxisAngleZeroAxis(t *testing.T) {
	q := AxisAngle(mgl32.Vec3{}, 1)
	assert.True(t, q.ApproxEqual(mgl32.QuatIdent()))
}

func TestRaySphere(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}

	dist, hit := RaySphere(ray, mgl32.Vec3{}, 2)
	assert.True(t, hit)
	assert.InDelta(t, 8, dist, 1e-5)

	_, hit = RaySphere(ray, mgl32.Vec3{5, 0, 0}, 2)
	assert.False(t, hit)

	behind := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, 1}}
	_, hit = RaySphere(behind, mgl32.Vec3{}, 2)
	assert.False(t, hit)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, float32(2), Coalesce[float32](0, 2))
}
