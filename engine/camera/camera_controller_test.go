package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60.0)

func TestDefaultOverview(t *testing.T) {
	cc := NewCameraController()

	assert.True(t, cc.Position().ApproxEqualThreshold(mgl32.Vec3{0, 30, 30}, 1e-3))
	assert.True(t, cc.TargetPosition().ApproxEqualThreshold(mgl32.Vec3{0, 30, 30}, 1e-3))
	assert.Equal(t, mgl32.Vec3{}, cc.LookAt())
	assert.InDelta(t, math.Pi/4, cc.Angles().Phi, 1e-6)
}

func TestOrbitClampsPhi(t *testing.T) {
	cc := NewCameraController()

	cc.Orbit(0, 100)
	assert.InDelta(t, math.Pi-0.1, cc.Angles().Phi, 1e-6)
	cc.Orbit(0, -100)
	assert.InDelta(t, 0.1, cc.Angles().Phi, 1e-6)

	cc.SetAngles(OrbitAngles{Theta: 1, Phi: -3})
	assert.InDelta(t, 0.1, cc.Angles().Phi, 1e-6)
	assert.InDelta(t, 1, cc.Angles().Theta, 1e-6)

	cc.Orbit(float32(math.NaN()), 0)
	assert.InDelta(t, 1, cc.Angles().Theta, 1e-6)
}

func TestKeyboardOrbit(t *testing.T) {
	cc := NewCameraController(WithOrbitSpeed(0.2))
	start := cc.Angles()

	cc.OrbitRight()
	cc.OrbitDown()
	assert.InDelta(t, start.Theta+0.2, cc.Angles().Theta, 1e-6)
	assert.InDelta(t, start.Phi+0.2, cc.Angles().Phi, 1e-6)

	cc.OrbitLeft()
	cc.OrbitUp()
	assert.InDelta(t, start.Theta, cc.Angles().Theta, 1e-6)
	assert.InDelta(t, start.Phi, cc.Angles().Phi, 1e-6)
}

func TestUpdateConvergesWithoutOvershoot(t *testing.T) {
	smoothers := map[string]Smoother{
		"lerp":   NewLerpSmoother(DefaultLerpFactor),
		"spring": NewSpringSmoother(6, 1),
	}

	for name, s := range smoothers {
		t.Run(name, func(t *testing.T) {
			cc := NewCameraController(WithSmoother(s))
			body := mgl32.Vec3{20, 0, 0}
			target := body.Add(mgl32.Vec3{0, 10 * float32(math.Sin(math.Pi/4)), 10 * float32(math.Cos(math.Pi/4))})

			prev := cc.Position().Sub(target).Len()
			for range 600 {
				cc.Update(frame, &body)
				d := cc.Position().Sub(target).Len()
				require.LessOrEqual(t, d, prev+1e-4, "distance to target must never grow")
				prev = d
			}

			assert.Less(t, prev, float32(0.01))
			assert.Equal(t, body, cc.LookAt())
			assert.True(t, cc.TargetPosition().ApproxEqualThreshold(target, 1e-3))
		})
	}
}

func TestUpdateSkipsInvalidDelta(t *testing.T) {
	cc := NewCameraController()
	body := mgl32.Vec3{20, 0, 0}
	start := cc.Position()

	cc.Update(0, &body)
	cc.Update(-1, &body)
	cc.Update(float32(math.Inf(1)), &body)

	assert.Equal(t, start, cc.Position())
	assert.Equal(t, body, cc.LookAt(), "target and look-at still follow the focus")
}

func TestUpdateFallsBackToOverview(t *testing.T) {
	cc := NewCameraController()
	bad := mgl32.Vec3{float32(math.NaN()), 0, 0}

	cc.Update(frame, &bad)
	assert.Equal(t, mgl32.Vec3{}, cc.LookAt())
	assert.True(t, cc.TargetPosition().ApproxEqualThreshold(mgl32.Vec3{0, 30, 30}, 1e-3))
}

func TestLerpMatchesFixedFactorAt60Hz(t *testing.T) {
	s := NewLerpSmoother(0.1)
	got := s.Step(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, frame)
	assert.InDelta(t, 1, got.X(), 1e-4)
}

func TestLerpFactorValidation(t *testing.T) {
	assert.Equal(t, float32(DefaultLerpFactor), NewLerpSmoother(0).Factor())
	assert.Equal(t, float32(DefaultLerpFactor), NewLerpSmoother(1.5).Factor())
	assert.Equal(t, float32(0.3), NewLerpSmoother(0.3).Factor())
}

func TestReprojectKeepsViewingAngle(t *testing.T) {
	cc := NewCameraController(WithFocusedRadius(10))
	body := mgl32.Vec3{20, 0, 0}
	live := cc.Position()

	cc.Reproject(body)

	a := cc.Angles()
	dir := live.Sub(body).Normalize()
	want := mgl32.Vec3{
		float32(math.Sin(float64(a.Phi)) * math.Sin(float64(a.Theta))),
		float32(math.Cos(float64(a.Phi))),
		float32(math.Sin(float64(a.Phi)) * math.Cos(float64(a.Theta))),
	}
	assert.True(t, want.ApproxEqualThreshold(dir, 1e-4), "new target lies on the line from the body to the live camera")

	// the first focused update moves toward the body along that line, not across it
	cc.Update(frame, &body)
	assert.True(t, cc.TargetPosition().ApproxEqualThreshold(body.Add(dir.Mul(10)), 1e-3))
}

func TestReprojectClampsAtPole(t *testing.T) {
	cc := NewCameraController()
	cc.SetPosition(mgl32.Vec3{0, 50, 0})

	cc.Reproject(mgl32.Vec3{})
	assert.InDelta(t, 0.1, cc.Angles().Phi, 1e-6)

	before := cc.Angles()
	cc.Reproject(mgl32.Vec3{0, 50, 0})
	assert.Equal(t, before, cc.Angles(), "degenerate offset keeps the previous angles")
}

func TestZoomClampsRadius(t *testing.T) {
	cc := NewCameraController(WithRadiusBounds(10, 60), WithZoomSpeed(1))
	cc.Zoom(1000)
	assert.Equal(t, float32(10), cc.Radius())
	cc.Zoom(-1000)
	assert.Equal(t, float32(60), cc.Radius())

	cc.SetRadius(30)
	assert.Equal(t, float32(30), cc.Radius())
	assert.Equal(t, float32(10), cc.MinRadius())
	assert.Equal(t, float32(60), cc.MaxRadius())
}

func TestViewDirection(t *testing.T) {
	cc := NewCameraController()
	cc.Update(frame, nil)
	want := mgl32.Vec3{0, -1, -1}.Normalize()
	assert.True(t, cc.ViewDirection().ApproxEqualThreshold(want, 1e-4))
}
