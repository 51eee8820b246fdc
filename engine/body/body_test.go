package body

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/momentum"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEarth() Body {
	return NewBody(
		WithID("earth"),
		WithRadius(2),
		WithShell(2.05, 0.045),
		WithSatellite(7, 0.5, 0.06),
	)
}

func TestClickWithoutDragRequestsFocus(t *testing.T) {
	b := newEarth()

	b.OnPointerDown()
	b.OnPointerUp()
	res := b.OnClick()

	assert.True(t, res.FocusRequested)
	assert.True(t, res.Consumed)
	assert.Equal(t, common.BodyID("earth"), res.Body)
}

func TestClickAfterDragDoesNotFocus(t *testing.T) {
	b := newEarth()

	b.OnPointerDown()
	req, ok := b.OnPointerMove(true, 0.05, 0)
	require.True(t, ok)
	assert.Equal(t, RotationRequest{Body: "earth", DX: 0.05, DY: 0}, req)
	b.OnPointerUp()

	res := b.OnClick()
	assert.False(t, res.FocusRequested)
	assert.True(t, res.Consumed, "a click on a body is always consumed")
	assert.False(t, b.HasDragged(), "click resets the drag flag")

	// repeated click without a new gesture now focuses
	assert.True(t, b.OnClick().FocusRequested)
}

func TestPointerDownResetsDrag(t *testing.T) {
	b := newEarth()
	b.OnPointerDown()
	b.OnPointerMove(true, 0.1, 0.1)
	require.True(t, b.HasDragged())

	b.OnPointerDown()
	assert.False(t, b.HasDragged())
	assert.True(t, b.Pressed())
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	b := newEarth()
	_, ok := b.OnPointerMove(false, 0.3, 0.3)
	assert.False(t, ok)
	assert.False(t, b.HasDragged())
}

func TestNonFiniteMoveIsDiscarded(t *testing.T) {
	b := newEarth()
	b.OnPointerDown()

	nan := float32(math.NaN())
	_, ok := b.OnPointerMove(true, nan, 0)
	assert.False(t, ok)
	_, ok = b.OnPointerMove(true, 0, float32(math.Inf(1)))
	assert.False(t, ok)
	assert.False(t, b.HasDragged())
}

func TestDragThreshold(t *testing.T) {
	b := NewBody(WithID("mars"), WithDragThreshold(0.01))
	b.OnPointerDown()

	_, ok := b.OnPointerMove(true, 0.005, 0)
	assert.False(t, ok, "jitter below the threshold is not a drag")
	assert.False(t, b.HasDragged())

	_, ok = b.OnPointerMove(true, 0.02, 0)
	assert.True(t, ok)
	assert.True(t, b.HasDragged())
}

func TestHighlightRequiresUnfocusedScene(t *testing.T) {
	b := newEarth()
	b.SetHovered(true)
	assert.True(t, b.Highlighted())

	b.SetSceneFocused(true)
	assert.False(t, b.Highlighted())
	assert.True(t, b.Hovered())

	b.SetSceneFocused(false)
	assert.True(t, b.Highlighted())
}

func TestShellFollowsBodyRotation(t *testing.T) {
	b := NewBody(WithID("earth"), WithShell(2.05, 0))
	b.OnPointerDown()
	req, ok := b.OnPointerMove(true, 0.2, 0.1)
	require.True(t, ok)
	b.Momentum().OnDrag(req.DX, req.DY, mgl32.Vec3{0, 0, -1}, mgl32.QuatIdent())

	for range 30 {
		b.Tick(1.0 / 60.0)
	}

	require.False(t, b.Orientation().ApproxEqual(mgl32.QuatIdent()))
	assert.True(t, b.Shell().Orientation().ApproxEqualThreshold(b.Orientation(), 1e-4),
		"without drift the shell orientation must equal the body orientation")
}

func TestShellStaysCoupledAfterDrift(t *testing.T) {
	b := NewBody(WithID("earth"), WithShell(2.05, math.Pi/2))
	b.Tick(1)
	require.InDelta(t, math.Pi/2, b.Shell().DriftAngle(), 1e-5)

	b.Momentum().OnDrag(0, 0.3, mgl32.Vec3{0, 0, -1}, mgl32.QuatIdent())
	for range 20 {
		b.Tick(1e-4)
	}

	bodyUp := b.Orientation().Rotate(common.WorldUp)
	shellUp := b.Shell().Orientation().Rotate(common.WorldUp)
	require.False(t, bodyUp.ApproxEqualThreshold(common.WorldUp, 1e-3), "the drag tilts the body")
	assert.True(t, shellUp.ApproxEqualThreshold(bodyUp, 1e-4),
		"body %v and shell %v must share their local +Y", bodyUp, shellUp)

	want := b.Orientation().Mul(mgl32.QuatRotate(b.Shell().DriftAngle(), common.WorldUp))
	assert.True(t, b.Shell().Orientation().ApproxEqualThreshold(want, 1e-4))
}

func TestShellDriftsRelativeToBody(t *testing.T) {
	b := NewBody(WithID("earth"), WithShell(2.05, 0.5))

	b.Tick(1)

	assert.True(t, b.Orientation().ApproxEqual(mgl32.QuatIdent()), "body at rest does not move")
	want := mgl32.QuatRotate(0.5, common.WorldUp)
	assert.True(t, b.Shell().Orientation().ApproxEqualThreshold(want, 1e-4))
}

func TestIdleSpinIsIndependentOfVelocity(t *testing.T) {
	b := NewBody(WithID("mars"), WithIdleSpin(0.25), WithShell(1.25, 0))

	b.Tick(2)

	assert.True(t, b.Momentum().AtRest())
	want := mgl32.QuatRotate(0.5, common.WorldUp)
	assert.True(t, b.Orientation().ApproxEqualThreshold(want, 1e-4))
	assert.True(t, b.Shell().Orientation().ApproxEqualThreshold(want, 1e-4), "shell receives the idle spin too")
}

func TestSatelliteOrbit(t *testing.T) {
	b := NewBody(WithID("earth"), WithPosition(1, 0, 0), WithSatellite(7, 0.5, float32(math.Pi/2)))
	s := b.Satellite()
	require.NotNil(t, s)
	assert.True(t, s.Position().ApproxEqual(mgl32.Vec3{1, 0, 7}))

	b.Tick(1)

	assert.InDelta(t, math.Pi/2, s.Angle(), 1e-5)
	assert.True(t, s.Position().ApproxEqualThreshold(mgl32.Vec3{8, 0, 0}, 1e-4))
	assert.InDelta(t, 7, s.Position().Sub(b.Position()).Len(), 1e-4)
}

func TestTickIgnoresInvalidDelta(t *testing.T) {
	b := NewBody(WithID("mars"), WithIdleSpin(1))
	b.Tick(0)
	b.Tick(-1)
	b.Tick(float32(math.NaN()))
	assert.True(t, b.Orientation().ApproxEqual(mgl32.QuatIdent()))
}

func TestWithMomentum(t *testing.T) {
	m := momentum.NewMomentum(momentum.WithGain(10))
	b := NewBody(WithMomentum(m))
	assert.Same(t, m, b.Momentum())
}

func TestDefaults(t *testing.T) {
	b := NewBody(WithRadius(-3))
	assert.Equal(t, float32(1), b.Radius())
	assert.Nil(t, b.Shell())
	assert.Nil(t, b.Satellite())
	assert.Zero(t, b.IdleSpin())

	b.SetPosition(mgl32.Vec3{float32(math.NaN()), 0, 0})
	assert.Equal(t, mgl32.Vec3{}, b.Position())
}
