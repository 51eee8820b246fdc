package raycast

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sphere struct {
	id     common.BodyID
	pos    mgl32.Vec3
	radius float32
}

func (s sphere) ID() common.BodyID { return s.id }
func (s sphere) Position() mgl32.Vec3 { return s.pos }
func (s sphere) Radius() float32 { return s.radius }

// fixedView returns the same ray for every viewport point.
type fixedView struct {
	ray common.Ray
	ok  bool
}

func (v fixedView) ScreenRay(_, _ float32) (common.Ray, bool) {
	return v.ray, v.ok
}

func TestRaycastNearestFirst(t *testing.T) {
	caster := NewSphereCaster(
		sphere{id: "far", pos: mgl32.Vec3{0, 0, -20}, radius: 1},
		sphere{id: "near", pos: mgl32.Vec3{0, 0, -5}, radius: 1},
		sphere{id: "aside", pos: mgl32.Vec3{10, 0, -5}, radius: 1},
	)
	view := fixedView{ray: common.Ray{Direction: mgl32.Vec3{0, 0, -1}}, ok: true}

	ids := caster.Raycast(view, 0, 0)
	assert.Equal(t, []common.BodyID{"near", "far"}, ids)

	picked := caster.Pick(view, 0, 0)
	require.NotNil(t, picked)
	assert.Equal(t, common.BodyID("near"), *picked)
}

func TestRaycastMiss(t *testing.T) {
	caster := NewSphereCaster(sphere{id: "earth", pos: mgl32.Vec3{0, 10, 0}, radius: 2}, nil)
	view := fixedView{ray: common.Ray{Direction: mgl32.Vec3{0, 0, -1}}, ok: true}

	assert.Empty(t, caster.Raycast(view, 0, 0))
	assert.Nil(t, caster.Pick(view, 0, 0))
}

func TestRaycastWithoutView(t *testing.T) {
	caster := NewSphereCaster(sphere{id: "earth", radius: 2})

	assert.Nil(t, caster.Raycast(nil, 0, 0))
	assert.Nil(t, caster.Raycast(fixedView{}, 0, 0))
	assert.Nil(t, NewSphereCaster().Raycast(fixedView{ok: true}, 0, 0))
}
