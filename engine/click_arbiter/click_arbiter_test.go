package click_arbiter

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/stretchr/testify/assert"
)

type stubView struct{}

func (stubView) ScreenRay(x, y float32) (common.Ray, bool) {
	return common.Ray{}, true
}

type stubCaster struct {
	hits  []common.BodyID
	calls int
}

func (s *stubCaster) Raycast(_ CameraView, _, _ float32) []common.BodyID {
	s.calls++
	return s.hits
}

func TestArbitrate(t *testing.T) {
	tests := []struct {
		name    string
		focused bool
		click   Click
		flags   Flags
		hits    []common.BodyID
		unfocus bool
		casts   int
	}{
		{name: "outside click while focused", focused: true, unfocus: true, casts: 1},
		{name: "click on a body while focused", focused: true, hits: []common.BodyID{"earth"}, casts: 1},
		{name: "unfocused", focused: false},
		{name: "consumed", focused: true, click: Click{Consumed: true}},
		{name: "after scene drag", focused: true, flags: Flags{SceneDragged: true}},
		{name: "after body drag", focused: true, flags: Flags{BodyDragged: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caster := &stubCaster{hits: tt.hits}
			a := NewArbiter(WithRayCaster(caster), WithView(stubView{}))

			d := a.Arbitrate(tt.click, tt.focused, tt.flags)

			assert.Equal(t, tt.unfocus, d.Unfocus)
			assert.True(t, d.ClearDragFlags, "drag flags are always cleared")
			assert.Equal(t, tt.casts, caster.calls)
		})
	}
}

func TestNilRayCasterCountsAsMiss(t *testing.T) {
	a := NewArbiter()
	d := a.Arbitrate(Click{}, true, Flags{})
	assert.True(t, d.Unfocus)

	a.SetRayCaster(&stubCaster{hits: []common.BodyID{"mars"}})
	d = a.Arbitrate(Click{}, true, Flags{})
	assert.True(t, d.Unfocus, "no camera still means no intersection")

	a.SetView(stubView{})
	d = a.Arbitrate(Click{}, true, Flags{})
	assert.False(t, d.Unfocus)
}

func TestArbitrateIsIdempotent(t *testing.T) {
	a := NewArbiter(WithRayCaster(&stubCaster{}), WithView(stubView{}))
	first := a.Arbitrate(Click{X: 0.5, Y: 0.5}, true, Flags{})
	second := a.Arbitrate(Click{X: 0.5, Y: 0.5}, true, Flags{})
	assert.Equal(t, first, second)
}
