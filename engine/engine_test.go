package engine

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost runs a fixed number of loop iterations, dispatching queued input before each
// update like a real window does.
type fakeHost struct {
	frames   int
	input    []func()
	update   func()
	resize   func(width, height int)
	closed   bool
	iterated int
}

func (h *fakeHost) SetUpdateCallback(callback func())                  { h.update = callback }
func (h *fakeHost) SetResizeCallback(callback func(width, height int)) { h.resize = callback }
func (h *fakeHost) IsRunning() bool                                    { return !h.closed && h.iterated < h.frames }
func (h *fakeHost) Close() error                                       { h.closed = true; return nil }

func (h *fakeHost) ProcessMessages() {
	for h.IsRunning() {
		if h.iterated < len(h.input) && h.input[h.iterated] != nil {
			h.input[h.iterated]()
		}
		h.iterated++
		if h.update != nil {
			h.update()
		}
	}
}

func newOrrery() scene.Scene {
	return scene.NewScene("orrery", scene.WithBodies(
		body.NewBody(body.WithID("earth"), body.WithRadius(2)),
		body.NewBody(body.WithID("mars"), body.WithPosition(20, 0, 0), body.WithRadius(1.2)),
	))
}

func TestStepTicksActiveScenesInOrder(t *testing.T) {
	var order []string
	e := NewEngine()
	e.SetTickCallback(func(dt float32) { order = append(order, "tick") })

	a, b := newOrrery(), newOrrery()
	b.SetActive(false)
	e.AddScene(1, a)
	e.AddScene(0, b)
	e.AddScene(2, nil)

	a.Wheel(-1, common.BodyID("earth").Ref())
	b.Wheel(-1, common.BodyID("earth").Ref())
	e.Step(1.0 / 60.0)

	assert.Equal(t, []string{"tick"}, order)
	assert.True(t, a.Focus().IsFocused())
	assert.False(t, b.Focus().IsFocused(), "inactive scenes are not ticked")
	assert.Len(t, e.Scenes(), 2)
}

func TestStepClampsDeltaTime(t *testing.T) {
	var got []float32
	e := NewEngine(WithMaxDeltaTime(0.05))
	e.SetTickCallback(func(dt float32) { got = append(got, dt) })

	e.Step(2)
	e.Step(-1)
	e.Step(0.01)

	assert.Equal(t, []float32{0.05, 0, 0.01}, got)
}

func TestRunDispatchesInputBeforeTick(t *testing.T) {
	s := newOrrery()
	host := &fakeHost{frames: 3}
	host.input = []func(){
		func() { s.Wheel(-1, common.BodyID("mars").Ref()) },
	}
	e := NewEngine(WithHost(host), WithScene(0, s))

	var focusedAtTick []bool
	e.SetTickCallback(func(float32) { focusedAtTick = append(focusedAtTick, s.Focus().IsFocused()) })
	e.Run()

	require.Len(t, focusedAtTick, 3)
	assert.False(t, focusedAtTick[0], "tick callback runs before scenes reduce their intents")
	assert.True(t, focusedAtTick[1])
	assert.False(t, s.Focus().IsFocused(), "Run closes every scene on exit")
}

func TestQuitClosesHost(t *testing.T) {
	host := &fakeHost{frames: 100}
	e := NewEngine(WithHost(host))
	e.SetTickCallback(func(float32) { e.Quit() })

	e.Run()

	assert.True(t, host.closed)
	assert.Less(t, host.iterated, 100)
}

func TestResizeUpdatesAspect(t *testing.T) {
	host := &fakeHost{}
	s := newOrrery()
	e := NewEngine(WithHost(host), WithScene(0, s))
	var sizes [][2]int
	e.SetResizeCallback(func(w, h int) { sizes = append(sizes, [2]int{w, h}) })

	require.NotNil(t, host.resize)
	host.resize(1600, 800)
	assert.Equal(t, float32(2), s.Camera().Aspect())
	assert.Equal(t, [][2]int{{1600, 800}}, sizes)

	host.resize(0, 0)
	assert.Equal(t, float32(2), s.Camera().Aspect())
}

func TestRunWithoutHost(t *testing.T) {
	e := NewEngine()
	e.Run()
	assert.Nil(t, e.Host())
}
