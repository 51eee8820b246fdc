package input

import (
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events  []string
	under   *common.BodyID
	gesture bool
}

func (r *recorder) PointerDown(x, y float32, target *common.BodyID) {
	r.gesture = true
	r.events = append(r.events, fmt.Sprintf("down %.2f %.2f %s", x, y, name(target)))
}

func (r *recorder) PointerMove(x, y float32, pressed bool, target *common.BodyID) {
	r.events = append(r.events, fmt.Sprintf("move %.2f %.2f %t %s", x, y, pressed, name(target)))
}

func (r *recorder) PointerUp(x, y float32) {
	r.gesture = false
	r.events = append(r.events, fmt.Sprintf("up %.2f %.2f", x, y))
}

func (r *recorder) Click(x, y float32) {
	r.events = append(r.events, fmt.Sprintf("click %.2f %.2f", x, y))
}

func (r *recorder) Wheel(deltaY float32, hovered *common.BodyID) {
	r.events = append(r.events, fmt.Sprintf("wheel %.0f %s", deltaY, name(hovered)))
}

func (r *recorder) Pick(_, _ float32) *common.BodyID {
	return r.under
}

func (r *recorder) GestureActive() bool {
	return r.gesture
}

func name(id *common.BodyID) string {
	if id == nil {
		return "-"
	}
	return string(*id)
}

func TestToNDC(t *testing.T) {
	tr := NewTranslator(&recorder{}, 800, 600)

	x, y := tr.ToNDC(0, 0)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)

	x, y = tr.ToNDC(400, 300)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	x, y = tr.ToNDC(800, 600)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(-1), y)
}

func TestPressReleaseSynthesizesClick(t *testing.T) {
	earth := common.BodyID("earth")
	r := &recorder{under: &earth}
	tr := NewTranslator(r, 200, 200)

	tr.ButtonDown(100, 100)
	tr.Move(150, 100)
	tr.ButtonUp(150, 100)

	assert.Equal(t, []string{
		"down 0.00 0.00 earth",
		"move 0.50 0.00 true earth",
		"up 0.50 0.00",
		"click 0.50 0.00",
	}, r.events)
	assert.False(t, tr.Pressed())
}

func TestReleaseWithoutPress(t *testing.T) {
	r := &recorder{}
	tr := NewTranslator(r, 200, 200)

	tr.ButtonUp(10, 10)
	assert.Empty(t, r.events, "no gesture, no up, no click")
}

func TestScrollDirection(t *testing.T) {
	mars := common.BodyID("mars")
	r := &recorder{under: &mars}
	tr := NewTranslator(r, 200, 200)

	tr.Scroll(1)
	tr.Scroll(-2)
	tr.Scroll(0)

	require.Len(t, r.events, 2)
	assert.Equal(t, "wheel -1 mars", r.events[0], "wheel away from the user scrolls in")
	assert.Equal(t, "wheel 2 mars", r.events[1])
}

func TestResizeClamps(t *testing.T) {
	tr := NewTranslator(&recorder{}, 0, -5)
	w, h := tr.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
