package input

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Handler receives pointer events in normalized device coordinates. scene.Scene
// implements it.
type Handler interface {
	PointerDown(x, y float32, target *common.BodyID)
	PointerMove(x, y float32, pressed bool, target *common.BodyID)
	PointerUp(x, y float32)
	Click(x, y float32)
	Wheel(deltaY float32, hovered *common.BodyID)
	Pick(x, y float32) *common.BodyID
	GestureActive() bool
}

// Translator converts raw window input (pixels, button transitions, wheel offsets) into
// Handler calls. It synthesizes a click after every press/release pair of the primary
// button; whether the click counts as a click or ends a drag is up to the handler.
type Translator struct {
	handler Handler
	width   int
	height  int

	down       bool
	lastX      float32
	lastY      float32
	wheelScale float32
}

// NewTranslator creates a Translator for a viewport of the given pixel size.
//
// Parameters:
//   - handler: the receiver of translated events
//   - width, height: viewport size in pixels
//
// Returns:
//   - *Translator: the translator
func NewTranslator(handler Handler, width, height int) *Translator {
	t := &Translator{handler: handler, wheelScale: -1}
	t.Resize(width, height)
	return t
}

// Resize updates the viewport size used for coordinate conversion. Non-positive sizes are
// clamped to 1 pixel.
func (t *Translator) Resize(width, height int) {
	t.width = max(width, 1)
	t.height = max(height, 1)
}

// Size returns the viewport size in pixels.
func (t *Translator) Size() (width, height int) {
	return t.width, t.height
}

// ToNDC converts a pixel position (origin top-left, +Y down) to normalized device
// coordinates (origin center, +Y up).
func (t *Translator) ToNDC(px, py float64) (float32, float32) {
	x := float32(px/float64(t.width))*2 - 1
	y := 1 - float32(py/float64(t.height))*2
	return x, y
}

// ButtonDown handles a primary button press at a pixel position.
func (t *Translator) ButtonDown(px, py float64) {
	x, y := t.ToNDC(px, py)
	if !common.IsFinite(x, y) {
		return
	}
	t.down = true
	t.lastX, t.lastY = x, y
	t.handler.PointerDown(x, y, t.handler.Pick(x, y))
}

// ButtonUp handles a primary button release. The release is forwarded only while the
// handler has a gesture in progress; the click follows the release.
func (t *Translator) ButtonUp(px, py float64) {
	x, y := t.ToNDC(px, py)
	if !common.IsFinite(x, y) {
		return
	}
	wasDown := t.down
	t.down = false
	if t.handler.GestureActive() {
		t.handler.PointerUp(x, y)
	}
	if wasDown {
		t.handler.Click(x, y)
	}
}

// Move handles cursor movement.
func (t *Translator) Move(px, py float64) {
	x, y := t.ToNDC(px, py)
	if !common.IsFinite(x, y) {
		return
	}
	t.lastX, t.lastY = x, y
	t.handler.PointerMove(x, y, t.down, t.handler.Pick(x, y))
}

// Scroll handles a vertical wheel offset as reported by the window system, where a
// positive offset means the wheel moved away from the user. The handler receives a
// delta that is positive when scrolling out.
func (t *Translator) Scroll(yoff float64) {
	d := float32(yoff) * t.wheelScale
	if !common.IsFinite(d) || d == 0 {
		return
	}
	t.handler.Wheel(d, t.handler.Pick(t.lastX, t.lastY))
}

// Pressed reports whether the primary button is held.
func (t *Translator) Pressed() bool {
	return t.down
}
