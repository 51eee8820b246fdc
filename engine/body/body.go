package body

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/momentum"
	"github.com/go-gl/mathgl/mgl32"
)

type body struct {
	id       common.BodyID
	position mgl32.Vec3
	radius   float32

	mom      momentum.Momentum
	idleSpin float32 // radians per second about local +Y

	shell     *Shell
	satellite *Satellite

	hovered       bool
	sceneFocused  bool
	pressed       bool
	hasDragged    bool
	dragThreshold float32
}

// Body defines one focusable celestial body. It owns its orientation and angular velocity
// (through a momentum.Momentum), its optional cloud shell and satellite, and the per-body
// click-vs-drag state for the gesture currently in progress.
type Body interface {
	// ID returns the body's stable identifier.
	//
	// Returns:
	//   - common.BodyID: the identifier
	ID() common.BodyID

	// Position returns the body's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world position
	Position() mgl32.Vec3

	// SetPosition moves the body. Used by hosts that animate body placement.
	//
	// Parameters:
	//   - p: new world position
	SetPosition(p mgl32.Vec3)

	// Radius returns the radius of the body's hit sphere.
	//
	// Returns:
	//   - float32: radius in world units
	Radius() float32

	// Momentum returns the rotation integrator owning the orientation.
	//
	// Returns:
	//   - momentum.Momentum: the integrator
	Momentum() momentum.Momentum

	// Orientation returns the current orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion
	Orientation() mgl32.Quat

	// Shell returns the dependent cloud shell, or nil.
	Shell() *Shell

	// Satellite returns the orbiting satellite, or nil.
	Satellite() *Satellite

	// IdleSpin returns the automatic spin rate about local +Y in radians per second.
	IdleSpin() float32

	// Hovered reports whether the pointer is currently over the body.
	Hovered() bool

	// SetHovered records live pointer-over state.
	//
	// Parameters:
	//   - hovered: true while the pointer is over the body
	SetHovered(hovered bool)

	// SetSceneFocused tells the body whether any body is focused.
	// While the scene is focused no body is highlighted.
	//
	// Parameters:
	//   - focused: true while the scene is in a focused state
	SetSceneFocused(focused bool)

	// Highlighted is derived from hover state and the scene being unfocused.
	//
	// Returns:
	//   - bool: true if the body should render highlighted
	Highlighted() bool

	// Pressed reports whether a gesture that started on this body is in progress.
	Pressed() bool

	// HasDragged reports whether the current gesture has moved since pointer-down.
	HasDragged() bool

	// OnPointerDown starts a gesture on the body and clears the drag flag.
	OnPointerDown()

	// OnPointerMove records pointer movement. While pressed, a movement larger than the
	// drag threshold marks the gesture as a drag and yields a rotation request.
	// Non-finite deltas are discarded.
	//
	// Parameters:
	//   - pressed: whether a pointer button is held
	//   - dx, dy: movement since the previous event in normalized viewport units
	//
	// Returns:
	//   - RotationRequest: the drag to forward to the momentum engine
	//   - bool: false if the move produced no rotation
	OnPointerMove(pressed bool, dx, dy float32) (RotationRequest, bool)

	// OnPointerUp ends the gesture. The drag flag survives until the click.
	OnPointerUp()

	// OnClick resolves the gesture. Focus is requested only if the gesture never dragged.
	// The drag flag is always cleared, so a repeated click behaves the same way.
	//
	// Returns:
	//   - ClickResult: whether focus was requested; the click is always consumed
	OnClick() ClickResult

	// ClearDrag drops the drag flag without resolving a click.
	ClearDrag()

	// Tick advances momentum, idle spin, shell and satellite by deltaTime seconds.
	// A non-positive or non-finite deltaTime is ignored.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds
	Tick(deltaTime float32)
}

// RotationRequest is a drag delta destined for a body's momentum engine.
type RotationRequest struct {
	Body   common.BodyID
	DX, DY float32
}

// ClickResult is the outcome of a click delivered to a body.
type ClickResult struct {
	Body           common.BodyID
	FocusRequested bool
	Consumed       bool
}

var _ Body = &body{}

// NewBody creates a new Body configured with the given options.
// A body without WithMomentum gets a momentum.Momentum with default tuning.
//
// Parameters:
//   - options: functional options to configure the body
//
// Returns:
//   - Body: the newly created body
func NewBody(options ...BodyBuilderOption) Body {
	b := &body{
		radius: 1,
	}
	for _, option := range options {
		option(b)
	}
	if b.mom == nil {
		b.mom = momentum.NewMomentum()
	}
	if b.shell != nil {
		b.shell.sync(b.mom.Orientation())
	}
	if b.satellite != nil {
		b.satellite.place(b.position)
	}
	return b
}

func (b *body) ID() common.BodyID {
	return b.id
}

func (b *body) Position() mgl32.Vec3 {
	return b.position
}

func (b *body) SetPosition(p mgl32.Vec3) {
	if !common.IsFiniteVec3(p) {
		return
	}
	b.position = p
}

func (b *body) Radius() float32 {
	return b.radius
}

func (b *body) Momentum() momentum.Momentum {
	return b.mom
}

func (b *body) Orientation() mgl32.Quat {
	return b.mom.Orientation()
}

func (b *body) Shell() *Shell {
	return b.shell
}

func (b *body) Satellite() *Satellite {
	return b.satellite
}

func (b *body) IdleSpin() float32 {
	return b.idleSpin
}

func (b *body) Hovered() bool {
	return b.hovered
}

func (b *body) SetHovered(hovered bool) {
	b.hovered = hovered
}

func (b *body) SetSceneFocused(focused bool) {
	b.sceneFocused = focused
}

func (b *body) Highlighted() bool {
	return b.hovered && !b.sceneFocused
}

func (b *body) Pressed() bool {
	return b.pressed
}

func (b *body) HasDragged() bool {
	return b.hasDragged
}

func (b *body) OnPointerDown() {
	b.pressed = true
	b.hasDragged = false
}

func (b *body) OnPointerMove(pressed bool, dx, dy float32) (RotationRequest, bool) {
	if !pressed || !common.IsFinite(dx, dy) {
		return RotationRequest{}, false
	}
	if dx*dx+dy*dy <= b.dragThreshold*b.dragThreshold {
		return RotationRequest{}, false
	}
	b.hasDragged = true
	return RotationRequest{Body: b.id, DX: dx, DY: dy}, true
}

func (b *body) OnPointerUp() {
	b.pressed = false
}

func (b *body) OnClick() ClickResult {
	res := ClickResult{
		Body:           b.id,
		FocusRequested: !b.hasDragged,
		Consumed:       true,
	}
	b.hasDragged = false
	return res
}

func (b *body) ClearDrag() {
	b.hasDragged = false
}

func (b *body) Tick(deltaTime float32) {
	if deltaTime <= 0 || !common.IsFinite(deltaTime) {
		return
	}

	b.mom.Tick(deltaTime)

	if b.idleSpin != 0 {
		spin := mgl32.QuatRotate(b.idleSpin*deltaTime, common.WorldUp)
		b.mom.SetOrientation(b.mom.Orientation().Mul(spin))
	}

	if b.shell != nil {
		b.shell.advance(b.mom.Orientation(), deltaTime)
	}
	if b.satellite != nil {
		b.satellite.advance(b.position, deltaTime)
	}
}
