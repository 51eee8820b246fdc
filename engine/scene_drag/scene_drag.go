package scene_drag

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects what a background drag does.
type Mode int

const (
	// ModeOrbit orbits the camera by changing its orbit angles.
	ModeOrbit Mode = iota
	// ModeRotateScene accumulates a rotation of the whole scene about the camera axes.
	ModeRotateScene
)

// Orbiter is the part of the camera a scene drag drives.
type Orbiter interface {
	Orbit(dTheta, dPhi float32)
	ViewDirection() mgl32.Vec3
}

type controller struct {
	orbiter     Orbiter
	mode        Mode
	sensitivity float32

	active     bool
	enabled    bool
	hasDragged bool
	prevX      float32
	prevY      float32

	rotation mgl32.Quat
}

// Controller turns background pointer drags into camera orbit changes.
// Pointer coordinates are normalized device coordinates with +Y up; a drag toward the top
// of the viewport lowers phi so the camera rises, the same feel as dragging the scene.
type Controller interface {
	// Begin starts a background gesture and clears the scene drag flag.
	//
	// Parameters:
	//   - x, y: pointer position
	Begin(x, y float32)

	// Move handles pointer movement. Any nonzero move while a gesture is active and the
	// button is held sets the drag flag. The orbit is changed only while enabled.
	//
	// Parameters:
	//   - x, y: pointer position
	//   - pressed: whether a pointer button is held
	//
	// Returns:
	//   - bool: true if the camera or scene rotation was changed
	Move(x, y float32, pressed bool) bool

	// End stops the gesture. The drag flag survives until ClearDrag.
	End()

	// SetEnabled gates orbit changes. The scene disables the controller while focused or
	// while a body is being dragged.
	//
	// Parameters:
	//   - enabled: whether moves may change the orbit
	SetEnabled(enabled bool)

	// Enabled reports whether moves may change the orbit.
	Enabled() bool

	// Active reports whether a background gesture is in progress.
	Active() bool

	// HasDragged reports whether the current or last gesture moved.
	HasDragged() bool

	// ClearDrag resets the drag flag.
	ClearDrag()

	// Mode returns the drag mode.
	Mode() Mode

	// SceneRotation returns the accumulated rotation in ModeRotateScene.
	//
	// Returns:
	//   - mgl32.Quat: the rotation, identity in ModeOrbit
	SceneRotation() mgl32.Quat

	// Reset drops all gesture state and the scene rotation.
	Reset()
}

var _ Controller = &controller{}

// NewController creates a new scene-drag Controller.
//
// Parameters:
//   - orbiter: the camera to drive (may be nil in ModeRotateScene)
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(orbiter Orbiter, options ...ControllerBuilderOption) Controller {
	c := &controller{
		orbiter:     orbiter,
		mode:        ModeOrbit,
		sensitivity: 2.5,
		enabled:     true,
		rotation:    mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) Begin(x, y float32) {
	if !common.IsFinite(x, y) {
		return
	}
	c.active = true
	c.hasDragged = false
	c.prevX, c.prevY = x, y
}

func (c *controller) Move(x, y float32, pressed bool) bool {
	if !common.IsFinite(x, y) {
		return false
	}
	dx, dy := x-c.prevX, y-c.prevY
	c.prevX, c.prevY = x, y

	if !c.active || !pressed || (dx == 0 && dy == 0) {
		return false
	}
	c.hasDragged = true
	if !c.enabled {
		return false
	}

	switch c.mode {
	case ModeRotateScene:
		return c.rotateScene(dx, dy)
	default:
		if c.orbiter == nil {
			return false
		}
		c.orbiter.Orbit(dx*c.sensitivity, -dy*c.sensitivity)
		return true
	}
}

func (c *controller) rotateScene(dx, dy float32) bool {
	view := mgl32.Vec3{0, 0, -1}
	if c.orbiter != nil {
		view = c.orbiter.ViewDirection()
	}
	right := view.Cross(common.WorldUp)
	if right.Len() < 1e-6 {
		right = mgl32.Vec3{1, 0, 0}
	}
	up := right.Cross(view).Normalize()

	yaw := common.AxisAngle(up, dx*c.sensitivity)
	pitch := common.AxisAngle(right.Normalize(), -dy*c.sensitivity)
	c.rotation = yaw.Mul(pitch).Mul(c.rotation).Normalize()
	return true
}

func (c *controller) End() {
	c.active = false
}

func (c *controller) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *controller) Enabled() bool {
	return c.enabled
}

func (c *controller) Active() bool {
	return c.active
}

func (c *controller) HasDragged() bool {
	return c.hasDragged
}

func (c *controller) ClearDrag() {
	c.hasDragged = false
}

func (c *controller) Mode() Mode {
	return c.mode
}

func (c *controller) SceneRotation() mgl32.Quat {
	return c.rotation
}

func (c *controller) Reset() {
	c.active = false
	c.hasDragged = false
	c.enabled = true
	c.rotation = mgl32.QuatIdent()
}
