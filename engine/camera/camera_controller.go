package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitAngles are the spherical angles of the camera around its current center.
// Theta is the azimuth about +Y measured from +Z. Phi is the polar angle from +Y and is
// kept inside (margin, π-margin) so the camera never crosses a pole.
type OrbitAngles struct {
	Theta float32
	Phi   float32
}

// CameraController defines the orbit controller that owns the camera's positional state.
// The live position chases a target position computed from OrbitAngles around either the
// scene origin or the focused body. Camera reads from the controller and computes
// view/projection matrices.
type CameraController interface {
	orbitCameraController

	// Position returns the camera's live world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: live position
	Position() mgl32.Vec3

	// SetPosition teleports the live position without touching the target.
	//
	// Parameters:
	//   - p: world-space position (ignored if non-finite)
	SetPosition(p mgl32.Vec3)

	// TargetPosition returns the position the camera is moving toward.
	//
	// Returns:
	//   - mgl32.Vec3: target position as of the last Update
	TargetPosition() mgl32.Vec3

	// LookAt returns the point the camera is looking at.
	//
	// Returns:
	//   - mgl32.Vec3: look-at point as of the last Update
	LookAt() mgl32.Vec3

	// ViewDirection returns the unit vector from the live position to the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: view direction, or -Z if position and look-at coincide
	ViewDirection() mgl32.Vec3

	// Update recomputes the target from the current angles and moves the live position
	// toward it through the configured Smoother. With a nil focus the camera orbits the
	// origin at Radius; otherwise it orbits *focus at FocusedRadius.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds (non-positive or non-finite values skip smoothing)
	//   - focus: world position of the focused body, or nil
	Update(deltaTime float32, focus *mgl32.Vec3)

	// Reproject recomputes Theta and Phi once from the live position relative to center.
	// Called when the orbit center changes so the camera keeps its current viewing angle.
	//
	// Parameters:
	//   - center: the new orbit center
	Reproject(center mgl32.Vec3)

	// Zoom adjusts the overview radius. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Smoother returns the smoothing strategy in use.
	//
	// Returns:
	//   - Smoother: the strategy
	Smoother() Smoother
}

// orbitCameraController defines orbit-specific control methods.
type orbitCameraController interface {
	// Angles returns the current orbit angles.
	//
	// Returns:
	//   - OrbitAngles: theta and phi in radians
	Angles() OrbitAngles

	// SetAngles replaces the orbit angles, clamping phi.
	//
	// Parameters:
	//   - a: new angles (ignored if non-finite)
	SetAngles(a OrbitAngles)

	// Orbit adds to the orbit angles, clamping phi.
	//
	// Parameters:
	//   - dTheta: azimuth change in radians
	//   - dPhi: polar change in radians
	Orbit(dTheta, dPhi float32)

	// OrbitLeft rotates the camera left by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera toward +Y by one orbit speed step.
	OrbitUp()

	// OrbitDown tilts the camera toward -Y by one orbit speed step.
	OrbitDown()

	// Radius returns the overview orbit radius.
	//
	// Returns:
	//   - float32: distance from the origin when unfocused
	Radius() float32

	// SetRadius sets the overview orbit radius, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from the origin
	SetRadius(radius float32)

	// FocusedRadius returns the distance kept from a focused body.
	//
	// Returns:
	//   - float32: distance from the focused body
	FocusedRadius() float32

	// MinRadius returns the minimum allowed overview radius.
	MinRadius() float32

	// MaxRadius returns the maximum allowed overview radius.
	MaxRadius() float32

	// PolarMargin returns the distance phi keeps from either pole.
	PolarMargin() float32

	// OrbitSpeed returns the keyboard orbit speed in radians per step.
	OrbitSpeed() float32

	// MouseSensitivity returns the drag sensitivity in radians per normalized viewport unit.
	MouseSensitivity() float32

	// ZoomSpeed returns the zoom speed multiplier.
	ZoomSpeed() float32
}
