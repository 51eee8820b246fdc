package camera

import "github.com/Carmen-Shannon/oxy-orrery/common"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRadius sets the overview orbit radius (distance from the origin).
//
// Parameters:
//   - radius: distance from the origin
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithFocusedRadius sets the distance kept from a focused body.
//
// Parameters:
//   - radius: distance from the focused body (ignored if <= 0)
//
// Returns:
//   - CameraControllerOption: functional option to set the focused radius
func WithFocusedRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if radius > 0 {
			cc.focusedRadius = radius
		}
	}
}

// WithAngles sets the initial orbit angles.
//
// Parameters:
//   - theta: azimuth in radians (0 = +Z axis)
//   - phi: polar angle from +Y in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the angles
func WithAngles(theta, phi float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if common.IsFinite(theta, phi) {
			cc.angles = OrbitAngles{Theta: theta, Phi: phi}
		}
	}
}

// WithRadiusBounds sets the minimum and maximum overview radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if min > 0 && max >= min {
			cc.minRadius = min
			cc.maxRadius = max
		}
	}
}

// WithPolarMargin sets how close phi may come to either pole.
//
// Parameters:
//   - margin: radians in (0, π/2)
//
// Returns:
//   - CameraControllerOption: functional option to set the polar margin
func WithPolarMargin(margin float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if margin > 0 && margin < 1.5 {
			cc.polarMargin = margin
		}
	}
}

// WithOrbitSpeed sets the keyboard orbit speed.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - CameraControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the drag sensitivity.
//
// Parameters:
//   - sensitivity: radians per normalized viewport unit
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithSmoother sets the strategy used to move the live position toward the target.
//
// Parameters:
//   - s: the smoother (nil keeps the default LerpSmoother)
//
// Returns:
//   - CameraControllerOption: functional option to set the smoother
func WithSmoother(s Smoother) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if s != nil {
			cc.smoother = s
		}
	}
}
