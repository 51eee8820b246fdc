package scene_drag

// ControllerBuilderOption is a functional option for configuring a Controller during construction.
type ControllerBuilderOption func(*controller)

// WithMode sets the drag mode.
//
// Parameters:
//   - mode: ModeOrbit or ModeRotateScene
//
// Returns:
//   - ControllerBuilderOption: functional option to set the mode
func WithMode(mode Mode) ControllerBuilderOption {
	return func(c *controller) {
		c.mode = mode
	}
}

// WithSensitivity sets the radians applied per normalized viewport unit of drag.
//
// Parameters:
//   - sensitivity: radians per unit (ignored if <= 0)
//
// Returns:
//   - ControllerBuilderOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) ControllerBuilderOption {
	return func(c *controller) {
		if sensitivity > 0 {
			c.sensitivity = sensitivity
		}
	}
}
