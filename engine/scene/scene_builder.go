package scene

import (
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene_drag"
	"github.com/rs/zerolog"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the engine should tick the scene. Scenes are active by default.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithBodies adds interactive bodies to the scene.
//
// Parameters:
//   - bodies: the bodies to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBodies(bodies ...body.Body) SceneBuilderOption {
	return func(s *scene) {
		s.bodies = append(s.bodies, bodies...)
	}
}

// WithCamera sets the scene camera. A camera without a controller gets a default one.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithSink sets the receiver of per-frame results.
//
// Parameters:
//   - sink: the transform sink
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSink(sink TransformSink) SceneBuilderOption {
	return func(s *scene) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithLogger sets the logger shared with the focus machine and click arbiter.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(log zerolog.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.log = log
	}
}

// WithSceneDragMode sets what background drags do.
//
// Parameters:
//   - mode: scene_drag.ModeOrbit or scene_drag.ModeRotateScene
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSceneDragMode(mode scene_drag.Mode) SceneBuilderOption {
	return func(s *scene) {
		s.dragMode = mode
	}
}

// WithSceneDragSensitivity overrides the background drag sensitivity. By default the
// camera controller's mouse sensitivity is used.
//
// Parameters:
//   - sensitivity: radians per normalized viewport unit
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSceneDragSensitivity(sensitivity float32) SceneBuilderOption {
	return func(s *scene) {
		s.dragSensitivity = sensitivity
	}
}
