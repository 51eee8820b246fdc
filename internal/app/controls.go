package app

import (
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
)

// Action is a keyboard command, independent of the window system's key codes.
type Action int

const (
	ActionNone Action = iota
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionQuit
)

// Apply runs a keyboard action against the scene camera. Orbit actions do nothing while
// a body is focused, the same as background drags. Zoom only changes the overview
// radius. Apply reports whether the host should quit.
//
// Parameters:
//   - s: the scene to drive
//   - a: the action
//
// Returns:
//   - bool: true for ActionQuit
func Apply(s scene.Scene, a Action) bool {
	ctrl := s.Camera().Controller()
	switch a {
	case ActionQuit:
		return true
	case ActionZoomIn:
		ctrl.Zoom(1)
		return false
	case ActionZoomOut:
		ctrl.Zoom(-1)
		return false
	}

	if s.Focus().IsFocused() {
		return false
	}
	switch a {
	case ActionOrbitLeft:
		ctrl.OrbitLeft()
	case ActionOrbitRight:
		ctrl.OrbitRight()
	case ActionOrbitUp:
		ctrl.OrbitUp()
	case ActionOrbitDown:
		ctrl.OrbitDown()
	}
	return false
}

// ApplyOverrides folds command-line flags into a loaded config. Zero values leave the
// config untouched.
func ApplyOverrides(cfg *config.Config, level string, width, height int) {
	if level != "" {
		cfg.Log.Level = level
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
}
