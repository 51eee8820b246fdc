// Package app assembles the orrery scene from configuration and maps host input onto it.
package app

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/momentum"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene_drag"
	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
	"github.com/rs/zerolog"
)

// BuildBodies turns the body table into engine bodies, each with its own momentum.
func BuildBodies(cfg *config.Config) []body.Body {
	m := cfg.Momentum
	bodies := make([]body.Body, 0, len(cfg.Bodies))
	for _, bc := range cfg.Bodies {
		opts := []body.BodyBuilderOption{
			body.WithID(common.BodyID(bc.ID)),
			body.WithPosition(bc.Position[0], bc.Position[1], bc.Position[2]),
			body.WithRadius(bc.Radius),
			body.WithIdleSpin(bc.IdleSpin),
			body.WithDragThreshold(m.DragThreshold),
			body.WithMomentum(momentum.NewMomentum(
				momentum.WithGain(m.Gain),
				momentum.WithRotationSpeed(common.Coalesce(bc.RotationSpeed, m.RotationSpeed)),
				momentum.WithRestThreshold(m.RestThreshold),
				momentum.WithDamping(m.DampingBase, m.DampingGain, m.DampingBoost, m.DampingMax),
			)),
		}
		if bc.Shell != nil {
			opts = append(opts, body.WithShell(bc.Shell.Radius, bc.Shell.Drift))
		}
		if bc.Satellite != nil {
			opts = append(opts, body.WithSatellite(bc.Satellite.Distance, bc.Satellite.Radius, bc.Satellite.Speed))
		}
		bodies = append(bodies, body.NewBody(opts...))
	}
	return bodies
}

// BuildCamera creates the perspective camera and its orbit controller.
func BuildCamera(cfg *config.Config) camera.Camera {
	c := cfg.Camera

	var smoother camera.Smoother = camera.NewLerpSmoother(c.LerpFactor)
	if c.Smoother == "spring" {
		smoother = camera.NewSpringSmoother(c.SpringFrequency, c.SpringDamping)
	}

	ctrl := camera.NewCameraController(
		camera.WithRadiusBounds(c.MinRadius, c.MaxRadius),
		camera.WithRadius(c.Radius),
		camera.WithFocusedRadius(c.FocusedRadius),
		camera.WithOrbitSpeed(c.OrbitSpeed),
		camera.WithZoomSpeed(c.ZoomSpeed),
		camera.WithMouseSensitivity(c.MouseSensitivity),
		camera.WithSmoother(smoother),
	)
	return camera.NewCamera(
		camera.WithController(ctrl),
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
	)
}

// BuildScene assembles the orrery scene from the config.
func BuildScene(cfg *config.Config, log zerolog.Logger, sink scene.TransformSink) scene.Scene {
	mode := scene_drag.ModeOrbit
	if cfg.SceneDrag.Mode == "rotate" {
		mode = scene_drag.ModeRotateScene
	}
	return scene.NewScene("orrery",
		scene.WithLogger(log),
		scene.WithCamera(BuildCamera(cfg)),
		scene.WithBodies(BuildBodies(cfg)...),
		scene.WithSink(sink),
		scene.WithSceneDragMode(mode),
		scene.WithSceneDragSensitivity(cfg.SceneDrag.Sensitivity),
	)
}
