package click_arbiter

import "github.com/rs/zerolog"

// ArbiterBuilderOption is a functional option for configuring an Arbiter during construction.
type ArbiterBuilderOption func(*arbiter)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) ArbiterBuilderOption {
	return func(a *arbiter) {
		a.log = log.With().Str("component", "click_arbiter").Logger()
	}
}

// WithRayCaster sets the ray-caster.
func WithRayCaster(caster RayCaster) ArbiterBuilderOption {
	return func(a *arbiter) {
		a.caster = caster
	}
}

// WithView sets the camera used to build rays.
func WithView(view CameraView) ArbiterBuilderOption {
	return func(a *arbiter) {
		a.view = view
	}
}
