package click_arbiter

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/rs/zerolog"
)

// CameraView builds picking rays from viewport coordinates.
type CameraView interface {
	ScreenRay(x, y float32) (common.Ray, bool)
}

// RayCaster returns the interactive bodies under a viewport point, nearest first.
type RayCaster interface {
	Raycast(view CameraView, x, y float32) []common.BodyID
}

// Click is a click as seen by the scene after any body handled it.
type Click struct {
	X, Y     float32
	Consumed bool
}

// Flags are the drag flags of the gesture that ended in the click.
type Flags struct {
	SceneDragged bool
	BodyDragged  bool
}

// Any reports whether any drag flag is set.
func (f Flags) Any() bool {
	return f.SceneDragged || f.BodyDragged
}

// Decision is the arbiter's verdict on a click.
type Decision struct {
	// Unfocus is true when the click landed outside every body while focused.
	Unfocus bool
	// ClearDragFlags is always true: every click ends the gesture's drag state.
	ClearDragFlags bool
}

type arbiter struct {
	log    zerolog.Logger
	caster RayCaster
	view   CameraView
}

// Arbiter decides whether a click that no body consumed should end focus.
type Arbiter interface {
	// Arbitrate inspects a click. While focused, a click that was not consumed by a body
	// and did not follow a drag is ray-cast; if nothing interactive is under it the
	// decision is to unfocus. A missing ray-caster or camera counts as no intersection.
	//
	// Parameters:
	//   - click: the click and whether a body consumed it
	//   - focused: whether a body is focused
	//   - flags: drag flags of the gesture
	//
	// Returns:
	//   - Decision: whether to unfocus; drag flags must always be cleared
	Arbitrate(click Click, focused bool, flags Flags) Decision

	// SetRayCaster replaces the ray-caster, for example once the scene graph is populated.
	//
	// Parameters:
	//   - caster: the ray-caster, or nil
	SetRayCaster(caster RayCaster)

	// SetView replaces the camera used to build rays.
	//
	// Parameters:
	//   - view: the camera, or nil
	SetView(view CameraView)
}

var _ Arbiter = &arbiter{}

// NewArbiter creates a new Arbiter.
//
// Parameters:
//   - options: functional options to configure the arbiter
//
// Returns:
//   - Arbiter: the newly created arbiter
func NewArbiter(options ...ArbiterBuilderOption) Arbiter {
	a := &arbiter{
		log: zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *arbiter) Arbitrate(click Click, focused bool, flags Flags) Decision {
	d := Decision{ClearDragFlags: true}
	if !focused || click.Consumed || flags.Any() {
		return d
	}
	if !common.IsFinite(click.X, click.Y) {
		return d
	}

	hits := a.cast(click.X, click.Y)
	if len(hits) == 0 {
		a.log.Debug().Float32("x", click.X).Float32("y", click.Y).Msg("click outside every body")
		d.Unfocus = true
	}
	return d
}

func (a *arbiter) cast(x, y float32) []common.BodyID {
	if a.caster == nil || a.view == nil {
		return nil
	}
	return a.caster.Raycast(a.view, x, y)
}

func (a *arbiter) SetRayCaster(caster RayCaster) {
	a.caster = caster
}

func (a *arbiter) SetView(view CameraView) {
	a.view = view
}
