package scene

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

type intentKind int

const (
	intentRotate intentKind = iota
	intentOrbit
	intentFocus
	intentUnfocus
	intentWheel
)

// intent is a state change requested by an input handler and applied at the start of
// the next Tick, in arrival order.
type intent struct {
	kind    intentKind
	body    common.BodyID
	dx, dy  float32
	hovered *common.BodyID
}

// orbitQueue adapts the scene's intent queue to scene_drag.Orbiter so background drags
// reach the camera through the reducer.
type orbitQueue struct {
	s *scene
}

func (o orbitQueue) Orbit(dTheta, dPhi float32) {
	o.s.enqueue(intent{kind: intentOrbit, dx: dTheta, dy: dPhi})
}

func (o orbitQueue) ViewDirection() mgl32.Vec3 {
	return o.s.controller.ViewDirection()
}
