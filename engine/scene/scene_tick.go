package scene

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

func (s *scene) Tick(deltaTime float32) {
	if s.closed {
		return
	}

	s.reduce()

	if deltaTime > 0 && common.IsFinite(deltaTime) {
		for _, b := range s.bodies {
			b.Tick(deltaTime)
		}
	}

	var center *mgl32.Vec3
	if id, ok := s.focus.Focused(); ok {
		if b, found := s.byID[id]; found {
			p := b.Position()
			center = &p
		}
	}
	s.controller.Update(deltaTime, center)
	s.cam.Update()

	s.flush()
}

// reduce drains the intent queue in arrival order.
func (s *scene) reduce() {
	pending := s.intents
	s.intents = nil

	for _, in := range pending {
		switch in.kind {
		case intentRotate:
			b, ok := s.byID[in.body]
			if !ok {
				continue
			}
			world := s.drag.SceneRotation().Mul(b.Orientation())
			b.Momentum().OnDrag(in.dx, in.dy, s.controller.ViewDirection(), world)
		case intentOrbit:
			if s.focus.IsFocused() {
				continue
			}
			s.controller.Orbit(in.dx, in.dy)
		case intentFocus:
			if _, err := s.focus.Focus(in.body); err != nil {
				s.log.Debug().Err(err).Msg("focus request dropped")
			}
		case intentUnfocus:
			_, _ = s.focus.Unfocus()
		case intentWheel:
			if _, err := s.focus.Wheel(in.dy, in.hovered); err != nil {
				s.log.Debug().Err(err).Msg("wheel focus dropped")
			}
		}
	}
	s.syncSceneDrag()
}

// flush writes the frame's results to the sink.
func (s *scene) flush() {
	rot := s.drag.SceneRotation()
	for _, b := range s.bodies {
		id := b.ID()
		s.sink.SetBodyOrientation(id, rot.Mul(b.Orientation()))
		if sh := b.Shell(); sh != nil {
			s.sink.SetShellOrientation(id, rot.Mul(sh.Orientation()))
		}
		if sat := b.Satellite(); sat != nil {
			center := b.Position()
			s.sink.SetSatellitePosition(id, center.Add(rot.Rotate(sat.Position().Sub(center))))
		}

		on := b.Highlighted()
		if prev, seen := s.highlight[id]; !seen || prev != on {
			s.highlight[id] = on
			s.sink.SetHighlight(id, on)
		}
	}
	s.sink.SetCamera(s.controller.Position(), s.controller.LookAt())
}
