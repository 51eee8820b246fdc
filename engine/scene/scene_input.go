package scene

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/click_arbiter"
)

func (s *scene) enqueue(in intent) {
	if s.closed {
		return
	}
	s.intents = append(s.intents, in)
}

func (s *scene) lookup(id *common.BodyID) *common.BodyID {
	if id == nil {
		return nil
	}
	if _, ok := s.byID[*id]; !ok {
		return nil
	}
	return id
}

// hover marks target as hovered and every other body as not hovered.
func (s *scene) hover(target *common.BodyID) {
	for _, b := range s.bodies {
		b.SetHovered(target != nil && b.ID() == *target)
	}
}

// syncSceneDrag gates background orbiting: only while unfocused and no body is pressed.
func (s *scene) syncSceneDrag() {
	s.drag.SetEnabled(!s.focus.IsFocused() && s.pressed == nil)
}

func (s *scene) PointerDown(x, y float32, target *common.BodyID) {
	if s.closed || !common.IsFinite(x, y) {
		return
	}
	target = s.lookup(target)
	s.armed = true
	s.lastX, s.lastY = x, y
	s.clickTarget = nil
	s.hover(target)

	if target != nil {
		b := s.byID[*target]
		b.OnPointerDown()
		s.pressed = b
	}
	s.syncSceneDrag()
	s.drag.Begin(x, y)
}

func (s *scene) PointerMove(x, y float32, pressed bool, target *common.BodyID) {
	if s.closed || !common.IsFinite(x, y) {
		return
	}
	s.hover(s.lookup(target))

	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y

	if s.pressed != nil {
		if req, ok := s.pressed.OnPointerMove(pressed, dx, dy); ok {
			s.enqueue(intent{kind: intentRotate, body: req.Body, dx: req.DX, dy: req.DY})
		}
	}

	s.syncSceneDrag()
	s.drag.Move(x, y, pressed)
}

func (s *scene) PointerUp(x, y float32) {
	if s.closed || !s.armed {
		return
	}
	if s.pressed != nil {
		s.pressed.OnPointerUp()
		s.clickTarget = s.pressed
		s.pressed = nil
	}
	s.drag.End()
	s.armed = false
	s.syncSceneDrag()
}

func (s *scene) Wheel(deltaY float32, hovered *common.BodyID) {
	if !common.IsFinite(deltaY) || deltaY == 0 {
		return
	}
	s.enqueue(intent{kind: intentWheel, dy: deltaY, hovered: s.lookup(hovered)})
}

func (s *scene) Click(x, y float32) {
	if s.closed {
		return
	}

	flags := click_arbiter.Flags{SceneDragged: s.drag.HasDragged()}
	for _, b := range s.bodies {
		flags.BodyDragged = flags.BodyDragged || b.HasDragged()
	}

	consumed := false
	if b := s.clickTarget; b != nil {
		res := b.OnClick()
		consumed = res.Consumed
		if res.FocusRequested {
			s.enqueue(intent{kind: intentFocus, body: res.Body})
		}
	}
	s.clickTarget = nil

	d := s.arbiter.Arbitrate(click_arbiter.Click{X: x, Y: y, Consumed: consumed}, s.focus.IsFocused(), flags)
	if d.Unfocus {
		s.enqueue(intent{kind: intentUnfocus})
	}
	if d.ClearDragFlags {
		s.drag.ClearDrag()
		for _, b := range s.bodies {
			b.ClearDrag()
		}
	}
}
