package scene

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/click_arbiter"
	"github.com/Carmen-Shannon/oxy-orrery/engine/focus"
	"github.com/Carmen-Shannon/oxy-orrery/engine/raycast"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene_drag"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Scene owns the interactive bodies, the focus state and the camera, and turns pointer
// input into body spins, focus changes and camera motion.
//
// Input handlers never change state directly. They queue intents which Tick applies
// first, then it integrates the bodies, moves the camera and writes the frame's results
// to the TransformSink. All methods must be called from the goroutine that runs the
// frame loop.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether the engine should tick this scene.
	Active() bool

	// SetActive sets whether the engine should tick this scene.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Bodies returns the interactive bodies in construction order.
	Bodies() []body.Body

	// Body looks up a body by id.
	//
	// Parameters:
	//   - id: the body id
	//
	// Returns:
	//   - body.Body: the body, or nil
	//   - bool: true if found
	Body(id common.BodyID) (body.Body, bool)

	// Focus returns the focus state machine.
	Focus() focus.Machine

	// SceneDrag returns the background drag controller.
	SceneDrag() scene_drag.Controller

	// SetSink replaces the transform sink. A nil sink discards output.
	//
	// Parameters:
	//   - sink: the receiver of per-frame results
	SetSink(sink TransformSink)

	// GestureActive reports whether a pointer gesture is in progress. Hosts only need to
	// forward window-level pointer-up while this is true.
	GestureActive() bool

	// Pick returns the nearest body under a viewport point, or nil.
	//
	// Parameters:
	//   - x, y: normalized device coordinates
	//
	// Returns:
	//   - *common.BodyID: the body, or nil
	Pick(x, y float32) *common.BodyID

	// PointerDown starts a gesture. target is the body under the pointer, or nil for the
	// background. A gesture on a body suppresses scene-wide orbiting until it ends.
	//
	// Parameters:
	//   - x, y: normalized device coordinates
	//   - target: the body under the pointer, or nil
	PointerDown(x, y float32, target *common.BodyID)

	// PointerMove tracks hover and drives drags. While a body gesture is active the
	// moves go to that body even if the pointer has left it.
	//
	// Parameters:
	//   - x, y: normalized device coordinates
	//   - pressed: whether the primary button is held
	//   - target: the body under the pointer, or nil
	PointerMove(x, y float32, pressed bool, target *common.BodyID)

	// PointerUp ends the gesture.
	//
	// Parameters:
	//   - x, y: normalized device coordinates
	PointerUp(x, y float32)

	// Wheel queues a scroll step for the focus machine.
	//
	// Parameters:
	//   - deltaY: scroll delta, positive scrolls out
	//   - hovered: the body under the pointer, or nil
	Wheel(deltaY float32, hovered *common.BodyID)

	// Click resolves the gesture: the pressed body sees the click first, then the
	// outside-click arbiter decides whether to leave focus. Drag flags are cleared.
	//
	// Parameters:
	//   - x, y: normalized device coordinates
	Click(x, y float32)

	// Tick applies queued intents, advances every body and the camera by deltaTime
	// seconds and writes the results to the sink.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds
	Tick(deltaTime float32)

	// Close tears the scene down: queued intents are dropped, the gesture is disarmed,
	// focus and orbit angles return to their initial values. Further input is ignored.
	Close()
}

type scene struct {
	log    zerolog.Logger
	name   string
	active bool
	closed bool

	bodies []body.Body
	byID   map[common.BodyID]body.Body

	cam        camera.Camera
	controller camera.CameraController
	initial    camera.OrbitAngles

	focus   focus.Machine
	drag    scene_drag.Controller
	arbiter click_arbiter.Arbiter
	caster  *raycast.SphereCaster
	sink    TransformSink

	dragMode        scene_drag.Mode
	dragSensitivity float32

	intents []intent

	// gesture state
	armed        bool
	pressed      body.Body
	clickTarget  body.Body
	lastX, lastY float32

	highlight map[common.BodyID]bool
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene. Without WithCamera the scene builds a default orbit
// camera looking at the origin from (0, 30, 30). Bodies with an empty or duplicate id
// are dropped with a warning.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		log:       zerolog.Nop(),
		name:      name,
		active:    true,
		byID:      make(map[common.BodyID]body.Body),
		sink:      nopSink{},
		dragMode:  scene_drag.ModeOrbit,
		highlight: make(map[common.BodyID]bool),
	}

	for _, option := range options {
		option(s)
	}

	s.indexBodies()

	if s.cam == nil {
		s.cam = camera.NewCamera()
	}
	s.controller = s.cam.Controller()
	if s.controller == nil {
		s.controller = camera.NewCameraController()
		s.cam.SetController(s.controller)
	}
	s.initial = s.controller.Angles()

	ids := make([]common.BodyID, 0, len(s.bodies))
	targets := make([]raycast.Target, 0, len(s.bodies))
	for _, b := range s.bodies {
		ids = append(ids, b.ID())
		targets = append(targets, b)
	}

	s.focus = focus.NewMachine(focus.WithBodies(ids...), focus.WithLogger(s.log))
	s.focus.OnTransition(s.onTransition)

	s.caster = raycast.NewSphereCaster(targets...)
	s.arbiter = click_arbiter.NewArbiter(
		click_arbiter.WithRayCaster(s.caster),
		click_arbiter.WithView(s.cam),
		click_arbiter.WithLogger(s.log),
	)

	sensitivity := s.dragSensitivity
	if sensitivity <= 0 {
		sensitivity = s.controller.MouseSensitivity()
	}
	s.drag = scene_drag.NewController(orbitQueue{s: s},
		scene_drag.WithMode(s.dragMode),
		scene_drag.WithSensitivity(sensitivity),
	)

	s.log.Debug().Str("scene", name).Int("bodies", len(s.bodies)).Msg("scene created")
	return s
}

func (s *scene) indexBodies() {
	kept := s.bodies[:0]
	for _, b := range s.bodies {
		if b == nil {
			continue
		}
		id := b.ID()
		if id == "" {
			s.log.Warn().Msg("dropping body without id")
			continue
		}
		if _, dup := s.byID[id]; dup {
			s.log.Warn().Str("body", string(id)).Msg("dropping duplicate body")
			continue
		}
		s.byID[id] = b
		kept = append(kept, b)
	}
	s.bodies = kept
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) SetName(name string) {
	s.name = name
}

func (s *scene) Active() bool {
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Bodies() []body.Body {
	return s.bodies
}

func (s *scene) Body(id common.BodyID) (body.Body, bool) {
	b, ok := s.byID[id]
	return b, ok
}

func (s *scene) Focus() focus.Machine {
	return s.focus
}

func (s *scene) SceneDrag() scene_drag.Controller {
	return s.drag
}

func (s *scene) SetSink(sink TransformSink) {
	if sink == nil {
		sink = nopSink{}
	}
	s.sink = sink
}

func (s *scene) GestureActive() bool {
	return s.armed
}

func (s *scene) Pick(x, y float32) *common.BodyID {
	return s.caster.Pick(s.cam, x, y)
}

func (s *scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.intents = nil
	s.armed = false
	s.pressed = nil
	s.clickTarget = nil

	for _, b := range s.bodies {
		b.OnPointerUp()
		b.ClearDrag()
		b.SetHovered(false)
		b.SetSceneFocused(false)
	}
	s.focus.Reset()
	s.drag.Reset()
	s.controller.SetAngles(s.initial)
	s.log.Debug().Str("scene", s.name).Msg("scene closed")
}

// onTransition keeps the camera and the bodies in step with the focus machine.
func (s *scene) onTransition(t focus.Transition) {
	switch t.Kind {
	case focus.TransitionFocused:
		if b, ok := s.byID[t.Body]; ok {
			s.controller.Reproject(b.Position())
		}
	case focus.TransitionUnfocused:
		s.controller.Reproject(mgl32.Vec3{})
	}
	focused := s.focus.IsFocused()
	for _, b := range s.bodies {
		b.SetSceneFocused(focused)
	}
	s.log.Info().Str("body", string(t.Body)).Stringer("transition", t.Kind).Msg("focus changed")
}
