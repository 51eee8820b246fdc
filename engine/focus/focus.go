package focus

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/rs/zerolog"
)

var (
	// ErrAlreadyFocused is returned when focusing a body while another body is focused.
	// Leaving the current body has to go through Unfocus first.
	ErrAlreadyFocused = errors.New("another body is already focused")

	// ErrUnknownBody is returned when focusing an id that is empty or not registered.
	ErrUnknownBody = errors.New("unknown body")
)

// TransitionKind identifies what a state change did.
type TransitionKind int

const (
	// TransitionNone means the operation left the state unchanged.
	TransitionNone TransitionKind = iota
	// TransitionFocused means the machine moved from Unfocused to Focused.
	TransitionFocused
	// TransitionUnfocused means the machine moved from Focused to Unfocused.
	TransitionUnfocused
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionFocused:
		return "focused"
	case TransitionUnfocused:
		return "unfocused"
	default:
		return "none"
	}
}

// Transition describes one state change. Body is the body entered for TransitionFocused
// and the body left for TransitionUnfocused.
type Transition struct {
	Kind TransitionKind
	Body common.BodyID
}

// Changed reports whether the transition altered the state.
func (t Transition) Changed() bool {
	return t.Kind != TransitionNone
}

type machine struct {
	log       zerolog.Logger
	known     map[common.BodyID]struct{}
	focused   common.BodyID
	active    bool
	listeners []func(Transition)
}

// Machine holds the scene-wide focus state: Unfocused, or Focused on exactly one body.
type Machine interface {
	// Focused returns the focused body.
	//
	// Returns:
	//   - common.BodyID: the focused body, or "" when unfocused
	//   - bool: true if a body is focused
	Focused() (common.BodyID, bool)

	// IsFocused reports whether any body is focused.
	IsFocused() bool

	// Focus moves Unfocused to Focused(id). Focusing the already-focused body is a no-op.
	// Focusing a different body while focused is refused with ErrAlreadyFocused and the
	// state is left untouched.
	//
	// Parameters:
	//   - id: the body to focus
	//
	// Returns:
	//   - Transition: the state change performed
	//   - error: ErrAlreadyFocused or ErrUnknownBody when refused
	Focus(id common.BodyID) (Transition, error)

	// Unfocus moves Focused to Unfocused. It is a no-op when already unfocused.
	//
	// Returns:
	//   - Transition: the state change performed
	//   - error: always nil
	Unfocus() (Transition, error)

	// Wheel applies a scroll step. Scrolling out (deltaY > 0) while focused unfocuses;
	// scrolling in (deltaY < 0) over a hovered body while unfocused focuses it.
	// Everything else, including non-finite deltas, is ignored.
	//
	// Parameters:
	//   - deltaY: scroll delta, positive away from the scene
	//   - hovered: the body under the pointer, or nil
	//
	// Returns:
	//   - Transition: the state change performed
	//   - error: a refusal from Focus
	Wheel(deltaY float32, hovered *common.BodyID) (Transition, error)

	// OnTransition registers a listener called after every state change.
	//
	// Parameters:
	//   - fn: the listener
	OnTransition(fn func(Transition))

	// Reset returns to Unfocused without notifying listeners.
	Reset()
}

var _ Machine = &machine{}

// NewMachine creates a new Machine in the Unfocused state.
//
// Parameters:
//   - options: functional options to configure the machine
//
// Returns:
//   - Machine: the newly created machine
func NewMachine(options ...MachineBuilderOption) Machine {
	m := &machine{
		log: zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *machine) Focused() (common.BodyID, bool) {
	return m.focused, m.active
}

func (m *machine) IsFocused() bool {
	return m.active
}

func (m *machine) Focus(id common.BodyID) (Transition, error) {
	if !m.isKnown(id) {
		m.log.Warn().Str("body", string(id)).Msg("focus refused: unknown body")
		return Transition{}, fmt.Errorf("focus %q: %w", id, ErrUnknownBody)
	}
	if m.active {
		if m.focused == id {
			return Transition{}, nil
		}
		m.log.Warn().
			Str("body", string(id)).
			Str("focused", string(m.focused)).
			Msg("focus refused: another body is focused")
		return Transition{}, fmt.Errorf("focus %q while %q is focused: %w", id, m.focused, ErrAlreadyFocused)
	}

	m.focused = id
	m.active = true
	t := Transition{Kind: TransitionFocused, Body: id}
	m.log.Debug().Str("body", string(id)).Msg("focused")
	m.emit(t)
	return t, nil
}

func (m *machine) Unfocus() (Transition, error) {
	if !m.active {
		return Transition{}, nil
	}
	t := Transition{Kind: TransitionUnfocused, Body: m.focused}
	m.focused = ""
	m.active = false
	m.log.Debug().Str("body", string(t.Body)).Msg("unfocused")
	m.emit(t)
	return t, nil
}

func (m *machine) Wheel(deltaY float32, hovered *common.BodyID) (Transition, error) {
	if !common.IsFinite(deltaY) {
		return Transition{}, nil
	}
	switch {
	case deltaY > 0 && m.active:
		return m.Unfocus()
	case deltaY < 0 && !m.active && hovered != nil:
		return m.Focus(*hovered)
	}
	return Transition{}, nil
}

func (m *machine) OnTransition(fn func(Transition)) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

func (m *machine) Reset() {
	m.focused = ""
	m.active = false
}

func (m *machine) isKnown(id common.BodyID) bool {
	if id == "" {
		return false
	}
	if m.known == nil {
		return true
	}
	_, ok := m.known[id]
	return ok
}

func (m *machine) emit(t Transition) {
	for _, fn := range m.listeners {
		fn(t)
	}
}
