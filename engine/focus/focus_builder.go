package focus

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/rs/zerolog"
)

// MachineBuilderOption is a functional option for configuring a Machine during construction.
type MachineBuilderOption func(*machine)

// WithLogger sets the logger used for transitions and refusals.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - MachineBuilderOption: functional option to set the logger
func WithLogger(log zerolog.Logger) MachineBuilderOption {
	return func(m *machine) {
		m.log = log.With().Str("component", "focus").Logger()
	}
}

// WithBodies restricts Focus to the given ids. Without it any non-empty id is accepted.
//
// Parameters:
//   - ids: the focusable bodies
//
// Returns:
//   - MachineBuilderOption: functional option to register the bodies
func WithBodies(ids ...common.BodyID) MachineBuilderOption {
	return func(m *machine) {
		if m.known == nil {
			m.known = make(map[common.BodyID]struct{}, len(ids))
		}
		for _, id := range ids {
			m.known[id] = struct{}{}
		}
	}
}
