package app

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// LogSink stands in for a renderer: it logs highlight changes at info and every
// transform at trace.
type LogSink struct {
	log zerolog.Logger
}

var _ scene.TransformSink = LogSink{}

// NewLogSink creates a LogSink tagged with component=sink.
func NewLogSink(log zerolog.Logger) LogSink {
	return LogSink{log: log.With().Str("component", "sink").Logger()}
}

func (s LogSink) SetBodyOrientation(id common.BodyID, q mgl32.Quat) {
	s.log.Trace().Str("body", string(id)).Floats32("q", []float32{q.W, q.V[0], q.V[1], q.V[2]}).Msg("body orientation")
}

func (s LogSink) SetShellOrientation(id common.BodyID, q mgl32.Quat) {
	s.log.Trace().Str("body", string(id)).Floats32("q", []float32{q.W, q.V[0], q.V[1], q.V[2]}).Msg("shell orientation")
}

func (s LogSink) SetSatellitePosition(id common.BodyID, p mgl32.Vec3) {
	s.log.Trace().Str("body", string(id)).Floats32("pos", p[:]).Msg("satellite position")
}

func (s LogSink) SetCamera(position, lookAt mgl32.Vec3) {
	s.log.Trace().Floats32("pos", position[:]).Floats32("look_at", lookAt[:]).Msg("camera")
}

func (s LogSink) SetHighlight(id common.BodyID, on bool) {
	s.log.Info().Str("body", string(id)).Bool("on", on).Msg("highlight")
}
