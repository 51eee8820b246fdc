package scene

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// TransformSink receives the results of each Tick. A renderer implements it to move its
// scene graph; the core never reads anything back from it.
type TransformSink interface {
	SetBodyOrientation(id common.BodyID, q mgl32.Quat)
	SetShellOrientation(id common.BodyID, q mgl32.Quat)
	SetSatellitePosition(id common.BodyID, p mgl32.Vec3)
	SetCamera(position, lookAt mgl32.Vec3)
	SetHighlight(id common.BodyID, on bool)
}

type nopSink struct{}

func (nopSink) SetBodyOrientation(common.BodyID, mgl32.Quat) {}
func (nopSink) SetShellOrientation(common.BodyID, mgl32.Quat) {}
func (nopSink) SetSatellitePosition(common.BodyID, mgl32.Vec3) {}
func (nopSink) SetCamera(mgl32.Vec3, mgl32.Vec3) {}
func (nopSink) SetHighlight(common.BodyID, bool) {}
