package raycast

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/click_arbiter"
	"github.com/go-gl/mathgl/mgl32"
)

// Target is anything with a hit sphere.
type Target interface {
	ID() common.BodyID
	Position() mgl32.Vec3
	Radius() float32
}

type hit struct {
	id   common.BodyID
	dist float32
}

// SphereCaster intersects picking rays with the hit spheres of its targets.
type SphereCaster struct {
	targets []Target
}

var _ click_arbiter.RayCaster = &SphereCaster{}

// NewSphereCaster creates a SphereCaster over targets. Nil targets are skipped.
//
// Parameters:
//   - targets: the interactive bodies
//
// Returns:
//   - *SphereCaster: the ray-caster
func NewSphereCaster(targets ...Target) *SphereCaster {
	s := &SphereCaster{}
	for _, t := range targets {
		if t != nil {
			s.targets = append(s.targets, t)
		}
	}
	return s
}

// Raycast returns the ids of targets under the viewport point, nearest first.
// It returns nil when the view is nil or cannot build a ray.
func (s *SphereCaster) Raycast(view click_arbiter.CameraView, x, y float32) []common.BodyID {
	if view == nil || len(s.targets) == 0 {
		return nil
	}
	ray, ok := view.ScreenRay(x, y)
	if !ok {
		return nil
	}
	return s.Intersect(ray)
}

// Intersect returns the ids of targets hit by ray, nearest first.
func (s *SphereCaster) Intersect(ray common.Ray) []common.BodyID {
	var hits []hit
	for _, t := range s.targets {
		if d, ok := common.RaySphere(ray, t.Position(), t.Radius()); ok {
			hits = append(hits, hit{id: t.ID(), dist: d})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		}
		return 0
	})

	ids := make([]common.BodyID, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

// Pick returns the nearest target under the viewport point, or nil.
func (s *SphereCaster) Pick(view click_arbiter.CameraView, x, y float32) *common.BodyID {
	ids := s.Raycast(view, x, y)
	if len(ids) == 0 {
		return nil
	}
	return ids[0].Ref()
}
