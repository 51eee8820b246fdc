// package common contains plain types and math helpers shared by every engine package. They are not interface-wrapped structs,
// and they wrap the mgl32 vector/quaternion primitives the rest of the engine is written against.
package common

import "github.com/go-gl/mathgl/mgl32"

// BodyID is the stable identifier of an interactive body, unique within a scene.
type BodyID string

// Ref returns a pointer to a copy of id. Pointer events use *BodyID for the optional
// hit target, nil meaning the background.
func (id BodyID) Ref() *BodyID {
	return &id
}

// Ray is a world-space half-line.
type Ray struct {
	// Origin is the start point of the ray.
	Origin mgl32.Vec3

	// Direction is the unit direction of the ray.
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// WorldUp is the scene's up axis.
var WorldUp = mgl32.Vec3{0, 1, 0}
