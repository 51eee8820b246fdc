package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultLerpFactor is the fraction of the remaining distance covered per 60 Hz frame.
const DefaultLerpFactor = 0.1

// Smoother moves the live camera position toward its target once per frame.
type Smoother interface {
	// Step returns the new live position.
	//
	// Parameters:
	//   - live: the current position
	//   - target: the position being approached
	//   - deltaTime: frame time in seconds, always > 0
	//
	// Returns:
	//   - mgl32.Vec3: the next position
	Step(live, target mgl32.Vec3, deltaTime float32) mgl32.Vec3

	// Reset drops any internal velocity.
	Reset()
}

// LerpSmoother covers a fixed fraction of the remaining distance every 60 Hz frame.
// Other frame rates are corrected so the approach takes the same wall-clock time.
// The approach is monotonic and never overshoots.
type LerpSmoother struct {
	factor float32
}

var _ Smoother = &LerpSmoother{}

// NewLerpSmoother creates a LerpSmoother.
//
// Parameters:
//   - factor: fraction per 60 Hz frame in (0, 1]; other values fall back to DefaultLerpFactor
//
// Returns:
//   - *LerpSmoother: the smoother
func NewLerpSmoother(factor float32) *LerpSmoother {
	if !(factor > 0 && factor <= 1) {
		factor = DefaultLerpFactor
	}
	return &LerpSmoother{factor: factor}
}

// Factor returns the per-frame fraction.
func (s *LerpSmoother) Factor() float32 {
	return s.factor
}

func (s *LerpSmoother) Step(live, target mgl32.Vec3, deltaTime float32) mgl32.Vec3 {
	t := 1 - math.Pow(float64(1-s.factor), float64(deltaTime)*60)
	return live.Add(target.Sub(live).Mul(float32(t)))
}

func (s *LerpSmoother) Reset() {}

// SpringSmoother drives each axis with a harmonica spring. With a damping ratio of 1 the
// spring is critically damped and settles without overshoot.
type SpringSmoother struct {
	frequency float64
	damping   float64

	spring   harmonica.Spring
	lastStep float32
	velocity [3]float64
}

var _ Smoother = &SpringSmoother{}

// NewSpringSmoother creates a SpringSmoother.
//
// Parameters:
//   - frequency: angular frequency, higher is faster (non-positive values use 6)
//   - damping: damping ratio, 1 is critical (negative values use 1)
//
// Returns:
//   - *SpringSmoother: the smoother
func NewSpringSmoother(frequency, damping float64) *SpringSmoother {
	if frequency <= 0 {
		frequency = 6
	}
	if damping < 0 {
		damping = 1
	}
	return &SpringSmoother{frequency: frequency, damping: damping}
}

func (s *SpringSmoother) Step(live, target mgl32.Vec3, deltaTime float32) mgl32.Vec3 {
	if deltaTime != s.lastStep {
		s.spring = harmonica.NewSpring(float64(deltaTime), s.frequency, s.damping)
		s.lastStep = deltaTime
	}
	var out mgl32.Vec3
	for i := range 3 {
		pos, vel := s.spring.Update(float64(live[i]), s.velocity[i], float64(target[i]))
		out[i] = float32(pos)
		s.velocity[i] = vel
	}
	return out
}

func (s *SpringSmoother) Reset() {
	s.velocity = [3]float64{}
}
