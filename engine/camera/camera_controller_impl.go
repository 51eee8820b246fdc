package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3 // live
	target   mgl32.Vec3
	lookAt   mgl32.Vec3

	angles        OrbitAngles
	radius        float32
	focusedRadius float32

	minRadius   float32
	maxRadius   float32
	polarMargin float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32

	smoother Smoother
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit controller. The default overview sits at
// (0, 30, 30) looking at the origin, and the camera starts there.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		angles:        OrbitAngles{Theta: 0, Phi: math.Pi / 4},
		radius:        30 * math.Sqrt2,
		focusedRadius: 10,

		minRadius:   5,
		maxRadius:   500,
		polarMargin: common.PolarMargin,

		orbitSpeed:       0.03,
		mouseSensitivity: 2.5,
		zoomSpeed:        2,

		smoother: NewLerpSmoother(DefaultLerpFactor),
	}

	for _, option := range options {
		option(cc)
	}

	cc.radius = common.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.angles.Phi = cc.clampPhi(cc.angles.Phi)
	cc.target = common.SphericalToCartesian(cc.radius, cc.angles.Theta, cc.angles.Phi)
	cc.position = cc.target
	return cc
}

// --- internal helpers ---

// clampPhi keeps phi inside (margin, π-margin).
func (cc *cameraControllerImpl) clampPhi(phi float32) float32 {
	return common.Clamp(phi, cc.polarMargin, math.Pi-cc.polarMargin)
}

// orbit applies an angle change. Caller must hold the mutex.
func (cc *cameraControllerImpl) orbit(dTheta, dPhi float32) {
	if !common.IsFinite(dTheta, dPhi) {
		return
	}
	cc.angles.Theta = float32(math.Remainder(float64(cc.angles.Theta+dTheta), 2*math.Pi))
	cc.angles.Phi = cc.clampPhi(cc.angles.Phi + dPhi)
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	if !common.IsFiniteVec3(p) {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = p
}

func (cc *cameraControllerImpl) TargetPosition() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) LookAt() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lookAt
}

func (cc *cameraControllerImpl) ViewDirection() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	d := cc.lookAt.Sub(cc.position)
	if d.Len() < 1e-6 {
		return mgl32.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

func (cc *cameraControllerImpl) Update(deltaTime float32, focus *mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	center := mgl32.Vec3{}
	radius := cc.radius
	if focus != nil && common.IsFiniteVec3(*focus) {
		center = *focus
		radius = cc.focusedRadius
	}

	cc.target = center.Add(common.SphericalToCartesian(radius, cc.angles.Theta, cc.angles.Phi))
	cc.lookAt = center

	if deltaTime <= 0 || !common.IsFinite(deltaTime) {
		return
	}
	cc.position = cc.smoother.Step(cc.position, cc.target, deltaTime)
}

func (cc *cameraControllerImpl) Reproject(center mgl32.Vec3) {
	if !common.IsFiniteVec3(center) {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()

	r, theta, phi := common.CartesianToSpherical(cc.position.Sub(center))
	if r < 1e-6 {
		return
	}
	cc.angles = OrbitAngles{Theta: theta, Phi: cc.clampPhi(phi)}
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	if !common.IsFinite(delta) {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(cc.radius-delta*cc.zoomSpeed, cc.minRadius, cc.maxRadius)
}

func (cc *cameraControllerImpl) Smoother() Smoother {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.smoother
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) Angles() OrbitAngles {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.angles
}

func (cc *cameraControllerImpl) SetAngles(a OrbitAngles) {
	if !common.IsFinite(a.Theta, a.Phi) {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.angles = OrbitAngles{Theta: a.Theta, Phi: cc.clampPhi(a.Phi)}
}

func (cc *cameraControllerImpl) Orbit(dTheta, dPhi float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(dTheta, dPhi)
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(-cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(0, -cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(0, cc.orbitSpeed)
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	if !common.IsFinite(radius) {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(radius, cc.minRadius, cc.maxRadius)
}

func (cc *cameraControllerImpl) FocusedRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.focusedRadius
}

func (cc *cameraControllerImpl) MinRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxRadius
}

func (cc *cameraControllerImpl) PolarMargin() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.polarMargin
}

func (cc *cameraControllerImpl) OrbitSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}
