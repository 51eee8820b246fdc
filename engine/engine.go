package engine

import (
	"slices"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/rs/zerolog"
)

// Host is the window the engine runs in. window.Window implements it.
type Host interface {
	SetUpdateCallback(callback func())
	SetResizeCallback(callback func(width, height int))
	ProcessMessages()
	IsRunning() bool
	Close() error
}

// engine implements the Engine interface.
// Everything runs on the goroutine that calls Run: the host dispatches input, then the
// update callback steps the frame.
type engine struct {
	log     zerolog.Logger
	host    Host
	running bool

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	resizeCallback func(width, height int)
	scenes         map[int]scene.Scene

	frameLimit   time.Duration // minimum frame duration; 0 = uncapped
	maxDeltaTime float32
	lastFrame    time.Time
}

// Engine is the main entry point for the engine.
// It drives the frame loop: input callbacks first, then the tick callback and every
// active scene in ascending key order.
type Engine interface {
	// Host returns the window the engine runs in, or nil.
	//
	// Returns:
	//   - Host: the host
	Host() Host

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each frame before the scenes tick.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetResizeCallback registers the function called after the engine has updated every
	// scene camera's aspect ratio for a new window size.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// AddScene registers a scene at the given key.
	// Scenes tick in ascending key order.
	//
	// Parameters:
	//   - key: ordering key (lower ticks first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Step runs one frame with an explicit delta time. Run calls it once per loop
	// iteration; tests and headless hosts call it directly. deltaTime is clamped to the
	// configured maximum.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds
	Step(deltaTime float32)

	// Run starts the frame loop and blocks until the host closes. On return every scene
	// has been closed.
	Run()

	// Quit stops the loop after the current frame.
	// Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (host, profiling, scenes, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		log:          zerolog.Nop(),
		scenes:       make(map[int]scene.Scene),
		maxDeltaTime: 0.1,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.log, time.Second)
	}

	if e.host != nil {
		e.host.SetResizeCallback(func(width, height int) {
			if width <= 0 || height <= 0 {
				return
			}
			for _, s := range e.scenes {
				if c := s.Camera(); c != nil {
					c.SetAspect(float32(width) / float32(height))
				}
			}
			if e.resizeCallback != nil {
				e.resizeCallback(width, height)
			}
		})
	}

	return e
}

func (e *engine) Host() Host {
	return e.host
}

func (e *engine) Run() {
	if e.host == nil {
		e.log.Warn().Msg("run called without a host")
		return
	}
	e.running = true
	e.lastFrame = time.Now()

	e.host.SetUpdateCallback(func() {
		if !e.running {
			_ = e.host.Close()
			return
		}
		now := time.Now()
		e.Step(float32(now.Sub(e.lastFrame).Seconds()))
		e.lastFrame = now

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})
	e.host.ProcessMessages()
	e.running = false

	for _, k := range e.keys() {
		e.scenes[k].Close()
	}
	e.log.Info().Msg("engine stopped")
}

func (e *engine) Quit() {
	e.running = false
}

func (e *engine) Step(deltaTime float32) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > e.maxDeltaTime {
		deltaTime = e.maxDeltaTime
	}

	if e.tickCallback != nil {
		e.tickCallback(deltaTime)
	}
	for _, k := range e.keys() {
		if s := e.scenes[k]; s.Active() {
			s.Tick(deltaTime)
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// keys returns the scene keys in ascending order.
func (e *engine) keys() []int {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	if s == nil {
		return
	}
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
