// Package config loads orrery settings with viper: built-in defaults, an optional config
// file, and ORRERY_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/spf13/viper"
)

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "oxy-orrery"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the full orrery configuration.
type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Log       LogConfig       `mapstructure:"log"`
	Momentum  MomentumConfig  `mapstructure:"momentum"`
	Camera    CameraConfig    `mapstructure:"camera"`
	SceneDrag SceneDragConfig `mapstructure:"scene_drag"`
	Bodies    []BodyConfig    `mapstructure:"bodies"`
}

// WindowConfig sizes the host window and the frame loop.
type WindowConfig struct {
	Title      string  `mapstructure:"title"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	FrameLimit float64 `mapstructure:"frame_limit"`
	Profiling  bool    `mapstructure:"profiling"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// MomentumConfig tunes drag-driven spin shared by every body.
type MomentumConfig struct {
	Gain          float32 `mapstructure:"gain"`
	RotationSpeed float32 `mapstructure:"rotation_speed"`
	RestThreshold float32 `mapstructure:"rest_threshold"`
	DampingBase   float32 `mapstructure:"damping_base"`
	DampingGain   float32 `mapstructure:"damping_gain"`
	DampingBoost  float32 `mapstructure:"damping_boost"`
	DampingMax    float32 `mapstructure:"damping_max"`
	DragThreshold float32 `mapstructure:"drag_threshold"`
}

// CameraConfig tunes the orbit camera and its smoothing.
type CameraConfig struct {
	Radius           float32 `mapstructure:"radius"`
	FocusedRadius    float32 `mapstructure:"focused_radius"`
	MinRadius        float32 `mapstructure:"min_radius"`
	MaxRadius        float32 `mapstructure:"max_radius"`
	OrbitSpeed       float32 `mapstructure:"orbit_speed"`
	ZoomSpeed        float32 `mapstructure:"zoom_speed"`
	MouseSensitivity float32 `mapstructure:"mouse_sensitivity"`
	// Smoother is "lerp" or "spring".
	Smoother        string  `mapstructure:"smoother"`
	LerpFactor      float32 `mapstructure:"lerp_factor"`
	SpringFrequency float64 `mapstructure:"spring_frequency"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
}

// SceneDragConfig tunes background drags.
type SceneDragConfig struct {
	// Mode is "orbit" or "rotate".
	Mode        string  `mapstructure:"mode"`
	Sensitivity float32 `mapstructure:"sensitivity"`
}

// BodyConfig describes one interactive body.
type BodyConfig struct {
	ID        string           `mapstructure:"id"`
	Position  [3]float32       `mapstructure:"position"`
	Radius    float32          `mapstructure:"radius"`
	IdleSpin  float32          `mapstructure:"idle_spin"`
	Shell     *ShellConfig     `mapstructure:"shell"`
	Satellite *SatelliteConfig `mapstructure:"satellite"`

	// RotationSpeed overrides momentum.rotation_speed for this body when > 0.
	RotationSpeed float32 `mapstructure:"rotation_speed"`
}

// ShellConfig is an outer layer (clouds) that turns with the body and drifts on its own.
type ShellConfig struct {
	Radius float32 `mapstructure:"radius"`
	Drift  float32 `mapstructure:"drift"`
}

// SatelliteConfig is a small body orbiting its parent in the XZ plane.
type SatelliteConfig struct {
	Distance float32 `mapstructure:"distance"`
	Radius   float32 `mapstructure:"radius"`
	Speed    float32 `mapstructure:"speed"`
}

// DefaultBodies returns the built-in body table: earth with clouds and a moon at the
// origin, and mars out on +X.
func DefaultBodies() []BodyConfig {
	return []BodyConfig{
		{
			ID:            "earth",
			Radius:        2,
			IdleSpin:      0.0225,
			RotationSpeed: 15,
			Shell:         &ShellConfig{Radius: 2.05, Drift: 0.0225},
			Satellite:     &SatelliteConfig{Distance: 7, Radius: 0.5, Speed: 0.06},
		},
		{
			ID:            "mars",
			Position:      [3]float32{20, 0, 0},
			Radius:        1.2,
			IdleSpin:      0.03,
			RotationSpeed: 20,
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", DefaultTitle)
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.frame_limit", 0)
	v.SetDefault("window.profiling", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)

	v.SetDefault("momentum.gain", 150)
	v.SetDefault("momentum.rotation_speed", 15)
	v.SetDefault("momentum.rest_threshold", 0.001)
	v.SetDefault("momentum.damping_base", 0.90)
	v.SetDefault("momentum.damping_gain", 0.015)
	v.SetDefault("momentum.damping_boost", 0.05)
	v.SetDefault("momentum.damping_max", 0.99)
	v.SetDefault("momentum.drag_threshold", 0)

	v.SetDefault("camera.radius", 42.426407)
	v.SetDefault("camera.focused_radius", 10)
	v.SetDefault("camera.min_radius", 5)
	v.SetDefault("camera.max_radius", 500)
	v.SetDefault("camera.orbit_speed", 0.03)
	v.SetDefault("camera.zoom_speed", 2)
	v.SetDefault("camera.mouse_sensitivity", 2.5)
	v.SetDefault("camera.smoother", "lerp")
	v.SetDefault("camera.lerp_factor", 0.1)
	v.SetDefault("camera.spring_frequency", 6)
	v.SetDefault("camera.spring_damping", 1)

	v.SetDefault("scene_drag.mode", "orbit")
	v.SetDefault("scene_drag.sensitivity", 2.5)
}

// Load reads the configuration. An empty path loads only defaults and environment
// overrides (ORRERY_CAMERA_RADIUS and so on). The file format follows the extension.
//
// Parameters:
//   - path: config file path, or ""
//
// Returns:
//   - *Config: the loaded, validated configuration
//   - error: read, decode or validation failure
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ORRERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Bodies) == 0 {
		cfg.Bodies = DefaultBodies()
	}
	cfg.Window.Title = common.Coalesce(strings.TrimSpace(cfg.Window.Title), DefaultTitle)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the engine cannot repair on its own.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	switch c.Camera.Smoother {
	case "lerp", "spring":
	default:
		return fmt.Errorf("%w: unknown camera smoother %q", ErrInvalid, c.Camera.Smoother)
	}
	switch c.SceneDrag.Mode {
	case "orbit", "rotate":
	default:
		return fmt.Errorf("%w: unknown scene drag mode %q", ErrInvalid, c.SceneDrag.Mode)
	}
	if c.Camera.MinRadius <= 0 || c.Camera.MaxRadius < c.Camera.MinRadius {
		return fmt.Errorf("%w: camera radius bounds [%g, %g]", ErrInvalid, c.Camera.MinRadius, c.Camera.MaxRadius)
	}

	seen := make(map[string]struct{}, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.ID == "" {
			return fmt.Errorf("%w: body %d has no id", ErrInvalid, i)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate body id %q", ErrInvalid, b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.Radius <= 0 {
			return fmt.Errorf("%w: body %q radius %g", ErrInvalid, b.ID, b.Radius)
		}
		if b.RotationSpeed < 0 {
			return fmt.Errorf("%w: body %q rotation speed %g", ErrInvalid, b.ID, b.RotationSpeed)
		}
	}
	return nil
}
