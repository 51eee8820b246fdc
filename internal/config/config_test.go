package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, float32(150), cfg.Momentum.Gain)
	assert.InDelta(t, 0.9, cfg.Momentum.DampingBase, 1e-6)
	assert.Equal(t, float32(10), cfg.Camera.FocusedRadius)
	assert.Equal(t, "lerp", cfg.Camera.Smoother)
	assert.Equal(t, "orbit", cfg.SceneDrag.Mode)

	require.Len(t, cfg.Bodies, 2)
	earth := cfg.Bodies[0]
	assert.Equal(t, "earth", earth.ID)
	require.NotNil(t, earth.Shell)
	require.NotNil(t, earth.Satellite)
	assert.Equal(t, float32(7), earth.Satellite.Distance)
	assert.Equal(t, [3]float32{20, 0, 0}, cfg.Bodies[1].Position)
	assert.Equal(t, float32(15), earth.RotationSpeed)
	assert.Equal(t, float32(20), cfg.Bodies[1].RotationSpeed)
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := writeFile(t, "orrery.yaml", `
window:
  title: "  "
  width: 800
camera:
  smoother: spring
  focused_radius: 6
scene_drag:
  mode: rotate
bodies:
  - id: venus
    position: [-8, 0, 2]
    radius: 1.5
    rotation_speed: 9
    shell:
      radius: 1.6
      drift: 0.01
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "spring", cfg.Camera.Smoother)
	assert.Equal(t, float32(6), cfg.Camera.FocusedRadius)
	assert.Equal(t, "rotate", cfg.SceneDrag.Mode)

	require.Len(t, cfg.Bodies, 1)
	assert.Equal(t, "venus", cfg.Bodies[0].ID)
	assert.Equal(t, [3]float32{-8, 0, 2}, cfg.Bodies[0].Position)
	assert.Equal(t, float32(9), cfg.Bodies[0].RotationSpeed)
	require.NotNil(t, cfg.Bodies[0].Shell)
	assert.Nil(t, cfg.Bodies[0].Satellite)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ORRERY_CAMERA_ZOOM_SPEED", "4")
	t.Setenv("ORRERY_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.Camera.ZoomSpeed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeFile(t, "bad.json", `{"camera": {"smoother": "bouncy"}}`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)

	path = writeFile(t, "dup.json", `{"bodies": [{"id": "a", "radius": 1}, {"id": "a", "radius": 2}]}`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Bodies = append(cfg.Bodies, BodyConfig{ID: "pluto"})
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Bodies = cfg.Bodies[:2]
	cfg.Bodies[1].RotationSpeed = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Bodies[1].RotationSpeed = 0
	cfg.Window.Height = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
