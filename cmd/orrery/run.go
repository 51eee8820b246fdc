package main

import (
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/engine"
	"github.com/Carmen-Shannon/oxy-orrery/engine/input"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
	"github.com/Carmen-Shannon/oxy-orrery/internal/app"
	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
	"github.com/Carmen-Shannon/oxy-orrery/internal/logging"
	"github.com/spf13/cobra"
)

var (
	runWidth  int
	runHeight int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the orrery window",
	Args:  cobra.NoArgs,
	RunE:  runOrrery,
}

var keyActions = map[window.Key]app.Action{
	window.KeyLeft:   app.ActionOrbitLeft,
	window.KeyRight:  app.ActionOrbitRight,
	window.KeyUp:     app.ActionOrbitUp,
	window.KeyDown:   app.ActionOrbitDown,
	window.KeyEqual:  app.ActionZoomIn,
	window.KeyMinus:  app.ActionZoomOut,
	window.KeyEscape: app.ActionQuit,
}

func init() {
	runCmd.Flags().IntVar(&runWidth, "width", 0, "window width in pixels (overrides config)")
	runCmd.Flags().IntVar(&runHeight, "height", 0, "window height in pixels (overrides config)")
	rootCmd.AddCommand(runCmd)
}

func runOrrery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	app.ApplyOverrides(cfg, logLevel, runWidth, runHeight)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Console)
	s := app.BuildScene(cfg, log, app.NewLogSink(log))

	w, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return err
	}

	tr := input.NewTranslator(s, w.Width(), w.Height())
	w.SetMouseDownCallback(tr.ButtonDown)
	w.SetMouseUpCallback(tr.ButtonUp)
	w.SetMouseMoveCallback(tr.Move)
	w.SetScrollCallback(tr.Scroll)

	eng := engine.NewEngine(
		engine.WithLogger(log),
		engine.WithHost(w),
		engine.WithScene(0, s),
		engine.WithFrameLimit(cfg.Window.FrameLimit),
		engine.WithProfiling(cfg.Window.Profiling, 5*time.Second),
	)
	eng.SetResizeCallback(tr.Resize)
	w.SetKeyDownCallback(func(k window.Key) {
		if app.Apply(s, keyActions[k]) {
			eng.Quit()
		}
	})

	log.Info().Int("bodies", len(s.Bodies())).Str("config", configPath).Msg("orrery running")
	eng.Run()
	return nil
}
