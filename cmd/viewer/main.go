package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hubastard/orbit/engine/assets"
	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/core"
	glbackend "github.com/hubastard/orbit/engine/gfx/gl"
	"github.com/hubastard/orbit/engine/platform"
	"github.com/hubastard/orbit/engine/profiler"
	"github.com/hubastard/orbit/engine/scene"
	"github.com/hubastard/orbit/engine/settings"
	"github.com/hubastard/orbit/engine/viewport"
	"github.com/spf13/cobra"
)

type options struct {
	settingsPath   string
	shaderDir      string
	width, height  int
	vsync          bool
	capturePath    string
	captureAndExit bool
	profilePath    string
	fontPath       string
	fontSize       float32
	zoomSpeed      float32
}

func main() {
	var opts options
	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Interactive 3D viewport",
		Long: `viewer - interactive 3D viewport

Controls:
  Left drag    - Orbit
  Right drag   - Pan
  Wheel        - Zoom
  W/S          - Move forward/backward
  Left Alt     - Suspend camera input
  F12          - Save a capture
  Esc          - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.settingsPath, "settings", "", "Path to a TOML settings file (watched for changes)")
	f.StringVar(&opts.shaderDir, "shaders", "", "Directory overriding the built-in shaders")
	f.IntVar(&opts.width, "width", 1280, "Window width")
	f.IntVar(&opts.height, "height", 720, "Window height")
	f.BoolVar(&opts.vsync, "vsync", true, "Wait for vertical sync")
	f.StringVar(&opts.capturePath, "capture", "capture.png", "Capture file written on F12 (format from extension)")
	f.BoolVar(&opts.captureAndExit, "capture-and-exit", false, "Render one frame, save it to --capture and exit")
	f.StringVar(&opts.profilePath, "profile", "", "Write a speedscope profile on exit (profile builds only)")
	f.StringVar(&opts.fontPath, "font", "", "TTF/OTF font for the scene information (built-in bitmap font if empty)")
	f.Float32Var(&opts.fontSize, "font-size", 14, "Font size in pixels for --font")
	f.Float32Var(&opts.zoomSpeed, "zoom-speed", 1, "Multiplier for wheel and W/S zoom")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, err := loadSettings(ctx, opts.settingsPath)
	if err != nil {
		return err
	}
	shaders := assets.BuiltinShaders()
	if opts.shaderDir != "" {
		shaders = assets.ShadersFrom(opts.shaderDir)
	}

	profiler.Init(1 << 12)

	cfg := core.Config{
		Title:      "Orbit",
		Width:      opts.width,
		Height:     opts.height,
		VSync:      opts.vsync,
		ClearColor: colors.DarkGray,
		FontPath:   opts.fontPath,
		FontSize:   opts.fontSize,
	}
	win, err := platform.NewGLFWWindow(cfg, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	renderer, err := glbackend.NewRendererGL(win, cfg)
	if err != nil {
		return err
	}
	defer renderer.Shutdown()

	vp := viewport.New(renderer, win, store)
	scaleZoom(vp.Controller(), opts.zoomSpeed)
	demo := newDemoScene(renderer)
	defer demo.Release()
	vp.ShaderSetup = func() error {
		vs, fs, err := shaders.LoadPair("lambert")
		if err != nil {
			return err
		}
		return demo.Setup(vs, fs)
	}
	if err := vp.Load(win.FramebufferSize()); err != nil {
		return err
	}
	vp.Bind(demo)
	vp.Attachments().Push(&axesGizmo{Length: 1})
	vp.Attachments().Push(&titleStats{win: win, every: 30})

	h := &host{vp: vp, win: win, capturePath: opts.capturePath, captureAndExit: opts.captureAndExit}
	if err := core.Run(win, h, h.onEvent); err != nil {
		return err
	}

	if opts.profilePath != "" {
		if err := profiler.Dump(opts.profilePath); err != nil {
			log.Printf("profile dump: %v", err)
		}
	}
	return h.err
}

func loadSettings(ctx context.Context, path string) (*settings.Store, error) {
	if path == "" {
		return settings.NewStore(settings.Default()), nil
	}
	s, err := settings.Load(path)
	if err != nil {
		return nil, err
	}
	store := settings.NewStore(s)
	if err := store.Watch(ctx, path); err != nil {
		log.Printf("settings hot reload disabled: %v", err)
	}
	return store, nil
}

func scaleZoom(cc *scene.Controller, k float32) {
	if k <= 0 {
		return
	}
	cc.KeyZoomStep *= k
	cc.WheelZoomScale *= k
}
