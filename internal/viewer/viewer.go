// Package viewer wires the window, renderer, input surface and interaction
// engine into the frame loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/toothview/internal/config"
	"github.com/Faultbox/toothview/internal/engine/camera"
	"github.com/Faultbox/toothview/internal/engine/debug"
	"github.com/Faultbox/toothview/internal/engine/input"
	"github.com/Faultbox/toothview/internal/engine/renderer"
	"github.com/Faultbox/toothview/internal/engine/window"
	"github.com/Faultbox/toothview/internal/interaction"
	"github.com/Faultbox/toothview/internal/logger"
	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
)

// Title is the base window title.
const Title = "ToothView"

// Viewer is the running application.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	scene   *scene.Scene
	content *region.Live
	watcher *region.Watcher
	cancel  context.CancelFunc
	mount   camera.Mount
	engine  *interaction.Engine

	title string
}

// New loads content, opens the window and builds the engine.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg,
		log:   logger.Named("viewer"),
		shots: debug.NewScreenshotCapture("screenshots", "toothview"),
		title: Title,
	}

	var err error
	if v.scene, err = scene.Load(cfg.Content.ScenePath); err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}
	table, err := region.Load(cfg.Content.BundlesPath)
	if err != nil {
		return nil, fmt.Errorf("loading region content: %w", err)
	}
	v.content = region.NewLive(table)
	v.log.Info("content loaded",
		zap.Int("meshes", len(v.scene.Meshes())),
		zap.Int("regions", len(table.IDs())),
	)

	// Window first: the renderer needs a current GL context.
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.DefaultConfig(dw, dh))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.Upload(v.scene)

	ww, wh := v.window.GetSize()
	v.input = input.New(ww, wh)

	// The camera is mounted after the scene exists; until then hit tests
	// are skipped.
	v.engine = interaction.NewEngine(&v.mount, v.scene, v.content, EngineOptions(cfg, logger.Named("interaction")))
	v.engine.Attach(v.input)
	v.mount.Attach(NewCamera(cfg.Camera, v.scene.Bounds(), ww, wh))

	if cfg.Content.Watch && cfg.Content.BundlesPath != "" {
		if err := v.watchContent(cfg.Content.BundlesPath); err != nil {
			v.log.Warn("content watch disabled", zap.Error(err))
		}
	}

	v.log.Info("viewer initialized")
	return v, nil
}

func (v *Viewer) watchContent(path string) error {
	w, err := region.NewWatcher(path, logger.Named("content"))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.watcher, v.cancel = w, cancel
	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			v.log.Warn("content watcher stopped", zap.Error(err))
		}
	}()
	v.log.Info("watching region content", zap.String("path", path))
	return nil
}

// applyContentUpdates swaps in a reloaded table, if one is waiting. It runs
// on the frame loop so the engine never sees a table change mid-sample.
func (v *Viewer) applyContentUpdates() {
	if v.watcher == nil {
		return
	}
	select {
	case t := <-v.watcher.Updates():
		v.content.Set(t)
	default:
	}
}

// EngineOptions maps the interaction config onto engine options.
func EngineOptions(cfg *config.Config, log *zap.Logger) interaction.Options {
	ic := cfg.Interaction
	hl := scene.RGB(ic.HighlightColor[0], ic.HighlightColor[1], ic.HighlightColor[2])
	return interaction.Options{
		Debounce:       ic.Debounce,
		RiseRate:       ic.RiseRate,
		FallRate:       ic.FallRate,
		FadeDuration:   ic.FadeDuration,
		HighlightColor: &hl,
		Logger:         log,
	}
}

// NewCamera builds the orbit camera from config and frames bounds. A zero
// configured distance keeps the fitted distance.
func NewCamera(cc config.CameraConfig, bounds scene.Bounds, width, height int) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.FOV = cc.FOVDegrees * math32.Pi / 180
	cam.Near = cc.Near
	cam.Far = cc.Far
	cam.Pitch = cc.Pitch
	cam.Yaw = cc.Yaw
	cam.SetViewport(width, height)
	cam.FitToBounds(bounds.Min, bounds.Max)
	if cc.Distance > 0 {
		cam.Distance = math32.Max(cam.MinDistance, math32.Min(cam.MaxDistance, cc.Distance))
	}
	return cam
}

// Run starts the frame loop and blocks until the viewer quits.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		v.applyContentUpdates()

		// Pointer samples are applied once their debounce window has
		// elapsed, before the animation tick of the same frame.
		v.engine.Poll(now)
		frame := v.engine.Tick(dt)
		v.updateTitle(frame)

		cam := v.mount.Camera()
		v.renderer.Draw(frame, v.scene.Meshes(), renderer.View{
			ViewProj: cam.ViewProjection(),
			Eye:      cam.Position(),
		})
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", time.Duration(dt*float64(time.Second))))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvent(event input.Event) {
	cam := v.mount.Camera()
	switch event.Type {
	case input.EventWindowResize:
		cam.SetViewport(event.Width, event.Height)
		dw, dh := v.window.DrawableSize()
		v.renderer.Resize(dw, dh)
	case input.EventMouseMove:
		if event.Dragging {
			cam.HandleDrag(float32(event.RelX), float32(event.RelY))
		}
	case input.EventMouseWheel:
		cam.HandleZoom(event.Wheel)
	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_R:
			ww, wh := v.input.Viewport()
			v.mount.Attach(NewCamera(v.cfg.Camera, v.scene.Bounds(), ww, wh))
		case sdl.SCANCODE_F3:
			v.log.Debug("bounds overlay", zap.Bool("visible", v.renderer.ToggleBounds()))
		case sdl.SCANCODE_F12:
			v.screenshot()
		}
	}
}

func (v *Viewer) updateTitle(f interaction.Frame) {
	title := WindowTitle(f)
	if title == v.title {
		return
	}
	v.title = title
	v.window.SetTitle(title)
}

// WindowTitle names the hovered region next to the application title.
func WindowTitle(f interaction.Frame) string {
	if f.Bundle.IsDefault() || f.Bundle.Name == "" {
		return Title
	}
	return Title + " | " + f.Bundle.Name
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close deregisters the pointer listener before tearing down the camera,
// renderer and window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.engine != nil {
		v.engine.Close()
	}
	if v.watcher != nil {
		v.cancel()
		_ = v.watcher.Close()
	}
	v.mount.Detach()
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
