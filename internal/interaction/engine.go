package interaction

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
)

// InputSurface delivers pointer-move events to subscribers.
type InputSurface interface {
	Subscribe(fn func(RawPointer)) int
	Unsubscribe(id int)
}

// Content is the read-only region table the engine consults.
type Content interface {
	Resolver
	Lookup(id region.ID) region.Bundle
}

// Options tunes the engine. Zero fields take the defaults; a negative
// FadeDuration makes region changes snap straight to full opacity.
type Options struct {
	Debounce       time.Duration
	RiseRate       float64
	FallRate       float64
	FadeDuration   time.Duration
	HighlightColor *scene.Color
	Logger         *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.RiseRate <= 0 {
		o.RiseRate = DefaultRiseRate
	}
	if o.FallRate <= 0 {
		o.FallRate = DefaultFallRate
	}
	if o.FadeDuration < 0 {
		o.FadeDuration = 0
	} else if o.FadeDuration == 0 {
		o.FadeDuration = DefaultFadeDuration
	}
	if o.HighlightColor == nil {
		c := DefaultHighlight
		o.HighlightColor = &c
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Engine owns the pointer and hover state and drives the reveal animation.
// It is not safe for concurrent use: pointer handling and frame ticks must
// run on the same goroutine.
type Engine struct {
	sampler    *Sampler
	tester     HitTester
	animator   *Animator
	fade       *RegionFade
	compositor Compositor
	content    Content
	scene      SceneProvider
	log        *zap.Logger

	pointer PointerState
	hover   HoverState

	surface InputSurface
	subID   int
	now     func() time.Time
}

// NewEngine wires the engine to its collaborators. cam may be unmounted;
// content must not be nil.
func NewEngine(cam CameraProvider, sc SceneProvider, content Content, opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		sampler:    NewSampler(opts.Debounce),
		tester:     HitTester{Camera: cam, Scene: sc, Resolver: content},
		animator:   NewAnimator(opts.RiseRate, opts.FallRate),
		fade:       NewRegionFade(opts.FadeDuration),
		compositor: Compositor{Resolver: content, Color: *opts.HighlightColor},
		content:    content,
		scene:      sc,
		log:        opts.Logger,
		now:        time.Now,
	}
}

// Attach subscribes the engine to pointer moves from surface, replacing any
// previous subscription.
func (e *Engine) Attach(surface InputSurface) {
	e.Close()
	e.surface = surface
	e.subID = surface.Subscribe(func(raw RawPointer) {
		e.HandleSample(raw, e.now())
	})
}

// Close deregisters the pointer listener and drops any pending sample.
func (e *Engine) Close() {
	if e.surface != nil {
		e.surface.Unsubscribe(e.subID)
		e.surface = nil
	}
	e.sampler.Cancel()
}

// HandleSample queues a raw pointer event for debounced processing.
func (e *Engine) HandleSample(raw RawPointer, now time.Time) {
	e.sampler.Sample(raw, now)
}

// Poll processes the coalesced pointer sample once its debounce window has
// elapsed. It returns the hover state and whether a sample was applied.
func (e *Engine) Poll(now time.Time) (HoverState, bool) {
	p, ok := e.sampler.Poll(now)
	if !ok {
		return e.hover, false
	}
	return e.Apply(p)
}

// Apply hit-tests p and commits the new pointer and hover state. When the
// camera or scene is unavailable the sample is skipped and state is kept.
func (e *Engine) Apply(p PointerState) (HoverState, bool) {
	hover, ok := e.tester.Test(p)
	if !ok {
		return e.hover, false
	}
	e.pointer, e.hover = p, hover
	if e.fade.Switch(hover.Region) {
		e.log.Debug("region changed", zap.String("region", string(hover.Region)))
	}
	return hover, true
}

// Hover returns the current hover state.
func (e *Engine) Hover() HoverState {
	return e.hover
}

// Pointer returns the last applied pointer position.
func (e *Engine) Pointer() PointerState {
	return e.pointer
}

// Progress returns the current reveal progress.
func (e *Engine) Progress() float64 {
	return e.animator.Progress()
}

// Tick advances the reveal animation and region fade by dt seconds and
// returns the derived frame.
func (e *Engine) Tick(dt float64) Frame {
	e.animator.Advance(e.hover.RevealTarget, dt)
	e.fade.Update(dt)
	return e.Frame()
}

// Frame derives the visual state from the current engine state without
// advancing time.
func (e *Engine) Frame() Frame {
	var meshes []*scene.Node
	if e.scene != nil {
		meshes = e.scene.Meshes()
	}
	return derive(e.animator.Progress(), e.hover, e.fade.Opacity(), e.content.Lookup(e.hover.Region),
		e.compositor.Compose(meshes, e.hover.Region))
}
