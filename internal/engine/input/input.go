// Package input turns SDL2 events into viewer events and serves as the
// pointer-move surface for the interaction engine.
package input

import (
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/toothview/internal/interaction"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	// RelX and RelY are the motion deltas for EventMouseMove.
	RelX   int
	RelY   int
	Button uint8
	// Wheel is the vertical scroll amount for EventMouseWheel.
	Wheel float32
	// Dragging is set on EventMouseMove while the left button is held.
	Dragging bool
}

// Input polls SDL events, tracks the viewport size and fans pointer moves
// out to subscribers.
type Input struct {
	events []Event

	width, height int
	dragging      bool

	listeners map[int]func(interaction.RawPointer)
	nextID    int
}

// New creates an input handler for a viewport of the given size.
func New(width, height int) *Input {
	return &Input{
		events:    make([]Event, 0, 16),
		width:     width,
		height:    height,
		listeners: make(map[int]func(interaction.RawPointer)),
	}
}

// Subscribe registers fn for pointer moves and returns its id.
func (i *Input) Subscribe(fn func(interaction.RawPointer)) int {
	i.nextID++
	i.listeners[i.nextID] = fn
	return i.nextID
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (i *Input) Unsubscribe(id int) {
	delete(i.listeners, id)
}

// Listeners returns the number of registered pointer listeners.
func (i *Input) Listeners() int {
	return len(i.listeners)
}

// Viewport returns the last known viewport size in pixels.
func (i *Input) Viewport() (width, height int) {
	return i.width, i.height
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			return true
		}
	}
	return false
}

// handle converts a single SDL event. It returns true on quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.width, i.height = int(e.Data1), int(e.Data2)
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  i.width,
				Height: i.height,
			})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			i.events = append(i.events, Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Scancode,
			})
		} else if e.Type == sdl.KEYUP {
			i.events = append(i.events, Event{
				Type: EventKeyUp,
				Key:  e.Keysym.Scancode,
			})
		}

	case *sdl.MouseMotionEvent:
		i.events = append(i.events, Event{
			Type:     EventMouseMove,
			MouseX:   int(e.X),
			MouseY:   int(e.Y),
			RelX:     int(e.XRel),
			RelY:     int(e.YRel),
			Dragging: i.dragging,
		})
		i.dispatch(interaction.RawPointer{
			X:      float64(e.X),
			Y:      float64(e.Y),
			Width:  i.width,
			Height: i.height,
		})

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = true
			}
			i.events = append(i.events, Event{
				Type:   EventMouseDown,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		} else if e.Type == sdl.MOUSEBUTTONUP {
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = false
			}
			i.events = append(i.events, Event{
				Type:   EventMouseUp,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		}

	case *sdl.MouseWheelEvent:
		i.events = append(i.events, Event{
			Type:  EventMouseWheel,
			Wheel: float32(e.Y),
		})
	}
	return false
}

// dispatch calls listeners in subscription order.
func (i *Input) dispatch(raw interaction.RawPointer) {
	ids := make([]int, 0, len(i.listeners))
	for id := range i.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := i.listeners[id]; ok {
			fn(raw)
		}
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
