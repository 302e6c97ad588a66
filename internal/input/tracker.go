package input

import (
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-autoroll/internal/events"
)

const trackerListenerID = "input-tracker"

// Tracker holds the latest known input state. Later events always overwrite
// earlier ones; there is no queueing.
type Tracker struct {
	mu      sync.RWMutex
	current Snapshot
	logger  *zap.Logger
}

// NewTracker creates a tracker with nothing pressed and no pointer
func NewTracker(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{logger: logger}
}

// Install subscribes the tracker to every input event type on the bus
func (t *Tracker) Install(bus *events.Bus) {
	for _, eventType := range []events.EventType{
		events.EventTypeKeyDown,
		events.EventTypeKeyUp,
		events.EventTypePointerDown,
		events.EventTypePointerUp,
	} {
		bus.Subscribe(eventType, t)
	}
}

// KeyChanged overwrites the three modifier flags
func (t *Tracker) KeyChanged(alt, ctrl, shift bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current.Alt = alt
	t.current.Ctrl = ctrl
	t.current.Shift = shift
}

// PointerDown records the pointer coordinates
func (t *Tracker) PointerDown(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current.PointerX = &x
	t.current.PointerY = &y
}

// PointerUp clears the pointer coordinates
func (t *Tracker) PointerUp() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current.PointerX = nil
	t.current.PointerY = nil
}

// Snapshot returns a deep copy of the current state
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.current.Clone()
}

// HandleEvent implements events.EventListener. Events of the wrong shape are ignored.
func (t *Tracker) HandleEvent(event events.Event) error {
	switch event.GetType() {
	case events.EventTypeKeyDown, events.EventTypeKeyUp:
		e, ok := event.(*events.KeyEvent)
		if !ok || e == nil {
			t.logger.Debug("ignoring malformed key event")
			return nil
		}
		t.KeyChanged(e.Alt, e.Ctrl, e.Shift)
	case events.EventTypePointerDown:
		e, ok := event.(*events.PointerEvent)
		if !ok || e == nil {
			t.logger.Debug("ignoring malformed pointer event")
			return nil
		}
		t.PointerDown(e.X, e.Y)
	case events.EventTypePointerUp:
		t.PointerUp()
	}
	return nil
}

// Priority implements events.EventListener; input state is updated before anything else reacts
func (t *Tracker) Priority() int { return 0 }

// ID implements events.EventListener
func (t *Tracker) ID() string { return trackerListenerID }
