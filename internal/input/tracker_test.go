package input_test

import (
	"sync"
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/events"
	"github.com/KirkDiggler/dnd-autoroll/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_KeyEventsOverwrite(t *testing.T) {
	tracker := input.NewTracker(nil)
	bus := events.NewBus(nil)
	tracker.Install(bus)

	require.NoError(t, bus.Emit(events.NewKeyEvent(events.EventTypeKeyDown, true, false, true)))
	snap := tracker.Snapshot()
	assert.True(t, snap.Alt)
	assert.False(t, snap.Ctrl)
	assert.True(t, snap.Shift)

	require.NoError(t, bus.Emit(events.NewKeyEvent(events.EventTypeKeyUp, false, true, false)))
	snap = tracker.Snapshot()
	assert.False(t, snap.Alt)
	assert.True(t, snap.Ctrl)
	assert.False(t, snap.Shift)
}

func TestTracker_PointerDownAndUp(t *testing.T) {
	tracker := input.NewTracker(nil)
	bus := events.NewBus(nil)
	tracker.Install(bus)

	require.NoError(t, bus.Emit(events.NewPointerEvent(events.EventTypePointerDown, 120, 45)))
	snap := tracker.Snapshot()
	require.True(t, snap.PointerHeld())
	assert.Equal(t, 120, *snap.PointerX)
	assert.Equal(t, 45, *snap.PointerY)

	require.NoError(t, bus.Emit(&events.BaseEvent{Type: events.EventTypePointerUp}))
	snap = tracker.Snapshot()
	assert.Nil(t, snap.PointerX)
	assert.Nil(t, snap.PointerY)
}

func TestTracker_MalformedEventsIgnored(t *testing.T) {
	tracker := input.NewTracker(nil)
	tracker.KeyChanged(true, true, true)
	tracker.PointerDown(1, 2)

	// A key-typed event that is not a *KeyEvent leaves everything untouched
	require.NoError(t, tracker.HandleEvent(&events.BaseEvent{Type: events.EventTypeKeyDown}))
	require.NoError(t, tracker.HandleEvent(&events.BaseEvent{Type: events.EventTypePointerDown}))
	require.NoError(t, tracker.HandleEvent(&events.BaseEvent{Type: "something_else"}))

	snap := tracker.Snapshot()
	assert.True(t, snap.Alt)
	assert.True(t, snap.Ctrl)
	assert.True(t, snap.Shift)
	assert.Equal(t, 1, *snap.PointerX)
}

func TestTracker_SnapshotIsIndependent(t *testing.T) {
	tracker := input.NewTracker(nil)
	tracker.KeyChanged(false, false, true)
	tracker.PointerDown(5, 6)

	snap := tracker.Snapshot()
	*snap.PointerX = 99

	tracker.KeyChanged(false, false, false)
	tracker.PointerDown(7, 8)

	assert.True(t, snap.Shift)
	assert.Equal(t, 6, *snap.PointerY)
	assert.Equal(t, 7, *tracker.Snapshot().PointerX)
}

func TestSnapshot_Clone(t *testing.T) {
	x, y := 3, 4
	original := input.Snapshot{Alt: true, PointerX: &x, PointerY: &y}

	clone := original.Clone()
	*clone.PointerX = 10

	assert.Equal(t, 3, *original.PointerX)
	assert.True(t, clone.Alt)
	assert.False(t, input.Snapshot{}.Clone().PointerHeld())
}

func TestTracker_ConcurrentAccess(t *testing.T) {
	tracker := input.NewTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			tracker.KeyChanged(i%2 == 0, i%3 == 0, i%5 == 0)
			tracker.PointerDown(i, i)
		}(i)
		go func() {
			defer wg.Done()
			_ = tracker.Snapshot()
		}()
	}
	wg.Wait()

	assert.True(t, tracker.Snapshot().PointerHeld())
}
