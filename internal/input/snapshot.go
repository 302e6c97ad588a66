// Package input tracks the latest modifier-key and pointer state reported by the client.
package input

// Snapshot is the modifier state at one instant
type Snapshot struct {
	Alt   bool
	Ctrl  bool
	Shift bool

	// PointerX and PointerY are nil while no pointer button is held
	PointerX *int
	PointerY *int
}

// Clone returns a deep copy that shares no memory with s
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.PointerX != nil {
		x := *s.PointerX
		out.PointerX = &x
	}
	if s.PointerY != nil {
		y := *s.PointerY
		out.PointerY = &y
	}
	return out
}

// PointerHeld reports whether pointer coordinates are known
func (s Snapshot) PointerHeld() bool {
	return s.PointerX != nil && s.PointerY != nil
}
