package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/dnd-autoroll/internal/events"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// InputFrame is one client input event as sent over the websocket
type InputFrame struct {
	Type     string `json:"type"`
	AltKey   bool   `json:"altKey"`
	CtrlKey  bool   `json:"ctrlKey"`
	ShiftKey bool   `json:"shiftKey"`
	ClientX  int    `json:"clientX"`
	ClientY  int    `json:"clientY"`
}

// Event converts the frame to a bus event. ok is false for frame types the
// tracker does not follow.
func (f InputFrame) Event() (events.Event, bool) {
	switch f.Type {
	case "keydown":
		return events.NewKeyEvent(events.EventTypeKeyDown, f.AltKey, f.CtrlKey, f.ShiftKey), true
	case "keyup":
		return events.NewKeyEvent(events.EventTypeKeyUp, f.AltKey, f.CtrlKey, f.ShiftKey), true
	case "mousedown", "pointerdown":
		return events.NewPointerEvent(events.EventTypePointerDown, f.ClientX, f.ClientY), true
	case "mouseup", "pointerup":
		return events.NewPointerEvent(events.EventTypePointerUp, f.ClientX, f.ClientY), true
	default:
		return nil, false
	}
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				s.logger.Debug("input stream ended", zap.Error(err))
			}
			return
		}

		// A bad frame is dropped; the stream and the tracker state survive it
		var frame InputFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.logger.Debug("ignoring malformed input frame", zap.Error(err))
			continue
		}

		event, ok := frame.Event()
		if !ok {
			s.logger.Debug("ignoring input frame", zap.String("type", frame.Type))
			continue
		}
		if err := s.bus.Emit(event); err != nil {
			s.logger.Warn("input listener failed", zap.Error(err))
		}
	}
}
