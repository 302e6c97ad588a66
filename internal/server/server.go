// Package server exposes the use-item operation over HTTP and accepts the
// client's modifier-key and pointer events over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/events"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ActorStore loads and saves actors with their items
type ActorStore interface {
	Get(ctx context.Context, id string) (*item.Actor, error)
	Save(ctx context.Context, actor *item.Actor) error
}

// SettingsStore reads and writes the global auto-roll switches
type SettingsStore interface {
	Set(ctx context.Context, key string, value bool) error
	All(ctx context.Context) (map[string]bool, error)
}

// OverrideStore writes per-item auto-roll switches
type OverrideStore interface {
	GetOverrides(ctx context.Context, itemID string) (*flags.Overrides, error)
	SetOverrides(ctx context.Context, itemID string, overrides *flags.Overrides) error
}

// Server routes requests
type Server struct {
	router   *mux.Router
	users    autoroll.ItemUser
	actors   ActorStore
	settings SettingsStore
	flags    OverrideStore
	bus      *events.Bus
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// Config holds the dependencies of a Server
type Config struct {
	ItemUser autoroll.ItemUser
	Actors   ActorStore
	Settings SettingsStore
	Flags    OverrideStore
	Bus      *events.Bus

	// CheckOrigin overrides the websocket origin check; nil accepts any origin
	CheckOrigin func(r *http.Request) bool

	Logger *zap.Logger
}

// New creates a Server
func New(cfg *Config) *Server {
	if cfg == nil {
		panic("config is required")
	}
	switch {
	case cfg.ItemUser == nil:
		panic("item user is required")
	case cfg.Actors == nil:
		panic("actor store is required")
	case cfg.Settings == nil:
		panic("settings store is required")
	case cfg.Flags == nil:
		panic("override store is required")
	case cfg.Bus == nil:
		panic("event bus is required")
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router:   mux.NewRouter(),
		users:    cfg.ItemUser,
		actors:   cfg.Actors,
		settings: cfg.Settings,
		flags:    cfg.Flags,
		bus:      cfg.Bus,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
		logger:   logger,
	}

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/actors/{actorID}", s.handleSaveActor).Methods(http.MethodPut)
	s.router.HandleFunc("/actors/{actorID}/items/{itemID}/use", s.handleUse).Methods(http.MethodPost)
	s.router.HandleFunc("/settings", s.handleListSettings).Methods(http.MethodGet)
	s.router.HandleFunc("/settings/{key}", s.handleSetSetting).Methods(http.MethodPut)
	s.router.HandleFunc("/items/{itemID}/overrides", s.handleGetOverrides).Methods(http.MethodGet)
	s.router.HandleFunc("/items/{itemID}/overrides", s.handleSetOverrides).Methods(http.MethodPut)
	s.router.HandleFunc("/ws/input", s.handleInput).Methods(http.MethodGet)

	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// UseResponse is the body of a successful use. Error reports a follow-up roll
// that failed after the record was emitted.
type UseResponse struct {
	Record *chat.Record `json:"record"`
	Error  string       `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := r.Context()

	var opts autoroll.UseOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid request body"))
		return
	}

	actor, err := s.actors.Get(ctx, vars["actorID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	it := actor.Item(vars["itemID"])
	if it == nil {
		s.writeError(w, dnderr.NotFoundf("item %s not found on actor %s", vars["itemID"], actor.ID))
		return
	}

	rec, err := s.users.Use(ctx, it, &opts)
	var followUp *autoroll.FollowUpError
	switch {
	case err != nil && rec != nil && errors.As(err, &followUp):
		s.logger.Warn("use finished with a failed follow-up roll",
			zap.String("record_id", rec.ID),
			zap.Error(err))
		writeJSON(w, http.StatusOK, UseResponse{Record: rec, Error: err.Error()})
	case err != nil:
		s.writeError(w, err)
	case rec == nil:
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusOK, UseResponse{Record: rec})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: string(dnderr.GetCode(err))})
}

func statusFor(err error) int {
	switch dnderr.GetCode(err) {
	case dnderr.CodeInvalidArgument:
		return http.StatusBadRequest
	case dnderr.CodeNotFound:
		return http.StatusNotFound
	case dnderr.CodeAlreadyExists:
		return http.StatusConflict
	case dnderr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
