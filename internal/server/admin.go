package server

import (
	"encoding/json"
	"net/http"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/gorilla/mux"
)

type settingValue struct {
	Value *bool `json:"value"`
}

func (s *Server) handleSaveActor(w http.ResponseWriter, r *http.Request) {
	var actor item.Actor
	if err := json.NewDecoder(r.Body).Decode(&actor); err != nil {
		s.writeError(w, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid actor"))
		return
	}

	id := mux.Vars(r)["actorID"]
	if actor.ID != "" && actor.ID != id {
		s.writeError(w, dnderr.InvalidArgumentf("actor id %s does not match path %s", actor.ID, id))
		return
	}
	actor.ID = id

	if err := s.actors.Save(r.Context(), &actor); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	all, err := s.settings.All(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	var body settingValue
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid setting"))
		return
	}
	if body.Value == nil {
		s.writeError(w, dnderr.InvalidArgument("value is required"))
		return
	}

	if err := s.settings.Set(r.Context(), mux.Vars(r)["key"], *body.Value); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := s.flags.GetOverrides(r.Context(), mux.Vars(r)["itemID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overrides)
}

func (s *Server) handleSetOverrides(w http.ResponseWriter, r *http.Request) {
	var overrides flags.Overrides
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		s.writeError(w, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid overrides"))
		return
	}

	if err := s.flags.SetOverrides(r.Context(), mux.Vars(r)["itemID"], &overrides); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
