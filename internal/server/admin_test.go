package server_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/settings"
)

func (s *ServerTestSuite) TestSaveActor() {
	resp := s.do(http.MethodPut, "/actors/actor-2",
		`{"name":"Legolas","items":[{"id":"shortbow","name":"Shortbow","type":"weapon","action_type":"rwak"}]}`)

	s.Equal(http.StatusNoContent, resp.StatusCode)
	actor, err := s.actors.Get(context.Background(), "actor-2")
	s.Require().NoError(err)
	s.Equal("Legolas", actor.Name)
	s.Require().NotNil(actor.Item("shortbow"))
	s.Same(actor, actor.Item("shortbow").Actor())
}

func (s *ServerTestSuite) TestSaveActor_MismatchedID() {
	resp := s.do(http.MethodPut, "/actors/actor-2", `{"id":"actor-3"}`)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerTestSuite) TestSettings() {
	resp := s.do(http.MethodPut, "/settings/"+settings.KeyAutoDamage, `{"value":false}`)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp = s.do(http.MethodGet, "/settings", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	var all map[string]bool
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&all))
	s.Equal(map[string]bool{
		settings.KeyAutoCheck:  true,
		settings.KeyAutoDamage: false,
		settings.KeyAutoOther:  false,
	}, all)
}

func (s *ServerTestSuite) TestSettings_Errors() {
	s.Equal(http.StatusNotFound, s.do(http.MethodPut, "/settings/autoPilot", `{"value":true}`).StatusCode)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPut, "/settings/"+settings.KeyAutoCheck, `{}`).StatusCode)
}

func (s *ServerTestSuite) TestOverrides() {
	resp := s.do(http.MethodPut, "/items/longsword/overrides", `{"autoRollAttack":false}`)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	stored, err := s.flags.GetOverrides(context.Background(), "longsword")
	s.Require().NoError(err)
	s.Require().NotNil(stored.AutoRollCheck)
	s.False(*stored.AutoRollCheck)
	s.Nil(stored.AutoRollDamage)

	resp = s.do(http.MethodGet, "/items/longsword/overrides", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	var got flags.Overrides
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&got))
	s.Require().NotNil(got.AutoRollCheck)
	s.False(*got.AutoRollCheck)
}
