package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	mockautoroll "github.com/KirkDiggler/dnd-autoroll/internal/autoroll/mock"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/events"
	"github.com/KirkDiggler/dnd-autoroll/internal/input"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/actors"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/settings"
	"github.com/KirkDiggler/dnd-autoroll/internal/server"
	"github.com/KirkDiggler/dnd-autoroll/internal/testutils"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	user     *mockautoroll.MockItemUser
	actors   *actors.InMemoryRepository
	settings *settings.InMemoryRepository
	flags    *flags.InMemoryRepository
	bus      *events.Bus
	tracker  *input.Tracker
	srv      *httptest.Server
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.user = mockautoroll.NewMockItemUser(s.ctrl)
	s.actors = actors.NewInMemoryRepository()
	s.settings = settings.NewInMemoryRepository(map[string]bool{
		settings.KeyAutoCheck:  true,
		settings.KeyAutoDamage: true,
		settings.KeyAutoOther:  false,
	})
	s.flags = flags.NewInMemoryRepository()
	s.bus = events.NewBus(nil)
	s.tracker = input.NewTracker(nil)
	s.tracker.Install(s.bus)

	s.Require().NoError(s.actors.Save(context.Background(),
		testutils.CreateTestActor("actor-1", "Aragorn", testutils.CreateTestLongsword())))

	s.srv = httptest.NewServer(server.New(&server.Config{
		ItemUser: s.user,
		Actors:   s.actors,
		Settings: s.settings,
		Flags:    s.flags,
		Bus:      s.bus,
	}).Handler())
}

func (s *ServerTestSuite) TearDownTest() {
	s.srv.Close()
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) post(path, body string) *http.Response {
	return s.do(http.MethodPost, path, body)
}

func (s *ServerTestSuite) do(method, path, body string) *http.Response {
	req, err := http.NewRequest(method, s.srv.URL+path, bytes.NewBufferString(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *ServerTestSuite) TestUse_ReturnsRecord() {
	s.user.EXPECT().Use(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *item.Item, opts *autoroll.UseOptions) (*chat.Record, error) {
			s.Equal("longsword", it.ID)
			s.Require().NotNil(it.Actor())
			s.Require().NotNil(opts.SpellLevel)
			s.Equal(3, *opts.SpellLevel)
			s.Nil(opts.CreateMessage)
			return &chat.Record{ID: "rec-1", ItemID: it.ID}, nil
		})

	resp := s.post("/actors/actor-1/items/longsword/use", `{"spellLevel":3}`)

	s.Equal(http.StatusOK, resp.StatusCode)
	var body server.UseResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("rec-1", body.Record.ID)
	s.Empty(body.Error)
}

func (s *ServerTestSuite) TestUse_EmptyBody() {
	s.user.EXPECT().Use(gomock.Any(), gomock.Any(), &autoroll.UseOptions{}).Return(&chat.Record{ID: "rec-1"}, nil)

	resp := s.post("/actors/actor-1/items/longsword/use", "")

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerTestSuite) TestUse_Cancelled() {
	s.user.EXPECT().Use(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp := s.post("/actors/actor-1/items/longsword/use", `{}`)

	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *ServerTestSuite) TestUse_FollowUpFailureKeepsRecord() {
	s.user.EXPECT().Use(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&chat.Record{ID: "rec-1"}, &autoroll.FollowUpError{Stage: autoroll.StageDamage, Err: errors.New("dice jammed")})

	resp := s.post("/actors/actor-1/items/longsword/use", `{}`)

	s.Equal(http.StatusOK, resp.StatusCode)
	var body server.UseResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("rec-1", body.Record.ID)
	s.Equal("damage roll failed: dice jammed", body.Error)
}

func (s *ServerTestSuite) TestUse_ErrorStatuses() {
	testCases := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
	}{
		{name: "unknown actor", path: "/actors/nobody/items/longsword/use", body: `{}`, status: http.StatusNotFound},
		{name: "unknown item", path: "/actors/actor-1/items/axe/use", body: `{}`, status: http.StatusNotFound},
		{name: "malformed body", path: "/actors/actor-1/items/longsword/use", body: `{"spellLevel":`, status: http.StatusBadRequest},
		{name: "collaborator down", path: "/actors/actor-1/items/longsword/use", body: `{}`, err: dnderr.New(dnderr.CodeUnavailable, "redis down"), status: http.StatusServiceUnavailable},
		{name: "unexpected", path: "/actors/actor-1/items/longsword/use", body: `{}`, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.err != nil {
				s.user.EXPECT().Use(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			}

			resp := s.post(tc.path, tc.body)

			s.Equal(tc.status, resp.StatusCode)
		})
	}
}

func (s *ServerTestSuite) TestUse_MethodNotAllowed() {
	resp, err := http.Get(s.srv.URL + "/actors/actor-1/items/longsword/use")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *ServerTestSuite) TestHealth() {
	resp, err := http.Get(s.srv.URL + "/healthz")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerTestSuite) TestInput_UpdatesTracker() {
	url := "ws" + strings.TrimPrefix(s.srv.URL, "http") + "/ws/input"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	defer conn.Close()

	s.Require().NoError(conn.WriteJSON(server.InputFrame{Type: "keydown", AltKey: true}))
	s.Require().NoError(conn.WriteJSON(server.InputFrame{Type: "wheel"}))
	s.Require().NoError(conn.WriteJSON(server.InputFrame{Type: "mousedown", ClientX: 40, ClientY: 60}))

	s.Eventually(func() bool {
		return s.tracker.Snapshot().PointerHeld()
	}, time.Second, 10*time.Millisecond)

	snap := s.tracker.Snapshot()
	s.True(snap.Alt)
	s.Equal(40, *snap.PointerX)
	s.Equal(60, *snap.PointerY)

	s.Require().NoError(conn.WriteJSON(server.InputFrame{Type: "mouseup"}))
	s.Require().NoError(conn.WriteJSON(server.InputFrame{Type: "keyup"}))
	s.Eventually(func() bool {
		snap := s.tracker.Snapshot()
		return !snap.PointerHeld() && !snap.Alt
	}, time.Second, 10*time.Millisecond)
}

func (s *ServerTestSuite) TestInput_MalformedFrameKeepsStreamOpen() {
	url := "ws" + strings.TrimPrefix(s.srv.URL, "http") + "/ws/input"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	defer conn.Close()

	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"mousedown","clientX":"oops"}`)))
	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	s.Require().NoError(conn.WriteJSON(server.InputFrame{Type: "keydown", AltKey: true}))

	s.Eventually(func() bool {
		return s.tracker.Snapshot().Alt
	}, time.Second, 10*time.Millisecond)
	s.False(s.tracker.Snapshot().PointerHeld())
}

func (s *ServerTestSuite) TestInputFrame_Event() {
	event, ok := server.InputFrame{Type: "keyup", CtrlKey: true}.Event()
	s.Require().True(ok)
	key, isKey := event.(*events.KeyEvent)
	s.Require().True(isKey)
	s.Equal(events.EventTypeKeyUp, key.GetType())
	s.True(key.Ctrl)

	_, ok = server.InputFrame{Type: "scroll"}.Event()
	s.False(ok)
}
