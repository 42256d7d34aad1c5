package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"drawpoker-server/pkg/playable"
)

func wsDial(t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if resp != nil {
		defer resp.Body.Close()
	}

	if err != nil {
		t.Fatal(err)
	}

	return conn
}

// wsReadResponse reads frames until one with the given key arrives,
// skipping interleaved log frames
func wsReadResponse(t *testing.T, conn *websocket.Conn, key string) *playable.Response {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	for i := 0; i < 20; i++ {
		var res playable.Response
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatal(err)
		}

		if res.Key == key {
			return &res
		}
	}

	t.Fatalf("never received a %q frame", key)
	return nil
}

func gameStateField(t *testing.T, res *playable.Response, field string) interface{} {
	t.Helper()

	data, ok := res.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", res.Data)
	}

	gs, ok := data["gameState"].(map[string]interface{})
	if !ok {
		t.Fatalf("payload has no game state: %v", res.Data)
	}

	return gs[field]
}

func TestMux_getGameWS(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	conn := wsDial(t, ts, "/game?name=Alice")
	defer conn.Close()

	a := assert.New(t)

	res := wsReadResponse(t, conn, "game")
	a.Equal("Five-Card Draw", res.Value)
	a.Equal("await-deal", gameStateField(t, res, "state"))
	a.Equal("deal", gameStateField(t, res, "awaiting"))

	// an unknown action comes back as an error frame
	a.NoError(conn.WriteJSON(&playable.PayloadIn{Action: "bogus", Context: "c0"}))
	errRes := wsReadResponse(t, conn, "error")
	a.Equal("unknown action: bogus", errRes.Value)
	a.Equal("c0", errRes.Context)

	// dealing moves the game into the first wager
	a.NoError(conn.WriteJSON(&playable.PayloadIn{Action: "deal", Context: "c1"}))

	ok := wsReadResponse(t, conn, "status")
	a.Equal("OK", ok.Value)
	a.Equal("c1", ok.Context)

	res = wsReadResponse(t, conn, "game")
	a.Equal("first-wager", gameStateField(t, res, "state"))
	a.Equal("bet", gameStateField(t, res, "awaiting"))
	a.Equal(float64(humanPlayerID), gameStateField(t, res, "action"))
}

func TestMux_getGameWS_logs(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	conn := wsDial(t, ts, "/game")
	defer conn.Close()

	res := wsReadResponse(t, conn, "logs")
	entries, ok := res.Data.([]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, entries)
}
