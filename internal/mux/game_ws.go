package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivedraw"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// each connection hosts its own heads-up game: the connected human on
// seat 0, the house computer player on seat 1
const (
	humanPlayerID    = int64(1)
	computerPlayerID = int64(2)
)

func (m *Mux) getGameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		name := r.FormValue("name")
		if name == "" {
			name = "Player"
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		game, err := fivedraw.NewGame(logrus.StandardLogger(), []playable.Player{
			fivedraw.SeatedPlayer{ID: humanPlayerID, Name: name, Stake: m.stake},
			fivedraw.SeatedPlayer{ID: computerPlayerID, Name: util.GetRandomName(), Stake: m.stake},
		}, m.options)
		if err != nil {
			logrus.WithError(err).Error("could not create game")
			_ = conn.Close()
			return
		}

		s := &session{
			conn:     conn,
			game:     game,
			actions:  make(chan *playable.PayloadIn),
			stopped:  make(chan struct{}),
			readDone: make(chan struct{}),
		}

		go s.readLoop()
		s.run()
	}
}

// session owns a single game and its websocket connection. The run
// loop is the only goroutine that touches the game; the read loop just
// relays payloads into it.
type session struct {
	conn     *websocket.Conn
	game     *fivedraw.Game
	actions  chan *playable.PayloadIn
	stopped  chan struct{}
	readDone chan struct{}
	gameOver bool
}

func (s *session) run() {
	pinger := time.NewTicker(pingPeriod)
	ticker := time.NewTicker(s.game.Delay())
	defer func() {
		pinger.Stop()
		ticker.Stop()
		close(s.stopped)
		_ = s.conn.Close()
	}()

	if !s.sendState() {
		return
	}

	for {
		select {
		case <-s.readDone:
			return

		case <-pinger.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case msgs := <-s.game.LogChan():
			if !s.send(&playable.Response{Key: "logs", Data: msgs}) {
				return
			}

		case msg := <-s.actions:
			res, updateState, err := s.game.Action(humanPlayerID, msg)
			if err != nil {
				if !s.send(&playable.Response{Key: "error", Value: err.Error(), Context: msg.Context}) {
					return
				}

				continue
			}

			if res != nil && !s.send(res) {
				return
			}

			if updateState && !s.sendState() {
				return
			}

		case <-ticker.C:
			updateState, err := s.game.Tick()
			if err != nil {
				logrus.WithError(err).Error("tick failed")
				continue
			}

			if updateState && !s.sendState() {
				return
			}
		}
	}
}

func (s *session) readLoop() {
	defer close(s.readDone)

	for {
		var msg playable.PayloadIn
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Error("could not read message")
			}

			return
		}

		select {
		case s.actions <- &msg:
		case <-s.stopped:
			return
		}
	}
}

func (s *session) sendState() bool {
	state, err := s.game.GetPlayerState(humanPlayerID)
	if err != nil {
		logrus.WithError(err).Error("could not get player state")
		return true
	}

	if !s.send(state) {
		return false
	}

	if details, isGameOver := s.game.GetEndOfGameDetails(); isGameOver && !s.gameOver {
		s.gameOver = true
		return s.send(&playable.Response{Key: "gameOver", Data: details})
	}

	return true
}

func (s *session) send(msg interface{}) bool {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		logrus.WithError(err).Error("could not write message")
		return false
	}

	return true
}
