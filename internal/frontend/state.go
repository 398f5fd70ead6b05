package frontend

import (
	"context"
	"fmt"
	"time"

	"github.com/RogersMath/reactor-core/internal/game"
	"github.com/RogersMath/reactor-core/internal/progress"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// GlobalClientState owns the running game session, progress persistence, and
// the optional live-stats connection.
type GlobalClientState struct {
	Session *game.Session
	Store   progress.Store
	Conn    *websocket.Conn

	// Community stats, zero until the first stats broadcast arrives.
	PlayersOnline      int
	ReactorsStabilized int
	StatsLive          bool

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

// InitState creates the global client state. On the browser it restores the
// persisted counters from localStorage; server-side prerenders get an empty
// in-memory store.
func InitState() {
	if State != nil {
		klog.V(1).Infof("InitState: state already exists")
		return
	}
	klog.V(1).Infof("InitState: creating new state (was nil)")

	State = &GlobalClientState{
		Listeners: make(map[string]func()),
	}
	if app.IsServer {
		State.Store = progress.NewMemory()
	} else {
		State.Store = localStorage{}
	}
	State.Session = game.NewSession(time.Now().UnixNano())

	saved := progress.Load(State.Store)
	State.Session.Resume(saved.Level, saved.Solved)
	klog.V(1).Infof("InitState: resumed at level %d, %d solved", saved.Level, saved.Solved)
}

func (s *GlobalClientState) Notify() {
	klog.V(1).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// SaveProgress writes the session counters through the store.
func (s *GlobalClientState) SaveProgress() {
	progress.Save(s.Store, progress.Progress{
		Level:  s.Session.Level,
		Solved: s.Session.Solved,
	})
}

// ConnectStats dials the live-stats channel and sends a hello. Failures are
// logged and ignored: the game is fully playable offline.
func (s *GlobalClientState) ConnectStats() {
	if app.IsServer || s.Conn != nil {
		return
	}

	wsURL := fmt.Sprintf("ws://%s/ws", app.Window().URL().Host)
	klog.Infof("ConnectStats: Connecting to %s", wsURL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		klog.Errorf("ConnectStats: Dial failed: %v", err)
		return
	}
	s.Conn = conn

	helloMsg, err := game.NewWsMessage(game.MsgTypeHello, game.HelloMessage{})
	if err != nil {
		klog.Errorf("ConnectStats: Failed to create hello message: %v", err)
		return
	}
	if err := wsjson.Write(ctx, conn, helloMsg); err != nil {
		klog.Errorf("ConnectStats: Failed to send hello: %v", err)
		conn.CloseNow()
		s.Conn = nil
		return
	}

	go s.readLoop(conn)
}

func (s *GlobalClientState) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	klog.V(1).Infof("readLoop: started")
	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			klog.Errorf("readLoop: WS read error: %v", err)
			break
		}
		s.handleMessage(msg)
	}

	s.Conn = nil
	s.StatsLive = false
	s.Notify()
}

func (s *GlobalClientState) handleMessage(msg game.WsMessage) {
	switch msg.Type {
	case game.MsgTypeStats:
		p, err := msg.Parse()
		if err != nil {
			klog.Errorf("handleMessage: Failed to parse stats message: %v", err)
			return
		}
		stats, ok := p.(*game.StatsMessage)
		if !ok {
			klog.Errorf("handleMessage: Expected StatsMessage, got: %T", p)
			return
		}
		s.PlayersOnline = stats.PlayersOnline
		s.ReactorsStabilized = stats.ReactorsStabilized
		s.StatsLive = true
		s.Notify()

	case game.MsgTypeError:
		p, err := msg.Parse()
		if err != nil {
			klog.Errorf("handleMessage: Failed to parse error message: %v", err)
			return
		}
		errMsg, ok := p.(*game.ErrorMessage)
		if !ok {
			return
		}
		klog.Errorf("handleMessage: server error: %s", errMsg.Message)
	}
}

// ReportSolved tells the server about a stabilized reactor. A no-op when the
// stats channel is down.
func (s *GlobalClientState) ReportSolved(level, moves, stars int) {
	if s.Conn == nil {
		return
	}
	msg, err := game.NewWsMessage(game.MsgTypeSolved, game.SolvedMessage{
		Level: level,
		Moves: moves,
		Stars: stars,
	})
	if err != nil {
		klog.Errorf("ReportSolved: Failed to create solved message: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	wsjson.Write(ctx, s.Conn, msg)
}
