package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/RogersMath/reactor-core/internal/frontend"
	"github.com/RogersMath/reactor-core/internal/game"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// statsClient is one connected live-stats listener.
type statsClient struct {
	ID   string
	Name string
	Conn *websocket.Conn
}

// ServerState aggregates live stats across connected players. The game runs
// entirely in the client; this channel only feeds the community counters
// shown on the menu screen.
type ServerState struct {
	// Address the server ended up listening on (useful with auto-port).
	Address string

	mu         sync.RWMutex
	Clients    map[string]*statsClient
	Stabilized int // reactors stabilized since server start
}

// NewServerState creates an empty ServerState.
func NewServerState() *ServerState {
	return &ServerState{Clients: make(map[string]*statsClient)}
}

// HandleWS upgrades the connection and serves the stats channel until the
// client goes away. The first message must be a hello.
func (s *ServerState) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("WS accept failed: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	var msg game.WsMessage
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		return
	}
	payload, err := msg.Parse()
	if err != nil || msg.Type != game.MsgTypeHello {
		s.sendError(ctx, conn, "expected a hello message")
		return
	}
	hello := payload.(*game.HelloMessage)

	id := uuid.NewString()
	s.mu.Lock()
	s.Clients[id] = &statsClient{ID: id, Name: hello.Name, Conn: conn}
	online := len(s.Clients)
	s.mu.Unlock()
	log.Printf("stats: %q connected as %s (%d online)", hello.Name, id, online)

	defer func() {
		s.mu.Lock()
		delete(s.Clients, id)
		s.mu.Unlock()
		log.Printf("stats: %s disconnected", id)
		s.broadcastStats()
	}()

	s.broadcastStats()

	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}
		payload, err := msg.Parse()
		if err != nil {
			s.sendError(ctx, conn, err.Error())
			continue
		}

		switch m := payload.(type) {
		case *game.SolvedMessage:
			s.mu.Lock()
			s.Stabilized++
			total := s.Stabilized
			s.mu.Unlock()
			log.Printf("stats: %s stabilized level %d in %d moves (%d stars), total %d",
				id, m.Level, m.Moves, m.Stars, total)
			s.broadcastStats()
		case *game.HelloMessage:
			// Renames are allowed mid-connection.
			s.mu.Lock()
			if c, ok := s.Clients[id]; ok {
				c.Name = m.Name
			}
			s.mu.Unlock()
		default:
			s.sendError(ctx, conn, "unexpected message type: "+string(msg.Type))
		}
	}
}

func (s *ServerState) sendError(ctx context.Context, conn *websocket.Conn, text string) {
	msg, err := game.NewWsMessage(game.MsgTypeError, game.ErrorMessage{Message: text})
	if err != nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_ = wsjson.Write(writeCtx, conn, msg)
}

// broadcastStats sends the current aggregate to every connected client.
func (s *ServerState) broadcastStats() {
	s.mu.RLock()
	stats := game.StatsMessage{
		PlayersOnline:      len(s.Clients),
		ReactorsStabilized: s.Stabilized,
	}
	conns := make([]*websocket.Conn, 0, len(s.Clients))
	for _, c := range s.Clients {
		conns = append(conns, c.Conn)
	}
	s.mu.RUnlock()

	msg, err := game.NewWsMessage(game.MsgTypeStats, stats)
	if err != nil {
		log.Printf("broadcastStats: %v", err)
		return
	}
	for _, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := wsjson.Write(ctx, conn, msg); err != nil {
			log.Printf("broadcastStats: write failed: %v", err)
		}
		cancel()
	}
}

// Handler returns the full HTTP handler: the go-app UI, static assets under
// /web/, and the live-stats websocket at /ws.
func (s *ServerState) Handler() http.Handler {
	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "Reactor Core",
		Description: "Balance the reactor equation with matter and antimatter",
		Version:     game.Version,
		Styles: []string{
			"/web/css/pico.min.css", // Load pico.css
			"/web/css/main.css",     // Game styles
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir("web/"))))
	mux.Handle("/", h)
	return mux
}

// Run starts the server and blocks until the context is canceled. If addr is
// empty an automatic localhost port is used; the listening state, including
// the final address, is reported on started.
func Run(ctx context.Context, addr string, started chan<- *ServerState) error {
	// Initialize global client state for server-side prerendering without panic
	frontend.InitState()

	serverState := NewServerState()

	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Home{} })
	app.Route("/game", func() app.Composer { return &frontend.Game{} })

	if addr == "" {
		addr = "127.0.0.1:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	serverState.Address = listener.Addr().String()

	srv := &http.Server{Handler: serverState.Handler()}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server started on %s", serverState.Address)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	if started != nil {
		started <- serverState
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Println("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
