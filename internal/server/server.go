package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/openpoker/dealerd/internal/dealer"
	"github.com/openpoker/dealerd/internal/game"
)

// DealerPinger reports remote dealer reachability. Satisfied by
// *dealer.Client; nil means no dealer is configured.
type DealerPinger interface {
	Ping(ctx context.Context) (dealer.PingResponse, error)
}

// SnapshotStore persists game snapshots after mutating actions.
// Satisfied by *store.Store; nil disables persistence.
type SnapshotStore interface {
	Save(snapshot game.Snapshot) error
}

// Server exposes the game contract over HTTP and the event feed over
// WebSocket
type Server struct {
	addr      string
	session   *game.Session
	authority dealer.Authority
	pinger    DealerPinger
	store     SnapshotStore
	hub       *Hub
	upgrader  websocket.Upgrader
	logger    *log.Logger
	http      *http.Server
}

// NewServer creates a server around a session and its dealer authority
func NewServer(addr string, session *game.Session, authority dealer.Authority, pinger DealerPinger, store SnapshotStore, logger *log.Logger) *Server {
	s := &Server{
		addr:      addr,
		session:   session,
		authority: authority,
		pinger:    pinger,
		store:     store,
		hub:       NewHub(logger),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}

	session.EventBus().Subscribe(s.hub)
	s.http = &http.Server{Addr: addr, Handler: s.routes()}
	return s
}

// routes builds the request mux
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ping", s.method(http.MethodGet, s.handlePing))
	mux.HandleFunc("/game_status", s.method(http.MethodGet, s.handleGameStatus))
	mux.HandleFunc("/show_pot", s.method(http.MethodGet, s.handleShowPot))
	mux.HandleFunc("/community_cards", s.method(http.MethodGet, s.handleCommunityCards))
	mux.HandleFunc("/show_cards", s.method(http.MethodGet, s.handleShowCards))
	mux.HandleFunc("/is_your_turn", s.method(http.MethodGet, s.handleIsYourTurn))

	mux.HandleFunc("/start_game", s.method(http.MethodPost, s.handleStartGame))
	mux.HandleFunc("/join_game", s.method(http.MethodPost, s.handleJoinGame))
	mux.HandleFunc("/place_bet", s.method(http.MethodPost, s.handlePlaceBet))
	mux.HandleFunc("/fold", s.method(http.MethodPost, s.handleFold))
	mux.HandleFunc("/compare_cards", s.method(http.MethodPost, s.handleCompareCards))
	mux.HandleFunc("/end_game", s.method(http.MethodPost, s.handleEndGame))

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWebSocket)

	return mux
}

// Start serves until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run()

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	s.logger.Info("Starting server", "addr", s.addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop() error {
	s.hub.Stop()
	return s.http.Shutdown(context.Background())
}

// Handler returns the HTTP handler, for tests
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// method rejects requests with the wrong verb
func (s *Server) method(verb string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != verb {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		next(w, r)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

// handleWebSocket upgrades an observer onto the event feed
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.logger)
	s.hub.Register(client)
	client.Start()

	go func() {
		<-client.ctx.Done()
		s.hub.Unregister(client)
	}()
}
