package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openpoker/dealerd/internal/dealer"
	"github.com/openpoker/dealerd/internal/game"
)

type joinRequest struct {
	Name    string `json:"name"`
	HostURL string `json:"host_url"`
}

type betRequest struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type foldRequest struct {
	Name string `json:"name"`
}

type pingResponse struct {
	Message      string `json:"message"`
	DealerStatus string `json:"dealer_status,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusForError maps session errors onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, game.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrDuplicateName),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrInsufficientBalance),
		errors.Is(err, game.ErrNoActivePlayers):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// persist saves a snapshot after a mutating action. Persistence
// failures are logged, never surfaced to the client.
func (s *Server) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.session.Snapshot()); err != nil {
		s.logger.Error("Failed to persist snapshot", "error", err)
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	resp := pingResponse{Message: "pong"}

	if s.pinger != nil {
		switch _, err := s.pinger.Ping(r.Context()); {
		case err == nil:
			resp.DealerStatus = "available"
		case errors.Is(err, dealer.ErrUnavailable):
			resp.DealerStatus = "unavailable"
		default:
			resp.DealerStatus = "error"
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGameStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Status())
}

func (s *Server) handleShowPot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.ShowPot())
}

func (s *Server) handleCommunityCards(w http.ResponseWriter, r *http.Request) {
	board, err := s.authority.CommunityCards(r.Context())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleShowCards(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("player_name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "player_name is required")
		return
	}

	cards, err := s.authority.ShowCards(r.Context(), name)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleIsYourTurn(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("player_name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "player_name is required")
		return
	}

	turn, err := s.session.IsYourTurn(name)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, turn)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	res := s.session.Start()
	s.persist()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	res, err := s.session.Join(req.Name, req.HostURL)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req betRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	res, err := s.authority.PlaceBet(r.Context(), req.Name, req.Amount)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleFold(w http.ResponseWriter, r *http.Request) {
	var req foldRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	res, err := s.authority.Fold(r.Context(), req.Name)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCompareCards(w http.ResponseWriter, r *http.Request) {
	res, err := s.session.CompareCards()
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	res := s.session.End()
	s.persist()
	writeJSON(w, http.StatusOK, res)
}
