// Package api provides a read-only HTTP surface for watching a game in
// progress: status, players, board state, the investment ledger, and
// the log tail. There is no control plane — the simulation runs itself.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/talgya/boardwalk/internal/game"
)

// Server serves game state over HTTP. Mu must be the same lock the
// simulation loop holds while running a turn, so observers never see a
// half-applied trade.
type Server struct {
	Game *game.Game
	Mu   *sync.Mutex
	Port int
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	limiter := NewRateLimiter(600, time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", limiter.Middleware(s.handleStatus))
	mux.HandleFunc("/api/v1/players", limiter.Middleware(s.handlePlayers))
	mux.HandleFunc("/api/v1/board", limiter.Middleware(s.handleBoard))
	mux.HandleFunc("/api/v1/ledger", limiter.Middleware(s.handleLedger))
	mux.HandleFunc("/api/v1/log", limiter.Middleware(s.handleLog))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("observation API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("encode response", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	writeJSON(w, map[string]any{
		"run_id":     s.Game.ID.String(),
		"turns":      s.Game.TurnCount,
		"active":     len(s.Game.Players),
		"bankrupted": len(s.Game.Bankrupted),
		"over":       s.Game.Over(),
	})
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	type playerView struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Balance    int    `json:"balance"`
		Position   int    `json:"position"`
		Jailed     bool   `json:"jailed"`
		Properties int    `json:"properties"`
		Bankrupt   bool   `json:"bankrupt"`
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	var out []playerView
	for _, p := range s.Game.Players {
		out = append(out, playerView{
			ID: p.ID, Name: p.Name, Balance: p.Balance,
			Position: p.Position, Jailed: p.Jailed,
			Properties: len(s.Game.Board.OwnedBy(p.ID)),
		})
	}
	for _, p := range s.Game.Bankrupted {
		out = append(out, playerView{
			ID: p.ID, Name: p.Name, Balance: p.Balance,
			Position: p.Position, Bankrupt: true,
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	writeJSON(w, s.Game.Board.Tiles)
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	writeJSON(w, s.Game.Ledger.Records())
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	n := 100
	if q := r.URL.Query().Get("n"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil && parsed > 0 {
			n = parsed
		}
	}
	writeJSON(w, s.Game.Log.Tail(n))
}
