// Package httpserver exposes the GameVault JSON API handlers.
package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avolchek/gamevault/internal/model"
	"github.com/avolchek/gamevault/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth  service.AuthService
	games service.GameService
}

// New constructs an HTTP server with injected services.
func New(auth service.AuthService, games service.GameService) *Server {
	return &Server{auth: auth, games: games}
}

// Mux returns the route table. Middleware (recover, logging, authenticate)
// is layered on top by the caller via Chain.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /api/me", s.handleMe)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("DELETE /api/games/{id}", s.handleDeleteGame)
	mux.HandleFunc("POST /api/reviews", s.handleCreateReview)
	mux.HandleFunc("DELETE /api/reviews/{id}", s.handleDeleteReview)
	return mux
}

// --- Auth ---

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a fresh token and the identity it was issued for.
type AuthResponse struct {
	Token string         `json:"token"`
	User  model.Identity `json:"user"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "empty email/password"})
		return
	}
	id, tok, err := s.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{Token: tok, User: id})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "empty email/password"})
		return
	}
	id, tok, err := s.auth.LoginWithIP(r.Context(), req.Email, req.Password, r.RemoteAddr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Token: tok, User: id})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	id, err := s.games.Me(r.Context(), SubjectFromCtx(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// --- Games ---

type createGameRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.games.List(r.Context(), SubjectFromCtx(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "empty title"})
		return
	}
	g, err := s.games.CreateGame(r.Context(), SubjectFromCtx(r.Context()), req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad id"})
		return
	}
	if err := s.games.DeleteGame(r.Context(), SubjectFromCtx(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Reviews ---

type createReviewRequest struct {
	GameID  int64  `json:"game_id"`
	Content string `json:"content"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == 0 || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "empty game_id/content"})
		return
	}
	rv, err := s.games.CreateReview(r.Context(), SubjectFromCtx(r.Context()), req.GameID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad id"})
		return
	}
	if err := s.games.DeleteReview(r.Context(), SubjectFromCtx(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
