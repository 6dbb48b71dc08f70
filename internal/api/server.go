// Package api exposes the demo HTTP surface: password checks and the
// processed auth-log feed.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/authlog"
)

// Server holds the shared evaluation dependencies. The checker's dictionary
// is immutable after construction, so one Server handles concurrent requests
// without locking.
type Server struct {
	checker *passcheck.Checker
	logDir  string
}

// NewServer creates a Server evaluating against checker, serving log entries
// from logDir.
func NewServer(checker *passcheck.Checker, logDir string) *Server {
	return &Server{checker: checker, logDir: logDir}
}

// Router creates the chi router with middleware and all routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/api/check", s.handleCheck)
	r.Get("/api/logs", s.handleLogs)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type checkRequest struct {
	Password string `json:"password"`
	Show     bool   `json:"show"`
}

type checkResponse struct {
	Result passcheck.Result `json:"result"`
	Report string           `json:"report"`
}

// handleCheck evaluates the posted password. The password itself is never
// logged or stored; only the assessment leaves the handler.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := s.checker.Evaluate(req.Password)
	respondJSON(w, http.StatusOK, checkResponse{
		Result: result,
		Report: passcheck.FormatReport(req.Password, result, req.Show),
	})
}

type logsResponse struct {
	Entries    []authlog.Entry `json:"entries"`
	FailedByIP map[string]int  `json:"failed_by_ip"`
}

// handleLogs returns the parsed processed-log entries with per-IP failure
// counts.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := authlog.ScanDir(s.logDir)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to scan logs")
		return
	}
	if entries == nil {
		entries = []authlog.Entry{}
	}
	respondJSON(w, http.StatusOK, logsResponse{
		Entries:    entries,
		FailedByIP: authlog.FailedByIP(entries),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
