// Package api exposes the sidebar to the host page: JSON for scripting, an
// HTML fragment for embedding, and the toggle endpoint the collapse control
// posts to.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/foomo/workspace-sidebar/service"
	"github.com/foomo/workspace-sidebar/service/vo"
)

// Notifier is told about every successful toggle so connected SSE clients see
// expansion state changes regardless of which surface they came in on.
// *mcp.MCPSSEServer satisfies it.
type Notifier interface {
	NotifySidebarUpdated(result *vo.ToggleResult)
}

// Server routes host-page requests to the sidebar service.
type Server struct {
	logger   *zap.Logger
	service  service.Service
	notifier Notifier
	router   chi.Router
}

// NewServer creates the host-page API server. notifier may be nil when no SSE
// server is attached.
func NewServer(logger *zap.Logger, serviceInstance service.Service, notifier Notifier) *Server {
	s := &Server{
		logger:   logger,
		service:  serviceInstance,
		notifier: notifier,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/sidebar", s.handleGetSidebar)
	r.Post("/api/sidebar/toggle", s.handleToggle)
	r.Get("/api/sidebar/html", s.handleSidebarHTML)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleGetSidebar(w http.ResponseWriter, r *http.Request) {
	sidebar, err := s.service.GetSidebar(r.Context())
	if err != nil {
		s.logger.Error("failed to get sidebar", zap.Error(err))
		http.Error(w, "failed to get sidebar", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sidebar)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if request.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	result, err := s.service.ToggleItem(r.Context(), request.Title)
	if err != nil {
		s.logger.Error("failed to toggle item", zap.String("title", request.Title), zap.Error(err))
		http.Error(w, "failed to toggle item", http.StatusInternalServerError)
		return
	}

	if s.notifier != nil {
		s.notifier.NotifySidebarUpdated(result)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleSidebarHTML(w http.ResponseWriter, r *http.Request) {
	fragment, err := s.service.RenderHTML(r.Context())
	if err != nil {
		s.logger.Error("failed to render sidebar", zap.Error(err))
		http.Error(w, "failed to render sidebar", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}
