package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/hybrid/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *service.Service
	log    *slog.Logger
	apiKey string
	userID int
	router chi.Router
}

// New creates a new Server with all routes configured. userID is the
// single-user deployment's default user.
func New(svc *service.Service, apiKey string, userID int, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		log:    log,
		apiKey: apiKey,
		userID: userID,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/health", s.handleHealth)

	// Write endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/sessions", s.handleCreateSession)
		r.Put("/api/v1/sessions/{id}", s.handleUpdateSession)
		r.Delete("/api/v1/sessions/{id}", s.handleDeleteSession)
		r.Post("/api/v1/rebuild", s.handleRebuild)
	})

	// Dashboard read endpoints
	s.router.Get("/api/v1/week/{date}", s.handleWeekSummary)
	s.router.Get("/api/v1/period", s.handlePeriodSummary)
	s.router.Get("/api/v1/muscle-load/{date}", s.handleMuscleLoad)
	s.router.Get("/api/v1/sports", s.handleListSports)
	s.router.Get("/api/v1/muscles", s.handleListMuscles)
}
