package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Server exposes the lap simulator over HTTP.
type Server struct {
	server *http.Server
	logger *logrus.Logger
	addr   string
}

// NewServer builds a server listening on addr.
func NewServer(addr string, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{addr: addr, logger: logger}
}

// Router wires up the API routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(s.requestLogger)

	router.Get("/api/tracks", s.handleTracks)
	router.Get("/api/presets", s.handlePresets)
	router.Post("/api/simulate", s.handleSimulate)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})

	return router
}

// Listen starts serving and blocks until the server stops.
func (s *Server) Listen() error {
	s.logger.WithField("addr", s.addr).Info("api server listening")

	s.server = &http.Server{
		Handler:      s.Router(),
		Addr:         s.addr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).Round(time.Microsecond).String(),
		}).Info("request")
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("encode response")
	}
}
