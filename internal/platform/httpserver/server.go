package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	projectservice "rawvault/contexts/event-ingestion/project-service"
	raweventservice "rawvault/contexts/event-ingestion/rawevent-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "rawvault/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	rawEvents raweventservice.Module
	projects  projectservice.Module
}

func New(
	rawEvents raweventservice.Module,
	projects projectservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		rawEvents: rawEvents,
		projects:  projects,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/0/projects/", s.handleCreateProject)
	s.mux.HandleFunc("GET /api/0/projects/", s.handleListProjects)
	s.mux.HandleFunc("GET /api/0/projects/{project_id}", s.handleGetProject)

	s.mux.HandleFunc("POST /api/0/projects/{project_id}/raw-events/", s.handleStoreRawEvent)
	s.mux.HandleFunc("GET /api/0/projects/{project_id}/raw-events/", s.handleListRawEvents)
	s.mux.HandleFunc("GET /api/0/projects/{project_id}/raw-events/{event_id}", s.handleGetRawEvent)
	s.mux.HandleFunc("DELETE /api/0/projects/{project_id}/raw-events/{event_id}", s.handleDeleteRawEvent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
