package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	projecterrors "rawvault/contexts/event-ingestion/project-service/domain/errors"
	projecthttp "rawvault/contexts/event-ingestion/project-service/transport/http"
)

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projecthttp.CreateProjectRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeProjectError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.projects.Handler.CreateProjectHandler(r.Context(), req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	resp, err := s.projects.Handler.GetProjectHandler(r.Context(), r.PathValue("project_id"))
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	resp, err := s.projects.Handler.ListProjectsHandler(r.Context())
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeProjectDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projecterrors.ErrProjectNotFound):
		writeProjectError(w, http.StatusNotFound, "project_not_found", err.Error())
	case errors.Is(err, projecterrors.ErrInvalidProjectName):
		writeProjectError(w, http.StatusBadRequest, "invalid_project_name", err.Error())
	case errors.Is(err, projecterrors.ErrDuplicateProject):
		writeProjectError(w, http.StatusConflict, "duplicate_project", err.Error())
	default:
		writeProjectError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeProjectError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, projecthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func decodeJSONBody(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
