package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	raweventerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	rawhttp "rawvault/contexts/event-ingestion/rawevent-service/transport/http"
)

func (s *Server) handleStoreRawEvent(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("project_id")

	var req rawhttp.StoreRawEventRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeRawEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rawEvents.Handler.StoreRawEventHandler(r.Context(), projectID, req)
	if err != nil {
		writeRawEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetRawEvent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.rawEvents.Handler.GetRawEventHandler(r.Context(), r.PathValue("project_id"), r.PathValue("event_id"))
	if err != nil {
		writeRawEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRawEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if limitRaw := query.Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeRawEventError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.rawEvents.Handler.ListRawEventsHandler(
		r.Context(),
		r.PathValue("project_id"),
		query.Get("from"),
		query.Get("to"),
		query.Get("cursor"),
		limit,
	)
	if err != nil {
		writeRawEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteRawEvent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.rawEvents.Handler.DeleteRawEventHandler(r.Context(), r.PathValue("project_id"), r.PathValue("event_id"))
	if err != nil {
		writeRawEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRawEventDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, raweventerrors.ErrRawEventNotFound):
		writeRawEventError(w, http.StatusNotFound, "raw_event_not_found", err.Error())
	case errors.Is(err, raweventerrors.ErrDuplicateRawEvent):
		writeRawEventError(w, http.StatusConflict, "duplicate_raw_event", err.Error())
	case errors.Is(err, raweventerrors.ErrProjectNotFound):
		writeRawEventError(w, http.StatusBadRequest, "project_not_found", err.Error())
	case errors.Is(err, raweventerrors.ErrProjectRequired):
		writeRawEventError(w, http.StatusBadRequest, "project_required", err.Error())
	case errors.Is(err, raweventerrors.ErrEventIDTooLong):
		writeRawEventError(w, http.StatusBadRequest, "event_id_too_long", err.Error())
	case errors.Is(err, raweventerrors.ErrInvalidTimeRange):
		writeRawEventError(w, http.StatusBadRequest, "invalid_time_range", err.Error())
	case errors.Is(err, raweventerrors.ErrInvalidDatetime):
		writeRawEventError(w, http.StatusBadRequest, "invalid_datetime", err.Error())
	case errors.Is(err, raweventerrors.ErrInvalidListCursor):
		writeRawEventError(w, http.StatusBadRequest, "invalid_cursor", err.Error())
	default:
		writeRawEventError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRawEventError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rawhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
