package commands

import (
	"context"
	"log/slog"
	"strings"

	application "rawvault/contexts/event-ingestion/rawevent-service/application"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"
)

type DeleteRawEventUseCase struct {
	RawEvents ports.RawEventRepository
	Logger    *slog.Logger
}

// Execute removes the record for the pair if one exists. Idempotent:
// a second call for the same pair reports false without error.
func (uc DeleteRawEventUseCase) Execute(ctx context.Context, projectID, eventID string) (bool, error) {
	logger := application.ResolveLogger(uc.Logger)

	existed, err := uc.RawEvents.DeleteRawEvent(ctx, strings.TrimSpace(projectID), strings.TrimSpace(eventID))
	if err != nil {
		return false, err
	}
	if existed {
		logger.Info("raw event deleted",
			"event", "raw_event_deleted",
			"module", "event-ingestion/rawevent-service",
			"layer", "application",
			"project_id", strings.TrimSpace(projectID),
		)
	}
	return existed, nil
}
