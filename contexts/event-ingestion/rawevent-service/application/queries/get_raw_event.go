package queries

import (
	"context"
	"log/slog"
	"strings"

	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"
)

type GetRawEventUseCase struct {
	RawEvents ports.RawEventRepository
	Logger    *slog.Logger
}

func (uc GetRawEventUseCase) Execute(ctx context.Context, projectID, eventID string) (entities.RawEvent, error) {
	record, err := uc.RawEvents.GetRawEvent(ctx, strings.TrimSpace(projectID), strings.TrimSpace(eventID))
	if err != nil {
		return entities.RawEvent{}, err
	}
	return record, nil
}
