package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"
)

type ListByTimeRangeQuery struct {
	ProjectID string
	From      time.Time
	To        time.Time
	Cursor    string
	Limit     int
}

type ListByTimeRangeUseCase struct {
	RawEvents ports.RawEventRepository
	Logger    *slog.Logger
}

func (uc ListByTimeRangeUseCase) Execute(ctx context.Context, query ListByTimeRangeQuery) (ports.ListPage, error) {
	projectID := strings.TrimSpace(query.ProjectID)
	if projectID == "" {
		return ports.ListPage{}, domainerrors.ErrProjectRequired
	}
	if query.To.Before(query.From) {
		return ports.ListPage{}, domainerrors.ErrInvalidTimeRange
	}
	window := ports.TimeRange{From: query.From.UTC(), To: query.To.UTC()}
	return uc.RawEvents.ListRawEventsByTimeRange(ctx, projectID, window, query.Cursor, query.Limit)
}
