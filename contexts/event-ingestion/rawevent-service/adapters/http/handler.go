package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rawvault/contexts/event-ingestion/rawevent-service/application/commands"
	"rawvault/contexts/event-ingestion/rawevent-service/application/queries"
	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	httptransport "rawvault/contexts/event-ingestion/rawevent-service/transport/http"
)

type Handler struct {
	StoreRawEvent  commands.StoreRawEventUseCase
	DeleteRawEvent commands.DeleteRawEventUseCase
	GetRawEvent    queries.GetRawEventUseCase
	ListByRange    queries.ListByTimeRangeUseCase
	Logger         *slog.Logger
}

func (h Handler) StoreRawEventHandler(
	ctx context.Context,
	projectID string,
	req httptransport.StoreRawEventRequest,
) (httptransport.StoreRawEventResponse, error) {
	datetime, err := parseOptionalDatetime(req.Datetime)
	if err != nil {
		return httptransport.StoreRawEventResponse{}, err
	}
	record, err := h.StoreRawEvent.Execute(ctx, commands.StoreRawEventCommand{
		ProjectID: projectID,
		EventID:   req.EventID,
		Datetime:  datetime,
		Data:      req.Data,
	})
	if err != nil {
		return httptransport.StoreRawEventResponse{}, err
	}
	return httptransport.StoreRawEventResponse{RawEvent: mapRawEvent(record)}, nil
}

func (h Handler) GetRawEventHandler(ctx context.Context, projectID, eventID string) (httptransport.GetRawEventResponse, error) {
	record, err := h.GetRawEvent.Execute(ctx, projectID, eventID)
	if err != nil {
		return httptransport.GetRawEventResponse{}, err
	}
	return httptransport.GetRawEventResponse{RawEvent: mapRawEvent(record)}, nil
}

func (h Handler) ListRawEventsHandler(
	ctx context.Context,
	projectID string,
	from, to, cursor string,
	limit int,
) (httptransport.ListRawEventsResponse, error) {
	fromTime, err := parseRangeBound(from, time.Time{})
	if err != nil {
		return httptransport.ListRawEventsResponse{}, err
	}
	toTime, err := parseRangeBound(to, time.Now().UTC())
	if err != nil {
		return httptransport.ListRawEventsResponse{}, err
	}

	page, err := h.ListByRange.Execute(ctx, queries.ListByTimeRangeQuery{
		ProjectID: projectID,
		From:      fromTime,
		To:        toTime,
		Cursor:    cursor,
		Limit:     limit,
	})
	if err != nil {
		return httptransport.ListRawEventsResponse{}, err
	}

	items := make([]httptransport.RawEventDTO, 0, len(page.Items))
	for _, record := range page.Items {
		items = append(items, mapRawEvent(record))
	}
	return httptransport.ListRawEventsResponse{
		Items:      items,
		NextCursor: page.NextCursor,
	}, nil
}

func (h Handler) DeleteRawEventHandler(ctx context.Context, projectID, eventID string) (httptransport.DeleteRawEventResponse, error) {
	existed, err := h.DeleteRawEvent.Execute(ctx, projectID, eventID)
	if err != nil {
		return httptransport.DeleteRawEventResponse{}, err
	}
	return httptransport.DeleteRawEventResponse{Deleted: existed}, nil
}

func mapRawEvent(record entities.RawEvent) httptransport.RawEventDTO {
	dto := httptransport.RawEventDTO{
		RawEventID: record.RawEventID,
		ProjectID:  record.ProjectID,
		EventID:    record.EventID,
		Datetime:   record.Datetime.UTC().Format(time.RFC3339Nano),
	}
	if record.Data != nil {
		dto.Data = &httptransport.NodeDataDTO{
			RefScope:   record.Data.RefScope,
			RefVersion: record.Data.RefVersion,
			Payload:    record.Data.Payload,
		}
	}
	return dto
}

func parseOptionalDatetime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidDatetime
	}
	utc := parsed.UTC()
	return &utc, nil
}

func parseRangeBound(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidTimeRange
	}
	return parsed.UTC(), nil
}
