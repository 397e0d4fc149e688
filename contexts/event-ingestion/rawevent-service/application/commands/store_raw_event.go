package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "rawvault/contexts/event-ingestion/rawevent-service/application"
	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"
)

type StoreRawEventCommand struct {
	ProjectID string
	EventID   string
	Datetime  *time.Time
	Data      json.RawMessage
}

type StoreRawEventUseCase struct {
	RawEvents   ports.RawEventRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute persists one raw event. Datetime defaults to the clock's now,
// and a present payload is tagged with the scope its internal references
// resolve against before it reaches the repository. Project existence is
// the storage layer's constraint, not re-validated here.
func (uc StoreRawEventUseCase) Execute(ctx context.Context, cmd StoreRawEventCommand) (entities.RawEvent, error) {
	logger := application.ResolveLogger(uc.Logger)

	projectID := strings.TrimSpace(cmd.ProjectID)
	if projectID == "" {
		return entities.RawEvent{}, domainerrors.ErrProjectRequired
	}
	eventID := strings.TrimSpace(cmd.EventID)
	if !entities.ValidEventID(eventID) {
		return entities.RawEvent{}, domainerrors.ErrEventIDTooLong
	}

	datetime := uc.Clock.Now().UTC()
	if cmd.Datetime != nil && !cmd.Datetime.IsZero() {
		datetime = cmd.Datetime.UTC()
	}

	rawEventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.RawEvent{}, err
	}

	record := entities.RawEvent{
		RawEventID: rawEventID,
		ProjectID:  projectID,
		EventID:    eventID,
		Datetime:   datetime,
	}
	if len(cmd.Data) > 0 {
		record.Data = &entities.NodeData{
			RefScope:   entities.RefScope(record, projectID),
			RefVersion: entities.CurrentRefVersion,
			Payload:    append(json.RawMessage(nil), cmd.Data...),
		}
	}

	if err := uc.RawEvents.CreateRawEvent(ctx, record); err != nil {
		return entities.RawEvent{}, err
	}

	logger.Info("raw event stored",
		"event", "raw_event_stored",
		"module", "event-ingestion/rawevent-service",
		"layer", "application",
		"raw_event_id", record.RawEventID,
		"project_id", record.ProjectID,
	)
	return record, nil
}
