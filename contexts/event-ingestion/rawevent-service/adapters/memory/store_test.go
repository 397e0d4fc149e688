package memory

import (
	"context"
	"errors"
	"testing"

	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
)

func TestCreateRawEventTrimsProjectIDForExistenceCheck(t *testing.T) {
	ctx := context.Background()
	store := NewStore([]string{"  project-a  "})

	id, err := store.NewID(ctx)
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	record := entities.RawEvent{
		RawEventID: id,
		ProjectID:  " project-a ",
		EventID:    "abc123",
		Datetime:   store.Now(),
	}
	if err := store.CreateRawEvent(ctx, record); err != nil {
		t.Fatalf("expected create to pass the project check, got %v", err)
	}

	id, err = store.NewID(ctx)
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	dangling := entities.RawEvent{
		RawEventID: id,
		ProjectID:  "project-b",
		Datetime:   store.Now(),
	}
	err = store.CreateRawEvent(ctx, dangling)
	if !errors.Is(err, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for an unknown project, got %v", err)
	}
}
