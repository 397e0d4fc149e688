package ports

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
)

// TimeRange is an inclusive [From, To] window over the datetime column.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// ListPage is one page of a time-range listing. NextCursor is empty on
// the final page; passing it back resumes the sequence after the last
// returned record, so an interrupted listing is restartable.
type ListPage struct {
	Items      []entities.RawEvent
	NextCursor string
}

// RawEventRepository is the durable store behind the raw event service.
//
// Uniqueness policy: (project_id, event_id) is unique only for records
// that carry an event id. Records without one never collide with each
// other; each is addressable by its raw_event_id alone.
type RawEventRepository interface {
	// CreateRawEvent persists a record. Returns ErrDuplicateRawEvent
	// when the (project, event id) pair is already taken and
	// ErrProjectNotFound when the project id dangles. Exactly one of
	// two concurrent creates for the same pair succeeds; that is the
	// storage engine's transactional guarantee, not a lock here.
	CreateRawEvent(ctx context.Context, record entities.RawEvent) error

	// GetRawEvent is an exact-match lookup on the unique pair.
	GetRawEvent(ctx context.Context, projectID, eventID string) (entities.RawEvent, error)

	// ListRawEventsByTimeRange returns the project's records inside the
	// window, datetime ascending, ties broken by raw_event_id ascending.
	ListRawEventsByTimeRange(ctx context.Context, projectID string, window TimeRange, cursor string, limit int) (ListPage, error)

	// DeleteRawEvent removes the pair if present and reports whether a
	// record existed. Never errors on a miss.
	DeleteRawEvent(ctx context.Context, projectID, eventID string) (bool, error)

	// DeleteRawEventsBefore removes up to limit records older than the
	// cutoff, across all projects, and reports how many went away.
	DeleteRawEventsBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

const cursorSeparator = "|"

// EncodeListCursor freezes a list position as an opaque token.
// The position is the (datetime, raw_event_id) sort key of the last
// record already delivered.
func EncodeListCursor(datetime time.Time, rawEventID string) string {
	raw := datetime.UTC().Format(time.RFC3339Nano) + cursorSeparator + rawEventID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeListCursor is the inverse of EncodeListCursor.
func DecodeListCursor(cursor string) (time.Time, string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cursor))
	if err != nil {
		return time.Time{}, "", domainerrors.ErrInvalidListCursor
	}
	parts := strings.SplitN(string(decoded), cursorSeparator, 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", domainerrors.ErrInvalidListCursor
	}
	datetime, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, "", domainerrors.ErrInvalidListCursor
	}
	return datetime.UTC(), parts[1], nil
}
