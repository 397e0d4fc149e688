package ports

import (
	"errors"
	"testing"
	"time"

	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
)

func TestListCursorRoundTrip(t *testing.T) {
	datetime := time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.UTC)
	cursor := EncodeListCursor(datetime, "raw-event-1")

	gotTime, gotID, err := DecodeListCursor(cursor)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !gotTime.Equal(datetime) {
		t.Fatalf("expected %v, got %v", datetime, gotTime)
	}
	if gotID != "raw-event-1" {
		t.Fatalf("expected raw-event-1, got %s", gotID)
	}
}

func TestDecodeListCursorRejectsGarbage(t *testing.T) {
	for _, cursor := range []string{"not base64!!", "bm90IGEgY3Vyc29y", ""} {
		if _, _, err := DecodeListCursor(cursor); !errors.Is(err, domainerrors.ErrInvalidListCursor) {
			t.Fatalf("expected ErrInvalidListCursor for %q, got %v", cursor, err)
		}
	}
}

func TestTimeRangeContainsIsInclusive(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	window := TimeRange{From: from, To: to}

	if !window.Contains(from) || !window.Contains(to) {
		t.Fatalf("bounds must be inclusive")
	}
	if window.Contains(from.Add(-time.Nanosecond)) || window.Contains(to.Add(time.Nanosecond)) {
		t.Fatalf("values outside the window must be excluded")
	}
}
