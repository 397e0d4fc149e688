package raweventservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	httptransport "rawvault/contexts/event-ingestion/rawevent-service/transport/http"
)

const testProjectID = "11111111-1111-1111-1111-111111111111"

func newTestModule() Module {
	return NewInMemoryModule([]string{testProjectID}, nil)
}

func TestStoreAndGetRawEvent(t *testing.T) {
	module := newTestModule()

	stored, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{
		EventID: "abc123",
		Data:    json.RawMessage(`{"k":"v"}`),
	})
	if err != nil {
		t.Fatalf("store raw event failed: %v", err)
	}
	if stored.RawEvent.RawEventID == "" {
		t.Fatalf("expected assigned raw event id")
	}
	if stored.RawEvent.Data == nil {
		t.Fatalf("expected tagged data wrapper")
	}
	if stored.RawEvent.Data.RefScope != testProjectID {
		t.Fatalf("expected ref scope %s, got %s", testProjectID, stored.RawEvent.Data.RefScope)
	}
	if stored.RawEvent.Data.RefVersion != 1 {
		t.Fatalf("expected ref version 1, got %d", stored.RawEvent.Data.RefVersion)
	}

	fetched, err := module.Handler.GetRawEventHandler(context.Background(), testProjectID, "abc123")
	if err != nil {
		t.Fatalf("get raw event failed: %v", err)
	}
	if fetched.RawEvent.RawEventID != stored.RawEvent.RawEventID {
		t.Fatalf("expected same record, got %s and %s", fetched.RawEvent.RawEventID, stored.RawEvent.RawEventID)
	}
}

func TestStoreRawEventDefaultsDatetimeToNow(t *testing.T) {
	module := newTestModule()

	before := time.Now().UTC()
	stored, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{
		EventID: "no-datetime",
	})
	if err != nil {
		t.Fatalf("store raw event failed: %v", err)
	}
	after := time.Now().UTC()

	datetime, err := time.Parse(time.RFC3339Nano, stored.RawEvent.Datetime)
	if err != nil {
		t.Fatalf("unparseable datetime %q: %v", stored.RawEvent.Datetime, err)
	}
	if datetime.Before(before) || datetime.After(after) {
		t.Fatalf("expected datetime in [%v, %v], got %v", before, after, datetime)
	}
}

func TestStoreRawEventDuplicatePair(t *testing.T) {
	module := newTestModule()

	req := httptransport.StoreRawEventRequest{EventID: "abc123"}
	if _, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, req); err != nil {
		t.Fatalf("first store failed: %v", err)
	}
	_, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, req)
	if !errors.Is(err, domainerrors.ErrDuplicateRawEvent) {
		t.Fatalf("expected ErrDuplicateRawEvent, got %v", err)
	}
}

func TestStoreRawEventWithoutEventIDNeverCollides(t *testing.T) {
	module := newTestModule()

	first, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{})
	if err != nil {
		t.Fatalf("first store failed: %v", err)
	}
	second, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{})
	if err != nil {
		t.Fatalf("second store without event id failed: %v", err)
	}
	if first.RawEvent.RawEventID == second.RawEvent.RawEventID {
		t.Fatalf("expected distinct records")
	}
}

func TestStoreRawEventEventIDTooLong(t *testing.T) {
	module := newTestModule()

	_, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{
		EventID: "0123456789abcdef0123456789abcdef0", // 33 chars
	})
	if !errors.Is(err, domainerrors.ErrEventIDTooLong) {
		t.Fatalf("expected ErrEventIDTooLong, got %v", err)
	}
}

func TestStoreRawEventDanglingProject(t *testing.T) {
	module := newTestModule()

	_, err := module.Handler.StoreRawEventHandler(context.Background(), "99999999-9999-9999-9999-999999999999", httptransport.StoreRawEventRequest{
		EventID: "abc123",
	})
	if !errors.Is(err, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestGetRawEventMiss(t *testing.T) {
	module := newTestModule()

	_, err := module.Handler.GetRawEventHandler(context.Background(), testProjectID, "missing")
	if !errors.Is(err, domainerrors.ErrRawEventNotFound) {
		t.Fatalf("expected ErrRawEventNotFound, got %v", err)
	}
}

func TestDistinctPairsAreIndependentlyRetrievable(t *testing.T) {
	module := newTestModule()
	module.Store.SeedProject("other-project")

	pairs := []struct{ projectID, eventID string }{
		{testProjectID, "event-a"},
		{testProjectID, "event-b"},
		{"other-project", "event-a"},
	}
	for _, pair := range pairs {
		if _, err := module.Handler.StoreRawEventHandler(context.Background(), pair.projectID, httptransport.StoreRawEventRequest{
			EventID: pair.eventID,
		}); err != nil {
			t.Fatalf("store (%s, %s) failed: %v", pair.projectID, pair.eventID, err)
		}
	}
	for _, pair := range pairs {
		resp, err := module.Handler.GetRawEventHandler(context.Background(), pair.projectID, pair.eventID)
		if err != nil {
			t.Fatalf("get (%s, %s) failed: %v", pair.projectID, pair.eventID, err)
		}
		if resp.RawEvent.ProjectID != pair.projectID || resp.RawEvent.EventID != pair.eventID {
			t.Fatalf("got record for wrong pair: %+v", resp.RawEvent)
		}
	}
}

func TestListByTimeRangeBoundsAndOrder(t *testing.T) {
	module := newTestModule()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		datetime := base.Add(time.Duration(i) * time.Minute)
		if _, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{
			EventID:  fmt.Sprintf("event-%d", i),
			Datetime: datetime.Format(time.RFC3339),
		}); err != nil {
			t.Fatalf("store event-%d failed: %v", i, err)
		}
	}

	// Inclusive window covering events 1..3 only.
	resp, err := module.Handler.ListRawEventsHandler(
		context.Background(),
		testProjectID,
		base.Add(time.Minute).Format(time.RFC3339),
		base.Add(3*time.Minute).Format(time.RFC3339),
		"",
		0,
	)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("expected 3 records, got %d", len(resp.Items))
	}
	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i].Datetime < resp.Items[i-1].Datetime {
			t.Fatalf("expected ascending datetime order, got %s before %s", resp.Items[i-1].Datetime, resp.Items[i].Datetime)
		}
	}
	if resp.Items[0].EventID != "event-1" || resp.Items[2].EventID != "event-3" {
		t.Fatalf("expected events 1..3, got %s..%s", resp.Items[0].EventID, resp.Items[2].EventID)
	}
}

func TestListByTimeRangeCursorIsRestartable(t *testing.T) {
	module := newTestModule()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		if _, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{
			EventID:  fmt.Sprintf("event-%d", i),
			Datetime: base.Add(time.Duration(i) * time.Second).Format(time.RFC3339),
		}); err != nil {
			t.Fatalf("store event-%d failed: %v", i, err)
		}
	}

	from := base.Format(time.RFC3339)
	to := base.Add(time.Hour).Format(time.RFC3339)

	var seen []string
	cursor := ""
	for {
		page, err := module.Handler.ListRawEventsHandler(context.Background(), testProjectID, from, to, cursor, 3)
		if err != nil {
			t.Fatalf("list page failed: %v", err)
		}
		for _, item := range page.Items {
			seen = append(seen, item.EventID)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if len(seen) != 7 {
		t.Fatalf("expected 7 records across pages, got %d: %v", len(seen), seen)
	}
	for i, eventID := range seen {
		if eventID != fmt.Sprintf("event-%d", i) {
			t.Fatalf("unexpected order at %d: %v", i, seen)
		}
	}
}

func TestListByTimeRangeExcludesOtherProjects(t *testing.T) {
	module := newTestModule()
	module.Store.SeedProject("other-project")
	datetime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)

	for _, projectID := range []string{testProjectID, "other-project"} {
		if _, err := module.Handler.StoreRawEventHandler(context.Background(), projectID, httptransport.StoreRawEventRequest{
			EventID:  "shared-event-id",
			Datetime: datetime,
		}); err != nil {
			t.Fatalf("store for %s failed: %v", projectID, err)
		}
	}

	resp, err := module.Handler.ListRawEventsHandler(context.Background(), testProjectID, "2026-03-01T00:00:00Z", "2026-03-02T00:00:00Z", "", 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ProjectID != testProjectID {
		t.Fatalf("expected only the project's own record, got %+v", resp.Items)
	}
}

func TestDeleteRawEventIsIdempotent(t *testing.T) {
	module := newTestModule()

	if _, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, httptransport.StoreRawEventRequest{
		EventID: "abc123",
	}); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	first, err := module.Handler.DeleteRawEventHandler(context.Background(), testProjectID, "abc123")
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if !first.Deleted {
		t.Fatalf("expected first delete to report an existing record")
	}

	second, err := module.Handler.DeleteRawEventHandler(context.Background(), testProjectID, "abc123")
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if second.Deleted {
		t.Fatalf("expected second delete to report a miss")
	}

	if _, err := module.Handler.GetRawEventHandler(context.Background(), testProjectID, "abc123"); !errors.Is(err, domainerrors.ErrRawEventNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
}

func TestDuplicateAfterDeleteSucceeds(t *testing.T) {
	module := newTestModule()

	req := httptransport.StoreRawEventRequest{EventID: "abc123"}
	if _, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, req); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if _, err := module.Handler.DeleteRawEventHandler(context.Background(), testProjectID, "abc123"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Handler.StoreRawEventHandler(context.Background(), testProjectID, req); err != nil {
		t.Fatalf("recreate after delete failed: %v", err)
	}
}
