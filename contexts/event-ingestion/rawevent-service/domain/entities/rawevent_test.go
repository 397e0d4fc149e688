package entities

import (
	"strings"
	"testing"

	"rawvault/internal/shared/relocation"
)

func TestRefScopePrefersRecordProjectID(t *testing.T) {
	record := RawEvent{ProjectID: "project-a"}
	if got := RefScope(record, "owner-b"); got != "project-a" {
		t.Fatalf("expected project-a, got %s", got)
	}
}

func TestRefScopeFallsBackToOwner(t *testing.T) {
	record := RawEvent{}
	if got := RefScope(record, "owner-b"); got != "owner-b" {
		t.Fatalf("expected owner-b, got %s", got)
	}
}

func TestValidEventID(t *testing.T) {
	if !ValidEventID("") {
		t.Fatalf("empty event id must be valid (field is optional)")
	}
	if !ValidEventID(strings.Repeat("a", MaxEventIDLength)) {
		t.Fatalf("event id at the limit must be valid")
	}
	if ValidEventID(strings.Repeat("a", MaxEventIDLength+1)) {
		t.Fatalf("event id over the limit must be invalid")
	}
}

func TestRawEventIsExcludedFromRelocation(t *testing.T) {
	record := RawEvent{}
	if record.RelocationScope() != relocation.Excluded {
		t.Fatalf("raw events must carry the excluded relocation scope")
	}
	if relocation.InScope(record) {
		t.Fatalf("raw events must never be in relocation scope")
	}
}
