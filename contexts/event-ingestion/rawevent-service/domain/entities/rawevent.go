package entities

import (
	"encoding/json"
	"strings"
	"time"

	"rawvault/internal/shared/relocation"
)

const (
	// MaxEventIDLength caps the client-supplied event identifier.
	MaxEventIDLength = 32

	// CurrentRefVersion is the reference-resolution format stamped on
	// stored payloads. Bump only together with the resolver tooling.
	CurrentRefVersion = 1
)

// NodeData is the tagged payload wrapper written alongside a raw event.
// The store treats Payload as opaque; RefScope and RefVersion tell the
// downstream resolver which project scope the payload's internal
// references belong to and which format they were written in.
type NodeData struct {
	RefScope   string
	RefVersion int
	Payload    json.RawMessage
}

// RawEvent is one raw payload captured at ingestion time, owned by a
// single project. Rows are written once and never updated in place;
// only the retention sweeper removes them.
type RawEvent struct {
	RawEventID string
	ProjectID  string
	EventID    string // optional, empty means not supplied
	Datetime   time.Time
	Data       *NodeData
}

// RelocationScope marks raw events as permanently excluded from
// backup/relocation exports.
func (RawEvent) RelocationScope() relocation.Scope {
	return relocation.Excluded
}

func (e RawEvent) HasEventID() bool {
	return strings.TrimSpace(e.EventID) != ""
}

// ValidEventID reports whether a client-supplied event id fits the
// stored column. Empty is valid: the field is optional.
func ValidEventID(eventID string) bool {
	return len(strings.TrimSpace(eventID)) <= MaxEventIDLength
}

// RefScope resolves the reference scope a record's payload belongs to:
// the record's own project id when set, otherwise the owning project's
// identifier. Pure; callers resolve the owner themselves.
func RefScope(record RawEvent, ownerProjectID string) string {
	if strings.TrimSpace(record.ProjectID) != "" {
		return strings.TrimSpace(record.ProjectID)
	}
	return strings.TrimSpace(ownerProjectID)
}
