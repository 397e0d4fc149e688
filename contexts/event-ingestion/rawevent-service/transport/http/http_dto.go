package http

import "encoding/json"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StoreRawEventRequest struct {
	EventID  string          `json:"event_id,omitempty"`
	Datetime string          `json:"datetime,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

type NodeDataDTO struct {
	RefScope   string          `json:"ref_scope"`
	RefVersion int             `json:"ref_version"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type RawEventDTO struct {
	RawEventID string       `json:"raw_event_id"`
	ProjectID  string       `json:"project_id"`
	EventID    string       `json:"event_id,omitempty"`
	Datetime   string       `json:"datetime"`
	Data       *NodeDataDTO `json:"data,omitempty"`
}

type StoreRawEventResponse struct {
	RawEvent RawEventDTO `json:"raw_event"`
}

type GetRawEventResponse struct {
	RawEvent RawEventDTO `json:"raw_event"`
}

type ListRawEventsResponse struct {
	Items      []RawEventDTO `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

type DeleteRawEventResponse struct {
	Deleted bool `json:"deleted"`
}
