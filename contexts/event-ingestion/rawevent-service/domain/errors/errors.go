package errors

import "errors"

var (
	ErrRawEventNotFound  = errors.New("raw event not found")
	ErrDuplicateRawEvent = errors.New("raw event already exists for project and event id")
	ErrProjectNotFound   = errors.New("project does not exist")
	ErrProjectRequired   = errors.New("project id is required")
	ErrEventIDTooLong    = errors.New("event id exceeds maximum length")
	ErrInvalidDatetime   = errors.New("datetime is not a valid RFC3339 timestamp")
	ErrInvalidTimeRange  = errors.New("time range lower bound is after upper bound")
	ErrInvalidListCursor = errors.New("list cursor is malformed")
)
