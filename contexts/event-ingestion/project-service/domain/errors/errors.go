package errors

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectName = errors.New("project name is empty or too long")
	ErrDuplicateProject   = errors.New("project already exists")
)
