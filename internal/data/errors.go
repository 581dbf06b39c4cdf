package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrUserIDRequired = errors.New("user_id is required")

	// Label repository sentinels.
	ErrLabelNotFound   = errors.New("label not found")
	ErrLabelNameExists = errors.New("label name already exists")

	// Project and task repository sentinels.
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)
