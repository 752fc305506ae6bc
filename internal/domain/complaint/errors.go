package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")
)
