package attendance

import "errors"

var (
	ErrInvalidDateRange   = errors.New("from date must not be after to date")
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
	ErrInconsistentRecord = errors.New("attendance record is inconsistent")
)
