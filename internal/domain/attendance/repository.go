package attendance

import (
	"context"
)

// AttendanceRepository is read-only: records come from an external time-tracking process.
type AttendanceRepository interface {
	// List returns matching records ordered by date descending.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
