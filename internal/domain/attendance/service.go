package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// History returns the employee's records, most recent first.
	History(ctx context.Context, req HistoryRequest) ([]Attendance, error)

	// MonthSummary aggregates one month of the employee's records.
	MonthSummary(ctx context.Context, employeeID int64, year int, month time.Month) (MonthSummary, error)

	// Calendar returns the 42-cell grid for the month.
	Calendar(ctx context.Context, employeeID int64, year int, month time.Month) ([]CalendarCell, error)
}
