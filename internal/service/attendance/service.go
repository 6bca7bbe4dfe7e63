package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, now func() time.Time) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		now:                  now,
	}
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, req attendance.HistoryRequest) ([]attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, req.ToFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	if records == nil {
		records = []attendance.Attendance{}
	}

	warnInconsistent(req.EmployeeID, records)
	return records, nil
}

// MonthSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthSummary(ctx context.Context, employeeID int64, year int, month time.Month) (attendance.MonthSummary, error) {
	records, err := s.monthRecords(ctx, employeeID, year, month)
	if err != nil {
		return attendance.MonthSummary{}, err
	}
	return attendance.SummarizeMonth(records, employeeID, year, month), nil
}

// Calendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Calendar(ctx context.Context, employeeID int64, year int, month time.Month) ([]attendance.CalendarCell, error) {
	records, err := s.monthRecords(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	cells := attendance.BuildCalendarGrid(records, year, month)
	attendance.MarkToday(cells, s.now())
	return cells, nil
}

func (s *AttendanceServiceImpl) monthRecords(ctx context.Context, employeeID int64, year int, month time.Month) ([]attendance.Attendance, error) {
	if month < time.January || month > time.December {
		return nil, attendance.ErrInvalidMonth
	}

	first, last := attendance.MonthRange(year, month)
	records, err := s.AttendanceRepository.List(ctx, attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		From:       &first,
		To:         &last,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %04d-%02d: %w", year, month, err)
	}

	warnInconsistent(employeeID, records)
	return records, nil
}

// warnInconsistent logs records that break the status invariant. They are
// still returned and aggregated.
func warnInconsistent(employeeID int64, records []attendance.Attendance) {
	for _, r := range records {
		if err := r.CheckIntegrity(); err != nil {
			slog.Warn("inconsistent attendance record", "employee_id", employeeID, "id", r.ID, "error", err)
		}
	}
}
