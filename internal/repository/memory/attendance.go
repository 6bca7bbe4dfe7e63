package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	err := r.store.read(ctx, "list", "attendance", func() error {
		for _, a := range r.store.attendance {
			if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
				continue
			}
			if filter.From != nil && a.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && a.Date.After(*filter.To) {
				continue
			}
			records = append(records, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}
