package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, records []attendance.Attendance, now time.Time) attendance.AttendanceService {
	t.Helper()
	store := memory.NewStore()
	store.Seed(fixtures.DemoData{Attendance: records})
	return NewAttendanceService(memory.NewAttendanceRepository(store), func() time.Time { return now })
}

func marchRecords() []attendance.Attendance {
	return []attendance.Attendance{
		{EmployeeID: 1, Date: day(2024, time.February, 29), Status: attendance.StatusPresent, CheckIn: strPtr("09:00"), CheckOut: strPtr("17:00"), WorkHours: strPtr("8")},
		{EmployeeID: 1, Date: day(2024, time.March, 1), Status: attendance.StatusPresent, CheckIn: strPtr("09:00"), CheckOut: strPtr("17:30"), WorkHours: strPtr("8.5")},
		{EmployeeID: 1, Date: day(2024, time.March, 4), Status: attendance.StatusLate, CheckIn: strPtr("09:40"), CheckOut: strPtr("17:00"), WorkHours: strPtr("7.25")},
		{EmployeeID: 1, Date: day(2024, time.March, 5), Status: attendance.StatusAbsent},
		// Inconsistent: logged, still counted.
		{EmployeeID: 1, Date: day(2024, time.March, 31), Status: attendance.StatusPresent, WorkHours: strPtr("n/a")},
		{EmployeeID: 2, Date: day(2024, time.March, 4), Status: attendance.StatusPresent, CheckIn: strPtr("09:00"), CheckOut: strPtr("17:00"), WorkHours: strPtr("8")},
	}
}

func TestMonthSummary(t *testing.T) {
	svc := newTestService(t, marchRecords(), day(2024, time.March, 20))

	got, err := svc.MonthSummary(context.Background(), 1, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, attendance.MonthSummary{
		EmployeeID:  1,
		Year:        2024,
		Month:       time.March,
		TotalDays:   4,
		PresentDays: 2,
		LateDays:    1,
		AbsentDays:  1,
		TotalHours:  15.75,
	}, got)

	empty, err := svc.MonthSummary(context.Background(), 1, 2023, time.July)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalDays)
	assert.Zero(t, empty.TotalHours)

	_, err = svc.MonthSummary(context.Background(), 1, 2024, time.Month(13))
	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
}

func TestCalendar(t *testing.T) {
	svc := newTestService(t, marchRecords(), day(2024, time.March, 4))

	cells, err := svc.Calendar(context.Background(), 1, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, cells, attendance.GridSize)

	// March 2024 starts on a Friday: five leading cells from February.
	assert.Equal(t, day(2024, time.February, 25), cells[0].Date)
	assert.Nil(t, cells[4].Record, "Feb 29 is outside the month")

	mar4 := cells[8]
	assert.Equal(t, day(2024, time.March, 4), mar4.Date)
	assert.True(t, mar4.IsToday)
	assert.Equal(t, attendance.BadgeWarning, mar4.Variant)
	require.NotNil(t, mar4.Record)
	assert.Equal(t, int64(1), mar4.Record.EmployeeID)

	assert.Equal(t, attendance.BadgeError, cells[9].Variant)
	assert.Equal(t, attendance.BadgeVariant(""), cells[10].Variant)
}

func TestHistory(t *testing.T) {
	svc := newTestService(t, marchRecords(), day(2024, time.March, 20))
	ctx := context.Background()

	got, err := svc.History(ctx, attendance.HistoryRequest{EmployeeID: 1, From: "2024-03-01", To: "2024-03-05"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, day(2024, time.March, 5), got[0].Date)

	all, err := svc.History(ctx, attendance.HistoryRequest{EmployeeID: 1})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = svc.History(ctx, attendance.HistoryRequest{EmployeeID: 1, From: "2024-03-05", To: "2024-03-01"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	none, err := svc.History(ctx, attendance.HistoryRequest{EmployeeID: 9})
	require.NoError(t, err)
	assert.NotNil(t, none)
}

type failingAttendance struct{}

func (failingAttendance) List(context.Context, attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, database.WrapStoreError("list", "attendance", database.ErrStoreUnavailable)
}

func TestStoreErrorsPropagate(t *testing.T) {
	svc := NewAttendanceService(failingAttendance{}, nil)

	_, err := svc.MonthSummary(context.Background(), 1, 2024, time.March)
	var se *database.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "attendance", se.Entity)

	_, err = svc.Calendar(context.Background(), 1, 2024, time.March)
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
