package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/hris-portal-go/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/hris-portal-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func newTestService(t *testing.T, data fixtures.DemoData, attendanceRepo attendance.AttendanceRepository) dashboard.DashboardService {
	t.Helper()
	store := memory.NewStore()
	store.Seed(data)
	if attendanceRepo == nil {
		attendanceRepo = memory.NewAttendanceRepository(store)
	}
	leaves := leaveService.NewLeaveService(
		store,
		memory.NewLeaveRequestRepository(store),
		memory.NewLeaveBalanceRepository(store),
		leaveService.WithClock(clock),
	)
	return NewDashboardService(leaves, attendanceService.NewAttendanceService(attendanceRepo, clock), clock)
}

func TestGetDashboard(t *testing.T) {
	svc := newTestService(t, fixtures.Demo(testNow), nil)

	got, err := svc.GetDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.EmployeeID)
	assert.Equal(t, 15, got.Balance.Remaining(leave.LeaveTypeAnnual))

	require.Len(t, got.RecentLeaves, dashboard.RecentLeaveLimit)
	assert.Equal(t, "2024-03-19", got.RecentLeaves[0].SubmittedDate)
	assert.Equal(t, 2, got.PendingRequests)

	require.Len(t, got.RecentAttendance, dashboard.RecentAttendanceLimit)
	assert.Equal(t, "2024-03-19", got.RecentAttendance[0].Date)

	assert.Equal(t, time.March, got.MonthSummary.Month)
	// Weekdays from March 1 to 19, 2024.
	assert.Equal(t, 13, got.MonthSummary.TotalDays)
}

func TestGetDashboard_PendingCountsBeyondRecent(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	var requests []leave.LeaveRequest
	for i := 1; i <= 5; i++ {
		requests = append(requests, leave.LeaveRequest{
			EmployeeID:    1,
			LeaveType:     leave.LeaveTypeSick,
			StartDate:     day(i),
			EndDate:       day(i),
			Days:          1,
			Reason:        "r",
			Status:        leave.LeaveRequestStatusPending,
			SubmittedDate: day(i),
		})
	}
	svc := newTestService(t, fixtures.DemoData{
		Balances:      []leave.LeaveBalance{{EmployeeID: 1, Sick: 10}},
		LeaveRequests: requests,
	}, nil)

	got, err := svc.GetDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got.RecentLeaves, 3)
	assert.Equal(t, 5, got.PendingRequests)
	assert.Empty(t, got.RecentAttendance)
	assert.Zero(t, got.MonthSummary.TotalDays)
}

type failingAttendance struct{}

func (failingAttendance) List(context.Context, attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, database.WrapStoreError("list", "attendance", database.ErrStoreUnavailable)
}

func TestGetDashboard_AnyFailureFailsTheWhole(t *testing.T) {
	svc := newTestService(t, fixtures.Demo(testNow), failingAttendance{})

	got, err := svc.GetDashboard(context.Background(), 1)
	assert.Nil(t, got)
	var se *database.StoreError
	assert.ErrorAs(t, err, &se)
}

func TestGetDashboard_MissingBalance(t *testing.T) {
	svc := newTestService(t, fixtures.Demo(testNow), nil)

	_, err := svc.GetDashboard(context.Background(), 3)
	require.NoError(t, err)

	_, err = svc.GetDashboard(context.Background(), 404)
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
}
