package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	leave.LeaveService
	attendance.AttendanceService
	now func() time.Time
}

func NewDashboardService(leaveService leave.LeaveService, attendanceService attendance.AttendanceService, now func() time.Time) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		LeaveService:      leaveService,
		AttendanceService: attendanceService,
		now:               now,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, employeeID int64) (*dashboard.DashboardResponse, error) {
	var (
		balance  leave.BalanceSummary
		requests []leave.LeaveRequest
		records  []attendance.Attendance
		summary  attendance.MonthSummary
	)

	now := s.now()
	g, gCtx := errgroup.WithContext(ctx)

	// 1. Balance
	g.Go(func() error {
		var err error
		balance, err = s.LeaveService.GetBalance(gCtx, employeeID)
		return err
	})

	// 2. Leave requests
	g.Go(func() error {
		var err error
		requests, err = s.LeaveService.ListLeaveRequests(gCtx, leave.LeaveRequestFilter{EmployeeID: &employeeID})
		return err
	})

	// 3. Attendance history
	g.Go(func() error {
		var err error
		records, err = s.AttendanceService.History(gCtx, attendance.HistoryRequest{EmployeeID: employeeID})
		return err
	})

	// 4. This month
	g.Go(func() error {
		var err error
		summary, err = s.AttendanceService.MonthSummary(gCtx, employeeID, now.Year(), now.Month())
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	pending := 0
	for _, r := range requests {
		if r.IsPending() {
			pending++
		}
	}

	return &dashboard.DashboardResponse{
		EmployeeID:       employeeID,
		Balance:          balance,
		PendingRequests:  pending,
		RecentLeaves:     leave.NewLeaveRequestResponses(requests[:min(len(requests), dashboard.RecentLeaveLimit)]),
		RecentAttendance: attendance.NewAttendanceResponses(records[:min(len(records), dashboard.RecentAttendanceLimit)]),
		MonthSummary:     summary,
	}, nil
}
