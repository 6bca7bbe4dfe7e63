package dashboard

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
)

const (
	RecentLeaveLimit      = 3
	RecentAttendanceLimit = 5
)

// DashboardResponse is the combined landing page for one employee
type DashboardResponse struct {
	EmployeeID       int64                           `json:"employee_id"`
	Balance          leave.BalanceSummary            `json:"balance"`
	PendingRequests  int                             `json:"pending_requests"`
	RecentLeaves     []leave.LeaveRequestResponse    `json:"recent_leaves"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
	MonthSummary     attendance.MonthSummary         `json:"month_summary"`
}
