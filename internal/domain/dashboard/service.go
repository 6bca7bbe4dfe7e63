package dashboard

import "context"

// DashboardService defines the interface for the employee landing page
type DashboardService interface {
	// GetDashboard loads balance, recent leave requests and recent attendance
	// concurrently and joins them.
	GetDashboard(ctx context.Context, employeeID int64) (*DashboardResponse, error)
}
