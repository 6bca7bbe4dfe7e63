package leave

import (
	"context"
)

type LeaveService interface {
	// Balance
	GetBalance(ctx context.Context, employeeID int64) (BalanceSummary, error)
	// AuditBalances checks every stored balance and returns how many violate
	// their invariant.
	AuditBalances(ctx context.Context) (int, error)
	// Request
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequest, error)
	CancelLeaveRequest(ctx context.Context, id int64) (bool, error)
	GetLeaveRequest(ctx context.Context, id int64) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, id int64) (LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, id int64) (LeaveRequest, error)
}
