package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_request entity
type LeaveRequestRepository interface {
	// Create assigns the next id, strictly greater than any id handed out before.
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	// List returns requests ordered by submitted date descending, then id ascending.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, request UpdateLeaveRequestRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id int64) error
	// HasOverlapping reports whether a Pending or Approved request of the
	// employee intersects [start, end].
	HasOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (bool, error)
}

// LeaveBalanceRepository - interface for the leave_balance entity, one row per employee
type LeaveBalanceRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int64) (LeaveBalance, error)
	// List returns every balance ordered by employee id.
	List(ctx context.Context) ([]LeaveBalance, error)
	// IncrementUsed adds days to the used counter of leaveType. It fails with
	// ErrInsufficientBalance when the counter would exceed the allotment.
	IncrementUsed(ctx context.Context, employeeID int64, leaveType LeaveType, days int) error
}
