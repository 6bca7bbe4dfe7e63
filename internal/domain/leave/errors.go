package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrLeaveBalanceNotFound   = errors.New("leave balance not found")
	ErrLeaveRequestNotPending = errors.New("only pending leave requests can be changed")
	ErrOverlappingLeave       = errors.New("leave request overlaps an existing request")
	ErrInsufficientBalance    = errors.New("insufficient leave balance")
	ErrDataIntegrity          = errors.New("leave balance violates its invariant")
	ErrSelfDecision           = errors.New("employees cannot approve or reject their own leave requests")
)

// DataIntegrityError reports a loaded balance whose counters are out of range.
type DataIntegrityError struct {
	EmployeeID int64
	LeaveType  LeaveType
	Total      int
	Used       int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("leave balance of employee %d: %s used %d of %d",
		e.EmployeeID, e.LeaveType, e.Used, e.Total)
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
