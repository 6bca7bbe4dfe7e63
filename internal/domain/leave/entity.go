package leave

import (
	"time"
)

// LeaveType is a leave category with its own allotment and usage counter.
type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "Annual"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeCasual LeaveType = "Casual"
)

// LeaveTypes lists the categories in display order.
var LeaveTypes = []LeaveType{LeaveTypeAnnual, LeaveTypeSick, LeaveTypeCasual}

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeCasual:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	LeaveType  LeaveType

	// Both dates are inclusive and carry no time-of-day.
	StartDate time.Time
	EndDate   time.Time
	Days      int

	Reason string
	Status LeaveRequestStatus

	// Set once at creation.
	SubmittedDate time.Time
}

// IsPending reports whether the request can still be cancelled or decided.
func (r LeaveRequest) IsPending() bool {
	return r.Status == LeaveRequestStatusPending
}

// Overlaps reports whether [start, end] intersects the request's date range.
func (r LeaveRequest) Overlaps(start, end time.Time) bool {
	return !r.EndDate.Before(start) && !end.Before(r.StartDate)
}

// LeaveBalance holds one employee's allotments and usage per category.
type LeaveBalance struct {
	EmployeeID int64

	Annual int
	Sick   int
	Casual int

	UsedAnnual int
	UsedSick   int
	UsedCasual int
}

// Category returns total and used days for t. Unknown types report zeros.
func (b LeaveBalance) Category(t LeaveType) (total, used int) {
	switch t {
	case LeaveTypeAnnual:
		return b.Annual, b.UsedAnnual
	case LeaveTypeSick:
		return b.Sick, b.UsedSick
	case LeaveTypeCasual:
		return b.Casual, b.UsedCasual
	}
	return 0, 0
}

// AddUsed increments the used counter of t by days.
func (b *LeaveBalance) AddUsed(t LeaveType, days int) {
	switch t {
	case LeaveTypeAnnual:
		b.UsedAnnual += days
	case LeaveTypeSick:
		b.UsedSick += days
	case LeaveTypeCasual:
		b.UsedCasual += days
	}
}
