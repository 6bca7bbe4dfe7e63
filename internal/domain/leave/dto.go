package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type SubmitLeaveRequestRequest struct {
	EmployeeID int64  `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Annual, Sick, Casual",
		})
	}

	// Dates
	var startDate, endDate time.Time
	var startOK, endOK bool
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if startDate, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if endDate, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && InclusiveDays(startDate, endDate) < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// Reason
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToLeaveRequest builds a Pending request from a validated submission.
func (r *SubmitLeaveRequestRequest) ToLeaveRequest(submitted time.Time) LeaveRequest {
	startDate, _ := validator.IsValidDate(r.StartDate)
	endDate, _ := validator.IsValidDate(r.EndDate)

	return LeaveRequest{
		EmployeeID:    r.EmployeeID,
		LeaveType:     LeaveType(r.LeaveType),
		StartDate:     startDate,
		EndDate:       endDate,
		Days:          InclusiveDays(startDate, endDate),
		Reason:        strings.TrimSpace(r.Reason),
		Status:        LeaveRequestStatusPending,
		SubmittedDate: validator.TruncateDate(submitted),
	}
}

// InclusiveDays counts both the start and the end date.
func InclusiveDays(start, end time.Time) int {
	return validator.DaysBetween(end, start) + 1
}

// UpdateLeaveRequestRequest is a partial update: nil fields are left unchanged.
type UpdateLeaveRequestRequest struct {
	ID        int64               `json:"id"`
	LeaveType *LeaveType          `json:"leave_type,omitempty"`
	StartDate *time.Time          `json:"start_date,omitempty"`
	EndDate   *time.Time          `json:"end_date,omitempty"`
	Days      *int                `json:"days,omitempty"`
	Reason    *string             `json:"reason,omitempty"`
	Status    *LeaveRequestStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no field.
func (r UpdateLeaveRequestRequest) IsEmpty() bool {
	return r.LeaveType == nil && r.StartDate == nil && r.EndDate == nil &&
		r.Days == nil && r.Reason == nil && r.Status == nil
}

// Apply merges the present fields into req.
func (r UpdateLeaveRequestRequest) Apply(req *LeaveRequest) {
	if r.LeaveType != nil {
		req.LeaveType = *r.LeaveType
	}
	if r.StartDate != nil {
		req.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		req.EndDate = *r.EndDate
	}
	if r.Days != nil {
		req.Days = *r.Days
	}
	if r.Reason != nil {
		req.Reason = *r.Reason
	}
	if r.Status != nil {
		req.Status = *r.Status
	}
}

// LeaveRequestFilter narrows List. A nil EmployeeID lists every employee.
type LeaveRequestFilter struct {
	EmployeeID *int64
}

type LeaveRequestResponse struct {
	ID            int64              `json:"id"`
	EmployeeID    int64              `json:"employee_id"`
	LeaveType     LeaveType          `json:"leave_type"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Days          int                `json:"days"`
	Reason        string             `json:"reason"`
	Status        LeaveRequestStatus `json:"status"`
	SubmittedDate string             `json:"submitted_date"`
	Cancellable   bool               `json:"cancellable"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		LeaveType:     r.LeaveType,
		StartDate:     r.StartDate.Format(validator.DateLayout),
		EndDate:       r.EndDate.Format(validator.DateLayout),
		Days:          r.Days,
		Reason:        r.Reason,
		Status:        r.Status,
		SubmittedDate: r.SubmittedDate.Format(validator.DateLayout),
		Cancellable:   r.IsPending(),
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}
