package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

// AttendanceFilter narrows List. Nil fields do not filter; From and To are inclusive.
type AttendanceFilter struct {
	EmployeeID *int64
	From       *time.Time
	To         *time.Time
}

// HistoryRequest is the query for an employee's attendance history.
type HistoryRequest struct {
	EmployeeID int64
	From       string
	To         string
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	var from, to time.Time
	var fromOK, toOK bool
	if r.From != "" {
		if from, fromOK = validator.IsValidDate(r.From); !fromOK {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if r.To != "" {
		if to, toOK = validator.IsValidDate(r.To); !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToFilter converts a validated request.
func (r *HistoryRequest) ToFilter() AttendanceFilter {
	employeeID := r.EmployeeID
	filter := AttendanceFilter{EmployeeID: &employeeID}
	if from, ok := validator.IsValidDate(r.From); ok {
		filter.From = &from
	}
	if to, ok := validator.IsValidDate(r.To); ok {
		filter.To = &to
	}
	return filter
}

// ParseMonth parses "YYYY-MM". An empty string yields the month of now.
func ParseMonth(month string, now time.Time) (int, time.Month, error) {
	if month == "" {
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, ErrInvalidMonth
	}
	return parsed.Year(), parsed.Month(), nil
}

type AttendanceResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	WorkHours  float64 `json:"work_hours"`
	Status     Status  `json:"status"`
	Variant    string  `json:"variant"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(validator.DateLayout),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		WorkHours:  a.Hours().InexactFloat64(),
		Status:     a.Status,
		Variant:    string(VariantFor(a.Status)),
	}
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

type CalendarCellResponse struct {
	Date           string              `json:"date"`
	Day            int                 `json:"day"`
	InCurrentMonth bool                `json:"in_current_month"`
	IsToday        bool                `json:"is_today"`
	Record         *AttendanceResponse `json:"record,omitempty"`
	Variant        string              `json:"variant,omitempty"`
}

type CalendarResponse struct {
	Month string                 `json:"month"` // Format: "YYYY-MM"
	Cells []CalendarCellResponse `json:"cells"`
}

func NewCalendarResponse(year int, month time.Month, cells []CalendarCell) CalendarResponse {
	out := CalendarResponse{
		Month: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Cells: make([]CalendarCellResponse, 0, len(cells)),
	}
	for _, c := range cells {
		cell := CalendarCellResponse{
			Date:           c.Date.Format(validator.DateLayout),
			Day:            c.Date.Day(),
			InCurrentMonth: c.InCurrentMonth,
			IsToday:        c.IsToday,
			Variant:        string(c.Variant),
		}
		if c.Record != nil {
			rec := NewAttendanceResponse(*c.Record)
			cell.Record = &rec
		}
		out.Cells = append(out.Cells, cell)
	}
	return out
}
