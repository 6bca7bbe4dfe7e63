package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

// Attendance is one employee's record for one calendar date. Records are
// produced by an external time-tracking process and only read here.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    *string // "15:04"
	CheckOut   *string
	// WorkHours is kept as persisted; it may be missing or non-numeric.
	WorkHours *string
	Status    Status
}

// maxDailyHours bounds a single record's work hours.
var maxDailyHours = decimal.NewFromInt(24)

// Hours parses WorkHours, degrading to zero when missing, malformed or outside
// [0, 24]. Exponent notation is rejected before parsing.
func (a Attendance) Hours() decimal.Decimal {
	if a.WorkHours == nil {
		return decimal.Zero
	}
	raw := strings.TrimSpace(*a.WorkHours)
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() || d.GreaterThan(maxDailyHours) {
		return decimal.Zero
	}
	return d
}

// CheckIntegrity reports a record that breaks the status/check-in invariant:
// Absent has no check-in or check-out, Present and Late have both and positive
// work hours. Unknown statuses are not checked.
func (a Attendance) CheckIntegrity() error {
	switch a.Status {
	case StatusAbsent:
		if a.CheckIn != nil || a.CheckOut != nil {
			return fmt.Errorf("%w: absent on %s with check-in/out times", ErrInconsistentRecord, a.Date.Format("2006-01-02"))
		}
	case StatusPresent, StatusLate:
		if a.CheckIn == nil || a.CheckOut == nil {
			return fmt.Errorf("%w: %s on %s without check-in/out times", ErrInconsistentRecord, a.Status, a.Date.Format("2006-01-02"))
		}
		if !a.Hours().IsPositive() {
			return fmt.Errorf("%w: %s on %s with no work hours", ErrInconsistentRecord, a.Status, a.Date.Format("2006-01-02"))
		}
	}
	return nil
}
