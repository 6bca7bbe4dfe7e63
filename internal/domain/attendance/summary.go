package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthSummary is derived on demand and never persisted.
type MonthSummary struct {
	EmployeeID  int64      `json:"employee_id"`
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	TotalDays   int        `json:"total_days"`
	PresentDays int        `json:"present_days"`
	LateDays    int        `json:"late_days"`
	AbsentDays  int        `json:"absent_days"`
	TotalHours  float64    `json:"total_hours"`
}

// MonthRange returns the first and last calendar day of the month in UTC.
func MonthRange(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// SummarizeMonth counts the employee's records dated within the month.
// An empty selection is a valid all-zero summary.
func SummarizeMonth(records []Attendance, employeeID int64, year int, month time.Month) MonthSummary {
	summary := MonthSummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}
	first, last := MonthRange(year, month)

	hours := decimal.Zero
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		d := dateOnly(r.Date)
		if d.Before(first) || d.After(last) {
			continue
		}

		summary.TotalDays++
		switch r.Status {
		case StatusPresent:
			summary.PresentDays++
		case StatusLate:
			summary.LateDays++
		case StatusAbsent:
			summary.AbsentDays++
		}
		hours = hours.Add(r.Hours())
	}
	summary.TotalHours = hours.InexactFloat64()

	return summary
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
