package leave

// CategoryBalance is the accounting for one leave category.
type CategoryBalance struct {
	LeaveType        LeaveType `json:"leave_type"`
	Total            int       `json:"total"`
	Used             int       `json:"used"`
	Remaining        int       `json:"remaining"`
	RemainingPercent float64   `json:"remaining_percent"`
}

// BalanceSummary is derived from a LeaveBalance and never persisted.
type BalanceSummary struct {
	EmployeeID     int64             `json:"employee_id"`
	Categories     []CategoryBalance `json:"categories"`
	TotalAllotted  int               `json:"total_allotted"`
	TotalUsed      int               `json:"total_used"`
	TotalRemaining int               `json:"total_remaining"`
}

// Remaining returns the remaining days of t, or 0 when t is not in the summary.
func (s BalanceSummary) Remaining(t LeaveType) int {
	for _, c := range s.Categories {
		if c.LeaveType == t {
			return c.Remaining
		}
	}
	return 0
}

// ComputeBalance derives remaining and total figures from b. A category with
// used outside [0, total] yields a *DataIntegrityError instead of being clamped.
func ComputeBalance(b LeaveBalance) (BalanceSummary, error) {
	summary := BalanceSummary{
		EmployeeID: b.EmployeeID,
		Categories: make([]CategoryBalance, 0, len(LeaveTypes)),
	}

	for _, t := range LeaveTypes {
		total, used := b.Category(t)
		if total < 0 || used < 0 || used > total {
			return BalanceSummary{}, &DataIntegrityError{
				EmployeeID: b.EmployeeID,
				LeaveType:  t,
				Total:      total,
				Used:       used,
			}
		}

		remaining := total - used
		summary.Categories = append(summary.Categories, CategoryBalance{
			LeaveType:        t,
			Total:            total,
			Used:             used,
			Remaining:        remaining,
			RemainingPercent: RemainingPercent(remaining, total),
		})

		summary.TotalAllotted += total
		summary.TotalUsed += used
	}
	summary.TotalRemaining = summary.TotalAllotted - summary.TotalUsed

	return summary, nil
}

// RemainingPercent returns remaining/total as a percentage, 0 when total is 0.
func RemainingPercent(remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(remaining) / float64(total) * 100
}
