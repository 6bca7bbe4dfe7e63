package fixtures

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_RecordsSatisfyInvariants(t *testing.T) {
	today := time.Date(2024, time.March, 20, 14, 0, 0, 0, time.UTC)
	data := Demo(today)

	require.NotEmpty(t, data.Employees)
	for _, b := range data.Balances {
		_, err := leave.ComputeBalance(b)
		assert.NoError(t, err, "employee %d", b.EmployeeID)
	}

	for _, r := range data.LeaveRequests {
		assert.Equal(t, leave.InclusiveDays(r.StartDate, r.EndDate), r.Days)
		assert.True(t, r.LeaveType.IsValid())
		assert.Zero(t, r.ID)
	}

	require.NotEmpty(t, data.Attendance)
	seen := make(map[time.Time]bool)
	for _, a := range data.Attendance {
		assert.NoError(t, a.CheckIntegrity())
		assert.True(t, a.Date.Before(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)))
		assert.False(t, seen[a.Date], "duplicate date %s", a.Date)
		seen[a.Date] = true
		wd := a.Date.Weekday()
		assert.True(t, wd != time.Saturday && wd != time.Sunday)
	}
	assert.Equal(t, time.February, data.Attendance[0].Date.Month())
}
