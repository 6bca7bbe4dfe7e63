package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttendance_Hours(t *testing.T) {
	cases := []struct {
		raw  *string
		want string
	}{
		{nil, "0"},
		{strPtr("8"), "8"},
		{strPtr("7.25"), "7.25"},
		{strPtr(" 6 "), "6"},
		{strPtr("eight"), "0"},
		{strPtr(""), "0"},
		{strPtr("24"), "24"},
		{strPtr("1e900000"), "0"},
		{strPtr("1e2000000000"), "0"},
		{strPtr("8E0"), "0"},
		{strPtr("-2"), "0"},
		{strPtr("24.01"), "0"},
	}
	for _, c := range cases {
		got := Attendance{WorkHours: c.raw}.Hours()
		assert.Equal(t, c.want, got.String())
	}
}

func TestAttendance_CheckIntegrity(t *testing.T) {
	d := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	valid := []Attendance{
		{Date: d, Status: StatusAbsent},
		{Date: d, Status: StatusPresent, CheckIn: strPtr("09:00"), CheckOut: strPtr("17:00"), WorkHours: strPtr("8")},
		{Date: d, Status: StatusLate, CheckIn: strPtr("09:40"), CheckOut: strPtr("17:00"), WorkHours: strPtr("7.33")},
		{Date: d, Status: Status("Holiday")},
	}
	for _, a := range valid {
		assert.NoError(t, a.CheckIntegrity(), a.Status)
	}

	invalid := []Attendance{
		{Date: d, Status: StatusAbsent, CheckIn: strPtr("09:00")},
		{Date: d, Status: StatusPresent, CheckIn: strPtr("09:00"), WorkHours: strPtr("8")},
		{Date: d, Status: StatusLate, CheckIn: strPtr("09:40"), CheckOut: strPtr("17:00"), WorkHours: strPtr("0")},
	}
	for _, a := range invalid {
		err := a.CheckIntegrity()
		assert.True(t, errors.Is(err, ErrInconsistentRecord), a.Status)
	}
}
