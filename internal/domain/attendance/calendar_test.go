package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarGrid_AlwaysFortyTwoCells(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := BuildCalendarGrid(nil, year, month)
			require.Len(t, cells, GridSize)

			assert.Equal(t, time.Sunday, cells[0].Date.Weekday(), "%d-%02d", year, month)
			assert.False(t, cells[0].Date.After(day(year, month, 1)))

			first, last := MonthRange(year, month)
			inMonth := 0
			for i, c := range cells {
				if i > 0 {
					assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), c.Date)
				}
				within := !c.Date.Before(first) && !c.Date.After(last)
				assert.Equal(t, within, c.InCurrentMonth, "%s", c.Date)
				if within {
					inMonth++
				}
			}
			assert.Equal(t, last.Day(), inMonth)
		}
	}
}

func TestBuildCalendarGrid_MarchTwentyTwentyFour(t *testing.T) {
	cells := BuildCalendarGrid(nil, 2024, time.March)

	// 1 March 2024 is a Friday.
	assert.Equal(t, day(2024, time.February, 25), cells[0].Date)
	assert.Equal(t, day(2024, time.March, 1), cells[5].Date)
	assert.True(t, cells[5].InCurrentMonth)
	assert.False(t, cells[4].InCurrentMonth)
	assert.Equal(t, day(2024, time.March, 31), cells[35].Date)
	assert.Equal(t, day(2024, time.April, 6), cells[41].Date)
	assert.False(t, cells[36].InCurrentMonth)
}

func TestBuildCalendarGrid_MonthStartingOnSunday(t *testing.T) {
	// 1 February 2015 is a Sunday and the month spans exactly four weeks.
	cells := BuildCalendarGrid(nil, 2015, time.February)

	assert.Equal(t, day(2015, time.February, 1), cells[0].Date)
	assert.True(t, cells[27].InCurrentMonth)
	assert.False(t, cells[28].InCurrentMonth)
	assert.Equal(t, day(2015, time.March, 14), cells[41].Date)
}

func TestBuildCalendarGrid_StatusBadges(t *testing.T) {
	records := []Attendance{
		{ID: 1, Date: day(2024, time.March, 4), Status: StatusPresent},
		{ID: 2, Date: day(2024, time.March, 5), Status: StatusLate},
		{ID: 3, Date: day(2024, time.March, 6), Status: StatusAbsent},
		{ID: 4, Date: day(2024, time.March, 7), Status: Status("OnLeave")},
		{ID: 5, Date: day(2024, time.March, 7), Status: StatusAbsent},
		// Lead/trail days from adjacent months never carry a badge.
		{ID: 6, Date: day(2024, time.February, 26), Status: StatusPresent},
		{ID: 7, Date: day(2024, time.April, 2), Status: StatusLate},
	}

	cells := BuildCalendarGrid(records, 2024, time.March)
	byDate := make(map[time.Time]CalendarCell)
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.Equal(t, BadgeSuccess, byDate[day(2024, time.March, 4)].Variant)
	assert.Equal(t, BadgeWarning, byDate[day(2024, time.March, 5)].Variant)
	assert.Equal(t, BadgeError, byDate[day(2024, time.March, 6)].Variant)

	dup := byDate[day(2024, time.March, 7)]
	require.NotNil(t, dup.Record)
	assert.Equal(t, int64(4), dup.Record.ID)
	assert.Equal(t, BadgeNeutral, dup.Variant)

	empty := byDate[day(2024, time.March, 8)]
	assert.Nil(t, empty.Record)
	assert.Equal(t, BadgeVariant(""), empty.Variant)

	for _, d := range []time.Time{day(2024, time.February, 26), day(2024, time.April, 2)} {
		c := byDate[d]
		assert.False(t, c.InCurrentMonth)
		assert.Nil(t, c.Record)
		assert.Empty(t, c.Variant)
	}
}

func TestBuildCalendarGrid_SameMonthOtherYearIsOutside(t *testing.T) {
	records := []Attendance{{Date: day(2023, time.March, 4), Status: StatusPresent}}
	cells := BuildCalendarGrid(records, 2024, time.March)
	for _, c := range cells {
		assert.Nil(t, c.Record)
	}
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, BadgeSuccess, VariantFor(StatusPresent))
	assert.Equal(t, BadgeWarning, VariantFor(StatusLate))
	assert.Equal(t, BadgeError, VariantFor(StatusAbsent))
	assert.Equal(t, BadgeNeutral, VariantFor(Status("present")))
	assert.Equal(t, BadgeNeutral, VariantFor(Status("")))
}

func TestMarkToday(t *testing.T) {
	cells := BuildCalendarGrid(nil, 2024, time.March)
	MarkToday(cells, time.Date(2024, time.March, 12, 15, 30, 0, 0, time.UTC))

	count := 0
	for _, c := range cells {
		if c.IsToday {
			count++
			assert.Equal(t, day(2024, time.March, 12), c.Date)
		}
	}
	assert.Equal(t, 1, count)

	MarkToday(cells, day(2025, time.January, 1))
	for _, c := range cells {
		assert.False(t, c.IsToday)
	}
}
