package attendance

import "time"

// GridSize is six weeks of seven days, so the layout never reflows between months.
const GridSize = 42

// BadgeVariant is the visual style of a calendar status badge.
type BadgeVariant string

const (
	BadgeSuccess BadgeVariant = "success"
	BadgeWarning BadgeVariant = "warning"
	BadgeError   BadgeVariant = "error"
	BadgeNeutral BadgeVariant = "neutral"
)

// VariantFor maps a status to its badge. Unknown statuses render neutral.
func VariantFor(s Status) BadgeVariant {
	switch s {
	case StatusPresent:
		return BadgeSuccess
	case StatusLate:
		return BadgeWarning
	case StatusAbsent:
		return BadgeError
	}
	return BadgeNeutral
}

// CalendarCell is one day of the month grid. Record and Variant are only set
// for days inside the displayed month.
type CalendarCell struct {
	Date           time.Time
	InCurrentMonth bool
	IsToday        bool
	Record         *Attendance
	Variant        BadgeVariant
}

// BuildCalendarGrid lays out 42 days starting on the Sunday of the week that
// contains the 1st of month. records should belong to a single employee; when
// several share a date the first one wins.
func BuildCalendarGrid(records []Attendance, year int, month time.Month) []CalendarCell {
	first, _ := MonthRange(year, month)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	byDate := make(map[time.Time]*Attendance, len(records))
	for i := range records {
		d := dateOnly(records[i].Date)
		if _, ok := byDate[d]; !ok {
			byDate[d] = &records[i]
		}
	}

	cells := make([]CalendarCell, GridSize)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		cell := CalendarCell{
			Date:           d,
			InCurrentMonth: d.Month() == month && d.Year() == year,
		}
		if cell.InCurrentMonth {
			if rec, ok := byDate[d]; ok {
				cell.Record = rec
				cell.Variant = VariantFor(rec.Status)
			}
		}
		cells[i] = cell
	}

	return cells
}

// MarkToday flags the cell matching today's date, if it is on the grid.
func MarkToday(cells []CalendarCell, today time.Time) {
	t := dateOnly(today)
	for i := range cells {
		cells[i].IsToday = cells[i].Date.Equal(t)
	}
}
