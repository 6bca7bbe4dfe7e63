package fixtures

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// DEMO DATA SET
// ==========================================

// DemoData is the record set served when the portal runs without a backend.
type DemoData struct {
	Employees     []employee.Employee
	Balances      []leave.LeaveBalance
	LeaveRequests []leave.LeaveRequest
	Attendance    []attendance.Attendance
}

// Demo builds the demo data set. Dates are relative to today so the dashboard
// and the current month calendar always have content.
func Demo(today time.Time) DemoData {
	today = date(today.Year(), today.Month(), today.Day())
	return DemoData{
		Employees:     GetDemoEmployees(),
		Balances:      GetDemoBalances(),
		LeaveRequests: GetDemoLeaveRequests(today),
		Attendance:    GetDemoAttendance(1, today),
	}
}

// ==========================================
// EMPLOYEES
// ==========================================

// GetDemoEmployees returns the directory. Employee 1 is the default current employee.
func GetDemoEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:                           1,
			Name:                         "Sarah Johnson",
			Email:                        "sarah.johnson@company.com",
			Phone:                        "+1 (555) 123-4567",
			Department:                   "Engineering",
			Role:                         "Senior Software Engineer",
			JoinDate:                     date(2021, time.March, 15),
			Address:                      strPtr("742 Evergreen Terrace, Springfield"),
			EmergencyContactName:         strPtr("Michael Johnson"),
			EmergencyContactRelationship: strPtr("Spouse"),
			EmergencyContactPhone:        strPtr("+1 (555) 987-6543"),
		},
		{
			ID:         2,
			Name:       "David Chen",
			Email:      "david.chen@company.com",
			Phone:      "+1 (555) 234-5678",
			Department: "Engineering",
			Role:       "Engineering Manager",
			JoinDate:   date(2019, time.August, 1),
		},
		{
			ID:         3,
			Name:       "Emily Rodriguez",
			Email:      "emily.rodriguez@company.com",
			Phone:      "+1 (555) 345-6789",
			Department: "Human Resources",
			Role:       "HR Business Partner",
			JoinDate:   date(2020, time.January, 6),
		},
		{
			ID:         4,
			Name:       "James Wilson",
			Email:      "james.wilson@company.com",
			Phone:      "+1 (555) 456-7890",
			Department: "Sales",
			Role:       "Account Executive",
			JoinDate:   date(2022, time.May, 23),
		},
		{
			ID:         5,
			Name:       "Priya Patel",
			Email:      "priya.patel@company.com",
			Phone:      "+1 (555) 567-8901",
			Department: "Design",
			Role:       "Product Designer",
			JoinDate:   date(2023, time.February, 13),
		},
	}
}

// ==========================================
// LEAVE BALANCES
// ==========================================

func GetDemoBalances() []leave.LeaveBalance {
	return []leave.LeaveBalance{
		{EmployeeID: 1, Annual: 20, Sick: 10, Casual: 5, UsedAnnual: 5, UsedSick: 2, UsedCasual: 1},
		{EmployeeID: 2, Annual: 22, Sick: 10, Casual: 5, UsedAnnual: 10, UsedSick: 0, UsedCasual: 2},
		{EmployeeID: 3, Annual: 20, Sick: 10, Casual: 5},
		{EmployeeID: 4, Annual: 18, Sick: 10, Casual: 5, UsedAnnual: 3, UsedSick: 1},
		{EmployeeID: 5, Annual: 15, Sick: 10, Casual: 5, UsedCasual: 1},
	}
}

// ==========================================
// LEAVE REQUESTS
// ==========================================

// GetDemoLeaveRequests returns requests in insertion order; ids are assigned by the store.
func GetDemoLeaveRequests(today time.Time) []leave.LeaveRequest {
	request := func(employeeID int64, t leave.LeaveType, startOffset, days int, reason string, status leave.LeaveRequestStatus, submittedOffset int) leave.LeaveRequest {
		start := today.AddDate(0, 0, startOffset)
		return leave.LeaveRequest{
			EmployeeID:    employeeID,
			LeaveType:     t,
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, days-1),
			Days:          days,
			Reason:        reason,
			Status:        status,
			SubmittedDate: today.AddDate(0, 0, submittedOffset),
		}
	}

	return []leave.LeaveRequest{
		request(1, leave.LeaveTypeAnnual, -60, 5, "Family vacation", leave.LeaveRequestStatusApproved, -80),
		request(1, leave.LeaveTypeSick, -35, 2, "Flu", leave.LeaveRequestStatusApproved, -35),
		request(1, leave.LeaveTypeCasual, -20, 1, "Personal errand", leave.LeaveRequestStatusRejected, -25),
		request(1, leave.LeaveTypeCasual, 10, 1, "Moving apartments", leave.LeaveRequestStatusPending, -3),
		request(1, leave.LeaveTypeAnnual, 30, 3, "Wedding of a friend", leave.LeaveRequestStatusPending, -1),
		request(2, leave.LeaveTypeAnnual, 14, 5, "Conference trip extension", leave.LeaveRequestStatusPending, -2),
		request(4, leave.LeaveTypeSick, -7, 1, "Dentist appointment", leave.LeaveRequestStatusApproved, -8),
	}
}

// ==========================================
// ATTENDANCE
// ==========================================

// GetDemoAttendance generates weekday records for the previous and current
// month up to yesterday.
func GetDemoAttendance(employeeID int64, today time.Time) []attendance.Attendance {
	first := date(today.Year(), today.Month(), 1).AddDate(0, -1, 0)

	var records []attendance.Attendance
	for d := first; d.Before(today); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}

		rec := attendance.Attendance{EmployeeID: employeeID, Date: d}
		switch {
		case d.Day()%11 == 0:
			rec.Status = attendance.StatusAbsent
		case d.Day()%7 == 3:
			rec.Status = attendance.StatusLate
			rec.CheckIn = strPtr("09:45")
			rec.CheckOut = strPtr("17:00")
			rec.WorkHours = strPtr("7.25")
		default:
			rec.Status = attendance.StatusPresent
			rec.CheckIn = strPtr("08:55")
			rec.CheckOut = strPtr("17:25")
			rec.WorkHours = strPtr("8.5")
		}
		records = append(records, rec)
	}

	return records
}
