package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
)

// SeedDemo loads data into an empty database. It reports false without
// writing when employees already exist.
func SeedDemo(ctx context.Context, db *database.DB, data fixtures.DemoData) (bool, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return false, database.WrapStoreError("list", "employee", err)
	}
	if count > 0 {
		return false, nil
	}

	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)

		for _, e := range data.Employees {
			_, err := q.Exec(ctx, `
				INSERT INTO employees (`+employeeColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			`,
				e.ID, e.Name, e.Email, e.Phone, e.Department, e.Role, e.JoinDate, e.Address,
				e.EmergencyContactName, e.EmergencyContactRelationship, e.EmergencyContactPhone,
			)
			if err != nil {
				return fmt.Errorf("seed employee %d: %w", e.ID, err)
			}
		}
		if _, err := q.Exec(ctx, `SELECT setval(pg_get_serial_sequence('employees', 'id'), COALESCE(MAX(id), 1)) FROM employees`); err != nil {
			return fmt.Errorf("reset employee sequence: %w", err)
		}

		for _, b := range data.Balances {
			_, err := q.Exec(ctx, `
				INSERT INTO leave_balances (employee_id, annual, sick, casual, used_annual, used_sick, used_casual)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, b.EmployeeID, b.Annual, b.Sick, b.Casual, b.UsedAnnual, b.UsedSick, b.UsedCasual)
			if err != nil {
				return fmt.Errorf("seed leave balance %d: %w", b.EmployeeID, err)
			}
		}

		requests := NewLeaveRequestRepository(db)
		for _, lr := range data.LeaveRequests {
			if _, err := requests.Create(ctx, lr); err != nil {
				return err
			}
		}

		for _, a := range data.Attendance {
			_, err := q.Exec(ctx, `
				INSERT INTO attendances (employee_id, date, check_in, check_out, work_hours, status)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.WorkHours, a.Status)
			if err != nil {
				return fmt.Errorf("seed attendance %s: %w", a.Date.Format("2006-01-02"), err)
			}
		}
		return nil
	})
	if err != nil {
		return false, database.WrapStoreError("create", "seed", err)
	}

	return true, nil
}
