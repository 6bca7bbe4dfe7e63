package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetByEmployeeID implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, annual, sick, casual, used_annual, used_sick, used_casual
		FROM leave_balances
		WHERE employee_id = $1
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.EmployeeID, &b.Annual, &b.Sick, &b.Casual, &b.UsedAnnual, &b.UsedSick, &b.UsedCasual,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, database.WrapStoreError("get", "leave_balance", err)
	}

	return b, nil
}

// List implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) List(ctx context.Context) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, annual, sick, casual, used_annual, used_sick, used_casual
		FROM leave_balances
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, database.WrapStoreError("list", "leave_balance", err)
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(&b.EmployeeID, &b.Annual, &b.Sick, &b.Casual, &b.UsedAnnual, &b.UsedSick, &b.UsedCasual); err != nil {
			return nil, database.WrapStoreError("list", "leave_balance", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStoreError("list", "leave_balance", err)
	}

	return balances, nil
}

// balanceColumns maps a leave type to its (total, used) columns.
func balanceColumns(t leave.LeaveType) (string, string, error) {
	switch t {
	case leave.LeaveTypeAnnual:
		return "annual", "used_annual", nil
	case leave.LeaveTypeSick:
		return "sick", "used_sick", nil
	case leave.LeaveTypeCasual:
		return "casual", "used_casual", nil
	}
	return "", "", fmt.Errorf("unknown leave type %q", t)
}

// IncrementUsed implements leave.LeaveBalanceRepository. The bound check runs
// in the UPDATE itself so concurrent approvals cannot overdraw the balance.
func (r *leaveBalanceRepositoryImpl) IncrementUsed(ctx context.Context, employeeID int64, leaveType leave.LeaveType, days int) error {
	q := GetQuerier(ctx, r.db)

	totalCol, usedCol, err := balanceColumns(leaveType)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE leave_balances
		SET %[2]s = %[2]s + $1, updated_at = NOW()
		WHERE employee_id = $2 AND %[2]s + $1 <= %[1]s
	`, totalCol, usedCol)

	commandTag, err := q.Exec(ctx, query, days, employeeID)
	if err != nil {
		return database.WrapStoreError("update", "leave_balance", err)
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	// Tell a missing row apart from an exhausted one.
	if _, err := r.GetByEmployeeID(ctx, employeeID); err != nil {
		return err
	}
	return leave.ErrInsufficientBalance
}
