package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
)

type leaveBalanceRepositoryImpl struct {
	store *Store
}

func NewLeaveBalanceRepository(store *Store) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{store: store}
}

// GetByEmployeeID implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := r.store.read(ctx, "get", "leave_balance", func() error {
		found, ok := r.store.balances[employeeID]
		if !ok {
			return leave.ErrLeaveBalanceNotFound
		}
		balance = found
		return nil
	})
	return balance, err
}

// List implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) List(ctx context.Context) ([]leave.LeaveBalance, error) {
	var balances []leave.LeaveBalance
	err := r.store.read(ctx, "list", "leave_balance", func() error {
		balances = make([]leave.LeaveBalance, 0, len(r.store.balances))
		for _, b := range r.store.balances {
			balances = append(balances, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].EmployeeID < balances[j].EmployeeID
	})
	return balances, nil
}

// IncrementUsed implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) IncrementUsed(ctx context.Context, employeeID int64, leaveType leave.LeaveType, days int) error {
	return r.store.write(ctx, "update", "leave_balance", func() error {
		balance, ok := r.store.balances[employeeID]
		if !ok {
			return leave.ErrLeaveBalanceNotFound
		}
		total, used := balance.Category(leaveType)
		if used+days > total {
			return leave.ErrInsufficientBalance
		}
		balance.AddUsed(leaveType, days)
		r.store.balances[employeeID] = balance
		return nil
	})
}
