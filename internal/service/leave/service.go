package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/metrics"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository

	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*LeaveServiceImpl)

// WithClock replaces time.Now as the source of submission dates.
func WithClock(now func() time.Time) Option {
	return func(s *LeaveServiceImpl) {
		s.now = now
	}
}

// WithMetrics counts lifecycle transitions.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LeaveServiceImpl) {
		s.metrics = m
	}
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	opts ...Option,
) leave.LeaveService {
	s := &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		now:                    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID int64) (leave.BalanceSummary, error) {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.BalanceSummary{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	summary, err := leave.ComputeBalance(balance)
	if err != nil {
		slog.Error("leave balance integrity violation", "employee_id", employeeID, "error", err)
		return leave.BalanceSummary{}, err
	}

	return summary, nil
}

// AuditBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) AuditBalances(ctx context.Context) (int, error) {
	balances, err := s.LeaveBalanceRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list leave balances: %w", err)
	}

	violations := 0
	for _, b := range balances {
		if _, err := leave.ComputeBalance(b); err != nil {
			violations++
			slog.Warn("leave balance integrity violation", "employee_id", b.EmployeeID, "error", err)
		}
	}

	slog.Info("leave balance audit finished", "checked", len(balances), "violations", violations)
	return violations, nil
}

// SubmitLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request := req.ToLeaveRequest(s.now())

	overlapping, err := s.LeaveRequestRepository.HasOverlapping(ctx, request.EmployeeID, request.StartDate, request.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlapping {
		return leave.LeaveRequest{}, leave.ErrOverlappingLeave
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.metrics.LeaveRequest(metrics.LeaveSubmitted, string(created.LeaveType))
	slog.Info("leave request submitted",
		"id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.LeaveType,
		"days", created.Days,
	)

	return created, nil
}

// CancelLeaveRequest implements leave.LeaveService. Cancelled requests are
// removed rather than kept with a status. When the context carries an acting
// employee, another employee's request is reported as not found.
func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, id int64) (bool, error) {
	var cancelled leave.LeaveRequest
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if actor, ok := employee.ActorFromContext(ctx); ok && actor != request.EmployeeID {
			return fmt.Errorf("failed to get leave request: %w", leave.ErrLeaveRequestNotFound)
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestNotPending
		}
		if err := s.LeaveRequestRepository.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete leave request: %w", err)
		}
		cancelled = request
		return nil
	})
	if err != nil {
		return false, err
	}

	s.metrics.LeaveRequest(metrics.LeaveCancelled, string(cancelled.LeaveType))
	slog.Info("leave request cancelled", "id", id, "employee_id", cancelled.EmployeeID)

	return true, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	if requests == nil {
		requests = []leave.LeaveRequest{}
	}
	return requests, nil
}

// ApproveLeaveRequest implements leave.LeaveService. The status change and the
// balance deduction commit together or not at all.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	approved, err := s.decide(ctx, id, leave.LeaveRequestStatusApproved, func(ctx context.Context, request leave.LeaveRequest) error {
		err := s.LeaveBalanceRepository.IncrementUsed(ctx, request.EmployeeID, request.LeaveType, request.Days)
		if err != nil && !errors.Is(err, leave.ErrInsufficientBalance) {
			return fmt.Errorf("failed to deduct leave balance: %w", err)
		}
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.metrics.LeaveRequest(metrics.LeaveApproved, string(approved.LeaveType))
	slog.Info("leave request approved", "id", id, "employee_id", approved.EmployeeID, "days", approved.Days)

	return approved, nil
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	rejected, err := s.decide(ctx, id, leave.LeaveRequestStatusRejected, nil)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.metrics.LeaveRequest(metrics.LeaveRejected, string(rejected.LeaveType))
	slog.Info("leave request rejected", "id", id, "employee_id", rejected.EmployeeID)

	return rejected, nil
}

// decide moves a Pending request to status inside one transaction, running
// before first when set. An acting employee cannot decide their own request.
func (s *LeaveServiceImpl) decide(
	ctx context.Context,
	id int64,
	status leave.LeaveRequestStatus,
	before func(ctx context.Context, request leave.LeaveRequest) error,
) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if actor, ok := employee.ActorFromContext(ctx); ok && actor == request.EmployeeID {
			return leave.ErrSelfDecision
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestNotPending
		}

		if before != nil {
			if err := before(ctx, request); err != nil {
				return err
			}
		}

		updated, err = s.LeaveRequestRepository.Update(ctx, leave.UpdateLeaveRequestRequest{
			ID:     id,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	return updated, err
}
