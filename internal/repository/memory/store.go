package memory

import (
	"context"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
)

type txKey struct{}

// Store is an in-process record store. Writes are serialized; a transaction
// holds the write lock for its whole duration and restores a snapshot when
// fn fails.
type Store struct {
	txMu   sync.Mutex
	mu     sync.RWMutex
	closed atomic.Bool

	employees     map[int64]employee.Employee
	balances      map[int64]leave.LeaveBalance
	leaveRequests map[int64]leave.LeaveRequest
	attendance    map[int64]attendance.Attendance

	// Never rewound, so ids stay unique across rolled back transactions.
	lastLeaveRequestID int64
	lastAttendanceID   int64
}

var _ database.Transactor = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		employees:     make(map[int64]employee.Employee),
		balances:      make(map[int64]leave.LeaveBalance),
		leaveRequests: make(map[int64]leave.LeaveRequest),
		attendance:    make(map[int64]attendance.Attendance),
	}
}

// Seed loads a data set. Leave requests and attendance records receive
// sequential ids in slice order.
func (s *Store) Seed(data fixtures.DemoData) {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range data.Employees {
		s.employees[e.ID] = e
	}
	for _, b := range data.Balances {
		s.balances[b.EmployeeID] = b
	}
	for _, r := range data.LeaveRequests {
		s.lastLeaveRequestID++
		r.ID = s.lastLeaveRequestID
		s.leaveRequests[r.ID] = r
	}
	for _, a := range data.Attendance {
		s.lastAttendanceID++
		a.ID = s.lastAttendanceID
		s.attendance[a.ID] = a
	}
}

type snapshot struct {
	employees     map[int64]employee.Employee
	balances      map[int64]leave.LeaveBalance
	leaveRequests map[int64]leave.LeaveRequest
	attendance    map[int64]attendance.Attendance
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		employees:     maps.Clone(s.employees),
		balances:      maps.Clone(s.balances),
		leaveRequests: maps.Clone(s.leaveRequests),
		attendance:    maps.Clone(s.attendance),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = snap.employees
	s.balances = snap.balances
	s.leaveRequests = snap.leaveRequests
	s.attendance = snap.attendance
}

// WithTransaction implements database.Transactor. Nested calls join the
// outer transaction.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// Close marks the store unavailable. Later calls fail with
// database.ErrStoreUnavailable.
func (s *Store) Close() {
	s.closed.Store(true)
}

// check reports a cancelled context or a closed store as a *database.StoreError.
func (s *Store) check(ctx context.Context, op, entity string) error {
	if err := ctx.Err(); err != nil {
		return database.WrapStoreError(op, entity, err)
	}
	if s.closed.Load() {
		return database.WrapStoreError(op, entity, database.ErrStoreUnavailable)
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// write runs fn under the write lock. Outside a transaction it also takes
// the transaction lock so it cannot interleave with one.
func (s *Store) write(ctx context.Context, op, entity string, fn func() error) error {
	if err := s.check(ctx, op, entity); err != nil {
		return err
	}
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) read(ctx context.Context, op, entity string, fn func() error) error {
	if err := s.check(ctx, op, entity); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn()
}
