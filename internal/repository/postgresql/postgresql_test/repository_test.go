package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

func seeded(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	setup := NewTestDatabase(t)
	ok, err := postgresql.SeedDemo(context.Background(), setup.DB, fixtures.Demo(today))
	require.NoError(t, err)
	require.True(t, ok)
	return setup
}

func TestSeedDemo_OnlyOnce(t *testing.T) {
	setup := seeded(t)

	ok, err := postgresql.SeedDemo(context.Background(), setup.DB, fixtures.Demo(today))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmployeeRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(seeded(t).DB)

	e, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", e.Name)
	assert.Equal(t, time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), e.JoinDate)

	phone := "+1 (555) 222-3333"
	updated, err := repo.Update(ctx, 1, employee.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, e.Email, updated.Email)

	taken := "david.chen@company.com"
	_, err = repo.Update(ctx, 1, employee.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	all, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestLeaveRequestRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	setup := seeded(t)
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	employeeID := int64(1)
	before, err := repo.List(ctx, leave.LeaveRequestFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	for i := 1; i < len(before); i++ {
		assert.False(t, before[i].SubmittedDate.After(before[i-1].SubmittedDate))
	}

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID:    1,
		LeaveType:     leave.LeaveTypeSick,
		StartDate:     today.AddDate(0, 1, 0),
		EndDate:       today.AddDate(0, 1, 1),
		Days:          2,
		Reason:        "Checkup",
		Status:        leave.LeaveRequestStatusPending,
		SubmittedDate: today,
	})
	require.NoError(t, err)
	for _, r := range before {
		assert.Greater(t, created.ID, r.ID)
	}

	overlapping, err := repo.HasOverlapping(ctx, 1, created.EndDate, created.EndDate.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.True(t, overlapping)

	status := leave.LeaveRequestStatusRejected
	updated, err := repo.Update(ctx, leave.UpdateLeaveRequestRequest{ID: created.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, updated.Status)
	assert.Equal(t, "Checkup", updated.Reason)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), leave.ErrLeaveRequestNotFound)
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveBalanceRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	setup := seeded(t)
	repo := postgresql.NewLeaveBalanceRepository(setup.DB)

	// Employee 1 has 5 casual days with 1 used.
	require.NoError(t, repo.IncrementUsed(ctx, 1, leave.LeaveTypeCasual, 4))
	assert.ErrorIs(t, repo.IncrementUsed(ctx, 1, leave.LeaveTypeCasual, 1), leave.ErrInsufficientBalance)
	assert.ErrorIs(t, repo.IncrementUsed(ctx, 99, leave.LeaveTypeCasual, 1), leave.ErrLeaveBalanceNotFound)

	b, err := repo.GetByEmployeeID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, b.UsedCasual)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(fixtures.GetDemoBalances()))
	assert.Equal(t, int64(1), all[0].EmployeeID)
}

func TestWithTransaction_Postgres(t *testing.T) {
	ctx := context.Background()
	setup := seeded(t)
	tx := postgresql.NewTransactor(setup.DB)
	balances := postgresql.NewLeaveBalanceRepository(setup.DB)

	boom := errors.New("boom")
	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := balances.IncrementUsed(ctx, 1, leave.LeaveTypeAnnual, 1); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	b, err := balances.GetByEmployeeID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, b.UsedAnnual)
}

func TestAttendanceRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(seeded(t).DB)

	employeeID := int64(1)
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)
	got, err := repo.List(ctx, attendance.AttendanceFilter{EmployeeID: &employeeID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, to, got[0].Date)
}
