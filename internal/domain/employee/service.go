package employee

import (
	"context"
)

// EmployeeService backs the directory and the profile page
type EmployeeService interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetEmployee(ctx context.Context, id int64) (Employee, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (Employee, error)
}
