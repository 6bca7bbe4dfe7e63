package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	// List returns employees ordered by name.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	// Update applies req to the stored employee and returns the merged record.
	Update(ctx context.Context, id int64, req UpdateProfileRequest) (Employee, error)
}
