package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	var e employee.Employee
	err := r.store.read(ctx, "get", "employee", func() error {
		found, ok := r.store.employees[id]
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		e = found
		return nil
	})
	return e, err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var employees []employee.Employee
	err := r.store.read(ctx, "list", "employee", func() error {
		for _, e := range r.store.employees {
			if filter.Department != nil && e.Department != *filter.Department {
				continue
			}
			employees = append(employees, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateProfileRequest) (employee.Employee, error) {
	var updated employee.Employee
	err := r.store.write(ctx, "update", "employee", func() error {
		e, ok := r.store.employees[id]
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		req.Apply(&e)
		for otherID, other := range r.store.employees {
			if otherID != id && other.Email == e.Email {
				return employee.ErrEmailExists
			}
		}
		r.store.employees[id] = e
		updated = e
		return nil
	})
	return updated, err
}
