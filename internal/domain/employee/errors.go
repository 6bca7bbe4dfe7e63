package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmptyPatch       = errors.New("no fields to update")
	ErrEmailExists      = errors.New("email already registered to another employee")
)
