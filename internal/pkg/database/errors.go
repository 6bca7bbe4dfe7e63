package database

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is returned by a record store that has been closed.
var ErrStoreUnavailable = errors.New("record store unavailable")

// StoreError reports a failed operation against the record store.
type StoreError struct {
	Op     string // list, get, create, update, delete
	Entity string // employee, leave_balance, leave_request, attendance
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStoreError wraps err as a *StoreError. Nil stays nil, and errors that are
// already store errors are returned unchanged.
func WrapStoreError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Entity: entity, Err: err}
}
