package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapStoreError(t *testing.T) {
	assert.NoError(t, WrapStoreError("get", "employee", nil))

	cause := errors.New("connection refused")
	err := WrapStoreError("create", "leave_request", cause)

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create", se.Op)
	assert.Equal(t, "leave_request", se.Entity)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store create leave_request: connection refused", err.Error())
}

func TestWrapStoreError_KeepsInnermostStoreError(t *testing.T) {
	inner := WrapStoreError("delete", "leave_request", ErrStoreUnavailable)
	outer := WrapStoreError("update", "leave_balance", fmt.Errorf("approve: %w", inner))

	var se *StoreError
	require.ErrorAs(t, outer, &se)
	assert.Equal(t, "delete", se.Op)
	assert.ErrorIs(t, outer, ErrStoreUnavailable)
}
