package errors

import (
	"net/http"
	"testing"

	"nudge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrMatchingPassTimeout.WrapMessage("pass exceeded 30s")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPCode())
	assert.Equal(t, "MATCHING_PASS_TIMEOUT", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "pass exceeded 30s")
}

func TestBaseError_WithDetailsCopies(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("radius_m must be >= 0")

	assert.Equal(t, "radius_m must be >= 0", detailed.Details())
	assert.Equal(t, "", ErrValidationFailed.Details(), "predefined error must stay untouched")
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to append delivery log")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "failed to append delivery log", err.Details())
}
