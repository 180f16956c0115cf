package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

type request struct {
	ID     string  `json:"id" validate:"required"`
	Radius float64 `json:"radius_m" validate:"min=0"`
	Window window  `json:"activeTime" validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&request{ID: "n1", Radius: 0, Window: window{Start: "00:00", End: "23:59"}}))

	err := v.Validate(&request{Radius: -1, Window: window{Start: "9:00", End: "24:00"}})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"id":               "is required",
		"radius_m":         "must be at least 0",
		"activeTime.start": "must be a time in HH:MM format",
		"activeTime.end":   "must be a time in HH:MM format",
	}, FieldErrors(err))
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
