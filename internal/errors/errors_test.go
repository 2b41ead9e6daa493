package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailError(t *testing.T) {
	err := NewValidationError("unknown module \"nope\"", "", "run 'gamekit module list'")

	assert.ErrorIs(t, err, ErrValidation)

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)

	msg := err.Error()
	assert.Contains(t, msg, "unknown module")
	assert.Contains(t, msg, "Hint: run 'gamekit module list'")
}

func TestDetailError_Location(t *testing.T) {
	err := NewNotFoundError("asset missing", "assets/config/AdsConfig.yaml", "")
	assert.Contains(t, err.Error(), "Location: assets/config/AdsConfig.yaml")
	assert.NotContains(t, err.Error(), "Hint:")
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "no such asset")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "no such asset: not found", err.Error())
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", NewValidationError("bad", "", ""), ExitValidationError},
		{"not found", NewNotFoundError("gone", "", ""), ExitNotFound},
		{"project", NewProjectError("missing", "", ""), ExitNotAProject},
		{"permission", Wrap(ErrPermission, "denied"), ExitPermissionDenied},
		{"explicit code", NewExitError(errors.New("boom"), ExitNotFound), ExitNotFound},
		{"wrapped exit", fmt.Errorf("outer: %w", NewExitError(errors.New("boom"), ExitNotAProject)), ExitNotAProject},
		{"unknown", errors.New("mystery"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Not A Project", ExitCodeName(ExitNotAProject))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
