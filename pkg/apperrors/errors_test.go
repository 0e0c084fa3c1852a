package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeDatabaseError, "subscription", "Failed to load plan", 500)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, cause, appErr.Unwrap())
	assert.Contains(t, appErr.Error(), "Failed to load plan")
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAsAppErrorThroughChain(t *testing.T) {
	appErr := New(CodeNotFound, "job", "Job not found", 404)
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 404, got.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	appErr := Wrap(cause, CodeDatabaseError, "subscription", "Failed to load plan", 500).
		WithDetails(map[string]string{"planId": "plan-1"})

	raw, err := json.Marshal(appErr)
	assert.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"message":"Failed to load plan"`)
	assert.Contains(t, body, `"planId":"plan-1"`)
	assert.NotContains(t, body, "pq: relation")
	assert.NotContains(t, body, "500")
}

func TestDomainErrorStatusCodes(t *testing.T) {
	assert.Equal(t, 404, ErrPlanNotFound.HTTPCode)
	assert.Equal(t, 400, ErrPlanInUse.HTTPCode)
	assert.Equal(t, 403, ErrSubscriptionRequired.HTTPCode)
	assert.Equal(t, "No active subscription", ErrSubscriptionRequired.Message)
	assert.Equal(t, 400, ErrDuplicateApplication.HTTPCode)
	assert.Equal(t, 401, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, 403, ErrNotJobOwner.HTTPCode)
}

func TestValidationErrorDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"price": "Must be greater than 0"})
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, CodeValidationFailed, appErr.Code)

	raw, err := json.Marshal(appErr)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "Must be greater than 0")
}
