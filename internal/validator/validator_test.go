package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

func TestValidate_PlanRequest(t *testing.T) {
	v := New()

	valid := &models.CreatePlanRequest{
		Name:          "Gold",
		Price:         49.99,
		Duration:      30,
		LimitPerMonth: 20,
	}
	assert.NoError(t, v.Validate(valid))

	invalid := &models.CreatePlanRequest{
		Name:          "Gold",
		Price:         -5,
		Duration:      0,
		LimitPerMonth: 20,
	}
	err := v.Validate(invalid)
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	// Field names come from the json tags, as the client sent them.
	assert.Contains(t, vErr.Errors, "price")
	assert.Contains(t, vErr.Errors, "duration")
	assert.NotContains(t, vErr.Errors, "limitPerMonth")
}

func TestValidate_RegisterRoleRule(t *testing.T) {
	v := New()

	req := &models.RegisterRequest{
		Name:     "Aisha",
		Email:    "aisha@example.com",
		Password: "supersecret",
		Role:     "EMPLOYER",
	}
	assert.NoError(t, v.Validate(req))

	req.Role = "SUPERUSER"
	err := v.Validate(req)
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidate_EmailAndMin(t *testing.T) {
	v := New()

	req := &models.RegisterRequest{
		Name:     "Aisha",
		Email:    "not-an-email",
		Password: "short",
		Role:     "JOBSEEKER",
	}
	err := v.Validate(req)
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
}

func TestValidate_ShortlistRequiresFlag(t *testing.T) {
	v := New()

	err := v.Validate(&models.ShortlistRequest{})
	assert.Error(t, err)

	f := false
	assert.NoError(t, v.Validate(&models.ShortlistRequest{IsShortlisted: &f}))
}
