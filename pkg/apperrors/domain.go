package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across services.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 400; duplicates
// are treated as bad requests, not conflicts.
func ErrAlreadyExists(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation is the 400 used for operations refused by a
// business rule, including referential-integrity guards.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrPlanNotFound is returned when a purchase or plan mutation references
// an unknown plan id.
var ErrPlanNotFound = New(
	CodeNotFound,
	"subscription",
	"Plan not found",
	http.StatusNotFound,
)

// ErrPlanInUse guards plan deletion: a plan referenced by any subscription,
// expired or not, must not be removed.
var ErrPlanInUse = New(
	CodeInvalidOperation,
	"subscription",
	"Cannot delete plan with active subscriptions",
	http.StatusBadRequest,
)

// ErrSubscriptionRequired is the job-posting gate refusal. The write path
// checks entitlement itself instead of trusting the client form state.
var ErrSubscriptionRequired = New(
	CodeForbidden,
	"subscription",
	"No active subscription",
	http.StatusForbidden,
)

// ErrDuplicateApplication rejects a second application to the same job.
var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)

// ErrNotJobOwner rejects employer operations on jobs they do not own.
var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Unauthorized to modify this resource",
	http.StatusForbidden,
)
