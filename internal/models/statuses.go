package models

type UserRole string
type SubscriptionStatus string

const (
	UserRoleJobSeeker UserRole = "JOBSEEKER"
	UserRoleEmployer  UserRole = "EMPLOYER"
	UserRoleAdmin     UserRole = "ADMIN"

	// SubscriptionStatusActivated is the only status the purchase flow
	// writes. Expiry is derived from end_date at read time, never stored,
	// so there is no "expired" value; the field stays as an audit/intent
	// marker for statuses a future flow might add (e.g. refunded).
	SubscriptionStatusActivated SubscriptionStatus = "activated"
)

// ValidRole reports whether the string is a known user role.
func ValidRole(r string) bool {
	switch UserRole(r) {
	case UserRoleJobSeeker, UserRoleEmployer, UserRoleAdmin:
		return true
	}
	return false
}
