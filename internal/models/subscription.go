package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubscriptionPlan is a purchasable tier. Name carries no uniqueness
// constraint; positivity of price/duration/limit is input validation,
// not a database rule.
type SubscriptionPlan struct {
	BaseModel
	Name             string                      `gorm:"not null" json:"name"`
	Price            float64                     `gorm:"not null" json:"price"`
	DurationDays     int                         `gorm:"not null" json:"duration"`
	MonthlyPostLimit int                         `gorm:"not null" json:"limitPerMonth"`
	Features         datatypes.JSONSlice[string] `json:"features"`
}

// Subscription is one purchased term of a plan for one employer. Rows are
// append-only: created once at purchase time and never mutated. Expiry is a
// derived fact (end_date vs. now), so overlapping active rows can exist.
type Subscription struct {
	BaseModel
	EmployerID string             `gorm:"not null;index" json:"employerId"`
	PlanID     string             `gorm:"not null;index" json:"planId"`
	StartDate  time.Time          `gorm:"not null" json:"startDate"`
	EndDate    time.Time          `gorm:"not null" json:"endDate"`
	Status     SubscriptionStatus `gorm:"type:varchar(20);default:'activated'" json:"status"`

	// Relations
	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// EntitlementResult is the verdict of the entitlement check consumed by the
// post-job flow.
type EntitlementResult struct {
	Valid     bool       `json:"valid"`
	Reason    string     `json:"reason,omitempty"`
	Plan      string     `json:"plan,omitempty"`
	JobLimit  int        `json:"jobLimit,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
