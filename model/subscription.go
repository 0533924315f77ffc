// api/model/subscription.go
package model

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// PlanLimits is the snapshot of a plan's numeric ceilings taken when a
// subscription is created. Later plan edits do not cascade into the snapshot;
// the recorded ceilings are what the user signed up for.
type PlanLimits struct {
	MaxProperties int `json:"max_properties"`
	MaxUnits      int `json:"max_units"`
	MaxBookings   int `json:"max_bookings"`
	MaxUsers      int `json:"max_users"`
	StorageGB     int `json:"storage_gb"`
}

// Subscription binds a user to a plan with a validity window. Immutable once
// created except for status transitions (active -> expired/cancelled).
type Subscription struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	PlanID        string             `json:"plan_id"`
	Status        SubscriptionStatus `json:"status"`
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	PaymentStatus string             `json:"payment_status"` // tracked externally; "pending" until the billing service reports
	PaymentRef    string             `json:"payment_ref,omitempty"`
	Limits        PlanLimits         `json:"limits"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Expired reports whether the validity window has passed at the given time.
func (s *Subscription) Expired(now time.Time) bool {
	return now.After(s.EndDate)
}
