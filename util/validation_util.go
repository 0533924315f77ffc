// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/aqari-dev/aqari/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidatePlan(plan model.Plan) error {
	if plan.ID == "" {
		return fmt.Errorf("plan id cannot be empty")
	}
	if plan.NameEn == "" || plan.NameAr == "" {
		return fmt.Errorf("plan name is required in both languages")
	}
	if plan.Price < 0 {
		return fmt.Errorf("plan price cannot be negative")
	}
	if plan.BillingCycle != "monthly" && plan.BillingCycle != "yearly" {
		return fmt.Errorf("billing cycle must be either 'monthly' or 'yearly'")
	}
	if plan.MaxProperties < 0 || plan.MaxUnits < 0 || plan.MaxBookings < 0 || plan.MaxUsers < 0 {
		return fmt.Errorf("plan ceilings cannot be negative")
	}
	if plan.StorageGB < 0 {
		return fmt.Errorf("storage quota cannot be negative")
	}
	// The two description lists render side by side; an edit must never leave
	// them out of step.
	if len(plan.FeaturesAr) != len(plan.FeaturesEn) {
		return fmt.Errorf("feature descriptions must stay index-aligned: %d Arabic vs %d English",
			len(plan.FeaturesAr), len(plan.FeaturesEn))
	}
	return nil
}

func (v *ValidationUtil) ValidatePlans(plans []model.Plan) error {
	seen := make(map[string]bool, len(plans))
	for _, plan := range plans {
		if err := v.ValidatePlan(plan); err != nil {
			return fmt.Errorf("plan %q: %w", plan.ID, err)
		}
		if seen[plan.ID] {
			return fmt.Errorf("duplicate plan id: %s", plan.ID)
		}
		seen[plan.ID] = true
	}
	return nil
}

func (v *ValidationUtil) ValidateSubscription(sub model.Subscription) error {
	if sub.UserID == "" {
		return fmt.Errorf("subscription user id cannot be empty")
	}
	if sub.PlanID == "" {
		return fmt.Errorf("subscription plan id cannot be empty")
	}
	if sub.EndDate.Before(sub.StartDate) {
		return fmt.Errorf("subscription end date cannot precede its start date")
	}
	return nil
}
