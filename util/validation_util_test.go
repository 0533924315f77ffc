// api/util/validation_util_test.go
package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/util"
)

func validPlan() model.Plan {
	return model.Plan{
		ID:           "basic",
		NameEn:       "Basic",
		NameAr:       "الأساسية",
		Price:        99,
		BillingCycle: "monthly",
		FeaturesEn:   []string{"Up to 3 properties"},
		FeaturesAr:   []string{"حتى 3 عقارات"},
	}
}

func TestValidatePlan(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.ValidatePlan(validPlan()))
	})

	t.Run("EmptyID", func(t *testing.T) {
		plan := validPlan()
		plan.ID = ""
		assert.Error(t, v.ValidatePlan(plan))
	})

	t.Run("MissingArabicName", func(t *testing.T) {
		plan := validPlan()
		plan.NameAr = ""
		assert.Error(t, v.ValidatePlan(plan))
	})

	t.Run("NegativePrice", func(t *testing.T) {
		plan := validPlan()
		plan.Price = -1
		assert.Error(t, v.ValidatePlan(plan))
	})

	t.Run("BadBillingCycle", func(t *testing.T) {
		plan := validPlan()
		plan.BillingCycle = "weekly"
		assert.Error(t, v.ValidatePlan(plan))
	})

	t.Run("MisalignedFeatureLists", func(t *testing.T) {
		plan := validPlan()
		plan.FeaturesEn = append(plan.FeaturesEn, "Invoicing")
		assert.Error(t, v.ValidatePlan(plan))
	})
}

func TestValidatePlans(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("DuplicateIDs", func(t *testing.T) {
		assert.Error(t, v.ValidatePlans([]model.Plan{validPlan(), validPlan()}))
	})

	t.Run("EmptyListIsValid", func(t *testing.T) {
		assert.NoError(t, v.ValidatePlans(nil))
	})
}

func TestValidateSubscription(t *testing.T) {
	v := util.NewValidationUtil()
	now := time.Now()

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateSubscription(model.Subscription{
			UserID:    "user-1",
			PlanID:    "basic",
			StartDate: now,
			EndDate:   now.Add(24 * time.Hour),
		}))
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		assert.Error(t, v.ValidateSubscription(model.Subscription{
			UserID:    "user-1",
			PlanID:    "basic",
			StartDate: now,
			EndDate:   now.Add(-time.Hour),
		}))
	})

	t.Run("MissingUser", func(t *testing.T) {
		assert.Error(t, v.ValidateSubscription(model.Subscription{PlanID: "basic"}))
	})
}
