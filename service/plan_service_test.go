// api/service/plan_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aqari-dev/aqari/api/audit"
	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/policy"
	"github.com/aqari-dev/aqari/api/service"
	"github.com/aqari-dev/aqari/api/test/mock"
	"github.com/aqari-dev/aqari/api/util"
)

func newPlanService() (*service.PlanService, *mock.MockAuditService, *policy.Store) {
	eventBus := util.NewEventBus()
	store := policy.NewStore(policy.NewMemoryStorage(), eventBus)
	auditService := new(mock.MockAuditService)
	planService := service.NewPlanService(
		store,
		util.NewValidationUtil(),
		util.NewNotificationService(),
		auditService,
		eventBus,
	)
	return planService, auditService, store
}

func TestPlanService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("ListPlans_ReturnsSeededDefaults", func(t *testing.T) {
		planService, _, _ := newPlanService()

		plans, err := planService.ListPlans(ctx)
		require.NoError(t, err)
		assert.Len(t, plans, 4)
	})

	t.Run("GetPlan_Success", func(t *testing.T) {
		planService, _, _ := newPlanService()

		plan, err := planService.GetPlan(ctx, "basic")
		require.NoError(t, err)
		assert.Equal(t, "Basic", plan.NameEn)
		assert.Equal(t, "الأساسية", plan.NameAr)
	})

	t.Run("GetPlan_Failure_NotFound", func(t *testing.T) {
		planService, _, _ := newPlanService()

		_, err := planService.GetPlan(ctx, "platinum")
		assert.Equal(t, aqari_errors.ErrPlanNotFound, err)
	})

	t.Run("ReplacePlans_Success_Audited", func(t *testing.T) {
		planService, auditService, store := newPlanService()
		auditService.On("LogAction", testify_mock.Anything, testify_mock.MatchedBy(func(log audit.AuditLog) bool {
			return log.Action == "plan.replace" && log.ActorID == "admin-1"
		})).Return(nil)

		edited := []model.Plan{
			{ID: "solo", NameEn: "Solo", NameAr: "فردية", Price: 29, BillingCycle: "monthly"},
		}
		require.NoError(t, planService.ReplacePlans(ctx, edited, "admin-1"))

		plans := store.ListPlans(ctx)
		require.Len(t, plans, 1)
		assert.Equal(t, "solo", plans[0].ID)
		auditService.AssertExpectations(t)
	})

	t.Run("ReplacePlans_Failure_MisalignedBilingualFeatures", func(t *testing.T) {
		planService, auditService, store := newPlanService()

		edited := []model.Plan{
			{
				ID: "solo", NameEn: "Solo", NameAr: "فردية", Price: 29, BillingCycle: "monthly",
				FeaturesEn: []string{"One property", "Invoicing"},
				FeaturesAr: []string{"عقار واحد"},
			},
		}
		err := planService.ReplacePlans(ctx, edited, "admin-1")
		require.Error(t, err)

		// The rejected list never reaches the store or the audit trail.
		assert.Len(t, store.ListPlans(ctx), 4)
		auditService.AssertNotCalled(t, "LogAction", testify_mock.Anything, testify_mock.Anything)
	})

	t.Run("ReplacePlans_Failure_DuplicateIDs", func(t *testing.T) {
		planService, _, _ := newPlanService()

		edited := []model.Plan{
			{ID: "solo", NameEn: "Solo", NameAr: "فردية", Price: 29, BillingCycle: "monthly"},
			{ID: "solo", NameEn: "Solo Again", NameAr: "فردية", Price: 39, BillingCycle: "monthly"},
		}
		assert.Error(t, planService.ReplacePlans(ctx, edited, "admin-1"))
	})

	t.Run("ReplacePlans_Failure_BadBillingCycle", func(t *testing.T) {
		planService, _, _ := newPlanService()

		edited := []model.Plan{
			{ID: "solo", NameEn: "Solo", NameAr: "فردية", Price: 29, BillingCycle: "weekly"},
		}
		assert.Error(t, planService.ReplacePlans(ctx, edited, "admin-1"))
	})

	t.Run("ToggleFeature_Success_Audited", func(t *testing.T) {
		planService, auditService, store := newPlanService()
		auditService.On("LogAction", testify_mock.Anything, testify_mock.MatchedBy(func(log audit.AuditLog) bool {
			return log.Action == "plan.feature.toggle" && log.TargetID == "basic"
		})).Return(nil)

		require.NoError(t, planService.ToggleFeature(ctx, "basic", "api_access", "admin-1"))
		assert.Contains(t, store.FeaturesEnabled(ctx, "basic"), "api_access")
		auditService.AssertExpectations(t)
	})

	t.Run("EnableDisableFeature", func(t *testing.T) {
		planService, auditService, _ := newPlanService()
		auditService.On("LogAction", testify_mock.Anything, testify_mock.Anything).Return(nil)

		require.NoError(t, planService.EnableFeature(ctx, "basic", "api_access", "admin-1"))
		assert.Contains(t, planService.FeaturesEnabled(ctx, "basic"), "api_access")

		require.NoError(t, planService.DisableFeature(ctx, "basic", "api_access", "admin-1"))
		assert.NotContains(t, planService.FeaturesEnabled(ctx, "basic"), "api_access")
	})

	t.Run("SetAllFeatures_Audited", func(t *testing.T) {
		planService, auditService, _ := newPlanService()
		auditService.On("LogAction", testify_mock.Anything, testify_mock.MatchedBy(func(log audit.AuditLog) bool {
			return log.Action == "plan.feature.set_all"
		})).Return(nil)

		require.NoError(t, planService.SetAllFeatures(ctx, "basic", true, "admin-1"))
		assert.Len(t, planService.FeaturesEnabled(ctx, "basic"), len(policy.FeatureIDs()))
		auditService.AssertExpectations(t)
	})

	t.Run("FeatureCatalogue", func(t *testing.T) {
		planService, _, _ := newPlanService()
		assert.Equal(t, policy.FeatureCatalogue(), planService.FeatureCatalogue(ctx))
	})

	t.Run("FeatureMatrix_CoversAllPlans", func(t *testing.T) {
		planService, _, _ := newPlanService()
		matrix := planService.FeatureMatrix(ctx)
		assert.Len(t, matrix, 4)
	})
}
