// api/service/subscription_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/policy"
	"github.com/aqari-dev/aqari/api/service"
	"github.com/aqari-dev/aqari/api/test/mock"
	"github.com/aqari-dev/aqari/api/util"
)

func newSubscriptionService() (*service.SubscriptionService, *mock.MockSubscriptionDAO, *mock.MockCacheService, *policy.Store) {
	eventBus := util.NewEventBus()
	store := policy.NewStore(policy.NewMemoryStorage(), eventBus)
	subscriptionDAO := new(mock.MockSubscriptionDAO)
	cacheService := new(mock.MockCacheService)
	subscriptionService := service.NewSubscriptionService(
		subscriptionDAO,
		store,
		util.NewValidationUtil(),
		cacheService,
		util.NewNotificationService(),
		eventBus,
	)
	return subscriptionService, subscriptionDAO, cacheService, store
}

func TestAssignPlan(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("Success_SnapshotsPlanCeilings", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, _ := newSubscriptionService()
		subscriptionDAO.On("CreateSubscription", testify_mock.Anything, testify_mock.Anything).Return("sub-1", nil)
		cacheService.On("SetSubscription", testify_mock.Anything, testify_mock.Anything).Return(nil)

		sub, err := subscriptionService.AssignPlan(ctx, "user-1", "basic")
		require.NoError(t, err)

		assert.Equal(t, "sub-1", sub.ID)
		assert.Equal(t, "user-1", sub.UserID)
		assert.Equal(t, "basic", sub.PlanID)
		assert.Equal(t, model.SubscriptionActive, sub.Status)
		assert.Equal(t, "pending", sub.PaymentStatus)

		// The assignment snapshots the plan's current ceilings.
		assert.Equal(t, 3, sub.Limits.MaxProperties)
		assert.Equal(t, 15, sub.Limits.MaxUnits)
		assert.Equal(t, 1, sub.Limits.MaxUsers)

		// Thirty-day validity window.
		assert.WithinDuration(t, sub.StartDate.Add(service.SubscriptionValidity), sub.EndDate, time.Second)

		subscriptionDAO.AssertExpectations(t)
	})

	t.Run("Failure_UnknownPlanCreatesNothing", func(t *testing.T) {
		subscriptionService, subscriptionDAO, _, _ := newSubscriptionService()

		sub, err := subscriptionService.AssignPlan(ctx, "user-1", "platinum")
		assert.Equal(t, aqari_errors.ErrPlanNotFound, err)
		assert.Nil(t, sub)
		subscriptionDAO.AssertNotCalled(t, "CreateSubscription", testify_mock.Anything, testify_mock.Anything)
	})

	t.Run("SnapshotUnaffectedByLaterPlanEdits", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, store := newSubscriptionService()
		subscriptionDAO.On("CreateSubscription", testify_mock.Anything, testify_mock.Anything).Return("sub-1", nil)
		cacheService.On("SetSubscription", testify_mock.Anything, testify_mock.Anything).Return(nil)

		sub, err := subscriptionService.AssignPlan(ctx, "user-1", "basic")
		require.NoError(t, err)
		require.Equal(t, 3, sub.Limits.MaxProperties)

		// Raising the plan ceiling afterwards does not touch the snapshot.
		edited := store.ListPlans(ctx)
		edited[0].MaxProperties = 10
		require.NoError(t, store.ReplacePlans(ctx, edited))

		assert.Equal(t, 3, sub.Limits.MaxProperties)
	})
}

func TestGetSubscription(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	now := time.Now()

	activeSub := func() *model.Subscription {
		return &model.Subscription{
			ID:        "sub-1",
			UserID:    "user-1",
			PlanID:    "basic",
			Status:    model.SubscriptionActive,
			StartDate: now,
			EndDate:   now.Add(service.SubscriptionValidity),
		}
	}

	t.Run("CacheHitSkipsDAO", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, _ := newSubscriptionService()
		cacheService.On("GetSubscription", testify_mock.Anything, "sub-1").Return(activeSub(), nil)

		sub, err := subscriptionService.GetSubscription(ctx, "sub-1")
		require.NoError(t, err)
		assert.Equal(t, "sub-1", sub.ID)
		subscriptionDAO.AssertNotCalled(t, "GetSubscription", testify_mock.Anything, testify_mock.Anything)
	})

	t.Run("CacheMissFallsBackToDAO", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, _ := newSubscriptionService()
		cacheService.On("GetSubscription", testify_mock.Anything, "sub-1").Return(nil, aqari_errors.ErrSubscriptionNotFound)
		cacheService.On("SetSubscription", testify_mock.Anything, testify_mock.Anything).Return(nil)
		subscriptionDAO.On("GetSubscription", testify_mock.Anything, "sub-1").Return(activeSub(), nil)

		sub, err := subscriptionService.GetSubscription(ctx, "sub-1")
		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionActive, sub.Status)
		subscriptionDAO.AssertExpectations(t)
	})

	t.Run("ActivePastWindowExpiresOnRead", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, _ := newSubscriptionService()

		stale := activeSub()
		stale.StartDate = now.Add(-40 * 24 * time.Hour)
		stale.EndDate = now.Add(-10 * 24 * time.Hour)

		cacheService.On("GetSubscription", testify_mock.Anything, "sub-1").Return(nil, aqari_errors.ErrSubscriptionNotFound)
		cacheService.On("SetSubscription", testify_mock.Anything, testify_mock.Anything).Return(nil)
		subscriptionDAO.On("GetSubscription", testify_mock.Anything, "sub-1").Return(stale, nil)
		subscriptionDAO.On("UpdateSubscriptionStatus", testify_mock.Anything, "sub-1", model.SubscriptionExpired).Return(nil)

		sub, err := subscriptionService.GetSubscription(ctx, "sub-1")
		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionExpired, sub.Status)
		subscriptionDAO.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, _ := newSubscriptionService()
		cacheService.On("GetSubscription", testify_mock.Anything, "missing").Return(nil, aqari_errors.ErrSubscriptionNotFound)
		subscriptionDAO.On("GetSubscription", testify_mock.Anything, "missing").Return(nil, aqari_errors.ErrSubscriptionNotFound)

		_, err := subscriptionService.GetSubscription(ctx, "missing")
		assert.Equal(t, aqari_errors.ErrSubscriptionNotFound, err)
	})
}

func TestCancelSubscription(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		subscriptionService, subscriptionDAO, cacheService, _ := newSubscriptionService()
		subscriptionDAO.On("GetSubscription", testify_mock.Anything, "sub-1").Return(&model.Subscription{
			ID:        "sub-1",
			UserID:    "user-1",
			PlanID:    "basic",
			Status:    model.SubscriptionActive,
			StartDate: now,
			EndDate:   now.Add(service.SubscriptionValidity),
		}, nil)
		subscriptionDAO.On("UpdateSubscriptionStatus", testify_mock.Anything, "sub-1", model.SubscriptionCancelled).Return(nil)
		cacheService.On("DeleteSubscription", testify_mock.Anything, "sub-1").Return(nil)

		require.NoError(t, subscriptionService.CancelSubscription(ctx, "sub-1", "admin-1"))
		subscriptionDAO.AssertExpectations(t)
		cacheService.AssertExpectations(t)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		subscriptionService, subscriptionDAO, _, _ := newSubscriptionService()
		subscriptionDAO.On("GetSubscription", testify_mock.Anything, "missing").Return(nil, aqari_errors.ErrSubscriptionNotFound)

		err := subscriptionService.CancelSubscription(ctx, "missing", "admin-1")
		assert.Equal(t, aqari_errors.ErrSubscriptionNotFound, err)
		subscriptionDAO.AssertNotCalled(t, "UpdateSubscriptionStatus", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything)
	})
}

func TestListUserSubscriptions(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	subscriptionService, subscriptionDAO, _, _ := newSubscriptionService()
	subscriptionDAO.On("ListUserSubscriptions", testify_mock.Anything, "user-1", 10, 0).Return([]*model.Subscription{
		{ID: "sub-2", UserID: "user-1", PlanID: "premium"},
		{ID: "sub-1", UserID: "user-1", PlanID: "basic"},
	}, nil)

	subs, err := subscriptionService.ListUserSubscriptions(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "sub-2", subs[0].ID)
}
