// api/service/subscription_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aqari-dev/aqari/api/dao"
	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/policy"
	"github.com/aqari-dev/aqari/api/util"
)

// SubscriptionValidity is the default validity window of a new assignment.
// Renewal is handled outside this core.
const SubscriptionValidity = 30 * 24 * time.Hour

// ISubscriptionService defines the interface for subscription operations
type ISubscriptionService interface {
	AssignPlan(ctx context.Context, userID, planID string) (*model.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error)
	ListUserSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*model.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID, updaterID string) error
}

// SubscriptionService handles business logic for subscription assignments
type SubscriptionService struct {
	subscriptionDAO dao.ISubscriptionDAO
	store           *policy.Store
	validationUtil  *util.ValidationUtil
	cacheService    util.ICacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ISubscriptionService = &SubscriptionService{}

// NewSubscriptionService creates a new instance of SubscriptionService
func NewSubscriptionService(subscriptionDAO dao.ISubscriptionDAO, store *policy.Store, validationUtil *util.ValidationUtil, cacheService util.ICacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *SubscriptionService {
	service := &SubscriptionService{
		subscriptionDAO: subscriptionDAO,
		store:           store,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("subscription.created", service.handleSubscriptionCreated)
	eventBus.Subscribe("subscription.cancelled", service.handleSubscriptionCancelled)

	return service
}

func (s *SubscriptionService) handleSubscriptionCreated(ctx context.Context, event util.Event) error {
	sub := event.Payload.(model.Subscription)
	logger.Info("Subscription created event received", zap.String("subscriptionID", sub.ID))

	if err := s.notificationSvc.NotifySubscriptionChange(ctx, "created", sub); err != nil {
		logger.Warn("Failed to send subscription creation notification", zap.Error(err), zap.String("subscriptionID", sub.ID))
	}

	return nil
}

func (s *SubscriptionService) handleSubscriptionCancelled(ctx context.Context, event util.Event) error {
	sub := event.Payload.(model.Subscription)
	logger.Info("Subscription cancelled event received", zap.String("subscriptionID", sub.ID))

	if err := s.notificationSvc.NotifySubscriptionChange(ctx, "cancelled", sub); err != nil {
		logger.Warn("Failed to send subscription cancellation notification", zap.Error(err), zap.String("subscriptionID", sub.ID))
	}

	return nil
}

// AssignPlan binds a user to a plan with a snapshot of the plan's current
// ceilings and a 30-day validity window. Assigning an unknown plan creates
// nothing; it is a caller error surfaced as ErrPlanNotFound. Re-assigning a
// user does not touch in-flight resource counts, and later plan edits do not
// alter the snapshot of an existing assignment.
func (s *SubscriptionService) AssignPlan(ctx context.Context, userID, planID string) (*model.Subscription, error) {
	plan, ok := s.store.LookupPlan(ctx, planID)
	if !ok {
		logger.Warn("Refusing to assign unknown plan",
			zap.String("userID", userID),
			zap.String("planID", planID))
		return nil, aqari_errors.ErrPlanNotFound
	}

	now := time.Now()
	sub := model.Subscription{
		UserID:        userID,
		PlanID:        plan.ID,
		Status:        model.SubscriptionActive,
		StartDate:     now,
		EndDate:       now.Add(SubscriptionValidity),
		PaymentStatus: "pending",
		Limits: model.PlanLimits{
			MaxProperties: plan.MaxProperties,
			MaxUnits:      plan.MaxUnits,
			MaxBookings:   plan.MaxBookings,
			MaxUsers:      plan.MaxUsers,
			StorageGB:     plan.StorageGB,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validationUtil.ValidateSubscription(sub); err != nil {
		return nil, aqari_errors.ErrInvalidSubscriptionData
	}

	subID, err := s.subscriptionDAO.CreateSubscription(ctx, sub)
	if err != nil {
		logger.Error("Error creating subscription", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}

	sub.ID = subID

	// Update cache
	if err := s.cacheService.SetSubscription(ctx, sub); err != nil {
		logger.Warn("Failed to cache subscription", zap.Error(err), zap.String("subscriptionID", subID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "subscription.created", sub)

	logger.Info("Plan assigned successfully",
		zap.String("subscriptionID", subID),
		zap.String("userID", userID),
		zap.String("planID", planID))
	return &sub, nil
}

// GetSubscription retrieves a subscription by its ID. An active subscription
// whose validity window has passed transitions to expired on read.
func (s *SubscriptionService) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	// Try to get from cache first
	cachedSub, err := s.cacheService.GetSubscription(ctx, subscriptionID)
	if err == nil && cachedSub != nil && !s.needsExpiry(cachedSub) {
		return cachedSub, nil
	}

	sub, err := s.subscriptionDAO.GetSubscription(ctx, subscriptionID)
	if err != nil {
		if err == aqari_errors.ErrSubscriptionNotFound {
			return nil, err
		}
		logger.Error("Error retrieving subscription", zap.Error(err), zap.String("subscriptionID", subscriptionID))
		return nil, aqari_errors.ErrInternalServer
	}

	if s.needsExpiry(sub) {
		if err := s.expire(ctx, sub); err != nil {
			logger.Error("Failed to expire subscription", zap.Error(err), zap.String("subscriptionID", subscriptionID))
		}
	}

	// Update cache
	if err := s.cacheService.SetSubscription(ctx, *sub); err != nil {
		logger.Warn("Failed to cache subscription", zap.Error(err), zap.String("subscriptionID", subscriptionID))
	}

	return sub, nil
}

// ListUserSubscriptions retrieves a user's subscriptions, newest first
func (s *SubscriptionService) ListUserSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*model.Subscription, error) {
	subs, err := s.subscriptionDAO.ListUserSubscriptions(ctx, userID, limit, offset)
	if err != nil {
		logger.Error("Error listing subscriptions", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}
	return subs, nil
}

// CancelSubscription transitions a subscription to cancelled
func (s *SubscriptionService) CancelSubscription(ctx context.Context, subscriptionID, updaterID string) error {
	sub, err := s.subscriptionDAO.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return err
	}

	if err := s.subscriptionDAO.UpdateSubscriptionStatus(ctx, subscriptionID, model.SubscriptionCancelled); err != nil {
		logger.Error("Error cancelling subscription",
			zap.Error(err),
			zap.String("subscriptionID", subscriptionID),
			zap.String("updaterID", updaterID))
		return err
	}

	// Remove from cache
	if err := s.cacheService.DeleteSubscription(ctx, subscriptionID); err != nil {
		logger.Warn("Failed to delete subscription from cache", zap.Error(err), zap.String("subscriptionID", subscriptionID))
	}

	sub.Status = model.SubscriptionCancelled

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "subscription.cancelled", *sub)

	logger.Info("Subscription cancelled successfully",
		zap.String("subscriptionID", subscriptionID),
		zap.String("updaterID", updaterID))
	return nil
}

func (s *SubscriptionService) needsExpiry(sub *model.Subscription) bool {
	return sub.Status == model.SubscriptionActive && sub.Expired(time.Now())
}

func (s *SubscriptionService) expire(ctx context.Context, sub *model.Subscription) error {
	if err := s.subscriptionDAO.UpdateSubscriptionStatus(ctx, sub.ID, model.SubscriptionExpired); err != nil {
		return err
	}
	sub.Status = model.SubscriptionExpired

	if err := s.notificationSvc.NotifySubscriptionChange(ctx, "expired", *sub); err != nil {
		logger.Warn("Failed to send subscription expiry notification", zap.Error(err), zap.String("subscriptionID", sub.ID))
	}
	return nil
}
