// api/service/plan_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aqari-dev/aqari/api/audit"
	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/policy"
	"github.com/aqari-dev/aqari/api/util"
)

// IPlanService defines the interface for plan and feature-matrix operations
type IPlanService interface {
	ListPlans(ctx context.Context) ([]model.Plan, error)
	GetPlan(ctx context.Context, planID string) (*model.Plan, error)
	ReplacePlans(ctx context.Context, plans []model.Plan, updaterID string) error
	FeatureCatalogue(ctx context.Context) []model.Feature
	FeaturesEnabled(ctx context.Context, planID string) []string
	FeatureMatrix(ctx context.Context) model.FeatureMatrix
	ToggleFeature(ctx context.Context, planID, featureID, updaterID string) error
	EnableFeature(ctx context.Context, planID, featureID, updaterID string) error
	DisableFeature(ctx context.Context, planID, featureID, updaterID string) error
	SetAllFeatures(ctx context.Context, planID string, enabled bool, updaterID string) error
}

// PlanService handles business logic for plan administration
type PlanService struct {
	store           *policy.Store
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	auditService    audit.Service
	eventBus        *util.EventBus
}

var _ IPlanService = &PlanService{}

// NewPlanService creates a new instance of PlanService
func NewPlanService(store *policy.Store, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, auditService audit.Service, eventBus *util.EventBus) *PlanService {
	service := &PlanService{
		store:           store,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		auditService:    auditService,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe(policy.EventPolicyChanged, service.handlePolicyChanged)

	return service
}

func (s *PlanService) handlePolicyChanged(ctx context.Context, event util.Event) error {
	change := event.Payload.(policy.Change)
	logger.Info("Policy changed event received", zap.Int("planCount", len(change.Plans)))

	if err := s.notificationSvc.NotifyPlanChange(ctx, "replaced", change.Plans); err != nil {
		logger.Warn("Failed to send plan change notification", zap.Error(err))
	}

	return nil
}

// ListPlans returns the current plan list in stored order
func (s *PlanService) ListPlans(ctx context.Context) ([]model.Plan, error) {
	return s.store.ListPlans(ctx), nil
}

// GetPlan retrieves a single plan by its ID
func (s *PlanService) GetPlan(ctx context.Context, planID string) (*model.Plan, error) {
	plan, ok := s.store.LookupPlan(ctx, planID)
	if !ok {
		return nil, aqari_errors.ErrPlanNotFound
	}
	return &plan, nil
}

// ReplacePlans replaces the plan list wholesale
func (s *PlanService) ReplacePlans(ctx context.Context, plans []model.Plan, updaterID string) error {
	if err := s.validationUtil.ValidatePlans(plans); err != nil {
		return fmt.Errorf("invalid plan list: %w", err)
	}

	if err := s.store.ReplacePlans(ctx, plans); err != nil {
		logger.Error("Error replacing plans", zap.Error(err), zap.String("updaterID", updaterID))
		return err
	}

	s.logAudit(ctx, updaterID, "plan.replace", "", plans)

	logger.Info("Plan list replaced successfully",
		zap.Int("planCount", len(plans)),
		zap.String("updaterID", updaterID))
	return nil
}

// FeatureCatalogue returns the fixed feature vocabulary
func (s *PlanService) FeatureCatalogue(ctx context.Context) []model.Feature {
	return policy.FeatureCatalogue()
}

// FeaturesEnabled returns the feature IDs enabled for a plan
func (s *PlanService) FeaturesEnabled(ctx context.Context, planID string) []string {
	return s.store.FeaturesEnabled(ctx, planID)
}

// FeatureMatrix returns the full plan-feature matrix
func (s *PlanService) FeatureMatrix(ctx context.Context) model.FeatureMatrix {
	return s.store.FeatureMatrix(ctx)
}

// ToggleFeature flips one feature for one plan
func (s *PlanService) ToggleFeature(ctx context.Context, planID, featureID, updaterID string) error {
	if err := s.store.ToggleFeature(ctx, planID, featureID); err != nil {
		logger.Error("Error toggling feature",
			zap.Error(err),
			zap.String("planID", planID),
			zap.String("featureID", featureID),
			zap.String("updaterID", updaterID))
		return err
	}

	s.logAudit(ctx, updaterID, "plan.feature.toggle", planID, featureID)
	return nil
}

// EnableFeature turns one feature on for one plan
func (s *PlanService) EnableFeature(ctx context.Context, planID, featureID, updaterID string) error {
	if err := s.store.EnableFeature(ctx, planID, featureID); err != nil {
		logger.Error("Error enabling feature",
			zap.Error(err),
			zap.String("planID", planID),
			zap.String("featureID", featureID),
			zap.String("updaterID", updaterID))
		return err
	}

	s.logAudit(ctx, updaterID, "plan.feature.enable", planID, featureID)
	return nil
}

// DisableFeature turns one feature off for one plan
func (s *PlanService) DisableFeature(ctx context.Context, planID, featureID, updaterID string) error {
	if err := s.store.DisableFeature(ctx, planID, featureID); err != nil {
		logger.Error("Error disabling feature",
			zap.Error(err),
			zap.String("planID", planID),
			zap.String("featureID", featureID),
			zap.String("updaterID", updaterID))
		return err
	}

	s.logAudit(ctx, updaterID, "plan.feature.disable", planID, featureID)
	return nil
}

// SetAllFeatures sets a plan's feature set to the full catalogue or the empty set
func (s *PlanService) SetAllFeatures(ctx context.Context, planID string, enabled bool, updaterID string) error {
	if err := s.store.SetAllFeatures(ctx, planID, enabled); err != nil {
		logger.Error("Error bulk-setting features",
			zap.Error(err),
			zap.String("planID", planID),
			zap.Bool("enabled", enabled),
			zap.String("updaterID", updaterID))
		return err
	}

	s.logAudit(ctx, updaterID, "plan.feature.set_all", planID, enabled)
	return nil
}

func (s *PlanService) logAudit(ctx context.Context, actorID, action, targetID string, details interface{}) {
	data, _ := json.Marshal(details)
	if err := s.auditService.LogAction(ctx, audit.AuditLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		TargetID:      targetID,
		ChangeDetails: data,
	}); err != nil {
		logger.Warn("Failed to audit plan mutation",
			zap.Error(err),
			zap.String("action", action),
			zap.String("actorID", actorID))
	}
}
