// test/mock/plan_service.go
package mock

import (
	"context"

	"github.com/aqari-dev/aqari/api/model"
	"github.com/stretchr/testify/mock"
)

// MockPlanService is a mock implementation of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) ListPlans(ctx context.Context) ([]model.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plan), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, planID string) (*model.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanService) ReplacePlans(ctx context.Context, plans []model.Plan, updaterID string) error {
	args := m.Called(ctx, plans, updaterID)
	return args.Error(0)
}

func (m *MockPlanService) FeatureCatalogue(ctx context.Context) []model.Feature {
	args := m.Called(ctx)
	return args.Get(0).([]model.Feature)
}

func (m *MockPlanService) FeaturesEnabled(ctx context.Context, planID string) []string {
	args := m.Called(ctx, planID)
	return args.Get(0).([]string)
}

func (m *MockPlanService) FeatureMatrix(ctx context.Context) model.FeatureMatrix {
	args := m.Called(ctx)
	return args.Get(0).(model.FeatureMatrix)
}

func (m *MockPlanService) ToggleFeature(ctx context.Context, planID, featureID, updaterID string) error {
	args := m.Called(ctx, planID, featureID, updaterID)
	return args.Error(0)
}

func (m *MockPlanService) EnableFeature(ctx context.Context, planID, featureID, updaterID string) error {
	args := m.Called(ctx, planID, featureID, updaterID)
	return args.Error(0)
}

func (m *MockPlanService) DisableFeature(ctx context.Context, planID, featureID, updaterID string) error {
	args := m.Called(ctx, planID, featureID, updaterID)
	return args.Error(0)
}

func (m *MockPlanService) SetAllFeatures(ctx context.Context, planID string, enabled bool, updaterID string) error {
	args := m.Called(ctx, planID, enabled, updaterID)
	return args.Error(0)
}
