// test/mock/subscription_service.go
package mock

import (
	"context"

	"github.com/aqari-dev/aqari/api/model"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionService is a mock implementation of service.ISubscriptionService
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) AssignPlan(ctx context.Context, userID, planID string) (*model.Subscription, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) ListUserSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*model.Subscription, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) CancelSubscription(ctx context.Context, subscriptionID, updaterID string) error {
	args := m.Called(ctx, subscriptionID, updaterID)
	return args.Error(0)
}
