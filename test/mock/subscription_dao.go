// test/mock/subscription_dao.go
package mock

import (
	"context"

	"github.com/aqari-dev/aqari/api/model"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionDAO is a mock implementation of dao.ISubscriptionDAO
type MockSubscriptionDAO struct {
	mock.Mock
}

func (m *MockSubscriptionDAO) CreateSubscription(ctx context.Context, sub model.Subscription) (string, error) {
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}

func (m *MockSubscriptionDAO) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionDAO) ListUserSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*model.Subscription, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionDAO) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status model.SubscriptionStatus) error {
	args := m.Called(ctx, subscriptionID, status)
	return args.Error(0)
}
