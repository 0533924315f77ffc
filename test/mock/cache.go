// test/mock/cache.go
package mock

import (
	"context"

	"github.com/aqari-dev/aqari/api/model"
	"github.com/stretchr/testify/mock"
)

// MockCacheService is a mock implementation of util.ICacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockCacheService) SetSubscription(ctx context.Context, sub model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockCacheService) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}
