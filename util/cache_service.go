// api/util/cache_service.go

package util

import (
	"context"

	"github.com/aqari-dev/aqari/api/db"
	"github.com/aqari-dev/aqari/api/model"
)

// ICacheService is the read-through cache used by the subscription service.
type ICacheService interface {
	GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error)
	SetSubscription(ctx context.Context, sub model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

type CacheService struct{}

var _ ICacheService = &CacheService{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	return db.GetCachedSubscription(ctx, subscriptionID)
}

func (c *CacheService) SetSubscription(ctx context.Context, sub model.Subscription) error {
	return db.CacheSubscription(ctx, &sub)
}

func (c *CacheService) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	return db.DeleteCachedSubscription(ctx, subscriptionID)
}
