// api/db/policy_storage.go
package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/aqari-dev/aqari/api/logging"
)

// PolicyStorage is the Redis-backed durable key-value port behind the policy
// store. Every Set publishes the changed key on a pub/sub channel so that
// other API instances mirroring the same keys can drop their in-memory copy.
type PolicyStorage struct {
	mu        sync.Mutex
	channel   string
	callbacks map[string][]func()
	cancel    context.CancelFunc
}

func NewPolicyStorage() *PolicyStorage {
	s := &PolicyStorage{
		channel:   viper.GetString("redis.policyChannel"),
		callbacks: make(map[string][]func()),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.listen(ctx)

	return s
}

// Close stops the pub/sub listener.
func (s *PolicyStorage) Close() {
	s.cancel()
}

func (s *PolicyStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := RedisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *PolicyStorage) Set(ctx context.Context, key string, value []byte) error {
	// Policy state is durable, not a cache: no TTL.
	if err := RedisClient.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := RedisClient.Publish(ctx, s.channel, key).Err(); err != nil {
		logger.Warn("Failed to publish policy change", zap.Error(err), zap.String("key", key))
	}
	return nil
}

func (s *PolicyStorage) OnExternalChange(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks[key] = append(s.callbacks[key], fn)
}

func (s *PolicyStorage) listen(ctx context.Context) {
	pubsub := RedisClient.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	for {
		select {
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			s.dispatch(msg.Payload)
		case <-ctx.Done():
			return
		}
	}
}

func (s *PolicyStorage) dispatch(key string) {
	s.mu.Lock()
	callbacks := append([]func(){}, s.callbacks[key]...)
	s.mu.Unlock()

	logger.Debug("External policy change received", zap.String("key", key))
	for _, fn := range callbacks {
		fn()
	}
}
