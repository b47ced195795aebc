package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// CheckoutRepositoryImpl implements domain.CheckoutRepository using Redis.
// Purchase-flow state is transient, scoped to one purchase attempt, so it
// carries a short TTL of its own.
type CheckoutRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(client *redis.Client, ttl time.Duration) domain.CheckoutRepository {
	return &CheckoutRepositoryImpl{
		client: client,
		prefix: "checkout:",
		ttl:    ttl,
	}
}

// Save implements domain.CheckoutRepository
func (r *CheckoutRepositoryImpl) Save(ctx context.Context, sessionID string, checkout *domain.Checkout) error {
	key := r.prefix + sessionID
	data, err := json.Marshal(checkout)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Find implements domain.CheckoutRepository. A missing or unparsable record
// reads as an empty checkout; the flow guards treat that as "no package
// selected" and redirect, so storage failures never surface as errors here.
func (r *CheckoutRepositoryImpl) Find(ctx context.Context, sessionID string) (*domain.Checkout, error) {
	key := r.prefix + sessionID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &domain.Checkout{}, nil
		}
		return nil, err
	}

	var checkout domain.Checkout
	if err := json.Unmarshal([]byte(data), &checkout); err != nil {
		r.client.Del(ctx, key)
		return &domain.Checkout{}, nil
	}

	return &checkout, nil
}

// Delete implements domain.CheckoutRepository
func (r *CheckoutRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	key := r.prefix + sessionID
	return r.client.Del(ctx, key).Err()
}
