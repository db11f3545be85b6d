package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetKeyPrefix = "password_reset:"

// PasswordResetRepository stores one-shot reset tokens with a TTL.
type PasswordResetRepository interface {
	Store(ctx context.Context, token, userID string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}

type passwordResetRepository struct {
	client *redis.Client
}

// NewPasswordResetRepository returns a Redis-backed implementation.
func NewPasswordResetRepository(client *redis.Client) PasswordResetRepository {
	return &passwordResetRepository{client: client}
}

func (r *passwordResetRepository) Store(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, resetKeyPrefix+token, userID, ttl).Err()
}

// Consume atomically fetches and deletes the token so it cannot be replayed.
func (r *passwordResetRepository) Consume(ctx context.Context, token string) (string, error) {
	userID, err := r.client.GetDel(ctx, resetKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
