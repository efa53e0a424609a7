package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/config"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

const sessionKeyPrefix = "hostel_auth_user:"

// RedisClient is the subset of redis.Client operations the session store
// needs; tests substitute an in-memory implementation.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisSessionStore holds one key per authenticated user containing the full
// user record, mirroring the persisted auth slot of the dashboard: written on
// login, refreshed after a booking stamps the record, deleted on logout.
type RedisSessionStore struct {
	client RedisClient
	cb     *gobreaker.CircuitBreaker
}

var _ ports.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client RedisClient) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		cb:     config.NewCircuitBreaker("Redis-Sessions"),
	}
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, user domain.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, sessionKeyPrefix+user.ID, string(data), ttl).Err()
	})
	return err
}

func (s *RedisSessionStore) Session(ctx context.Context, userID string) (*domain.User, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		data, err := s.client.Get(ctx, sessionKeyPrefix+userID).Result()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, domain.ErrSessionNotFound
	}

	var user domain.User
	if err := json.Unmarshal([]byte(result.(string)), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisSessionStore) ClearSession(ctx context.Context, userID string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, sessionKeyPrefix+userID).Err()
	})
	return err
}
