package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:token:"

// RedisStore 将会话保存在 Redis 中，供多实例部署共享。
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore 构造 Redis 会话存储。
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token
	// 0 过期时间：会话存活到 Delete 为止。
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), 0).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrNoSession
	}
	value, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode session user id: %w", err)
	}
	return uint(userID), nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
