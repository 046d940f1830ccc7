package session

import (
	"context"
)

// keyValue RedisStore 依赖的最小键值接口，*redis.Client 满足
type keyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
	Close() error
}

// RedisStore 基于 Redis 的会话存储，多个前端实例可共享同一登录状态
type RedisStore struct {
	kv  keyValue
	key string
}

// NewRedisStore 创建 RedisStore；prefix 用于区分不同站点
func NewRedisStore(kv keyValue, prefix string) *RedisStore {
	return &RedisStore{kv: kv, key: prefix + TokenKey}
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.kv.Set(ctx, s.key, token)
}

func (s *RedisStore) Token(ctx context.Context) (string, bool, error) {
	return s.kv.Get(ctx, s.key)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.kv.Del(ctx, s.key)
}

func (s *RedisStore) Close() error {
	return s.kv.Close()
}
