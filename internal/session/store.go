package session

import (
	"context"
	"errors"
)

// ErrNoSession 表示令牌不存在或已被注销。
var ErrNoSession = errors.New("session not found")

// Store 维护不透明会话令牌到用户 id 的映射。
// 会话没有过期时间，存活到显式注销为止。
type Store interface {
	// Create 为用户建立一个新会话并返回令牌。
	Create(ctx context.Context, userID uint) (string, error)
	// Get 将令牌解析为用户 id，查不到时返回 ErrNoSession。
	Get(ctx context.Context, token string) (uint, error)
	// Delete 注销会话。重复注销不是错误。
	Delete(ctx context.Context, token string) error
}
