package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore 把会话放在进程内存中，适用于单实例部署与测试。
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

// NewMemoryStore 构造内存会话存储。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]uint)}
}

func (s *MemoryStore) Create(_ context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
