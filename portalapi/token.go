package portalapi

import (
	"context"
	"sync"
)

// TokenSource — хранилище bearer-токена сессии. Клиент получает его при
// создании (внедрение зависимости), а не лезет в глобальное состояние.
// Пустой токен означает "аноним".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
}

// MemoryTokenSource — токен в памяти процесса. Используется в тестах и для
// запросов без сессионной куки.
type MemoryTokenSource struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokenSource) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenSource) SetToken(ctx context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}
