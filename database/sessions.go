package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionStore — долговременное хранилище токенов сессий портала
type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{pool: Pool}
}

// Create заводит пустую сессию и возвращает её id (он уходит в куку)
func (s *SessionStore) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO portal_sessions (id) VALUES ($1)`, id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM portal_sessions WHERE id = $1`, id)
	return err
}

// DeleteStale чистит сессии, в которые давно не заходили
func (s *SessionStore) DeleteStale(ctx context.Context, ttl time.Duration) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM portal_sessions WHERE last_seen < NOW() - ($1 * interval '1 second')`,
		int64(ttl.Seconds()))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// TokenSource возвращает источник токена для одной сессии.
// Реализует portalapi.TokenSource.
func (s *SessionStore) TokenSource(sessionID string) *SessionTokenSource {
	return &SessionTokenSource{store: s, sessionID: sessionID}
}

type SessionTokenSource struct {
	store     *SessionStore
	sessionID string
}

// Token читает токен сессии; несуществующая сессия — аноним, не ошибка
func (t *SessionTokenSource) Token(ctx context.Context) (string, error) {
	var token string
	err := t.store.pool.QueryRow(ctx,
		`UPDATE portal_sessions SET last_seen = NOW() WHERE id = $1 RETURNING token`,
		t.sessionID).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (t *SessionTokenSource) SetToken(ctx context.Context, token string) error {
	_, err := t.store.pool.Exec(ctx,
		`UPDATE portal_sessions SET token = $2, updated_at = NOW() WHERE id = $1`,
		t.sessionID, token)
	return err
}
