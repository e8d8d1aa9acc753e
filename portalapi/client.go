package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/monitoring"
)

// Публичные эндпоинты — ровно два, всё остальное требует токен
var publicEndpoints = map[string]bool{
	"/api/auth/login":    true,
	"/api/auth/register": true,
}

// Client — единая точка всех вызовов REST-бэкенда хостинга.
// Отвечает за токен сессии, заголовки и классификацию ошибок.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger

	mu     sync.Mutex
	token  string
	loaded bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(baseURL string, tokens TokenSource, log *zap.Logger, opts ...Option) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     log,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token возвращает токен из памяти, при промахе читает из хранилища
func (c *Client) Token(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.token
	}
	if c.tokens == nil {
		c.loaded = true
		return ""
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Debug("не удалось прочитать токен сессии", zap.Error(err))
		return ""
	}
	c.token = token
	c.loaded = true
	return token
}

// SetToken записывает токен в память и хранилище; пустая строка — выход
func (c *Client) SetToken(ctx context.Context, token string) {
	c.mu.Lock()
	c.token = token
	c.loaded = true
	c.mu.Unlock()

	if c.tokens != nil {
		if err := c.tokens.SetToken(ctx, token); err != nil {
			c.log.Warn("не удалось сохранить токен сессии", zap.Error(err))
		}
	}
}

type requestOptions struct {
	method  string
	body    any
	headers map[string]string
	// quiet — пробный вызов (например /api/auth/me), неудача ожидаема
	quiet bool
}

type errorBody struct {
	Detail string `json:"detail"`
}

// request — общий конвейер исходящего вызова: токен, заголовки, JSON,
// классификация ответа. Ретраев нет — решает вызывающий.
func (c *Client) request(ctx context.Context, endpoint string, opt requestOptions, out any) error {
	method := opt.method
	if method == "" {
		method = http.MethodGet
	}

	path := endpoint
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	token := ""
	if !publicEndpoints[path] {
		token = c.Token(ctx)
		if token == "" {
			// Без токена на защищённый эндпоинт даже не ходим
			apiErr := &Error{Kind: KindUnauthenticated, Endpoint: path, Message: msgNotAuthenticated}
			c.logFailure(apiErr, opt.quiet)
			return apiErr
		}
	}

	var reqBody io.Reader
	if opt.body != nil {
		data, err := json.Marshal(opt.body)
		if err != nil {
			return fmt.Errorf("portalapi: marshal body for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("portalapi: new request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opt.headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		monitoring.BackendRequestsTotal.WithLabelValues(method, path, "offline").Inc()
		apiErr := &Error{
			Kind:     KindOffline,
			Endpoint: path,
			Message:  fmt.Sprintf("cannot reach backend: %v", err),
			cause:    err,
		}
		c.logFailure(apiErr, opt.quiet)
		return apiErr
	}
	defer resp.Body.Close()

	monitoring.BackendRequestsTotal.WithLabelValues(method, path, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	monitoring.BackendRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		// Соединение оборвалось посреди ответа — считаем бэкенд недоступным
		apiErr := &Error{
			Kind:     KindOffline,
			Endpoint: path,
			Message:  fmt.Sprintf("read response: %v", err),
			cause:    err,
		}
		c.logFailure(apiErr, opt.quiet)
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := c.classify(path, resp.StatusCode, resp.Status, data)
		c.logFailure(apiErr, opt.quiet)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("portalapi: decode response from %s: %w", path, err)
		}
	}
	return nil
}

// classify раскладывает не-2xx ответы по таксономии
func (c *Client) classify(path string, code int, status string, body []byte) *Error {
	detail := status
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		detail = eb.Detail
	}

	if code == http.StatusUnauthorized {
		if publicEndpoints[path] {
			// Неверные учётные данные — сообщение бэкенда как есть
			return &Error{Kind: KindCredentials, Status: code, Endpoint: path, Message: detail}
		}
		// Протухшая сессия: фиксированный текст независимо от тела ответа
		return &Error{Kind: KindSessionExpired, Status: code, Endpoint: path, Message: msgSessionExpired}
	}

	if detail == "" {
		detail = fmt.Sprintf("HTTP error %d", code)
	}
	return &Error{Kind: KindApplication, Status: code, Endpoint: path, Message: detail}
}

func (c *Client) logFailure(e *Error, quiet bool) {
	fields := []zap.Field{
		zap.String("endpoint", e.Endpoint),
		zap.Int("status", e.Status),
		zap.String("message", e.Message),
	}
	if quiet || expectedFailure(e) {
		c.log.Debug("вызов бэкенда отклонён", fields...)
		return
	}
	c.log.Warn("вызов бэкенда завершился ошибкой", fields...)
}
