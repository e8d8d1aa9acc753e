package portalapi

import (
	"errors"
	"fmt"
	"strings"
)

// Kind — класс ошибки исходящего вызова. Ветвление по типу,
// а не по подстрокам в тексте.
type Kind int

const (
	// KindApplication — любой прочий не-2xx ответ бэкенда
	KindApplication Kind = iota
	// KindUnauthenticated — нет токена, запрос даже не отправлялся
	KindUnauthenticated
	// KindCredentials — 401 на публичном эндпоинте (неверный логин/пароль)
	KindCredentials
	// KindSessionExpired — 401 на защищённом эндпоинте
	KindSessionExpired
	// KindOffline — бэкенд недоступен на сетевом уровне
	KindOffline
)

// OfflinePrefix — фиксированный маркер в тексте ошибки, по нему UI
// показывает баннер "сервис недоступен", а не обычный тост.
const OfflinePrefix = "BACKEND_OFFLINE"

const (
	msgNotAuthenticated = "Not authenticated"
	msgSessionExpired   = "Session expired. Please sign in again."
)

// Error — ошибка вызова бэкенда
type Error struct {
	Kind     Kind
	Status   int    // HTTP-статус (0, если запроса не было)
	Endpoint string
	Message  string
	cause    error
}

func (e *Error) Error() string {
	if e.Kind == KindOffline {
		return fmt.Sprintf("%s: %s", OfflinePrefix, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func kindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsOffline — бэкенд не отвечает, данных нет и не будет
func IsOffline(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindOffline
}

// IsUnauthenticated — токена нет, надо логиниться
func IsUnauthenticated(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnauthenticated
}

// IsSessionExpired — токен протух, надо перелогиниться
func IsSessionExpired(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindSessionExpired
}

// expectedFailure — ожидаемые состояния, которыми не надо шуметь в логах:
// 401/404, отсутствие токена, неактивная партнёрская подписка.
func expectedFailure(e *Error) bool {
	if e.Kind == KindUnauthenticated {
		return true
	}
	if e.Status == 401 || e.Status == 404 {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "not authenticated") ||
		strings.Contains(msg, "401") ||
		strings.Contains(msg, "affiliate subscription")
}
