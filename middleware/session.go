package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/config"
	"github.com/obidua/BIDUA-Hosting-sub003/database"
	"github.com/obidua/BIDUA-Hosting-sub003/logging"
	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
)

const (
	ctxAPIClient = "apiClient"
	ctxSessionID = "sessionID"
)

// Session привязывает к запросу клиента бэкенда. Кука портала задаёт
// сессию, сессия задаёт токен; без куки клиент анонимный.
func Session(cfg *config.Config, store *database.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var source portalapi.TokenSource = &portalapi.MemoryTokenSource{}
		sessionID, err := c.Cookie(cfg.SessionCookie)
		if err == nil && sessionID != "" {
			source = store.TokenSource(sessionID)
		} else {
			sessionID = ""
		}

		client := portalapi.New(cfg.BackendURL, source, logging.L(),
			portalapi.WithTimeout(cfg.BackendTimeout))

		// Профилактика: токен на исходе — обновляем до основного вызова
		if token := client.Token(c.Request.Context()); token != "" &&
			portalapi.TokenExpiresWithin(token, cfg.RefreshWindow) {
			if err := client.Refresh(c.Request.Context()); err != nil {
				logging.L().Debug("не удалось обновить токен", zap.Error(err))
			}
		}

		c.Set(ctxAPIClient, client)
		c.Set(ctxSessionID, sessionID)
		c.Next()
	}
}

// APIClient достаёт клиента бэкенда из контекста запроса
func APIClient(c *gin.Context) *portalapi.Client {
	v, ok := c.Get(ctxAPIClient)
	if !ok {
		return nil
	}
	client, _ := v.(*portalapi.Client)
	return client
}

func SessionID(c *gin.Context) string {
	v, ok := c.Get(ctxSessionID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// RequireAuth отсекает анонимов до обращения к бэкенду
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := APIClient(c)
		if client == nil || client.Token(c.Request.Context()) == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "authorization required"})
			return
		}
		c.Next()
	}
}
