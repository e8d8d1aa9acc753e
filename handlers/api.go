package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obidua/BIDUA-Hosting-sub003/config"
	"github.com/obidua/BIDUA-Hosting-sub003/database"
	"github.com/obidua/BIDUA-Hosting-sub003/notify"
	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
)

var (
	cfg      *config.Config
	sessions *database.SessionStore
	notifier *notify.Telegram
)

// Init передаёт обработчикам конфиг, хранилище сессий и нотификатор
func Init(c *config.Config, s *database.SessionStore, n *notify.Telegram) {
	cfg = c
	sessions = s
	notifier = n
}

// HealthHandler — живость самого шлюза (бэкенд не опрашиваем)
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError переводит ошибку бэкенда в ответ портала.
// Недоступный бэкенд — отдельный случай: UI показывает баннер, не тост.
func respondError(c *gin.Context, err error) {
	if portalapi.IsOffline(err) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "backend is unreachable",
			"offline": true,
		})
		return
	}

	var apiErr *portalapi.Error
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		switch apiErr.Kind {
		case portalapi.KindUnauthenticated, portalapi.KindSessionExpired:
			status = http.StatusUnauthorized
		case portalapi.KindCredentials:
			status = http.StatusUnauthorized
		default:
			if status == 0 {
				status = http.StatusBadGateway
			}
		}
		c.JSON(status, gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
