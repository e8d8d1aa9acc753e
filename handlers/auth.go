package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/logging"
	"github.com/obidua/BIDUA-Hosting-sub003/middleware"
	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
)

// LoginHandler логинит пользователя на бэкенде и заводит сессию портала
func LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Сессия нужна до логина: токен должен сразу лечь в хранилище
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		var err error
		sessionID, err = sessions.Create(c.Request.Context())
		if err != nil {
			logging.L().Error("не удалось создать сессию", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session storage unavailable"})
			return
		}
	}

	client := portalapi.New(cfg.BackendURL, sessions.TokenSource(sessionID), logging.L(),
		portalapi.WithTimeout(cfg.BackendTimeout))

	user, err := client.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(cfg.SessionCookie, sessionID, int(cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// RegisterHandler создаёт аккаунт (реферальный код — опционально)
func RegisterHandler(c *gin.Context) {
	var req portalapi.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := middleware.APIClient(c).Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// MeHandler — пробный вызов "кто я". Ошибок наружу не отдаёт:
// неудача значит аноним, и это нормальный ответ.
func MeHandler(c *gin.Context) {
	user := middleware.APIClient(c).CurrentUser(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// LogoutHandler гасит сессию и чистит куку
func LogoutHandler(c *gin.Context) {
	client := middleware.APIClient(c)
	client.SignOut(c.Request.Context())

	if sessionID := middleware.SessionID(c); sessionID != "" {
		if err := sessions.Delete(c.Request.Context(), sessionID); err != nil {
			logging.L().Warn("не удалось удалить сессию", zap.Error(err))
		}
	}
	c.SetCookie(cfg.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RefreshHandler принудительно обновляет токен сессии
func RefreshHandler(c *gin.Context) {
	if err := middleware.APIClient(c).Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
