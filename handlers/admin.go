package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obidua/BIDUA-Hosting-sub003/middleware"
)

// AdminStatsHandler — сводка для админ-панели; доступ проверяет бэкенд
func AdminStatsHandler(c *gin.Context) {
	stats, err := middleware.APIClient(c).AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func AdminUsersHandler(c *gin.Context) {
	users, err := middleware.APIClient(c).Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
