package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obidua/BIDUA-Hosting-sub003/middleware"
)

// GetPlansHandler возвращает список тарифов
func GetPlansHandler(c *gin.Context) {
	plans, err := middleware.APIClient(c).Plans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plans": plans})
}

func GetServersHandler(c *gin.Context) {
	servers, err := middleware.APIClient(c).Servers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "servers": servers})
}

func serverID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid server id"})
		return 0, false
	}
	return id, true
}

func GetServerHandler(c *gin.Context) {
	id, ok := serverID(c)
	if !ok {
		return
	}
	server, err := middleware.APIClient(c).Server(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "server": server})
}

func StartServerHandler(c *gin.Context)   { serverActionHandler(c, "start") }
func StopServerHandler(c *gin.Context)    { serverActionHandler(c, "stop") }
func RestartServerHandler(c *gin.Context) { serverActionHandler(c, "restart") }

func serverActionHandler(c *gin.Context, action string) {
	id, ok := serverID(c)
	if !ok {
		return
	}
	client := middleware.APIClient(c)
	ctx := c.Request.Context()

	var err error
	var server any
	switch action {
	case "start":
		server, err = client.StartServer(ctx, id)
	case "stop":
		server, err = client.StopServer(ctx, id)
	default:
		server, err = client.RestartServer(ctx, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "server": server})
}
