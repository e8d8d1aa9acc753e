package portalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
)

// Plans — список тарифов. По контракту бэкенда даже он требует токен:
// публичных эндпоинтов только два, login и register.
func (c *Client) Plans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := c.request(ctx, "/api/plans", requestOptions{}, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) Servers(ctx context.Context) ([]models.Server, error) {
	var servers []models.Server
	if err := c.request(ctx, "/api/servers", requestOptions{}, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

func (c *Client) Server(ctx context.Context, id int64) (*models.Server, error) {
	var server models.Server
	if err := c.request(ctx, fmt.Sprintf("/api/servers/%d", id), requestOptions{}, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (c *Client) serverAction(ctx context.Context, id int64, action string) (*models.Server, error) {
	var server models.Server
	err := c.request(ctx, fmt.Sprintf("/api/servers/%d/%s", id, action), requestOptions{
		method: http.MethodPost,
	}, &server)
	if err != nil {
		return nil, err
	}
	return &server, nil
}

func (c *Client) StartServer(ctx context.Context, id int64) (*models.Server, error) {
	return c.serverAction(ctx, id, "start")
}

func (c *Client) StopServer(ctx context.Context, id int64) (*models.Server, error) {
	return c.serverAction(ctx, id, "stop")
}

func (c *Client) RestartServer(ctx context.Context, id int64) (*models.Server, error) {
	return c.serverAction(ctx, id, "restart")
}
