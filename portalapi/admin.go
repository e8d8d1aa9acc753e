package portalapi

import (
	"context"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
)

// AdminStats — сводка для админ-панели. Права проверяет бэкенд
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.request(ctx, "/api/admin/stats", requestOptions{}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.request(ctx, "/api/users", requestOptions{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}
