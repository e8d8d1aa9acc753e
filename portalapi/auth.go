package portalapi

import (
	"context"
	"net/http"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	ReferralCode string `json:"referral_code,omitempty"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// SignIn логинит пользователя. Порядок важен: сначала сохраняем токен,
// потом сразу тянем профиль — дальше все вызовы идут уже с токеном.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	var resp authResponse
	err := c.request(ctx, "/api/auth/login", requestOptions{
		method: http.MethodPost,
		body:   loginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(ctx, resp.AccessToken)

	user, err := c.Me(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register создаёт аккаунт (публичный эндпоинт, без авто-логина)
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	err := c.request(ctx, "/api/auth/register", requestOptions{
		method: http.MethodPost,
		body:   req,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Me возвращает профиль текущего пользователя
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	err := c.request(ctx, "/api/auth/me", requestOptions{quiet: true}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser — пробный вызов "а залогинен ли я". Никогда не возвращает
// ошибку: любая неудача означает "аноним".
func (c *Client) CurrentUser(ctx context.Context) *models.User {
	user, err := c.Me(ctx)
	if err != nil {
		return nil
	}
	return user
}

// SignOut сбрасывает токен. Сетевого вызова нет — сессию держим мы
func (c *Client) SignOut(ctx context.Context) {
	c.SetToken(ctx, "")
}

// Refresh обменивает действующий токен на свежий
func (c *Client) Refresh(ctx context.Context) error {
	var resp authResponse
	err := c.request(ctx, "/api/auth/refresh", requestOptions{method: http.MethodPost}, &resp)
	if err != nil {
		return err
	}
	if resp.AccessToken != "" {
		c.SetToken(ctx, resp.AccessToken)
	}
	return nil
}
