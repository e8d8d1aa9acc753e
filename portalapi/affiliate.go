package portalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
)

// Сырые вызовы партнёрского API. Нормализацией занимается пакет referral.

func (c *Client) AffiliateStats(ctx context.Context) (*models.AffiliateStatsPayload, error) {
	var stats models.AffiliateStatsPayload
	if err := c.request(ctx, "/api/affiliate/stats", requestOptions{}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AffiliateCommissions(ctx context.Context, limit int) ([]models.CommissionPayload, error) {
	endpoint := "/api/affiliate/commissions"
	if limit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, limit)
	}
	var commissions []models.CommissionPayload
	if err := c.request(ctx, endpoint, requestOptions{}, &commissions); err != nil {
		return nil, err
	}
	return commissions, nil
}

func (c *Client) AffiliatePayouts(ctx context.Context) ([]models.PayoutPayload, error) {
	var payouts []models.PayoutPayload
	if err := c.request(ctx, "/api/affiliate/payouts", requestOptions{}, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

func (c *Client) RequestAffiliatePayout(ctx context.Context, req models.PayoutRequestPayload) (*models.PayoutPayload, error) {
	var payout models.PayoutPayload
	err := c.request(ctx, "/api/affiliate/payouts", requestOptions{
		method: http.MethodPost,
		body:   req,
	}, &payout)
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

func (c *Client) CommissionRules(ctx context.Context, productType string) ([]models.CommissionRulePayload, error) {
	endpoint := "/api/affiliate/commission-rules"
	if productType != "" {
		endpoint += "?product_type=" + url.QueryEscape(productType)
	}
	var rules []models.CommissionRulePayload
	if err := c.request(ctx, endpoint, requestOptions{}, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// AffiliateSubscription — статус партнёрской подписки. Вызов тихий:
// её отсутствие — штатная ситуация, не повод для ошибок в логе.
func (c *Client) AffiliateSubscription(ctx context.Context) (*models.AffiliateSubscriptionPayload, error) {
	var sub models.AffiliateSubscriptionPayload
	if err := c.request(ctx, "/api/affiliate/subscription", requestOptions{quiet: true}, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) ActivateAffiliateSubscription(ctx context.Context) (*models.AffiliateSubscriptionPayload, error) {
	var sub models.AffiliateSubscriptionPayload
	err := c.request(ctx, "/api/affiliate/subscription/activate", requestOptions{
		method: http.MethodPost,
	}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
