package portalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
)

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.request(ctx, "/api/orders", requestOptions{}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type CreateOrderRequest struct {
	PlanID      int64  `json:"plan_id"`
	BillingTerm string `json:"billing_term,omitempty"` // monthly, yearly
	CouponCode  string `json:"coupon_code,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	err := c.request(ctx, "/api/orders", requestOptions{
		method: http.MethodPost,
		body:   req,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type CreatePaymentRequest struct {
	OrderID int64  `json:"order_id"`
	Method  string `json:"method"`
}

func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	err := c.request(ctx, "/api/payments", requestOptions{
		method: http.MethodPost,
		body:   req,
	}, &payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// VerifyPayment подтверждает платёж данными от платёжного шлюза
func (c *Client) VerifyPayment(ctx context.Context, paymentID int64, gatewayPayload map[string]string) (*models.Payment, error) {
	var payment models.Payment
	err := c.request(ctx, fmt.Sprintf("/api/payments/%d/verify", paymentID), requestOptions{
		method: http.MethodPost,
		body:   gatewayPayload,
	}, &payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) Invoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.request(ctx, "/api/invoices", requestOptions{}, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) BillingSettings(ctx context.Context) (*models.BillingSettings, error) {
	var settings models.BillingSettings
	if err := c.request(ctx, "/api/billing/settings", requestOptions{}, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateBillingSettings(ctx context.Context, settings models.BillingSettings) (*models.BillingSettings, error) {
	var updated models.BillingSettings
	err := c.request(ctx, "/api/billing/settings", requestOptions{
		method: http.MethodPut,
		body:   settings,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := c.request(ctx, "/api/billing/payment-methods", requestOptions{}, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}
