// Package referral приводит ответы партнёрского API бэкенда к стабильным
// витринным моделям, чтобы UI не зависел от дрейфа схемы (суммы-строки,
// свой словарь статусов выплат).
package referral

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
)

// Страница комиссий не длиннее 100 записей
const earningsPageLimit = 100

type Service struct {
	api *portalapi.Client
	log *zap.Logger
}

func NewService(api *portalapi.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, log: log}
}

// Stats возвращает сводку партнёрки с числами, приведёнными к числам
func (s *Service) Stats(ctx context.Context) (*models.ReferralStats, error) {
	payload, err := s.api.AffiliateStats(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ReferralStats{
		ReferralCode:     payload.ReferralCode,
		TotalReferrals:   payload.TotalReferrals.Int(),
		Level1Referrals:  payload.Level1Referrals.Int(),
		Level2Referrals:  payload.Level2Referrals.Int(),
		Level3Referrals:  payload.Level3Referrals.Int(),
		TotalEarnings:    payload.TotalEarnings.Float64(),
		AvailableBalance: payload.AvailableBalance.Float64(),
		TotalWithdrawn:   payload.TotalWithdrawn.Float64(),
		CanRequestPayout: payload.CanRequestPayout,
	}, nil
}

// Earnings возвращает начисления комиссий (не более earningsPageLimit)
func (s *Service) Earnings(ctx context.Context) ([]models.ReferralEarning, error) {
	payload, err := s.api.AffiliateCommissions(ctx, earningsPageLimit)
	if err != nil {
		return nil, err
	}
	earnings := make([]models.ReferralEarning, 0, len(payload))
	for _, c := range payload {
		referralUser := c.ReferralEmail
		if c.ReferralUserID != 0 {
			referralUser = strconv.FormatInt(c.ReferralUserID, 10)
		}
		earnings = append(earnings, models.ReferralEarning{
			ID:                   c.ID,
			UserID:               c.UserID,
			ReferralUserID:       referralUser,
			OrderID:              c.OrderID,
			Level:                normalizeLevel(c.Level),
			CommissionPercentage: c.CommissionPercentage.Float64(),
			OrderAmount:          c.OrderAmount.Float64(),
			CommissionAmount:     c.CommissionAmount.Float64(),
			IsRecurring:          false, // бэкенд признак не отдаёт
			CreatedAt:            c.CreatedAt,
		})
	}
	return earnings, nil
}

// Payouts возвращает выплаты в словаре витрины. Налоговых полей у бэкенда
// нет: TDS и сервисный налог нулевые, net равен gross.
func (s *Service) Payouts(ctx context.Context) ([]models.ReferralPayout, error) {
	payload, err := s.api.AffiliatePayouts(ctx)
	if err != nil {
		return nil, err
	}
	payouts := make([]models.ReferralPayout, 0, len(payload))
	for _, p := range payload {
		year, quarter := taxPeriod(p.RequestedAt)
		gross := p.Amount.Float64()
		payouts = append(payouts, models.ReferralPayout{
			ID:               p.ID,
			UserID:           p.UserID,
			PayoutNumber:     payoutNumber(p.ID),
			GrossAmount:      gross,
			TDSAmount:        0,
			ServiceTaxAmount: 0,
			NetAmount:        gross,
			Status:           mapPayoutStatus(p.Status),
			PaymentMethod:    p.PaymentMethod,
			RequestedAt:      p.RequestedAt,
			ProcessedAt:      p.ProcessedAt,
			TaxYear:          year,
			TaxQuarter:       quarter,
			CreatedAt:        p.CreatedAt,
		})
	}
	return payouts, nil
}

// RequestPayout подаёт заявку на выплату. Реквизиты уходят строкой
// с JSON внутри — так требует контракт бэкенда.
func (s *Service) RequestPayout(ctx context.Context, amount float64, method string, details map[string]string, notes string) (*models.ReferralPayout, error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	payload, err := s.api.RequestAffiliatePayout(ctx, models.PayoutRequestPayload{
		Amount:         amount,
		PaymentMethod:  method,
		PaymentDetails: string(detailsJSON),
		Notes:          notes,
	})
	if err != nil {
		return nil, err
	}
	year, quarter := taxPeriod(payload.RequestedAt)
	gross := payload.Amount.Float64()
	return &models.ReferralPayout{
		ID:            payload.ID,
		UserID:        payload.UserID,
		PayoutNumber:  payoutNumber(payload.ID),
		GrossAmount:   gross,
		NetAmount:     gross,
		Status:        mapPayoutStatus(payload.Status),
		PaymentMethod: payload.PaymentMethod,
		RequestedAt:   payload.RequestedAt,
		ProcessedAt:   payload.ProcessedAt,
		TaxYear:       year,
		TaxQuarter:    quarter,
		CreatedAt:     payload.CreatedAt,
	}, nil
}

// CommissionRules возвращает активные правила комиссий,
// при необходимости отфильтрованные по типу продукта (фильтрует бэкенд)
func (s *Service) CommissionRules(ctx context.Context, productType string) ([]models.CommissionRule, error) {
	payload, err := s.api.CommissionRules(ctx, productType)
	if err != nil {
		return nil, err
	}
	rules := make([]models.CommissionRule, 0, len(payload))
	for _, r := range payload {
		rules = append(rules, models.CommissionRule{
			ID:          r.ID,
			Level:       r.Level,
			ProductType: r.ProductType,
			Type:        r.Type,
			Value:       r.Value.Float64(),
			Name:        r.Name,
			Description: r.Description,
		})
	}
	return rules, nil
}

func (s *Service) SubscriptionStatus(ctx context.Context) (*models.AffiliateSubscriptionPayload, error) {
	return s.api.AffiliateSubscription(ctx)
}

func (s *Service) ActivateSubscription(ctx context.Context) (*models.AffiliateSubscriptionPayload, error) {
	return s.api.ActivateAffiliateSubscription(ctx)
}
