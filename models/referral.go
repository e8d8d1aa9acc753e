package models

// ================== Сырые ответы бэкенда (партнёрка) ==================
// Схема партнёрского API бэкенда нестабильна: суммы приходят то строкой,
// то числом, словарь статусов выплат свой. Всё приводим здесь, один раз.

type AffiliateStatsPayload struct {
	ReferralCode     string `json:"referral_code"`
	TotalReferrals   Amount `json:"total_referrals"`
	Level1Referrals  Amount `json:"level1_referrals"`
	Level2Referrals  Amount `json:"level2_referrals"`
	Level3Referrals  Amount `json:"level3_referrals"`
	TotalEarnings    Amount `json:"total_earnings"`
	AvailableBalance Amount `json:"available_balance"`
	TotalWithdrawn   Amount `json:"total_withdrawn"`
	CanRequestPayout bool   `json:"can_request_payout"`
}

type CommissionPayload struct {
	ID                   int64  `json:"id"`
	UserID               int64  `json:"user_id"`
	ReferralUserID       int64  `json:"referral_user_id"`
	ReferralEmail        string `json:"referral_email"`
	OrderID              int64  `json:"order_id"`
	Level                int    `json:"level"`
	CommissionPercentage Amount `json:"commission_percentage"`
	OrderAmount          Amount `json:"order_amount"`
	CommissionAmount     Amount `json:"commission_amount"`
	CreatedAt            string `json:"created_at"`
}

type PayoutPayload struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	Amount        Amount `json:"amount"`
	Status        string `json:"status"` // pending, processing, completed, failed, cancelled
	PaymentMethod string `json:"payment_method"`
	RequestedAt   string `json:"requested_at"`
	ProcessedAt   string `json:"processed_at"`
	CreatedAt     string `json:"created_at"`
}

type PayoutRequestPayload struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	// Реквизиты бэкенд принимает строкой с JSON внутри, не вложенным объектом
	PaymentDetails string `json:"payment_details"`
	Notes          string `json:"notes,omitempty"`
}

type CommissionRulePayload struct {
	ID          int64  `json:"id"`
	Level       int    `json:"level"`
	ProductType string `json:"product_type"`
	Type        string `json:"type"` // percentage, fixed
	Value       Amount `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type AffiliateSubscriptionPayload struct {
	IsActive    bool   `json:"is_active"`
	ActivatedAt string `json:"activated_at,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// ================== Витринные модели (то, что видит UI) ==================

type ReferralStats struct {
	ReferralCode     string  `json:"referral_code"`
	TotalReferrals   int     `json:"total_referrals"`
	Level1Referrals  int     `json:"level1_referrals"`
	Level2Referrals  int     `json:"level2_referrals"`
	Level3Referrals  int     `json:"level3_referrals"`
	TotalEarnings    float64 `json:"total_earnings"`
	AvailableBalance float64 `json:"available_balance"`
	TotalWithdrawn   float64 `json:"total_withdrawn"`
	CanRequestPayout bool    `json:"can_request_payout"`
}

type ReferralEarning struct {
	ID                   int64   `json:"id"`
	UserID               int64   `json:"user_id"`
	ReferralUserID       string  `json:"referral_user_id"` // id, либо email, если id нет
	OrderID              int64   `json:"order_id"`
	Level                int     `json:"level"` // 1..3
	CommissionPercentage float64 `json:"commission_percentage"`
	OrderAmount          float64 `json:"order_amount"`
	CommissionAmount     float64 `json:"commission_amount"`
	IsRecurring          bool    `json:"is_recurring"` // бэкенд не отдаёт, всегда false
	CreatedAt            string  `json:"created_at"`
}

type ReferralPayout struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	PayoutNumber     string  `json:"payout_number"`
	GrossAmount      float64 `json:"gross_amount"`
	TDSAmount        float64 `json:"tds_amount"`
	ServiceTaxAmount float64 `json:"service_tax_amount"`
	NetAmount        float64 `json:"net_amount"`
	Status           string  `json:"status"` // requested, under_review, paid, rejected
	PaymentMethod    string  `json:"payment_method"`
	RequestedAt      string  `json:"requested_at"`
	ProcessedAt      string  `json:"processed_at,omitempty"`
	TaxYear          int     `json:"tax_year"`
	TaxQuarter       int     `json:"tax_quarter"`
	CreatedAt        string  `json:"created_at"`
}

type CommissionRule struct {
	ID          int64   `json:"id"`
	Level       int     `json:"level"`
	ProductType string  `json:"product_type"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}
