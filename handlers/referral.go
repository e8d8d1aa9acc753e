package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/logging"
	"github.com/obidua/BIDUA-Hosting-sub003/middleware"
	"github.com/obidua/BIDUA-Hosting-sub003/models"
	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
	"github.com/obidua/BIDUA-Hosting-sub003/referral"
)

func referralService(c *gin.Context) *referral.Service {
	return referral.NewService(middleware.APIClient(c), logging.L())
}

// GetReferralStatsHandler возвращает сводку партнёрки.
// Обычная ошибка деградирует до stats=null, недоступный бэкенд — 503:
// "нет данных" и "нет связи" UI различает обязательно.
func GetReferralStatsHandler(c *gin.Context) {
	stats, err := referralService(c).Stats(c.Request.Context())
	if err != nil {
		if portalapi.IsOffline(err) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetReferralEarningsHandler — начисления комиссий (до 100 записей)
func GetReferralEarningsHandler(c *gin.Context) {
	earnings, err := referralService(c).Earnings(c.Request.Context())
	if err != nil {
		if portalapi.IsOffline(err) {
			respondError(c, err)
			return
		}
		earnings = []models.ReferralEarning{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "earnings": earnings})
}

func GetReferralPayoutsHandler(c *gin.Context) {
	payouts, err := referralService(c).Payouts(c.Request.Context())
	if err != nil {
		if portalapi.IsOffline(err) {
			respondError(c, err)
			return
		}
		payouts = []models.ReferralPayout{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payouts": payouts})
}

// RequestPayoutHandler подаёт заявку на выплату
func RequestPayoutHandler(c *gin.Context) {
	var req struct {
		Amount  float64           `json:"amount" binding:"required,gt=0"`
		Method  string            `json:"method" binding:"required"`
		Details map[string]string `json:"details"`
		Notes   string            `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payout, err := referralService(c).RequestPayout(
		c.Request.Context(), req.Amount, req.Method, req.Details, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	// Уведомление оператору — в фоне, ответа не задерживаем
	go notifier.PayoutRequested(payout.PayoutNumber, payout.GrossAmount, payout.PaymentMethod)

	c.JSON(http.StatusCreated, gin.H{"success": true, "payout": payout})
}

func GetCommissionRulesHandler(c *gin.Context) {
	rules, err := referralService(c).CommissionRules(
		c.Request.Context(), c.Query("product_type"))
	if err != nil {
		if portalapi.IsOffline(err) {
			respondError(c, err)
			return
		}
		rules = []models.CommissionRule{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rules": rules})
}

func GetAffiliateSubscriptionHandler(c *gin.Context) {
	sub, err := referralService(c).SubscriptionStatus(c.Request.Context())
	if err != nil {
		if portalapi.IsOffline(err) {
			respondError(c, err)
			return
		}
		// Подписки нет — тоже валидный ответ
		c.JSON(http.StatusOK, gin.H{"success": true, "subscription": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "subscription": sub})
}

func ActivateAffiliateSubscriptionHandler(c *gin.Context) {
	sub, err := referralService(c).ActivateSubscription(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "subscription": sub})
}

// ReferralQRHandler отдаёт PNG с QR-кодом реферальной ссылки
func ReferralQRHandler(c *gin.Context) {
	stats, err := referralService(c).Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if stats.ReferralCode == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "referral code is not assigned"})
		return
	}

	link := cfg.PublicURL + "/register?ref=" + stats.ReferralCode
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		logging.L().Error("не удалось построить QR-код", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
