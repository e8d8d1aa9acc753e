package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/config"
	"github.com/obidua/BIDUA-Hosting-sub003/database"
	"github.com/obidua/BIDUA-Hosting-sub003/handlers"
	"github.com/obidua/BIDUA-Hosting-sub003/logging"
	"github.com/obidua/BIDUA-Hosting-sub003/middleware"
	"github.com/obidua/BIDUA-Hosting-sub003/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment")
	}
	cfg := config.Load()

	if err := logging.InitLogger(cfg.Env == "release", cfg.LogLevel); err != nil {
		log.Fatalf("❌ Не удалось инициализировать логгер: %v", err)
	}
	defer logging.Logger.Sync()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("❌ Ошибка подключения к БД: %v", err)
	}
	defer database.CloseDB()

	sessions := database.NewSessionStore()
	go cleanupSessions(sessions, cfg.SessionTTL)

	notifier, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, logging.Logger)
	if err != nil {
		logging.Logger.Warn("Telegram-уведомления отключены", zap.Error(err))
	}

	handlers.Init(cfg, sessions, notifier)

	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.SetTrustedProxies(cfg.TrustedProxies)
	r.Use(middleware.SetupCORS(cfg))

	r.GET("/api/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	api := r.Group("/api")
	api.Use(middleware.Session(cfg, sessions))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(loginLimiter), handlers.LoginHandler)
			auth.POST("/register", handlers.RegisterHandler)
			auth.GET("/me", handlers.MeHandler)
			auth.POST("/logout", handlers.LogoutHandler)
			auth.POST("/refresh", handlers.RefreshHandler)
		}

		api.GET("/plans", handlers.GetPlansHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/servers", handlers.GetServersHandler)
			protected.GET("/servers/:id", handlers.GetServerHandler)
			protected.POST("/servers/:id/start", handlers.StartServerHandler)
			protected.POST("/servers/:id/stop", handlers.StopServerHandler)
			protected.POST("/servers/:id/restart", handlers.RestartServerHandler)

			protected.GET("/orders", handlers.GetOrdersHandler)
			protected.POST("/orders", handlers.CreateOrderHandler)
			protected.POST("/payments", handlers.CreatePaymentHandler)
			protected.POST("/payments/:id/verify", handlers.VerifyPaymentHandler)
			protected.GET("/invoices", handlers.GetInvoicesHandler)
			protected.GET("/billing/settings", handlers.GetBillingSettingsHandler)
			protected.PUT("/billing/settings", handlers.UpdateBillingSettingsHandler)
			protected.GET("/billing/payment-methods", handlers.GetPaymentMethodsHandler)

			protected.GET("/referral/stats", handlers.GetReferralStatsHandler)
			protected.GET("/referral/earnings", handlers.GetReferralEarningsHandler)
			protected.GET("/referral/payouts", handlers.GetReferralPayoutsHandler)
			protected.POST("/referral/payouts", handlers.RequestPayoutHandler)
			protected.GET("/referral/commission-rules", handlers.GetCommissionRulesHandler)
			protected.GET("/referral/subscription", handlers.GetAffiliateSubscriptionHandler)
			protected.POST("/referral/subscription/activate", handlers.ActivateAffiliateSubscriptionHandler)
			protected.GET("/referral/qr", handlers.ReferralQRHandler)

			protected.GET("/tickets", handlers.GetTicketsHandler)
			protected.POST("/tickets", handlers.CreateTicketHandler)
			protected.GET("/tickets/:id/messages", handlers.GetTicketMessagesHandler)
			protected.POST("/tickets/:id/messages", handlers.AddTicketMessageHandler)
			protected.PATCH("/tickets/:id/status", handlers.UpdateTicketStatusHandler)

			protected.GET("/admin/stats", handlers.AdminStatsHandler)
			protected.GET("/admin/users", handlers.AdminUsersHandler)
		}
	}

	logging.Logger.Info("🚀 Портал запущен", zap.String("port", cfg.Port), zap.String("backend", cfg.BackendURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Сервер не стартовал: %v", err)
	}
}

// cleanupSessions раз в час удаляет заброшенные сессии
func cleanupSessions(store *database.SessionStore, ttl time.Duration) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		removed, err := store.DeleteStale(ctx, ttl)
		cancel()
		if err != nil {
			logging.L().Warn("очистка сессий не удалась", zap.Error(err))
			continue
		}
		if removed > 0 {
			logging.L().Info("удалены неактивные сессии", zap.Int64("count", removed))
		}
	}
}
