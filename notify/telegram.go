// Package notify шлёт операторские уведомления в Telegram.
// Канал опциональный: без токена все вызовы — no-op.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

// NewTelegram создаёт нотификатор; при пустом токене возвращает nil —
// методы на nil-получателе безопасны
func NewTelegram(token string, chatID int64, log *zap.Logger) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("✅ Telegram-уведомления включены", zap.String("bot", bot.Self.UserName))
	return &Telegram{bot: bot, chatID: chatID, log: log}, nil
}

// PayoutRequested уведомляет оператора о новой заявке на выплату
func (t *Telegram) PayoutRequested(payoutNumber string, amount float64, method string) {
	if t == nil {
		return
	}
	text := fmt.Sprintf("💸 Новая заявка на выплату %s\nСумма: %.2f\nСпособ: %s",
		payoutNumber, amount, method)
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.Warn("не удалось отправить Telegram-уведомление", zap.Error(err))
	}
}
