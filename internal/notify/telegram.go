package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/PhysicsUofRAUI/project-manager/internal/service"
)

// TelegramNotifier pushes the daily report to a single chat. It never polls
// for updates; the tracker is single-user and all interaction happens over HTTP.
type TelegramNotifier struct {
	api      *tgbotapi.BotAPI
	chatID   int64
	reminder *service.ReminderService
	log      *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, reminder *service.ReminderService, log *slog.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Info("telegram notifier authorized", "account", api.Self.UserName)

	return &TelegramNotifier{
		api:      api,
		chatID:   chatID,
		reminder: reminder,
		log:      log,
	}, nil
}

// SendDailyReport builds today's summary and delivers it to the configured chat.
func (n *TelegramNotifier) SendDailyReport(ctx context.Context) error {
	text, err := n.reminder.DailySummary(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("build daily summary: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send daily report: %w", err)
	}
	return nil
}
