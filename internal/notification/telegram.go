package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier announces newly created meetups to a community channel.
// Announcements are best-effort: a missing token or chat id disables them
// and a send failure is only logged.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, announcements disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEventCreated(ctx context.Context, creator *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*New meetup posted!*\n\n%s\nDate: %s\nPosted by u/%s",
		event.Title,
		event.Date.Format("02 Jan 2006"),
		creator.Username,
	)
	if event.Location != nil && *event.Location != "" {
		text += "\nWhere: " + *event.Location
	}

	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("announcement skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("announcement skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram announcement",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
