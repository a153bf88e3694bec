// Package notify posts a short Telegram message after a successful save so
// the shared group chat sees board changes as they land. Entirely optional:
// a blank token disables it and save paths treat notification failures as
// non-fatal.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends save notifications to one chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram connects the bot. Returns (nil, nil) for a blank token so
// callers can hold a nil notifier when the feature is off.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// SaveApplied reports a completed save on the named module.
func (t *Telegram) SaveApplied(username, module string, updated, added, deleted int) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf(
		"%s saved %s: %d updated, %d added, %d deleted",
		username, module, updated, added, deleted,
	)
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text))
	return err
}
