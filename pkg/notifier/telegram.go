package notifier

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Config holds the telegram credentials. Leaving either field empty
// disables notifications.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN"`
	ChatID   string `envconfig:"CHAT_ID"`
}

// Telegram delivers best effort operator messages to one chat.
// A failed or unconfigured notifier never affects the sweep, failures
// are logged and dropped.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram builds a notifier from the config. Any setup problem
// (missing credentials, bad chat id, failed bot handshake) yields a
// disabled notifier rather than an error.
func NewTelegram(config Config) *Telegram {
	if config.BotToken == "" || config.ChatID == "" {
		log.Info().Msg("telegram notifications disabled, bot token or chat id not set")
		return &Telegram{}
	}

	chatID, err := strconv.ParseInt(config.ChatID, 10, 64)
	if err != nil {
		log.Warn().Err(err).Msg("telegram notifications disabled, invalid chat id")
		return &Telegram{}
	}

	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		log.Warn().Err(err).Msg("telegram notifications disabled, failed to connect bot")
		return &Telegram{}
	}

	log.Info().Str("bot", bot.Self.UserName).Msg("telegram notifications enabled")
	return &Telegram{bot: bot, chatID: chatID}
}

func (t *Telegram) Enabled() bool {
	return t.bot != nil
}

// Notify sends one markdown formatted message, fire and forget
func (t *Telegram) Notify(text string) {
	if t.bot == nil {
		return
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.bot.Send(msg); err != nil {
		log.Warn().Err(err).Msg("failed to send telegram notification")
	}
}
