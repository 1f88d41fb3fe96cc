package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/roastbot/internal/service"
)

type TelegramBot struct {
	bot          *tgbotapi.BotAPI
	handler      *Handler
	recapService *service.RecapService
	chatID       int64
}

func NewTelegramBot(token string, chatID int64, recapService *service.RecapService) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(recapService)

	return &TelegramBot{
		bot:          bot,
		handler:      handler,
		recapService: recapService,
		chatID:       chatID,
	}, nil
}

func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			if update.Message.IsCommand() {
				msgs := t.handler.HandleCommand(ctx, update)
				if err := t.send(msgs); err != nil {
					slog.Error("Error sending message", "error", err)
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// send attempts every message and returns the joined errors of those that
// failed. Text Telegram cannot parse as Markdown is resent as plain text.
func (t *TelegramBot) send(msgs []tgbotapi.Chattable) error {
	var errs []error
	for _, msg := range msgs {
		_, err := t.bot.Send(msg)
		if plain, ok := asPlainText(msg, err); ok {
			slog.Warn("Resending message without Markdown", "error", err)
			_, err = t.bot.Send(plain)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func asPlainText(msg tgbotapi.Chattable, err error) (tgbotapi.MessageConfig, bool) {
	text, ok := msg.(tgbotapi.MessageConfig)
	if !ok || err == nil || text.ParseMode == "" || !strings.Contains(err.Error(), "can't parse entities") {
		return tgbotapi.MessageConfig{}, false
	}
	text.ParseMode = ""
	return text, true
}

func (t *TelegramBot) SendRoasts(ctx context.Context, week int) error {
	msgs, err := RoastMessages(ctx, t.recapService, t.chatID, week)
	if err != nil {
		return fmt.Errorf("building roasts for week %d: %w", week, err)
	}
	return t.send(msgs)
}

func (t *TelegramBot) SendRecaps(ctx context.Context) error {
	msgs, err := RecapMessages(ctx, t.recapService, t.chatID)
	if err != nil {
		return fmt.Errorf("building season recaps: %w", err)
	}
	return t.send(msgs)
}

func (t *TelegramBot) SendESPNRoasts(ctx context.Context, week int) error {
	msgs, err := ESPNRoastMessages(ctx, t.recapService, t.chatID, week)
	if err != nil {
		return fmt.Errorf("building ESPN roasts for week %d: %w", week, err)
	}
	return t.send(msgs)
}
