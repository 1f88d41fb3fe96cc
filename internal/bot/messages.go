package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/roastbot/internal/service"
)

// RoastMessages builds the chat messages for a week of Sleeper roasts.
func RoastMessages(ctx context.Context, s *service.RecapService, chatID int64, week int) ([]tgbotapi.Chattable, error) {
	roasts, err := s.WeeklyRoasts(ctx, week)
	if err != nil {
		return nil, err
	}

	msgs := []tgbotapi.Chattable{textMessage(chatID, fmt.Sprintf("🏈🔥 *Week %d Matchup Roasts*", week))}
	for _, r := range roasts {
		msgs = append(msgs, textMessage(chatID, service.FormatRoast(r)))
		msgs = append(msgs, animationMessages(chatID, r.GIFURL)...)
	}
	return msgs, nil
}

// RecapMessages builds the chat messages for the season recaps: the owner's
// avatar, the recap text, then a GIF.
func RecapMessages(ctx context.Context, s *service.RecapService, chatID int64) ([]tgbotapi.Chattable, error) {
	report, err := s.SeasonRecaps(ctx)
	if err != nil {
		return nil, err
	}

	msgs := []tgbotapi.Chattable{textMessage(chatID, "🔥 *Fantasy Football User Season Recaps*")}
	for _, r := range report.Recaps {
		if r.AvatarURL != "" {
			msgs = append(msgs, photoMessage(chatID, r.AvatarURL))
		}
		msgs = append(msgs, textMessage(chatID, service.FormatRecap(r)))
		msgs = append(msgs, animationMessages(chatID, r.GIFURL)...)
	}
	if len(report.FailedWeeks) > 0 {
		msgs = append(msgs, textMessage(chatID, fmt.Sprintf("⚠️ Missing data for weeks: %v", report.FailedWeeks)))
	}
	return msgs, nil
}

// ESPNRoastMessages builds the chat messages for a week of ESPN roasts.
func ESPNRoastMessages(ctx context.Context, s *service.RecapService, chatID int64, week int) ([]tgbotapi.Chattable, error) {
	roasts, err := s.ESPNRoasts(ctx, week)
	if err != nil {
		return nil, err
	}

	msgs := []tgbotapi.Chattable{textMessage(chatID, fmt.Sprintf("🏈🔥 *Matchups for %s*", service.ESPNWeekLabel(week)))}
	for _, r := range roasts {
		for _, logo := range []string{r.Matchup.HomeLogo, r.Matchup.AwayLogo} {
			if logo != "" {
				msgs = append(msgs, photoMessage(chatID, logo))
			}
		}
		msgs = append(msgs, textMessage(chatID, service.FormatESPNRoast(r)))
	}
	return msgs, nil
}
