package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/roastbot/internal/api/giphy"
	"github.com/omarshaarawi/roastbot/internal/recap"
	"github.com/omarshaarawi/roastbot/internal/service"
)

const helpText = "Available commands:\n" +
	"/roast [week] - Roast this week's Sleeper matchups\n" +
	"/recap - Season recap for every team\n" +
	"/espn [week] - Roast ESPN matchups\n" +
	"/team <team> - Season-to-date points and top players\n" +
	"/weeks - List ESPN week options"

type Handler struct {
	recapService *service.RecapService
}

func NewHandler(recapService *service.RecapService) *Handler {
	return &Handler{recapService: recapService}
}

// HandleCommand answers one command. Replies that carry images produce more
// than one message.
func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	chatID := update.Message.Chat.ID
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())

	switch command {
	case "start":
		return []tgbotapi.Chattable{textMessage(chatID, "Welcome to RoastBot! Use /help to see available commands.")}
	case "help":
		return []tgbotapi.Chattable{textMessage(chatID, helpText)}
	case "roast":
		return h.handleRoast(ctx, chatID, args)
	case "recap":
		return h.handleRecap(ctx, chatID)
	case "espn":
		return h.handleESPN(ctx, chatID, args)
	case "team":
		return h.handleTeam(ctx, chatID, args)
	case "weeks":
		return []tgbotapi.Chattable{textMessage(chatID, h.weekOptions())}
	default:
		return []tgbotapi.Chattable{textMessage(chatID, "Unknown command. Use /help to see available commands.")}
	}
}

func (h *Handler) handleRoast(ctx context.Context, chatID int64, args string) []tgbotapi.Chattable {
	week, problem := parseWeek(ctx, "roast", args, h.recapService.GetCurrentWeek)
	if problem != "" {
		return []tgbotapi.Chattable{textMessage(chatID, problem)}
	}

	msgs, err := RoastMessages(ctx, h.recapService, chatID, week)
	if err != nil {
		return []tgbotapi.Chattable{textMessage(chatID, fmt.Sprintf("Error generating roasts: %v", err))}
	}
	return msgs
}

func (h *Handler) handleRecap(ctx context.Context, chatID int64) []tgbotapi.Chattable {
	msgs, err := RecapMessages(ctx, h.recapService, chatID)
	if err != nil {
		return []tgbotapi.Chattable{textMessage(chatID, fmt.Sprintf("Error generating recaps: %v", err))}
	}
	return msgs
}

func (h *Handler) handleESPN(ctx context.Context, chatID int64, args string) []tgbotapi.Chattable {
	if !h.recapService.ESPNEnabled() {
		return []tgbotapi.Chattable{textMessage(chatID, "No ESPN league is configured.")}
	}

	week, problem := parseWeek(ctx, "espn", args, h.recapService.GetESPNCurrentWeek)
	if problem != "" {
		return []tgbotapi.Chattable{textMessage(chatID, problem)}
	}

	msgs, err := ESPNRoastMessages(ctx, h.recapService, chatID, week)
	if err != nil {
		return []tgbotapi.Chattable{textMessage(chatID, fmt.Sprintf("Error generating roasts: %v", err))}
	}
	return msgs
}

func (h *Handler) handleTeam(ctx context.Context, chatID int64, args string) []tgbotapi.Chattable {
	if args == "" {
		return []tgbotapi.Chattable{textMessage(chatID, "Please provide a team name. Usage: /team <team name>")}
	}
	report, err := h.recapService.TeamReport(ctx, args)
	if err != nil {
		return []tgbotapi.Chattable{textMessage(chatID, fmt.Sprintf("Error getting team: %v", err))}
	}

	msgs := []tgbotapi.Chattable{textMessage(chatID, service.FormatTeam(report))}
	if avatar := report.Team.AvatarURL(); avatar != "" {
		msgs = append(msgs, photoMessage(chatID, avatar))
	}
	return msgs
}

func (h *Handler) weekOptions() string {
	var sb strings.Builder
	sb.WriteString("*ESPN weeks:*\n")
	for _, o := range recap.ESPNWeekOptions() {
		sb.WriteString(fmt.Sprintf("/espn %d - %s\n", o.Week, o.Label))
	}
	return sb.String()
}

// parseWeek reads an explicit week argument or falls back to the current
// one. A non-empty message means the week could not be determined.
func parseWeek(ctx context.Context, command, args string, current func(context.Context) (int, error)) (int, string) {
	if args == "" {
		week, err := current(ctx)
		if err != nil {
			return 0, fmt.Sprintf("Error fetching current week: %v", err)
		}
		return week, ""
	}
	week, err := strconv.Atoi(args)
	if err != nil || week < 1 {
		return 0, fmt.Sprintf("Invalid week %q. Usage: /%s <week number>", args, command)
	}
	return week, ""
}

func textMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	return msg
}

func photoMessage(chatID int64, url string) tgbotapi.PhotoConfig {
	return tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(url))
}

func animationMessages(chatID int64, url string) []tgbotapi.Chattable {
	if url == "" || strings.HasPrefix(url, giphy.PlaceholderPrefix) {
		return nil
	}
	return []tgbotapi.Chattable{tgbotapi.NewAnimation(chatID, tgbotapi.FileURL(url))}
}
