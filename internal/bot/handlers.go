package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fchl/rinkbot/internal/service"
)

type Handler struct {
	fantasyService *service.FantasyService
}

func NewHandler(fantasyService *service.FantasyService) *Handler {
	return &Handler{fantasyService: fantasyService}
}

const helpText = `Available commands:
/standings - Projected final standings
/projections [team] [pos] - Player projections, optionally filtered
/team <team> - One team's skaters and goalies
/whohas <player> - Which team has a player
/unmatched - Roster players missing from the stats tables
/remaining - Remaining NHL games per team
/add <pos> <team> <player> - Add a player from the stats tables
/remove <team> <player> - Remove a player
/move <team> <player> - Move a player to another team
/points <team> <pts> - Edit a team's current points
/reset - Restore the originally loaded rosters`

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to RinkBot! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "standings":
		msg.Text = h.fantasyService.GetStandings()
	case "projections":
		h.handleProjections(&msg, args)
	case "team":
		h.handleTeam(&msg, args)
	case "whohas":
		h.handleWhoHas(&msg, args)
	case "unmatched":
		msg.Text = h.fantasyService.GetUnmatched()
	case "remaining":
		msg.Text = h.fantasyService.GetRemainingGames()
	case "add":
		h.handleAdd(&msg, args)
	case "remove":
		h.handleRemove(&msg, args)
	case "move":
		h.handleMove(&msg, args)
	case "points":
		h.handlePoints(&msg, args)
	case "reset":
		msg.Text = h.fantasyService.ResetRosters()
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

// handleProjections accepts zero, one, or two filters in either order:
// an FCHL team code and/or a position code.
func (h *Handler) handleProjections(msg *tgbotapi.MessageConfig, args string) {
	var teamFilter, posFilter string
	for _, arg := range strings.Fields(strings.ToUpper(args)) {
		switch arg {
		case "F", "D", "G":
			posFilter = arg
		default:
			teamFilter = arg
		}
	}
	msg.Text = h.fantasyService.GetProjections(teamFilter, posFilter)
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team code. Usage: /team <team>"
		return
	}
	result, err := h.fantasyService.GetTeamBreakdown(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team breakdown: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleWhoHas(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /whohas <player name>"
		return
	}
	msg.Text = h.fantasyService.WhoHas(args)
}

func (h *Handler) handleAdd(msg *tgbotapi.MessageConfig, args string) {
	parts := strings.Fields(args)
	if len(parts) < 3 {
		msg.Text = "Usage: /add <pos> <team> <player name>"
		return
	}
	result, err := h.fantasyService.AddPlayer(parts[0], parts[1], strings.Join(parts[2:], " "))
	if err != nil {
		msg.Text = fmt.Sprintf("Error adding player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleRemove(msg *tgbotapi.MessageConfig, args string) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		msg.Text = "Usage: /remove <team> <player name>"
		return
	}
	result, err := h.fantasyService.RemovePlayer(parts[0], strings.Join(parts[1:], " "))
	if err != nil {
		msg.Text = fmt.Sprintf("Error removing player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleMove(msg *tgbotapi.MessageConfig, args string) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		msg.Text = "Usage: /move <team> <player name>"
		return
	}
	result, err := h.fantasyService.MovePlayer(parts[0], strings.Join(parts[1:], " "))
	if err != nil {
		msg.Text = fmt.Sprintf("Error moving player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handlePoints(msg *tgbotapi.MessageConfig, args string) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		msg.Text = "Usage: /points <team> <points>"
		return
	}
	points, err := strconv.Atoi(parts[1])
	if err != nil {
		msg.Text = fmt.Sprintf("Points must be a whole number, got %q", parts[1])
		return
	}
	result, err := h.fantasyService.SetPoints(parts[0], points)
	if err != nil {
		msg.Text = fmt.Sprintf("Error setting points: %v", err)
	} else {
		msg.Text = result
	}
}
