package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	slackcmd "github.com/ekinoks/slack-assistant-bot/internal/slack"
	"github.com/slack-go/slack"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type SlackHandler struct {
	assistant     contract.AssistantService
	signingSecret string
}

func New(assistant contract.AssistantService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		assistant:     assistant,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Every contact registers or refreshes the user, so the scheduler
	// always has a channel to notify.
	user, err := h.assistant.EnsureUser(s.UserID, s.ChannelID)
	if err != nil {
		h.respondWithError(w, "Could not look up your profile, try again")
		return
	}

	response := h.handleCommand(cmd, user)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, user *entity.User) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdHabit:
		return h.handleHabit(cmd, user)
	case slackcmd.CmdReminder:
		return h.handleReminder(cmd, user)
	case slackcmd.CmdTimezone:
		return h.handleTimezone(cmd, user)
	case slackcmd.CmdModule:
		return h.handleModule(cmd, user)
	case slackcmd.CmdToday:
		return h.handleToday(user)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleHabit(cmd *slackcmd.Command, user *entity.User) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/assistant habit add|done|list|remove`")
	}

	switch cmd.Args[0] {
	case "add":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `/assistant habit add <name> [daily|weekly|monthly]`")
		}

		nameParts := cmd.Args[1:]
		frequency := ""
		if last := nameParts[len(nameParts)-1]; last == domain.FrequencyDaily ||
			last == domain.FrequencyWeekly || last == domain.FrequencyMonthly {
			frequency = last
			nameParts = nameParts[:len(nameParts)-1]
		}
		if len(nameParts) == 0 {
			return h.createErrorResponse("Use: `/assistant habit add <name> [daily|weekly|monthly]`")
		}

		habit, err := h.assistant.AddHabit(user, strings.Join(nameParts, " "), frequency, "")
		if err != nil {
			return h.createErrorResponse(err.Error())
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ Now tracking *%s* (%s)", habit.Name, habit.Frequency),
		}

	case "done":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `/assistant habit done <name>`")
		}

		habit, err := h.assistant.CompleteHabit(user, strings.Join(cmd.Args[1:], " "), time.Now())
		if err != nil {
			return h.createErrorResponse(err.Error())
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ *%s* done for today, nice!", habit.Name),
		}

	case "list", "ls":
		habits, err := h.assistant.ListHabits(user)
		if err != nil {
			return h.createErrorResponse("Could not list habits")
		}

		if len(habits) == 0 {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "No habits yet. Add one with `/assistant habit add <name>`.",
			}
		}

		var b strings.Builder
		b.WriteString("*Your habits:*\n")
		for _, habit := range habits {
			fmt.Fprintf(&b, "• %s (%s)\n", habit.Name, habit.Frequency)
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         b.String(),
		}

	case "remove", "rm":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `/assistant habit remove <name>`")
		}

		habit, err := h.assistant.RemoveHabit(user, strings.Join(cmd.Args[1:], " "))
		if err != nil {
			return h.createErrorResponse(err.Error())
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🗑️ Stopped tracking *%s*", habit.Name),
		}

	default:
		return h.createErrorResponse("Use: `/assistant habit add|done|list|remove`")
	}
}

func (h *SlackHandler) handleReminder(cmd *slackcmd.Command, user *entity.User) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/assistant reminder add|list|remove`")
	}

	switch cmd.Args[0] {
	case "add":
		if len(cmd.Args) < 3 {
			return h.createErrorResponse("Use: `/assistant reminder add HH:MM [daily|YYYY-MM-DD] <title>`")
		}

		remindAt := cmd.Args[1]
		rest := cmd.Args[2:]
		remindDate := ""
		recurring := false

		switch {
		case rest[0] == "daily":
			recurring = true
			rest = rest[1:]
		case datePattern.MatchString(rest[0]):
			remindDate = rest[0]
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return h.createErrorResponse("Use: `/assistant reminder add HH:MM [daily|YYYY-MM-DD] <title>`")
		}

		reminder, err := h.assistant.AddReminder(user, strings.Join(rest, " "), remindAt, remindDate, recurring)
		if err != nil {
			return h.createErrorResponse(err.Error())
		}

		when := fmt.Sprintf("at %s", reminder.RemindAt)
		if reminder.IsRecurring {
			when = fmt.Sprintf("every day at %s", reminder.RemindAt)
		} else if reminder.RemindDate != "" {
			when = fmt.Sprintf("on %s at %s", reminder.RemindDate, reminder.RemindAt)
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("⏰ I'll remind you about *%s* %s", reminder.Title, when),
		}

	case "list", "ls":
		reminders, err := h.assistant.ListReminders(user, time.Now())
		if err != nil {
			return h.createErrorResponse("Could not list reminders")
		}

		if len(reminders) == 0 {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "No upcoming reminders.",
			}
		}

		var b strings.Builder
		b.WriteString("*Your reminders:*\n")
		for _, reminder := range reminders {
			switch {
			case reminder.IsRecurring:
				fmt.Fprintf(&b, "• %s - every day at %s\n", reminder.Title, reminder.RemindAt)
			case reminder.RemindDate != "":
				fmt.Fprintf(&b, "• %s - %s at %s\n", reminder.Title, reminder.RemindDate, reminder.RemindAt)
			default:
				fmt.Fprintf(&b, "• %s - at %s\n", reminder.Title, reminder.RemindAt)
			}
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         b.String(),
		}

	case "remove", "rm":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `/assistant reminder remove <title>`")
		}

		reminder, err := h.assistant.RemoveReminder(user, strings.Join(cmd.Args[1:], " "))
		if err != nil {
			return h.createErrorResponse(err.Error())
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🗑️ Reminder *%s* removed", reminder.Title),
		}

	default:
		return h.createErrorResponse("Use: `/assistant reminder add|list|remove`")
	}
}

func (h *SlackHandler) handleTimezone(cmd *slackcmd.Command, user *entity.User) *slack.Msg {
	if len(cmd.Args) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Your timezone is *%s*. Change it with `/assistant timezone <IANA name>`.", user.Timezone),
		}
	}

	if err := h.assistant.SetTimezone(user, cmd.Args[0]); err != nil {
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🌍 Timezone set to *%s*. Reminders now follow your local clock.", user.Timezone),
	}
}

func (h *SlackHandler) handleModule(cmd *slackcmd.Command, user *entity.User) *slack.Msg {
	if len(cmd.Args) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Active module: *%s*", user.CurrentModule),
		}
	}

	if err := h.assistant.SetCurrentModule(user, cmd.Args[0]); err != nil {
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("📦 Switched to the *%s* module", user.CurrentModule),
	}
}

func (h *SlackHandler) handleToday(user *entity.User) *slack.Msg {
	summary, err := h.assistant.TodaySummary(user, time.Now())
	if err != nil {
		return h.createErrorResponse("Could not build today's summary")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         summary,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
