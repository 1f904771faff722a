package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/clock"
	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

type assistantService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	clock       *clock.Clock
}

func newAssistant(dm contract.DataManager, slackClient contract.SlackClient, clk *clock.Clock) *assistantService {
	return &assistantService{
		dm:          dm,
		slackClient: slackClient,
		clock:       clk,
	}
}

// EnsureUser returns the user for a Slack ID, creating it on first contact.
// The channel the user last wrote from becomes their notification channel.
func (s *assistantService) EnsureUser(slackUserID, slackChannelID string) (*entity.User, error) {
	user, err := s.dm.User().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if user != nil {
		if slackChannelID != "" && user.SlackChannelID != slackChannelID {
			if err := s.dm.User().UpdateChannel(user.ID, slackChannelID); err != nil {
				return nil, fmt.Errorf("failed to update user channel: %w", err)
			}
			user.SlackChannelID = slackChannelID
		}
		return user, nil
	}

	user = &entity.User{
		SlackUserID:    slackUserID,
		SlackChannelID: slackChannelID,
		Timezone:       domain.DefaultTimezone,
		CurrentModule:  domain.ModuleAssistant,
	}

	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err == nil && userInfo != nil {
		user.Username = userInfo.Name
		user.FirstName = userInfo.Profile.RealName
		if user.FirstName == "" {
			user.FirstName = userInfo.Profile.DisplayName
		}
	}

	if err := s.dm.User().Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *assistantService) SetTimezone(user *entity.User, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("unknown timezone %q, use an IANA name like Europe/Istanbul", timezone)
	}

	if err := s.dm.User().UpdateTimezone(user.ID, timezone); err != nil {
		return fmt.Errorf("failed to update timezone: %w", err)
	}

	user.Timezone = timezone
	return nil
}

func (s *assistantService) SetCurrentModule(user *entity.User, module string) error {
	switch module {
	case domain.ModuleAssistant, domain.ModuleLessons, domain.ModuleVocabulary, domain.ModuleNotes:
	default:
		return fmt.Errorf("unknown module %q", module)
	}

	if err := s.dm.User().SetCurrentModule(user.ID, module); err != nil {
		return fmt.Errorf("failed to switch module: %w", err)
	}

	user.CurrentModule = module
	return nil
}

func (s *assistantService) AddHabit(user *entity.User, name, frequency, description string) (*entity.Habit, error) {
	if frequency == "" {
		frequency = domain.FrequencyDaily
	}
	switch frequency {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly:
	default:
		return nil, fmt.Errorf("unknown frequency %q, use daily, weekly or monthly", frequency)
	}

	existing, err := s.dm.Habit().GetByName(user.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check habit: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("habit %q already exists", existing.Name)
	}

	habit := &entity.Habit{
		UserID:      user.ID,
		Name:        name,
		Description: description,
		Frequency:   frequency,
		IsActive:    true,
	}

	if err := s.dm.Habit().Create(habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

// CompleteHabit marks the named habit done for the user's local calendar
// date. Completing twice on the same day is a no-op.
func (s *assistantService) CompleteHabit(user *entity.User, name string, now time.Time) (*entity.Habit, error) {
	habit, err := s.dm.Habit().GetByName(user.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}
	if habit == nil {
		return nil, fmt.Errorf("habit %q not found", name)
	}

	localDate := clock.DateString(s.clock.UserNow(user.Timezone, now))
	if _, err := s.dm.Habit().Complete(habit.ID, localDate, ""); err != nil {
		return nil, fmt.Errorf("failed to complete habit: %w", err)
	}

	return habit, nil
}

func (s *assistantService) ListHabits(user *entity.User) ([]*entity.Habit, error) {
	habits, err := s.dm.Habit().GetByUser(user.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return habits, nil
}

func (s *assistantService) RemoveHabit(user *entity.User, name string) (*entity.Habit, error) {
	habit, err := s.dm.Habit().GetByName(user.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}
	if habit == nil {
		return nil, fmt.Errorf("habit %q not found", name)
	}

	if err := s.dm.Habit().Deactivate(habit.ID); err != nil {
		return nil, fmt.Errorf("failed to remove habit: %w", err)
	}

	return habit, nil
}

func (s *assistantService) AddReminder(user *entity.User, title, remindAt, remindDate string, recurring bool) (*entity.Reminder, error) {
	if _, err := time.Parse("15:04", remindAt); err != nil {
		return nil, fmt.Errorf("invalid time %q, use HH:MM", remindAt)
	}
	if remindDate != "" {
		if _, err := time.Parse("2006-01-02", remindDate); err != nil {
			return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", remindDate)
		}
	}
	if recurring && remindDate != "" {
		return nil, fmt.Errorf("a recurring reminder cannot have a date")
	}

	reminder := &entity.Reminder{
		UserID:      user.ID,
		Title:       title,
		RemindAt:    remindAt,
		RemindDate:  remindDate,
		IsRecurring: recurring,
	}

	if err := s.dm.Reminder().Create(reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

// ListReminders returns recurring reminders plus one-shot reminders that
// have not passed yet, judged by the user's local date.
func (s *assistantService) ListReminders(user *entity.User, now time.Time) ([]*entity.Reminder, error) {
	localDate := clock.DateString(s.clock.UserNow(user.Timezone, now))

	reminders, err := s.dm.Reminder().GetByUser(user.ID, localDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return reminders, nil
}

func (s *assistantService) RemoveReminder(user *entity.User, title string) (*entity.Reminder, error) {
	reminder, err := s.dm.Reminder().GetByTitle(user.ID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to find reminder: %w", err)
	}
	if reminder == nil {
		return nil, fmt.Errorf("reminder %q not found", title)
	}

	if err := s.dm.Reminder().Delete(reminder.ID); err != nil {
		return nil, fmt.Errorf("failed to remove reminder: %w", err)
	}

	return reminder, nil
}

// TodaySummary renders the user's habit progress for their local day.
func (s *assistantService) TodaySummary(user *entity.User, now time.Time) (string, error) {
	local := s.clock.UserNow(user.Timezone, now)
	localDate := clock.DateString(local)

	completed, uncompleted, err := s.dm.Habit().GetDailySummary(user.ID, localDate)
	if err != nil {
		return "", fmt.Errorf("failed to get daily summary: %w", err)
	}

	if len(completed) == 0 && len(uncompleted) == 0 {
		return "No habits yet. Add one with `/assistant habit add <name>`.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Today* (%s)\n", local.Format("Mon, 02 Jan"))
	for _, habit := range completed {
		fmt.Fprintf(&b, "✅ %s\n", habit.Name)
	}
	for _, habit := range uncompleted {
		fmt.Fprintf(&b, "⬜ %s\n", habit.Name)
	}
	fmt.Fprintf(&b, "\n%d/%d done", len(completed), len(completed)+len(uncompleted))

	return b.String(), nil
}
