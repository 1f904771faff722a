package contract

import (
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

// AssistantService is the command-facing surface of the assistant module
type AssistantService interface {
	EnsureUser(slackUserID, slackChannelID string) (*entity.User, error)
	SetTimezone(user *entity.User, timezone string) error
	SetCurrentModule(user *entity.User, module string) error

	AddHabit(user *entity.User, name, frequency, description string) (*entity.Habit, error)
	CompleteHabit(user *entity.User, name string, now time.Time) (*entity.Habit, error)
	ListHabits(user *entity.User) ([]*entity.Habit, error)
	RemoveHabit(user *entity.User, name string) (*entity.Habit, error)

	AddReminder(user *entity.User, title, remindAt, remindDate string, recurring bool) (*entity.Reminder, error)
	ListReminders(user *entity.User, now time.Time) ([]*entity.Reminder, error)
	RemoveReminder(user *entity.User, title string) (*entity.Reminder, error)

	TodaySummary(user *entity.User, now time.Time) (string, error)
}
