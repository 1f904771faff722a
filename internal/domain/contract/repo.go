package contract

import (
	"context"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

// DataManager aggregates the repositories of the main assistant store
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Habit() HabitRepo
	Reminder() ReminderRepo
}

// UserRepo defines the contract for the users repository
type UserRepo interface {
	Create(user *entity.User) error
	GetBySlackID(slackUserID string) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	UpdateTimezone(userID int64, timezone string) error
	UpdateChannel(userID int64, slackChannelID string) error
	SetCurrentModule(userID int64, module string) error
}

// HabitRepo defines the contract for the habits repository
type HabitRepo interface {
	Create(habit *entity.Habit) error
	GetByUser(userID int64, activeOnly bool) ([]*entity.Habit, error)
	GetByName(userID int64, name string) (*entity.Habit, error)
	Deactivate(habitID int64) error
	Complete(habitID int64, periodDate string, notes string) (*entity.HabitCompletion, error)
	IsCompleted(habitID int64, periodDate string) (bool, error)
	GetUncompletedDaily(userID int64, periodDate string) ([]*entity.Habit, error)
	GetDailySummary(userID int64, periodDate string) (completed, uncompleted []*entity.Habit, err error)
}

// ReminderRepo defines the contract for the reminders repository
type ReminderRepo interface {
	Create(reminder *entity.Reminder) error
	GetByUser(userID int64, fromDate string) ([]*entity.Reminder, error)
	GetByTitle(userID int64, title string) (*entity.Reminder, error)
	GetDue(userID int64, localTime, localDate string) ([]*entity.Reminder, error)
	MarkSent(reminderID int64, isRecurring bool) error
	ResetRecurring() (int64, error)
	Delete(reminderID int64) error
}
