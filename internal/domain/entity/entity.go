package entity

import "time"

// User is created on first contact and never deleted by the scheduler.
// SlackChannelID is the DM channel notifications are delivered to.
type User struct {
	ID             int64
	SlackUserID    string
	SlackChannelID string
	Username       string
	FirstName      string
	Timezone       string
	CurrentModule  string
	CreatedAt      time.Time
}

// Habit belongs to a user. Deletion is a soft flag flip, not row removal.
type Habit struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Frequency   string // daily, weekly, monthly
	Target      string
	IsActive    bool
	CreatedAt   time.Time
}

// HabitCompletion records that a habit was done for a calendar date.
// At most one row exists per (habit, period date).
type HabitCompletion struct {
	ID          int64
	HabitID     int64
	PeriodDate  string // YYYY-MM-DD in the user's local calendar
	Notes       string
	CompletedAt time.Time
}

// Reminder fires at RemindAt (HH:MM wall clock in the user's zone).
// A one-shot reminder is deleted after it fires; a recurring one is
// marked sent and re-armed by the midnight reset job.
type Reminder struct {
	ID          int64
	UserID      int64
	Title       string
	RemindAt    string // HH:MM
	RemindDate  string // YYYY-MM-DD, empty means any day
	IsRecurring bool
	IsSent      bool
	CreatedAt   time.Time
}

type Lesson struct {
	ID          int64
	UserID      int64
	Code        string
	Name        string
	Teacher     string
	WeeklyHours int
	CreatedAt   time.Time
}

// ScheduleSlot is one class hour in the weekly schedule.
// Weekday is ISO 8601 (Monday=1 .. Sunday=7).
type ScheduleSlot struct {
	ID         int64
	UserID     int64
	LessonID   int64
	LessonCode string
	LessonName string
	Weekday    int
	SlotNo     int
	StartTime  string // HH:MM
	EndTime    string // HH:MM
}

type Homework struct {
	ID          int64
	UserID      int64
	LessonID    int64
	LessonName  string
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD
	IsCompleted bool
	CreatedAt   time.Time
}

// Word moves new -> learning -> learned through spaced repetition.
type Word struct {
	ID          int64
	UserID      int64
	Word        string
	Meaning     string
	Example1    string
	Example2    string
	Example3    string
	Status      string
	LearnDate   string // YYYY-MM-DD
	LastReview  string // YYYY-MM-DD
	NextReview  string // YYYY-MM-DD
	ReviewCount int
	CreatedAt   time.Time
}

type DailyGoal struct {
	ID          int64
	UserID      int64
	WordsPerDay int
	CreatedAt   time.Time
}

type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	Category  string
	CreatedAt time.Time
}
