package contract

import "github.com/ekinoks/slack-assistant-bot/internal/domain/entity"

// The scheduler consumes module stores only through these narrow
// capabilities, never by reaching into module storage directly.

// LessonProvider exposes the lessons store facts the scheduler needs
type LessonProvider interface {
	// SlotsStartingAt returns schedule slots whose class starts at exactly
	// startTime (HH:MM) on the given ISO weekday.
	SlotsStartingAt(userID int64, weekday int, startTime string) ([]*entity.ScheduleSlot, error)

	// HomeworksDueBy returns uncompleted homework due on or before byDate.
	HomeworksDueBy(userID int64, byDate string) ([]*entity.Homework, error)
}

// VocabularyProvider exposes the vocabulary store facts the scheduler needs
type VocabularyProvider interface {
	// CountDueForReview counts words in learning state whose next review
	// date is on or before the given local date.
	CountDueForReview(userID int64, localDate string) (int, error)

	// LearnedCountOn sums the words learned in sessions on the given date.
	LearnedCountOn(userID int64, localDate string) (int, error)

	// GetDailyGoal returns the user's standing goal, nil if none is set.
	GetDailyGoal(userID int64) (*entity.DailyGoal, error)
}

// JournalProvider exposes the notes store fact the scheduler needs
type JournalProvider interface {
	// HasJournalEntryOn reports whether a journal-category note was
	// created on the given local date.
	HasJournalEntryOn(userID int64, localDate string) (bool, error)
}
