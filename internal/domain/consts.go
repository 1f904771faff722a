package domain

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Habit frequency values accepted by the assistant module
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Word status progression for the vocabulary module
const (
	WordStatusNew      = "new"
	WordStatusLearning = "learning"
	WordStatusLearned  = "learned"
)

// Module names a user can have as their active module
const (
	ModuleAssistant  = "assistant"
	ModuleLessons    = "lessons"
	ModuleVocabulary = "vocabulary"
	ModuleNotes      = "notes"
)

// JournalCategory tags notes that count as a journal entry for the day
const JournalCategory = "journal"

// DefaultTimezone is the zone assigned to users on first contact and the
// fallback for unresolvable timezone names
const DefaultTimezone = "Europe/Istanbul"
