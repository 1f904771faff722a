package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/clock"
	"github.com/ekinoks/slack-assistant-bot/internal/config"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// Wall-clock gates for the minute-resolution daily jobs, in each user's
// local time.
const (
	homeworkCheckAt   = "18:00"
	vocabularyCheckAt = "10:00"
	wordGoalCheckAt   = "20:00"
	journalCheckAt    = "21:30"

	// Homework is announced this many days before it is due.
	homeworkLookaheadDays = 3

	// Lesson reminders fire this long before class starts.
	lessonLeadTime = 15 * time.Minute
)

// scheduler runs the periodic notification jobs. All jobs scan every user
// and evaluate due-ness against that user's local wall clock, so users in
// different timezones are notified at their own local times. A failure for
// one user never blocks the remaining users in the same tick.
type scheduler struct {
	dm          contract.DataManager
	lessons     contract.LessonProvider
	vocabulary  contract.VocabularyProvider
	journal     contract.JournalProvider
	slackClient contract.SlackClient
	clock       *clock.Clock
	cfg         *config.Config
	cron        *cron.Cron
}

func newScheduler(
	dm contract.DataManager,
	lessons contract.LessonProvider,
	vocabulary contract.VocabularyProvider,
	journal contract.JournalProvider,
	slackClient contract.SlackClient,
	clk *clock.Clock,
	cfg *config.Config,
) *scheduler {
	return &scheduler{
		dm:          dm,
		lessons:     lessons,
		vocabulary:  vocabulary,
		journal:     journal,
		slackClient: slackClient,
		clock:       clk,
		cfg:         cfg,
		cron:        cron.New(),
	}
}

// Start registers the periodic jobs and starts the cron loop.
func (s *scheduler) Start() error {
	type job struct {
		spec string
		run  func(now time.Time)
	}

	jobs := []job{
		{"* * * * *", s.checkUserReminders},
		{"0 0 * * *", func(now time.Time) { s.resetRecurringReminders() }},
		{"*/15 * * * *", s.checkLessonReminders},
		{"* * * * *", s.checkHomeworkDeadlines},
		{"* * * * *", s.checkVocabularyReview},
		{"* * * * *", s.checkDailyWordGoal},
		{"* * * * *", s.checkJournalReminder},
	}

	if s.cfg.ReminderEnabled {
		jobs = append(jobs, job{"0 * * * *", s.sendHabitReminders})
	}

	for _, j := range jobs {
		run := j.run
		if _, err := s.cron.AddFunc(j.spec, func() { run(time.Now()) }); err != nil {
			return fmt.Errorf("failed to register job %q: %w", j.spec, err)
		}
	}

	s.cron.Start()
	log.Printf("Scheduler started with %d jobs", len(jobs))
	return nil
}

// Stop halts the cron loop. Jobs already running finish on their own.
func (s *scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped")
}

// forEachUser runs fn for every registered user, logging and skipping
// per-user failures. Users with no notification channel are skipped.
func (s *scheduler) forEachUser(jobName string, fn func(user *entity.User) error) {
	users, err := s.dm.User().GetAll()
	if err != nil {
		log.Printf("%s: failed to get users: %v", jobName, err)
		return
	}

	for _, user := range users {
		if user.SlackChannelID == "" {
			continue
		}
		if err := fn(user); err != nil {
			log.Printf("%s: user %d: %v", jobName, user.ID, err)
		}
	}
}

// sendHabitReminders nags each user about their uncompleted daily habits,
// once per hour while the user's local hour is inside the configured
// reminder window.
func (s *scheduler) sendHabitReminders(now time.Time) {
	s.forEachUser("habit reminders", func(user *entity.User) error {
		local := s.clock.UserNow(user.Timezone, now)
		if local.Hour() < s.cfg.ReminderStartHour || local.Hour() >= s.cfg.ReminderEndHour {
			return nil
		}

		habits, err := s.dm.Habit().GetUncompletedDaily(user.ID, clock.DateString(local))
		if err != nil {
			return fmt.Errorf("failed to get uncompleted habits: %w", err)
		}
		if len(habits) == 0 {
			return nil
		}

		var b strings.Builder
		b.WriteString("🔔 *Habit check!* Still waiting for today:\n")
		for _, habit := range habits {
			fmt.Fprintf(&b, "• %s\n", habit.Name)
		}
		b.WriteString("\nMark one done with `/assistant habit done <name>`")

		return s.post(user, b.String())
	})
}

// checkUserReminders fires reminders whose HH:MM matches the user's local
// wall clock this minute. The message is dispatched first and the reminder
// is marked only after a successful send, so a delivery failure leaves it
// due for a later tick rather than silently dropped.
func (s *scheduler) checkUserReminders(now time.Time) {
	s.forEachUser("user reminders", func(user *entity.User) error {
		local := s.clock.UserNow(user.Timezone, now)

		due, err := s.dm.Reminder().GetDue(user.ID, clock.TimeString(local), clock.DateString(local))
		if err != nil {
			return fmt.Errorf("failed to get due reminders: %w", err)
		}

		for _, reminder := range due {
			message := fmt.Sprintf("⏰ *Reminder:* %s", reminder.Title)
			if err := s.post(user, message); err != nil {
				log.Printf("user reminders: failed to deliver reminder %d to user %d: %v", reminder.ID, user.ID, err)
				continue
			}

			if err := s.dm.Reminder().MarkSent(reminder.ID, reminder.IsRecurring); err != nil {
				log.Printf("user reminders: failed to mark reminder %d sent: %v", reminder.ID, err)
			}
		}

		return nil
	})
}

// resetRecurringReminders re-arms all sent recurring reminders for the new
// day. Runs at server midnight.
func (s *scheduler) resetRecurringReminders() {
	affected, err := s.dm.Reminder().ResetRecurring()
	if err != nil {
		log.Printf("recurring reset: %v", err)
		return
	}

	if affected > 0 {
		log.Printf("recurring reset: re-armed %d reminders", affected)
	}
}

// checkLessonReminders announces classes starting lessonLeadTime from now
// in the user's local schedule. Slot start times are validated onto quarter
// hours on entry, so the 15-minute tick matches each slot exactly once.
func (s *scheduler) checkLessonReminders(now time.Time) {
	s.forEachUser("lesson reminders", func(user *entity.User) error {
		upcoming := s.clock.UserNow(user.Timezone, now).Add(lessonLeadTime)

		slots, err := s.lessons.SlotsStartingAt(user.ID, clock.ISOWeekday(upcoming), clock.TimeString(upcoming))
		if err != nil {
			return fmt.Errorf("failed to get schedule slots: %w", err)
		}

		for _, slot := range slots {
			message := fmt.Sprintf("📚 *%s* starts in 15 minutes (%s - %s)", slot.LessonName, slot.StartTime, slot.EndTime)
			if err := s.post(user, message); err != nil {
				log.Printf("lesson reminders: failed to notify user %d about slot %d: %v", user.ID, slot.ID, err)
			}
		}

		return nil
	})
}

// checkHomeworkDeadlines lists homework due within the lookahead window,
// once a day at the user's local evening check time.
func (s *scheduler) checkHomeworkDeadlines(now time.Time) {
	s.forEachUser("homework deadlines", func(user *entity.User) error {
		local := s.clock.UserNow(user.Timezone, now)
		if clock.TimeString(local) != homeworkCheckAt {
			return nil
		}

		byDate := clock.DateString(local.AddDate(0, 0, homeworkLookaheadDays))
		homeworks, err := s.lessons.HomeworksDueBy(user.ID, byDate)
		if err != nil {
			return fmt.Errorf("failed to get due homeworks: %w", err)
		}
		if len(homeworks) == 0 {
			return nil
		}

		var b strings.Builder
		b.WriteString("📝 *Homework due soon:*\n")
		for _, hw := range homeworks {
			if hw.LessonName != "" {
				fmt.Fprintf(&b, "• %s (%s) - due %s\n", hw.Title, hw.LessonName, hw.DueDate)
			} else {
				fmt.Fprintf(&b, "• %s - due %s\n", hw.Title, hw.DueDate)
			}
		}

		return s.post(user, b.String())
	})
}

// checkVocabularyReview announces how many words are waiting for review,
// once a day at the user's local morning check time.
func (s *scheduler) checkVocabularyReview(now time.Time) {
	s.forEachUser("vocabulary review", func(user *entity.User) error {
		local := s.clock.UserNow(user.Timezone, now)
		if clock.TimeString(local) != vocabularyCheckAt {
			return nil
		}

		count, err := s.vocabulary.CountDueForReview(user.ID, clock.DateString(local))
		if err != nil {
			return fmt.Errorf("failed to count due words: %w", err)
		}
		if count == 0 {
			return nil
		}

		message := fmt.Sprintf("📖 *Vocabulary:* %d words are waiting for review today", count)
		return s.post(user, message)
	})
}

// checkDailyWordGoal nudges users who set a daily word goal and have not
// reached it yet, once a day at the user's local evening check time.
func (s *scheduler) checkDailyWordGoal(now time.Time) {
	s.forEachUser("word goal", func(user *entity.User) error {
		local := s.clock.UserNow(user.Timezone, now)
		if clock.TimeString(local) != wordGoalCheckAt {
			return nil
		}

		goal, err := s.vocabulary.GetDailyGoal(user.ID)
		if err != nil {
			return fmt.Errorf("failed to get daily goal: %w", err)
		}
		if goal == nil {
			return nil
		}

		learned, err := s.vocabulary.LearnedCountOn(user.ID, clock.DateString(local))
		if err != nil {
			return fmt.Errorf("failed to count learned words: %w", err)
		}
		if learned >= goal.WordsPerDay {
			return nil
		}

		message := fmt.Sprintf("🎯 *Word goal:* %d/%d words so far today. Still time to catch up!", learned, goal.WordsPerDay)
		return s.post(user, message)
	})
}

// checkJournalReminder nudges users who have not written a journal entry
// today, once a day shortly before the user's local bedtime.
func (s *scheduler) checkJournalReminder(now time.Time) {
	s.forEachUser("journal reminder", func(user *entity.User) error {
		local := s.clock.UserNow(user.Timezone, now)
		if clock.TimeString(local) != journalCheckAt {
			return nil
		}

		has, err := s.journal.HasJournalEntryOn(user.ID, clock.DateString(local))
		if err != nil {
			return fmt.Errorf("failed to check journal entry: %w", err)
		}
		if has {
			return nil
		}

		return s.post(user, "📔 *Journal:* no entry yet today. How about a few lines before bed?")
	})
}

func (s *scheduler) post(user *entity.User, message string) error {
	_, _, err := s.slackClient.PostMessage(
		user.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	return nil
}
