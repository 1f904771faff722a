package database

import (
	"testing"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReminder(t *testing.T, db *DB, userID int64, title, remindAt, remindDate string, recurring bool) *entity.Reminder {
	t.Helper()

	reminder := &entity.Reminder{
		UserID:      userID,
		Title:       title,
		RemindAt:    remindAt,
		RemindDate:  remindDate,
		IsRecurring: recurring,
	}
	err := newReminderRepo(db.conn).Create(reminder)
	require.NoError(t, err)

	return reminder
}

func TestReminderRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	t.Run("should create one-shot reminder with date", func(t *testing.T) {
		reminder := &entity.Reminder{
			UserID:     user.ID,
			Title:      "take medicine",
			RemindAt:   "14:00",
			RemindDate: "2024-01-01",
		}

		err := reminderRepo.Create(reminder)

		require.NoError(t, err)
		assert.NotZero(t, reminder.ID)
	})

	t.Run("should create recurring reminder without date", func(t *testing.T) {
		reminder := &entity.Reminder{
			UserID:      user.ID,
			Title:       "evening walk",
			RemindAt:    "19:00",
			IsRecurring: true,
		}

		err := reminderRepo.Create(reminder)

		require.NoError(t, err)
		assert.NotZero(t, reminder.ID)
		assert.False(t, reminder.IsSent)
	})
}

func TestReminderRepo_GetDue(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	oneShot := createTestReminder(t, db, user.ID, "take medicine", "14:00", "2024-01-01", false)
	undated := createTestReminder(t, db, user.ID, "call mom", "14:00", "", false)
	recurring := createTestReminder(t, db, user.ID, "evening walk", "19:00", "", true)

	t.Run("should match exact time and date", func(t *testing.T) {
		due, err := reminderRepo.GetDue(user.ID, "14:00", "2024-01-01")

		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.ElementsMatch(t,
			[]int64{oneShot.ID, undated.ID},
			[]int64{due[0].ID, due[1].ID},
		)
	})

	t.Run("should not match a different minute", func(t *testing.T) {
		due, err := reminderRepo.GetDue(user.ID, "14:01", "2024-01-01")

		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("should not match dated reminder on another day", func(t *testing.T) {
		due, err := reminderRepo.GetDue(user.ID, "14:00", "2024-01-02")

		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, undated.ID, due[0].ID)
	})

	t.Run("should exclude sent reminders", func(t *testing.T) {
		err := reminderRepo.MarkSent(recurring.ID, true)
		require.NoError(t, err)

		due, err := reminderRepo.GetDue(user.ID, "19:00", "2024-01-01")
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestReminderRepo_GetByUser_KeepsDateFormat(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	createTestReminder(t, db, user.ID, "dentist appointment", "14:00", "2024-05-01", false)

	reminders, err := reminderRepo.GetByUser(user.ID, "2024-01-01")

	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "2024-05-01", reminders[0].RemindDate)
}

func TestReminderRepo_MarkSent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	t.Run("should delete one-shot reminder", func(t *testing.T) {
		reminder := createTestReminder(t, db, user.ID, "take medicine", "14:00", "2024-01-01", false)

		err := reminderRepo.MarkSent(reminder.ID, false)
		require.NoError(t, err)

		reminders, err := reminderRepo.GetByUser(user.ID, "2024-01-01")
		require.NoError(t, err)
		assert.Empty(t, reminders)
	})

	t.Run("should flag recurring reminder as sent", func(t *testing.T) {
		reminder := createTestReminder(t, db, user.ID, "evening walk", "19:00", "", true)

		err := reminderRepo.MarkSent(reminder.ID, true)
		require.NoError(t, err)

		reminders, err := reminderRepo.GetByUser(user.ID, "2024-01-01")
		require.NoError(t, err)
		require.Len(t, reminders, 1)
		assert.True(t, reminders[0].IsSent)
	})
}

func TestReminderRepo_ResetRecurring(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	first := createTestReminder(t, db, user.ID, "evening walk", "19:00", "", true)
	second := createTestReminder(t, db, user.ID, "morning run", "07:00", "", true)
	createTestReminder(t, db, user.ID, "take medicine", "14:00", "2099-01-01", false)

	require.NoError(t, reminderRepo.MarkSent(first.ID, true))
	require.NoError(t, reminderRepo.MarkSent(second.ID, true))

	affected, err := reminderRepo.ResetRecurring()
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	reminders, err := reminderRepo.GetByUser(user.ID, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	for _, reminder := range reminders {
		assert.False(t, reminder.IsSent, "reminder %q should be re-armed", reminder.Title)
	}
}

func TestReminderRepo_GetByTitle(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	created := createTestReminder(t, db, user.ID, "İlaç saati", "14:00", "", true)

	t.Run("should match with folded turkish characters", func(t *testing.T) {
		reminder, err := reminderRepo.GetByTitle(user.ID, "ilac")

		require.NoError(t, err)
		require.NotNil(t, reminder)
		assert.Equal(t, created.ID, reminder.ID)
	})

	t.Run("should return nil when nothing matches", func(t *testing.T) {
		reminder, err := reminderRepo.GetByTitle(user.ID, "dentist")

		require.NoError(t, err)
		assert.Nil(t, reminder)
	})
}

func TestReminderRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	reminder := createTestReminder(t, db, user.ID, "evening walk", "19:00", "", true)

	err := reminderRepo.Delete(reminder.ID)
	require.NoError(t, err)

	reminders, err := reminderRepo.GetByUser(user.ID, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
