package database

import (
	"database/sql"
	"fmt"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

type reminderRepository struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, title, remind_at, remind_date, is_recurring, is_sent)
		VALUES (?, ?, ?, ?, ?, 0)
	`

	var remindDate interface{}
	if reminder.RemindDate != "" {
		remindDate = reminder.RemindDate
	}

	result, err := r.db.Exec(query,
		reminder.UserID,
		reminder.Title,
		reminder.RemindAt,
		remindDate,
		reminder.IsRecurring,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	return nil
}

// GetByUser returns recurring reminders plus one-shots that are undated or
// not yet in the past relative to fromDate.
func (r *reminderRepository) GetByUser(userID int64, fromDate string) ([]*entity.Reminder, error) {
	query := `
		SELECT id, user_id, title, remind_at, remind_date, is_recurring, is_sent, created_at
		FROM reminders
		WHERE user_id = ?
		  AND (is_recurring = 1 OR remind_date IS NULL OR remind_date >= ?)
		ORDER BY remind_at ASC
	`

	rows, err := r.db.Query(query, userID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (r *reminderRepository) GetByTitle(userID int64, title string) (*entity.Reminder, error) {
	query := `
		SELECT id, user_id, title, remind_at, remind_date, is_recurring, is_sent, created_at
		FROM reminders
		WHERE user_id = ?
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	reminders, err := scanReminders(rows)
	if err != nil {
		return nil, err
	}

	for _, reminder := range reminders {
		if matchesNormalized(title, reminder.Title) {
			return reminder, nil
		}
	}

	return nil, nil
}

// GetDue returns unsent reminders matching the user's local wall-clock
// minute: remind_at equals localTime and the date constraint, if any, equals
// localDate.
func (r *reminderRepository) GetDue(userID int64, localTime, localDate string) ([]*entity.Reminder, error) {
	query := `
		SELECT id, user_id, title, remind_at, remind_date, is_recurring, is_sent, created_at
		FROM reminders
		WHERE user_id = ?
		  AND remind_at = ?
		  AND (is_recurring = 1 OR remind_date IS NULL OR remind_date = ?)
		  AND is_sent = 0
	`

	rows, err := r.db.Query(query, userID, localTime, localDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// MarkSent is the at-most-once bookkeeping. A one-shot reminder is deleted
// outright so it can never fire again; a recurring one is flagged sent and
// re-armed only by the midnight reset.
func (r *reminderRepository) MarkSent(reminderID int64, isRecurring bool) error {
	var query string
	if isRecurring {
		query = `UPDATE reminders SET is_sent = 1 WHERE id = ?`
	} else {
		query = `DELETE FROM reminders WHERE id = ?`
	}

	_, err := r.db.Exec(query, reminderID)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

// ResetRecurring re-arms every recurring reminder. Runs once a day at server
// midnight as defense in depth against rows left sent by a crashed tick.
func (r *reminderRepository) ResetRecurring() (int64, error) {
	result, err := r.db.Exec(`UPDATE reminders SET is_sent = 0 WHERE is_recurring = 1`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset recurring reminders: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *reminderRepository) Delete(reminderID int64) error {
	_, err := r.db.Exec(`DELETE FROM reminders WHERE id = ?`, reminderID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

func scanReminders(rows *sql.Rows) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	for rows.Next() {
		reminder := &entity.Reminder{}
		var remindDate sql.NullString
		err := rows.Scan(
			&reminder.ID,
			&reminder.UserID,
			&reminder.Title,
			&reminder.RemindAt,
			&remindDate,
			&reminder.IsRecurring,
			&reminder.IsSent,
			&reminder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminder.RemindDate = remindDate.String
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}
