package database

import (
	"database/sql"
	"fmt"

	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

type habitRepository struct {
	db dbConn
}

func newHabitRepo(db dbConn) contract.HabitRepo {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(habit *entity.Habit) error {
	query := `
		INSERT INTO habits (user_id, name, description, frequency, target, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.Target,
		habit.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	habit.ID = id
	return nil
}

func (r *habitRepository) GetByUser(userID int64, activeOnly bool) ([]*entity.Habit, error) {
	query := `
		SELECT id, user_id, name, description, frequency, target, is_active, created_at
		FROM habits
		WHERE user_id = ?
	`
	if activeOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	return scanHabits(rows)
}

// GetByName resolves a habit by user-typed name, tolerating case and Turkish
// character differences, and falling back to partial matches.
func (r *habitRepository) GetByName(userID int64, name string) (*entity.Habit, error) {
	habits, err := r.GetByUser(userID, true)
	if err != nil {
		return nil, err
	}

	search := normalizeText(name)

	for _, habit := range habits {
		if normalizeText(habit.Name) == search {
			return habit, nil
		}
	}

	for _, habit := range habits {
		if matchesNormalized(name, habit.Name) {
			return habit, nil
		}
	}

	return nil, nil
}

// Deactivate soft-deletes a habit; completion history stays intact.
func (r *habitRepository) Deactivate(habitID int64) error {
	query := `UPDATE habits SET is_active = 0 WHERE id = ?`

	_, err := r.db.Exec(query, habitID)
	if err != nil {
		return fmt.Errorf("failed to deactivate habit: %w", err)
	}

	return nil
}

// Complete records a completion for (habit, periodDate). Completion is
// idempotent: if a row already exists for the period it is returned as-is.
func (r *habitRepository) Complete(habitID int64, periodDate string, notes string) (*entity.HabitCompletion, error) {
	existing, err := r.getCompletion(habitID, periodDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := `
		INSERT INTO habit_completions (habit_id, period_date, notes)
		VALUES (?, ?, ?)
	`

	_, err = r.db.Exec(query, habitID, periodDate, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to complete habit: %w", err)
	}

	return r.getCompletion(habitID, periodDate)
}

func (r *habitRepository) getCompletion(habitID int64, periodDate string) (*entity.HabitCompletion, error) {
	completion := &entity.HabitCompletion{}
	var notes sql.NullString

	query := `
		SELECT id, habit_id, period_date, notes, completed_at
		FROM habit_completions
		WHERE habit_id = ? AND period_date = ?
	`

	err := r.db.QueryRow(query, habitID, periodDate).Scan(
		&completion.ID,
		&completion.HabitID,
		&completion.PeriodDate,
		&notes,
		&completion.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit completion: %w", err)
	}

	completion.Notes = notes.String
	return completion, nil
}

func (r *habitRepository) IsCompleted(habitID int64, periodDate string) (bool, error) {
	completion, err := r.getCompletion(habitID, periodDate)
	if err != nil {
		return false, err
	}
	return completion != nil, nil
}

// GetUncompletedDaily returns active daily habits with no completion row for
// the given local calendar date.
func (r *habitRepository) GetUncompletedDaily(userID int64, periodDate string) ([]*entity.Habit, error) {
	query := `
		SELECT h.id, h.user_id, h.name, h.description, h.frequency, h.target, h.is_active, h.created_at
		FROM habits h
		WHERE h.user_id = ?
		  AND h.is_active = 1
		  AND h.frequency = ?
		  AND h.id NOT IN (
		      SELECT habit_id FROM habit_completions WHERE period_date = ?
		  )
		ORDER BY h.created_at ASC
	`

	rows, err := r.db.Query(query, userID, domain.FrequencyDaily, periodDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get uncompleted habits: %w", err)
	}
	defer rows.Close()

	return scanHabits(rows)
}

func (r *habitRepository) GetDailySummary(userID int64, periodDate string) (completed, uncompleted []*entity.Habit, err error) {
	query := `
		SELECT h.id, h.user_id, h.name, h.description, h.frequency, h.target, h.is_active, h.created_at,
		       CASE WHEN hc.id IS NOT NULL THEN 1 ELSE 0 END AS done
		FROM habits h
		LEFT JOIN habit_completions hc ON h.id = hc.habit_id AND hc.period_date = ?
		WHERE h.user_id = ? AND h.is_active = 1 AND h.frequency = ?
		ORDER BY h.created_at ASC
	`

	rows, err := r.db.Query(query, periodDate, userID, domain.FrequencyDaily)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get daily summary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		habit := &entity.Habit{}
		var description, target sql.NullString
		var done bool
		err := rows.Scan(
			&habit.ID,
			&habit.UserID,
			&habit.Name,
			&description,
			&habit.Frequency,
			&target,
			&habit.IsActive,
			&habit.CreatedAt,
			&done,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habit.Description = description.String
		habit.Target = target.String

		if done {
			completed = append(completed, habit)
		} else {
			uncompleted = append(uncompleted, habit)
		}
	}

	return completed, uncompleted, nil
}

func scanHabits(rows *sql.Rows) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for rows.Next() {
		habit := &entity.Habit{}
		var description, target sql.NullString
		err := rows.Scan(
			&habit.ID,
			&habit.UserID,
			&habit.Name,
			&description,
			&habit.Frequency,
			&target,
			&habit.IsActive,
			&habit.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habit.Description = description.String
		habit.Target = target.String
		habits = append(habits, habit)
	}

	return habits, nil
}
