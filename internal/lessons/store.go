// Package lessons owns the lessons module store: the weekly class schedule,
// homework and study bookkeeping. The scheduler consumes it only through
// contract.LessonProvider.
package lessons

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/database"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

type Store struct {
	conn *sql.DB
}

func New(dbPath string) (*Store, error) {
	conn, err := database.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open lessons database: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) DB() *sql.DB {
	return s.conn
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) AddLesson(lesson *entity.Lesson) error {
	query := `
		INSERT INTO lessons (user_id, code, name, teacher, weekly_hours)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.conn.Exec(query,
		lesson.UserID,
		lesson.Code,
		lesson.Name,
		lesson.Teacher,
		lesson.WeeklyHours,
	)
	if err != nil {
		return fmt.Errorf("failed to add lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lesson.ID = id
	return nil
}

func (s *Store) GetLessons(userID int64) ([]*entity.Lesson, error) {
	query := `
		SELECT id, user_id, code, name, teacher, weekly_hours, created_at
		FROM lessons
		WHERE user_id = ?
		ORDER BY code ASC
	`

	rows, err := s.conn.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*entity.Lesson
	for rows.Next() {
		lesson := &entity.Lesson{}
		var teacher sql.NullString
		var weeklyHours sql.NullInt64
		err := rows.Scan(
			&lesson.ID,
			&lesson.UserID,
			&lesson.Code,
			&lesson.Name,
			&teacher,
			&weeklyHours,
			&lesson.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lesson.Teacher = teacher.String
		lesson.WeeklyHours = int(weeklyHours.Int64)
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}

// AddScheduleSlot stores a class slot. Start times must land on a quarter
// hour, matching the 15-minute grid the lesson-start reminder job polls on.
func (s *Store) AddScheduleSlot(slot *entity.ScheduleSlot) error {
	start, err := time.Parse("15:04", slot.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q, use HH:MM", slot.StartTime)
	}
	if start.Minute()%15 != 0 {
		return fmt.Errorf("start time %q must fall on a quarter hour", slot.StartTime)
	}

	query := `
		INSERT INTO schedule_slots (user_id, lesson_id, weekday, slot_no, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.conn.Exec(query,
		slot.UserID,
		slot.LessonID,
		slot.Weekday,
		slot.SlotNo,
		slot.StartTime,
		slot.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to add schedule slot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	slot.ID = id
	return nil
}

// SlotsStartingAt returns schedule slots whose class starts at exactly
// startTime (HH:MM) on the given ISO weekday. The lesson-start reminder job
// calls this with the user's local time shifted 15 minutes forward.
func (s *Store) SlotsStartingAt(userID int64, weekday int, startTime string) ([]*entity.ScheduleSlot, error) {
	query := `
		SELECT ss.id, ss.user_id, ss.lesson_id, l.code, l.name, ss.weekday, ss.slot_no, ss.start_time, ss.end_time
		FROM schedule_slots ss
		JOIN lessons l ON l.id = ss.lesson_id
		WHERE ss.user_id = ? AND ss.weekday = ? AND ss.start_time = ?
		ORDER BY ss.slot_no ASC
	`

	rows, err := s.conn.Query(query, userID, weekday, startTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule slots: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (s *Store) GetScheduleForDay(userID int64, weekday int) ([]*entity.ScheduleSlot, error) {
	query := `
		SELECT ss.id, ss.user_id, ss.lesson_id, l.code, l.name, ss.weekday, ss.slot_no, ss.start_time, ss.end_time
		FROM schedule_slots ss
		JOIN lessons l ON l.id = ss.lesson_id
		WHERE ss.user_id = ? AND ss.weekday = ?
		ORDER BY ss.slot_no ASC
	`

	rows, err := s.conn.Query(query, userID, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (s *Store) AddHomework(homework *entity.Homework) error {
	query := `
		INSERT INTO homeworks (user_id, lesson_id, title, description, due_date)
		VALUES (?, ?, ?, ?, ?)
	`

	var lessonID interface{}
	if homework.LessonID != 0 {
		lessonID = homework.LessonID
	}

	result, err := s.conn.Exec(query,
		homework.UserID,
		lessonID,
		homework.Title,
		homework.Description,
		homework.DueDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add homework: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	homework.ID = id
	return nil
}

// HomeworksDueBy returns uncompleted homework due on or before byDate.
func (s *Store) HomeworksDueBy(userID int64, byDate string) ([]*entity.Homework, error) {
	query := `
		SELECT h.id, h.user_id, h.lesson_id, COALESCE(l.name, ''), h.title, h.description, h.due_date, h.is_completed, h.created_at
		FROM homeworks h
		LEFT JOIN lessons l ON l.id = h.lesson_id
		WHERE h.user_id = ? AND h.is_completed = 0 AND h.due_date <= ?
		ORDER BY h.due_date ASC
	`

	rows, err := s.conn.Query(query, userID, byDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get due homeworks: %w", err)
	}
	defer rows.Close()

	return scanHomeworks(rows)
}

func (s *Store) GetPendingHomeworks(userID int64) ([]*entity.Homework, error) {
	query := `
		SELECT h.id, h.user_id, h.lesson_id, COALESCE(l.name, ''), h.title, h.description, h.due_date, h.is_completed, h.created_at
		FROM homeworks h
		LEFT JOIN lessons l ON l.id = h.lesson_id
		WHERE h.user_id = ? AND h.is_completed = 0
		ORDER BY h.due_date ASC
	`

	rows, err := s.conn.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending homeworks: %w", err)
	}
	defer rows.Close()

	return scanHomeworks(rows)
}

func (s *Store) CompleteHomework(homeworkID int64) error {
	query := `UPDATE homeworks SET is_completed = 1, completed_at = ? WHERE id = ?`

	_, err := s.conn.Exec(query, time.Now(), homeworkID)
	if err != nil {
		return fmt.Errorf("failed to complete homework: %w", err)
	}

	return nil
}

func (s *Store) AddStudyRecord(userID, lessonID int64, topic string, durationMinutes int, recordDate string) error {
	query := `
		INSERT INTO study_records (user_id, lesson_id, topic, duration_minutes, record_date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.conn.Exec(query, userID, lessonID, topic, durationMinutes, recordDate)
	if err != nil {
		return fmt.Errorf("failed to add study record: %w", err)
	}

	return nil
}

func (s *Store) AddQuestionRecord(userID, lessonID int64, topic string, questionCount int, recordDate string) error {
	query := `
		INSERT INTO question_records (user_id, lesson_id, topic, question_count, record_date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.conn.Exec(query, userID, lessonID, topic, questionCount, recordDate)
	if err != nil {
		return fmt.Errorf("failed to add question record: %w", err)
	}

	return nil
}

// StudyStats returns study minutes and solved-question totals since fromDate.
func (s *Store) StudyStats(userID int64, fromDate string) (studyMinutes, questionCount int, err error) {
	query := `SELECT COALESCE(SUM(duration_minutes), 0) FROM study_records WHERE user_id = ? AND record_date >= ?`
	if err := s.conn.QueryRow(query, userID, fromDate).Scan(&studyMinutes); err != nil {
		return 0, 0, fmt.Errorf("failed to get study stats: %w", err)
	}

	query = `SELECT COALESCE(SUM(question_count), 0) FROM question_records WHERE user_id = ? AND record_date >= ?`
	if err := s.conn.QueryRow(query, userID, fromDate).Scan(&questionCount); err != nil {
		return 0, 0, fmt.Errorf("failed to get question stats: %w", err)
	}

	return studyMinutes, questionCount, nil
}

func scanSlots(rows *sql.Rows) ([]*entity.ScheduleSlot, error) {
	var slots []*entity.ScheduleSlot
	for rows.Next() {
		slot := &entity.ScheduleSlot{}
		err := rows.Scan(
			&slot.ID,
			&slot.UserID,
			&slot.LessonID,
			&slot.LessonCode,
			&slot.LessonName,
			&slot.Weekday,
			&slot.SlotNo,
			&slot.StartTime,
			&slot.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule slot: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func scanHomeworks(rows *sql.Rows) ([]*entity.Homework, error) {
	var homeworks []*entity.Homework
	for rows.Next() {
		homework := &entity.Homework{}
		var lessonID sql.NullInt64
		var description sql.NullString
		err := rows.Scan(
			&homework.ID,
			&homework.UserID,
			&lessonID,
			&homework.LessonName,
			&homework.Title,
			&description,
			&homework.DueDate,
			&homework.IsCompleted,
			&homework.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan homework: %w", err)
		}
		homework.LessonID = lessonID.Int64
		homework.Description = description.String
		homeworks = append(homeworks, homework)
	}

	return homeworks, nil
}
