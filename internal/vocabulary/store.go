// Package vocabulary owns the word-learning module store: the word list,
// spaced-repetition state, daily goals and learning sessions. The scheduler
// consumes it only through contract.VocabularyProvider.
package vocabulary

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/database"
	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

// reviewIntervals are the spaced-repetition gaps in days. After the last
// interval the gap stays at 30 days.
var reviewIntervals = []int{1, 3, 7, 14, 30}

// learnedAfterReviews is the review count at which a word is promoted from
// learning to learned.
const learnedAfterReviews = 5

type Store struct {
	conn *sql.DB
}

func New(dbPath string) (*Store, error) {
	conn, err := database.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary database: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) DB() *sql.DB {
	return s.conn
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) AddWord(word *entity.Word) error {
	query := `
		INSERT INTO words (user_id, word, meaning, example1, example2, example3, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if word.Status == "" {
		word.Status = domain.WordStatusNew
	}

	result, err := s.conn.Exec(query,
		word.UserID,
		word.Word,
		word.Meaning,
		word.Example1,
		word.Example2,
		word.Example3,
		word.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to add word: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	word.ID = id
	return nil
}

func (s *Store) GetWord(userID int64, text string) (*entity.Word, error) {
	query := selectWords + ` WHERE user_id = ? AND word = ? COLLATE NOCASE`

	row := s.conn.QueryRow(query, userID, text)
	word, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	return word, nil
}

func (s *Store) GetWords(userID int64) ([]*entity.Word, error) {
	query := selectWords + ` WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := s.conn.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %w", err)
	}
	defer rows.Close()

	var words []*entity.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, nil
}

// GetDailyWords returns up to count new words for today's learning batch.
func (s *Store) GetDailyWords(userID int64, count int) ([]*entity.Word, error) {
	query := selectWords + ` WHERE user_id = ? AND status = ? ORDER BY created_at ASC LIMIT ?`

	rows, err := s.conn.Query(query, userID, domain.WordStatusNew, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily words: %w", err)
	}
	defer rows.Close()

	var words []*entity.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, nil
}

// MarkLearned moves a word into learning state with its first review due the
// next day.
func (s *Store) MarkLearned(wordID int64, localDate string) error {
	day, err := time.Parse("2006-01-02", localDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", localDate, err)
	}
	nextReview := day.AddDate(0, 0, 1).Format("2006-01-02")

	query := `
		UPDATE words
		SET status = ?, learn_date = ?, last_review = ?, next_review = ?
		WHERE id = ?
	`

	_, err = s.conn.Exec(query, domain.WordStatusLearning, localDate, localDate, nextReview, wordID)
	if err != nil {
		return fmt.Errorf("failed to mark word learned: %w", err)
	}

	return nil
}

// RecordReview advances a word's spaced-repetition state: bumps the review
// count, schedules the next review at the configured interval, and promotes
// the word to learned after the fifth review.
func (s *Store) RecordReview(wordID int64, localDate string) (*entity.Word, error) {
	row := s.conn.QueryRow(selectWords+` WHERE id = ?`, wordID)
	word, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	day, err := time.Parse("2006-01-02", localDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", localDate, err)
	}

	word.ReviewCount++

	days := reviewIntervals[len(reviewIntervals)-1]
	if word.ReviewCount-1 < len(reviewIntervals) {
		days = reviewIntervals[word.ReviewCount-1]
	}
	word.LastReview = localDate
	word.NextReview = day.AddDate(0, 0, days).Format("2006-01-02")

	word.Status = domain.WordStatusLearning
	if word.ReviewCount >= learnedAfterReviews {
		word.Status = domain.WordStatusLearned
	}

	query := `
		UPDATE words
		SET last_review = ?, next_review = ?, review_count = ?, status = ?
		WHERE id = ?
	`

	_, err = s.conn.Exec(query, word.LastReview, word.NextReview, word.ReviewCount, word.Status, word.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record review: %w", err)
	}

	return word, nil
}

// WordsForReview returns learning-state words whose next review is due on or
// before the given local date.
func (s *Store) WordsForReview(userID int64, localDate string) ([]*entity.Word, error) {
	query := selectWords + `
		WHERE user_id = ? AND status = ? AND next_review <= ?
		ORDER BY next_review ASC
	`

	rows, err := s.conn.Query(query, userID, domain.WordStatusLearning, localDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get words for review: %w", err)
	}
	defer rows.Close()

	var words []*entity.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, nil
}

func (s *Store) CountDueForReview(userID int64, localDate string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM words
		WHERE user_id = ? AND status = ? AND next_review <= ?
	`

	var count int
	err := s.conn.QueryRow(query, userID, domain.WordStatusLearning, localDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count due words: %w", err)
	}

	return count, nil
}

// SetDailyGoal creates or replaces the user's standing goal.
func (s *Store) SetDailyGoal(userID int64, wordsPerDay int) error {
	query := `
		INSERT INTO daily_goals (user_id, words_per_day)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET words_per_day = excluded.words_per_day
	`

	_, err := s.conn.Exec(query, userID, wordsPerDay)
	if err != nil {
		return fmt.Errorf("failed to set daily goal: %w", err)
	}

	return nil
}

func (s *Store) GetDailyGoal(userID int64) (*entity.DailyGoal, error) {
	goal := &entity.DailyGoal{}
	query := `
		SELECT id, user_id, words_per_day, created_at
		FROM daily_goals
		WHERE user_id = ?
	`

	err := s.conn.QueryRow(query, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.WordsPerDay,
		&goal.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily goal: %w", err)
	}

	return goal, nil
}

func (s *Store) AddLearningSession(userID int64, wordCount int, localDate string) error {
	query := `
		INSERT INTO learning_sessions (user_id, session_date, word_count)
		VALUES (?, ?, ?)
	`

	_, err := s.conn.Exec(query, userID, localDate, wordCount)
	if err != nil {
		return fmt.Errorf("failed to add learning session: %w", err)
	}

	return nil
}

// LearnedCountOn sums the words learned in sessions on the given local date.
func (s *Store) LearnedCountOn(userID int64, localDate string) (int, error) {
	query := `
		SELECT COALESCE(SUM(word_count), 0)
		FROM learning_sessions
		WHERE user_id = ? AND session_date = ?
	`

	var count int
	err := s.conn.QueryRow(query, userID, localDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count learned words: %w", err)
	}

	return count, nil
}

const selectWords = `
	SELECT id, user_id, word, meaning, example1, example2, example3, status,
	       learn_date, last_review, next_review, review_count, created_at
	FROM words`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWord(row rowScanner) (*entity.Word, error) {
	word := &entity.Word{}
	var example1, example2, example3 sql.NullString
	var learnDate, lastReview, nextReview sql.NullString

	err := row.Scan(
		&word.ID,
		&word.UserID,
		&word.Word,
		&word.Meaning,
		&example1,
		&example2,
		&example3,
		&word.Status,
		&learnDate,
		&lastReview,
		&nextReview,
		&word.ReviewCount,
		&word.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	word.Example1 = example1.String
	word.Example2 = example2.String
	word.Example3 = example3.String
	word.LearnDate = learnDate.String
	word.LastReview = lastReview.String
	word.NextReview = nextReview.String
	return word, nil
}
