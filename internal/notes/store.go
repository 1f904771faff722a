// Package notes owns the note-taking module store. Journal entries are
// notes in the journal category; the scheduler consumes the store only
// through contract.JournalProvider.
package notes

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ekinoks/slack-assistant-bot/internal/database"
	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

type Store struct {
	conn *sql.DB
}

func New(dbPath string) (*Store, error) {
	conn, err := database.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes database: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) DB() *sql.DB {
	return s.conn
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) AddNote(note *entity.Note) error {
	query := `
		INSERT INTO notes (user_id, title, content, category)
		VALUES (?, ?, ?, ?)
	`

	if note.Category == "" {
		note.Category = "general"
	}

	result, err := s.conn.Exec(query, note.UserID, note.Title, note.Content, note.Category)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	note.ID = id
	return nil
}

// GetNotes returns the user's notes, optionally filtered by category.
func (s *Store) GetNotes(userID int64, category string) ([]*entity.Note, error) {
	query := selectNotes + ` WHERE user_id = ?`
	args := []interface{}{userID}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// SearchNotes matches the term against note titles and contents,
// case-insensitively.
func (s *Store) SearchNotes(userID int64, term string) ([]*entity.Note, error) {
	query := selectNotes + `
		WHERE user_id = ? AND (LOWER(title) LIKE ? OR LOWER(content) LIKE ?)
		ORDER BY created_at DESC
	`

	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := s.conn.Query(query, userID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (s *Store) DeleteNote(noteID int64) error {
	_, err := s.conn.Exec(`DELETE FROM notes WHERE id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

// HasJournalEntryOn reports whether a journal-category note was created on
// the given local date.
func (s *Store) HasJournalEntryOn(userID int64, localDate string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM notes
		WHERE user_id = ? AND category = ? AND date(created_at) = ?
	`

	var count int
	err := s.conn.QueryRow(query, userID, domain.JournalCategory, localDate).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check journal entry: %w", err)
	}

	return count > 0, nil
}

const selectNotes = `
	SELECT id, user_id, title, content, category, created_at
	FROM notes`

func scanNotes(rows *sql.Rows) ([]*entity.Note, error) {
	var notes []*entity.Note
	for rows.Next() {
		note := &entity.Note{}
		err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.Category,
			&note.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}
