package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/assistant/*.sql sql/lessons/*.sql sql/vocabulary/*.sql sql/notes/*.sql
var SqlFiles embed.FS

// MigrateAssistant runs the migrations for the main store
// (users, habits, habit_completions, reminders).
func MigrateAssistant(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql/assistant")
}

// MigrateLessons runs the migrations for the lessons module store.
func MigrateLessons(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql/lessons")
}

// MigrateVocabulary runs the migrations for the vocabulary module store.
func MigrateVocabulary(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql/vocabulary")
}

// MigrateNotes runs the migrations for the notes module store.
func MigrateNotes(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql/notes")
}
