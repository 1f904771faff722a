package notes

import (
	"testing"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddNote(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	note := &entity.Note{
		UserID:  1,
		Title:   "shopping list",
		Content: "milk, bread, eggs",
	}

	err := store.AddNote(note)

	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "general", note.Category)
}

func TestStore_GetNotes(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	require.NoError(t, store.AddNote(&entity.Note{UserID: 1, Title: "shopping", Content: "milk", Category: "general"}))
	require.NoError(t, store.AddNote(&entity.Note{UserID: 1, Title: "today", Content: "long day", Category: domain.JournalCategory}))
	require.NoError(t, store.AddNote(&entity.Note{UserID: 2, Title: "other user", Content: "not mine"}))

	t.Run("should return all notes for the user", func(t *testing.T) {
		got, err := store.GetNotes(1, "")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("should filter by category", func(t *testing.T) {
		got, err := store.GetNotes(1, domain.JournalCategory)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "today", got[0].Title)
	})
}

func TestStore_SearchNotes(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	require.NoError(t, store.AddNote(&entity.Note{UserID: 1, Title: "Meeting notes", Content: "discuss roadmap"}))
	require.NoError(t, store.AddNote(&entity.Note{UserID: 1, Title: "groceries", Content: "milk and bread"}))

	t.Run("should match title case insensitively", func(t *testing.T) {
		got, err := store.SearchNotes(1, "meeting")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Meeting notes", got[0].Title)
	})

	t.Run("should match content", func(t *testing.T) {
		got, err := store.SearchNotes(1, "bread")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "groceries", got[0].Title)
	})

	t.Run("should return nothing on no match", func(t *testing.T) {
		got, err := store.SearchNotes(1, "vacation")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStore_HasJournalEntryOn(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	today := time.Now().UTC().Format("2006-01-02")

	t.Run("should be false with no entry", func(t *testing.T) {
		has, err := store.HasJournalEntryOn(1, today)

		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("should ignore non-journal notes", func(t *testing.T) {
		require.NoError(t, store.AddNote(&entity.Note{UserID: 1, Title: "shopping", Content: "milk"}))

		has, err := store.HasJournalEntryOn(1, today)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("should be true once a journal entry exists", func(t *testing.T) {
		require.NoError(t, store.AddNote(&entity.Note{UserID: 1, Title: "today", Content: "long day", Category: domain.JournalCategory}))

		has, err := store.HasJournalEntryOn(1, today)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("should be false on another date", func(t *testing.T) {
		has, err := store.HasJournalEntryOn(1, "1999-01-01")

		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestStore_DeleteNote(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	note := &entity.Note{UserID: 1, Title: "temp", Content: "delete me"}
	require.NoError(t, store.AddNote(note))

	require.NoError(t, store.DeleteNote(note.ID))

	got, err := store.GetNotes(1, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
