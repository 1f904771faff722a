package lessons

import (
	"testing"

	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestLesson(t *testing.T, store *Store, userID int64, code, name string) *entity.Lesson {
	t.Helper()

	lesson := &entity.Lesson{
		UserID: userID,
		Code:   code,
		Name:   name,
	}
	require.NoError(t, store.AddLesson(lesson))

	return lesson
}

func TestStore_SlotsStartingAt(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	lesson := addTestLesson(t, store, 1, "MAT101", "Mathematics")

	slot := &entity.ScheduleSlot{
		UserID:    1,
		LessonID:  lesson.ID,
		Weekday:   domain.Monday,
		SlotNo:    1,
		StartTime: "09:15",
		EndTime:   "10:00",
	}
	require.NoError(t, store.AddScheduleSlot(slot))

	t.Run("should match exact weekday and start time", func(t *testing.T) {
		slots, err := store.SlotsStartingAt(1, domain.Monday, "09:15")

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "MAT101", slots[0].LessonCode)
		assert.Equal(t, "Mathematics", slots[0].LessonName)
	})

	t.Run("should not match another weekday", func(t *testing.T) {
		slots, err := store.SlotsStartingAt(1, domain.Tuesday, "09:15")

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("should not match another minute", func(t *testing.T) {
		slots, err := store.SlotsStartingAt(1, domain.Monday, "09:30")

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestStore_AddScheduleSlot_RejectsOffGridStart(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	lesson := addTestLesson(t, store, 1, "MAT101", "Mathematics")

	tests := []struct {
		name      string
		startTime string
		wantErr   bool
	}{
		{name: "quarter hour", startTime: "09:45", wantErr: false},
		{name: "top of the hour", startTime: "10:00", wantErr: false},
		{name: "off the grid", startTime: "09:05", wantErr: true},
		{name: "not a time", startTime: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &entity.ScheduleSlot{
				UserID:    1,
				LessonID:  lesson.ID,
				Weekday:   domain.Monday,
				SlotNo:    1,
				StartTime: tt.startTime,
				EndTime:   "11:00",
			}

			err := store.AddScheduleSlot(slot)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStore_HomeworksDueBy(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	lesson := addTestLesson(t, store, 1, "FIZ101", "Physics")

	soon := &entity.Homework{UserID: 1, LessonID: lesson.ID, Title: "problem set 3", DueDate: "2024-01-02"}
	later := &entity.Homework{UserID: 1, Title: "essay draft", DueDate: "2024-01-10"}
	require.NoError(t, store.AddHomework(soon))
	require.NoError(t, store.AddHomework(later))

	t.Run("should return homework due within the window", func(t *testing.T) {
		homeworks, err := store.HomeworksDueBy(1, "2024-01-04")

		require.NoError(t, err)
		require.Len(t, homeworks, 1)
		assert.Equal(t, "problem set 3", homeworks[0].Title)
		assert.Equal(t, "Physics", homeworks[0].LessonName)
	})

	t.Run("should keep the due date in calendar format", func(t *testing.T) {
		homeworks, err := store.HomeworksDueBy(1, "2024-01-04")

		require.NoError(t, err)
		require.Len(t, homeworks, 1)
		assert.Equal(t, "2024-01-02", homeworks[0].DueDate)
	})

	t.Run("should exclude completed homework", func(t *testing.T) {
		require.NoError(t, store.CompleteHomework(soon.ID))

		homeworks, err := store.HomeworksDueBy(1, "2024-01-04")
		require.NoError(t, err)
		assert.Empty(t, homeworks)
	})

	t.Run("should include overdue homework", func(t *testing.T) {
		overdue := &entity.Homework{UserID: 1, Title: "lab report", DueDate: "2023-12-20"}
		require.NoError(t, store.AddHomework(overdue))

		homeworks, err := store.HomeworksDueBy(1, "2024-01-04")
		require.NoError(t, err)
		require.Len(t, homeworks, 1)
		assert.Equal(t, "lab report", homeworks[0].Title)
	})
}

func TestStore_GetPendingHomeworks(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	first := &entity.Homework{UserID: 1, Title: "reading", DueDate: "2024-01-05"}
	second := &entity.Homework{UserID: 1, Title: "worksheet", DueDate: "2024-01-03"}
	require.NoError(t, store.AddHomework(first))
	require.NoError(t, store.AddHomework(second))

	homeworks, err := store.GetPendingHomeworks(1)

	require.NoError(t, err)
	require.Len(t, homeworks, 2)
	// ordered by due date
	assert.Equal(t, "worksheet", homeworks[0].Title)
	assert.Equal(t, "reading", homeworks[1].Title)
}

func TestStore_StudyStats(t *testing.T) {
	store := SetupTestStore(t)
	defer store.Close()

	lesson := addTestLesson(t, store, 1, "MAT101", "Mathematics")

	require.NoError(t, store.AddStudyRecord(1, lesson.ID, "derivatives", 120, "2024-01-02"))
	require.NoError(t, store.AddStudyRecord(1, lesson.ID, "integrals", 60, "2023-12-01"))
	require.NoError(t, store.AddQuestionRecord(1, lesson.ID, "derivatives", 15, "2024-01-02"))

	minutes, questions, err := store.StudyStats(1, "2024-01-01")

	require.NoError(t, err)
	assert.Equal(t, 120, minutes)
	assert.Equal(t, 15, questions)
}
