package service

import (
	"testing"

	"github.com/ekinoks/slack-assistant-bot/internal/clock"
	"github.com/ekinoks/slack-assistant-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockUserRepo     *mocks.MockUserRepo
	mockHabitRepo    *mocks.MockHabitRepo
	mockReminderRepo *mocks.MockReminderRepo
	mockLessons      *mocks.MockLessonProvider
	mockVocabulary   *mocks.MockVocabularyProvider
	mockJournal      *mocks.MockJournalProvider
	mockSlackClient  *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	habitRepo := mocks.NewMockHabitRepo(ctrl)
	dm.EXPECT().Habit().Return(habitRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockUserRepo:     userRepo,
		mockHabitRepo:    habitRepo,
		mockReminderRepo: reminderRepo,
		mockLessons:      mocks.NewMockLessonProvider(ctrl),
		mockVocabulary:   mocks.NewMockVocabularyProvider(ctrl),
		mockJournal:      mocks.NewMockJournalProvider(ctrl),
		mockSlackClient:  slackClient,
	}

	// validate service creation
	assistant := newAssistant(dm, slackClient, clock.New("UTC"))
	require.NotNil(t, assistant)

	return
}
