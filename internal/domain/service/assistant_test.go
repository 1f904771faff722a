package service

import (
	"testing"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/clock"
	"github.com/ekinoks/slack-assistant-bot/internal/domain"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_assistantService_EnsureUser(t *testing.T) {
	type args struct {
		slackUserID    string
		slackChannelID string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks, args args)
		wantErr   bool
		check     func(t *testing.T, user *entity.User)
	}{
		{
			name: "Should create user on first contact with Slack profile info",
			args: args{slackUserID: "U123", slackChannelID: "D123"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(nil, nil).Times(1)

				m.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(&slack.User{
						Name: "ekin",
						Profile: slack.UserProfile{
							RealName: "Ekin Oks",
						},
					}, nil).Times(1)

				m.mockUserRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(user *entity.User) error {
						user.ID = 1
						require.Equal(t, args.slackUserID, user.SlackUserID)
						require.Equal(t, args.slackChannelID, user.SlackChannelID)
						require.Equal(t, domain.DefaultTimezone, user.Timezone)
						require.Equal(t, domain.ModuleAssistant, user.CurrentModule)
						return nil
					}).Times(1)
			},
			check: func(t *testing.T, user *entity.User) {
				assert.Equal(t, "ekin", user.Username)
				assert.Equal(t, "Ekin Oks", user.FirstName)
			},
		},
		{
			name: "Should return existing user unchanged when channel matches",
			args: args{slackUserID: "U123", slackChannelID: "D123"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(&entity.User{ID: 7, SlackUserID: args.slackUserID, SlackChannelID: "D123"}, nil).Times(1)
			},
			check: func(t *testing.T, user *entity.User) {
				assert.Equal(t, int64(7), user.ID)
			},
		},
		{
			name: "Should move notifications to the latest channel",
			args: args{slackUserID: "U123", slackChannelID: "D999"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(&entity.User{ID: 7, SlackUserID: args.slackUserID, SlackChannelID: "D123"}, nil).Times(1)

				m.mockUserRepo.EXPECT().
					UpdateChannel(int64(7), "D999").
					Return(nil).Times(1)
			},
			check: func(t *testing.T, user *entity.User) {
				assert.Equal(t, "D999", user.SlackChannelID)
			},
		},
		{
			name: "Should still create user when Slack profile lookup fails",
			args: args{slackUserID: "U123", slackChannelID: "D123"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(nil, nil).Times(1)

				m.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(nil, assert.AnError).Times(1)

				m.mockUserRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil).Times(1)
			},
			check: func(t *testing.T, user *entity.User) {
				assert.Empty(t, user.Username)
			},
		},
		{
			name: "Should return error when user lookup fails",
			args: args{slackUserID: "U123", slackChannelID: "D123"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
			user, err := s.EnsureUser(tt.args.slackUserID, tt.args.slackChannelID)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			if tt.check != nil {
				tt.check(t, user)
			}
		})
	}
}

func Test_assistantService_AddHabit(t *testing.T) {
	user := &entity.User{ID: 1, Timezone: "UTC"}

	t.Run("should create habit with default daily frequency", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHabitRepo.EXPECT().
			GetByName(user.ID, "drink water").
			Return(nil, nil).Times(1)
		m.mockHabitRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(habit *entity.Habit) error {
				habit.ID = 1
				require.Equal(t, domain.FrequencyDaily, habit.Frequency)
				require.True(t, habit.IsActive)
				return nil
			}).Times(1)

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		habit, err := s.AddHabit(user, "drink water", "", "")

		require.NoError(t, err)
		assert.NotZero(t, habit.ID)
	})

	t.Run("should reject duplicate habit", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHabitRepo.EXPECT().
			GetByName(user.ID, "drink water").
			Return(&entity.Habit{ID: 1, Name: "drink water"}, nil).Times(1)

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		_, err := s.AddHabit(user, "drink water", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("should reject unknown frequency", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		_, err := s.AddHabit(user, "drink water", "hourly", "")

		require.Error(t, err)
	})
}

func Test_assistantService_CompleteHabit_usesUserLocalDate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	user := &entity.User{ID: 1, Timezone: "Europe/Istanbul"}

	m.mockHabitRepo.EXPECT().
		GetByName(user.ID, "read").
		Return(&entity.Habit{ID: 5, Name: "read"}, nil).Times(1)

	// 22:30 UTC on Jan 1 is already Jan 2 in Istanbul
	m.mockHabitRepo.EXPECT().
		Complete(int64(5), "2024-01-02", "").
		Return(&entity.HabitCompletion{ID: 1, HabitID: 5, PeriodDate: "2024-01-02"}, nil).Times(1)

	s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
	now := time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC)
	habit, err := s.CompleteHabit(user, "read", now)

	require.NoError(t, err)
	assert.Equal(t, int64(5), habit.ID)
}

func Test_assistantService_AddReminder(t *testing.T) {
	user := &entity.User{ID: 1, Timezone: "UTC"}

	t.Run("should create valid reminder", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockReminderRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(reminder *entity.Reminder) error {
				reminder.ID = 1
				require.Equal(t, "14:00", reminder.RemindAt)
				require.True(t, reminder.IsRecurring)
				return nil
			}).Times(1)

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		reminder, err := s.AddReminder(user, "evening walk", "14:00", "", true)

		require.NoError(t, err)
		assert.NotZero(t, reminder.ID)
	})

	t.Run("should reject bad time format", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		_, err := s.AddReminder(user, "walk", "25:99", "", false)

		require.Error(t, err)
	})

	t.Run("should reject recurring reminder with a date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		_, err := s.AddReminder(user, "walk", "14:00", "2024-01-01", true)

		require.Error(t, err)
	})
}

func Test_assistantService_SetTimezone(t *testing.T) {
	user := &entity.User{ID: 1, Timezone: "UTC"}

	t.Run("should accept valid IANA name", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().
			UpdateTimezone(user.ID, "America/Sao_Paulo").
			Return(nil).Times(1)

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		err := s.SetTimezone(user, "America/Sao_Paulo")

		require.NoError(t, err)
		assert.Equal(t, "America/Sao_Paulo", user.Timezone)
	})

	t.Run("should reject unknown zone name", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
		err := s.SetTimezone(user, "Mars/Olympus")

		require.Error(t, err)
	})
}

func Test_assistantService_TodaySummary(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	user := &entity.User{ID: 1, Timezone: "UTC"}
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	m.mockHabitRepo.EXPECT().
		GetDailySummary(user.ID, "2024-01-01").
		Return(
			[]*entity.Habit{{Name: "drink water"}},
			[]*entity.Habit{{Name: "read"}, {Name: "exercise"}},
			nil,
		).Times(1)

	s := newAssistant(m.mockDataManager, m.mockSlackClient, clock.New("UTC"))
	summary, err := s.TodaySummary(user, now)

	require.NoError(t, err)
	assert.Contains(t, summary, "✅ drink water")
	assert.Contains(t, summary, "⬜ read")
	assert.Contains(t, summary, "1/3 done")
}
