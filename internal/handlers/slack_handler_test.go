package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
	"github.com/ekinoks/slack-assistant-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testUser() *entity.User {
	return &entity.User{
		ID:             1,
		SlackUserID:    "U123456789",
		SlackChannelID: "D123456789",
		Timezone:       "Europe/Istanbul",
		CurrentModule:  "assistant",
	}
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)

	return response
}

func TestSlackHandler_HandleSlashCommand_Habit(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, user *entity.User)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should add habit with explicit frequency",
			args: args{text: "habit add drink water daily"},
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					AddHabit(user, "drink water", "daily", "").
					Return(&entity.Habit{ID: 1, Name: "drink water", Frequency: "daily"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Now tracking *drink water*")
			},
		},
		{
			name: "Should complete habit",
			args: args{text: "habit done drink water"},
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					CompleteHabit(user, "drink water", gomock.Any()).
					Return(&entity.Habit{ID: 1, Name: "drink water"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "done for today")
			},
		},
		{
			name: "Should list habits",
			args: args{text: "habit list"},
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					ListHabits(user).
					Return([]*entity.Habit{
						{Name: "drink water", Frequency: "daily"},
						{Name: "weekly review", Frequency: "weekly"},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "drink water (daily)")
				assert.Contains(t, response.Text, "weekly review (weekly)")
			},
		},
		{
			name: "Should surface service errors",
			args: args{text: "habit done unknown"},
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					CompleteHabit(user, "unknown", gomock.Any()).
					Return(nil, assert.AnError).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌")
			},
		},
		{
			name: "Should reject habit add without a name",
			args: args{text: "habit add"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "habit add")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			user := testUser()
			m.AssistantServiceMock.EXPECT().
				EnsureUser(user.SlackUserID, user.SlackChannelID).
				Return(user, nil).Times(1)

			if tt.buildMocks != nil {
				tt.buildMocks(m, user)
			}

			req := test.CreateSlackRequest(t, "/assistant", tt.args.text, user.SlackChannelID, user.SlackUserID)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Reminder(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks, user *entity.User)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should add recurring reminder",
			text: "reminder add 19:00 daily evening walk",
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					AddReminder(user, "evening walk", "19:00", "", true).
					Return(&entity.Reminder{ID: 1, Title: "evening walk", RemindAt: "19:00", IsRecurring: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "every day at 19:00")
			},
		},
		{
			name: "Should add dated one-shot reminder",
			text: "reminder add 14:00 2024-05-01 dentist appointment",
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					AddReminder(user, "dentist appointment", "14:00", "2024-05-01", false).
					Return(&entity.Reminder{ID: 1, Title: "dentist appointment", RemindAt: "14:00", RemindDate: "2024-05-01"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "on 2024-05-01 at 14:00")
			},
		},
		{
			name: "Should remove reminder by title",
			text: "reminder remove evening walk",
			buildMocks: func(m test.ServiceMocks, user *entity.User) {
				m.AssistantServiceMock.EXPECT().
					RemoveReminder(user, "evening walk").
					Return(&entity.Reminder{ID: 1, Title: "evening walk"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "removed")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			user := testUser()
			m.AssistantServiceMock.EXPECT().
				EnsureUser(user.SlackUserID, user.SlackChannelID).
				Return(user, nil).Times(1)

			if tt.buildMocks != nil {
				tt.buildMocks(m, user)
			}

			req := test.CreateSlackRequest(t, "/assistant", tt.text, user.SlackChannelID, user.SlackUserID)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Timezone(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	user := testUser()
	m.AssistantServiceMock.EXPECT().
		EnsureUser(user.SlackUserID, user.SlackChannelID).
		Return(user, nil).Times(1)
	m.AssistantServiceMock.EXPECT().
		SetTimezone(user, "America/Sao_Paulo").
		DoAndReturn(func(u *entity.User, tz string) error {
			u.Timezone = tz
			return nil
		}).Times(1)

	req := test.CreateSlackRequest(t, "/assistant", "timezone America/Sao_Paulo", user.SlackChannelID, user.SlackUserID)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "America/Sao_Paulo")
}

func TestSlackHandler_HandleSlashCommand_RejectsBadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/assistant", "today", "D123", "U123")
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	user := testUser()
	m.AssistantServiceMock.EXPECT().
		EnsureUser(user.SlackUserID, user.SlackChannelID).
		Return(user, nil).Times(1)

	req := test.CreateSlackRequest(t, "/assistant", "help", user.SlackChannelID, user.SlackUserID)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "Available commands")
}
