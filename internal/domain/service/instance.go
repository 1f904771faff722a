package service

import (
	"github.com/ekinoks/slack-assistant-bot/internal/clock"
	"github.com/ekinoks/slack-assistant-bot/internal/config"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
)

type Instance struct {
	Assistant *assistantService
	Scheduler *scheduler
}

func NewInstance(
	dm contract.DataManager,
	lessons contract.LessonProvider,
	vocabulary contract.VocabularyProvider,
	journal contract.JournalProvider,
	slackClient contract.SlackClient,
	clk *clock.Clock,
	cfg *config.Config,
) *Instance {
	return &Instance{
		Assistant: newAssistant(dm, slackClient, clk),
		Scheduler: newScheduler(dm, lessons, vocabulary, journal, slackClient, clk, cfg),
	}
}
