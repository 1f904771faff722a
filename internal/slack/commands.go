package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdHabit    CommandType = "habit"
	CmdReminder CommandType = "reminder"
	CmdTimezone CommandType = "timezone"
	CmdModule   CommandType = "module"
	CmdToday    CommandType = "today"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "habit", "h":
		cmd.Type = CmdHabit
	case "reminder", "r":
		cmd.Type = CmdReminder
	case "timezone", "tz":
		cmd.Type = CmdTimezone
	case "module":
		cmd.Type = CmdModule
	case "today":
		cmd.Type = CmdToday
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Habits:*
• ` + "`/assistant habit add <name> [daily|weekly|monthly]`" + ` - Track a new habit
• ` + "`/assistant habit done <name>`" + ` - Mark a habit done for today
• ` + "`/assistant habit list`" + ` - List your habits
• ` + "`/assistant habit remove <name>`" + ` - Stop tracking a habit

*Reminders:*
• ` + "`/assistant reminder add HH:MM <title>`" + ` - One-shot reminder at the next HH:MM
• ` + "`/assistant reminder add HH:MM daily <title>`" + ` - Recurring daily reminder
• ` + "`/assistant reminder add HH:MM YYYY-MM-DD <title>`" + ` - Reminder on a specific day
• ` + "`/assistant reminder list`" + ` - List upcoming reminders
• ` + "`/assistant reminder remove <title>`" + ` - Delete a reminder

*Settings:*
• ` + "`/assistant timezone <IANA name>`" + ` - Set your timezone (ex: Europe/Istanbul)
• ` + "`/assistant module <assistant|lessons|vocabulary|notes>`" + ` - Switch active module

*Overview:*
• ` + "`/assistant today`" + ` - Today's habit progress`
}
