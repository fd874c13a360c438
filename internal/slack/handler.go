package slack

import (
	"context"
	"strings"

	"github.com/slack-go/slack/slackevents"
)

// Command is a parsed app mention
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits mention text into a lowercased command name and its arguments
func ParseCommand(text string) Command {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return Command{}
	}
	return Command{Name: strings.ToLower(parts[0]), Args: parts[1:]}
}

type MessageHandler struct {
	client         Messenger
	commandHandler *CommandHandler
}

func NewMessageHandler(client Messenger, commandHandler *CommandHandler) *MessageHandler {
	return &MessageHandler{
		client:         client,
		commandHandler: commandHandler,
	}
}

func (h *MessageHandler) HandleAppMention(ctx context.Context, event *slackevents.AppMentionEvent) error {
	if event.User == h.client.GetBotID() {
		return nil
	}

	text := strings.TrimSpace(strings.Replace(event.Text, "<@"+h.client.GetBotID()+">", "", 1))
	cmd := ParseCommand(text)

	switch cmd.Name {
	case "analyze":
		return h.commandHandler.HandleAnalyze(ctx, event.Channel, cmd.Args)
	case "report":
		id := ""
		if len(cmd.Args) > 0 {
			id = cmd.Args[0]
		}
		return h.commandHandler.HandleReport(ctx, event.Channel, id)
	case "stats":
		return h.commandHandler.HandleStats(ctx, event.Channel)
	case "profiles":
		return h.commandHandler.HandleProfiles(event.Channel)
	default:
		return h.sendHelpMessage(event.Channel)
	}
}

func (h *MessageHandler) sendHelpMessage(channelID string) error {
	helpText := `🎬 *TikTok Virality Analyzer*

*Commands:*
• ` + "`analyze <filename> [profile]`" + ` - Analyze a video by its filename
• ` + "`report <id>`" + ` - Post the full report of an analysis
• ` + "`stats`" + ` - Analyses per category
• ` + "`profiles`" + ` - List analysis profiles
• ` + "`help`" + ` - Show this message

*Reactions on a summary:*
• :page_facing_up: - Post the full report
• :repeat: - Re-roll the analysis`

	_, err := h.client.SendMessage(channelID, helpText)
	return err
}
