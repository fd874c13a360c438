package slack

import (
	"context"
	"log"
	"sync"

	"github.com/slack-go/slack/slackevents"
)

const (
	reactionReport = "page_facing_up"
	reactionRepeat = "repeat"
)

// SummaryTracker maps posted summary messages to their analysis IDs
type SummaryTracker struct {
	mu        sync.Mutex
	summaries map[string]string // messageTS -> analysisID
}

func NewSummaryTracker() *SummaryTracker {
	return &SummaryTracker{summaries: make(map[string]string)}
}

// Remember stores the mapping between a Slack message and an analysis
func (t *SummaryTracker) Remember(messageTS, analysisID string) {
	t.mu.Lock()
	t.summaries[messageTS] = analysisID
	t.mu.Unlock()
	log.Printf("📌 Stored summary message mapping: %s -> %s", messageTS, analysisID)
}

func (t *SummaryTracker) Lookup(messageTS string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.summaries[messageTS]
	return id, ok
}

type ReactionHandler struct {
	commandHandler *CommandHandler
	tracker        *SummaryTracker
}

func NewReactionHandler(commandHandler *CommandHandler, tracker *SummaryTracker) *ReactionHandler {
	return &ReactionHandler{
		commandHandler: commandHandler,
		tracker:        tracker,
	}
}

// HandleReaction processes reactions added to summary messages
func (h *ReactionHandler) HandleReaction(ctx context.Context, event *slackevents.ReactionAddedEvent) error {
	log.Printf("👍 Reaction added: %s on message %s", event.Reaction, event.Item.Timestamp)

	analysisID, exists := h.tracker.Lookup(event.Item.Timestamp)
	if !exists {
		log.Printf("No summary found for this message")
		return nil
	}

	switch event.Reaction {
	case reactionReport:
		return h.commandHandler.HandleReport(ctx, event.Item.Channel, analysisID)
	case reactionRepeat:
		return h.commandHandler.HandleRepeat(ctx, event.Item.Channel, analysisID)
	}

	return nil
}
