package slack

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

type Server struct {
	messageHandler  *MessageHandler
	reactionHandler *ReactionHandler
	signingSecret   string
}

func NewServer(messageHandler *MessageHandler, reactionHandler *ReactionHandler, signingSecret string) *Server {
	log.Printf("🔐 Slack signing secret configured (length: %d)", len(signingSecret))
	return &Server{
		messageHandler:  messageHandler,
		reactionHandler: reactionHandler,
		signingSecret:   signingSecret,
	}
}

// Handler returns the /slack/events endpoint
func (s *Server) Handler() http.HandlerFunc {
	return s.handleEvents
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Error reading body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sv, err := slack.NewSecretsVerifier(r.Header, s.signingSecret)
	if err != nil {
		log.Printf("❌ Error creating secrets verifier: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := sv.Write(body); err != nil {
		log.Printf("❌ Error writing to verifier: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := sv.Ensure(); err != nil {
		log.Printf("❌ Error verifying signature: %v", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	eventsAPIEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		log.Printf("❌ Error parsing event: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if eventsAPIEvent.Type == slackevents.URLVerification {
		var challenge *slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			log.Printf("❌ Error unmarshaling challenge: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		log.Printf("✅ Responding to URL verification challenge")
		w.Header().Set("Content-Type", "text")
		w.Write([]byte(challenge.Challenge))
		return
	}

	if eventsAPIEvent.Type == slackevents.CallbackEvent {
		innerEvent := eventsAPIEvent.InnerEvent
		ctx := context.Background()

		log.Printf("📬 Inner event type: %s", innerEvent.Type)

		switch ev := innerEvent.Data.(type) {
		case *slackevents.AppMentionEvent:
			log.Printf("📣 App mention event received")
			if err := s.messageHandler.HandleAppMention(ctx, ev); err != nil {
				log.Printf("❌ Error handling mention: %v", err)
			}

		case *slackevents.ReactionAddedEvent:
			if err := s.reactionHandler.HandleReaction(ctx, ev); err != nil {
				log.Printf("❌ Error handling reaction: %v", err)
			}

		default:
			log.Printf("⚠️ Unsupported event type: %v", innerEvent.Type)
		}
	}

	w.WriteHeader(http.StatusOK)
}
