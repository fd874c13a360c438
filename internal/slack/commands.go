package slack

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/agents"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/database"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/report"
)

// Analyzer runs the analysis pipeline
type Analyzer interface {
	Analyze(ctx context.Context, req agents.Request) (*models.Analysis, error)
}

type CommandHandler struct {
	client         Messenger
	analyzer       Analyzer
	store          database.AnalysisStore
	tracker        *SummaryTracker
	defaultProfile string
}

func NewCommandHandler(
	client Messenger,
	analyzer Analyzer,
	store database.AnalysisStore,
	tracker *SummaryTracker,
	defaultProfile string,
) *CommandHandler {
	if p, err := agents.LookupProfile(defaultProfile); err == nil {
		defaultProfile = p.Name
	}

	return &CommandHandler{
		client:         client,
		analyzer:       analyzer,
		store:          store,
		tracker:        tracker,
		defaultProfile: defaultProfile,
	}
}

// HandleAnalyze runs the filename pipeline and posts a summary
func (h *CommandHandler) HandleAnalyze(ctx context.Context, channelID string, args []string) error {
	if len(args) == 0 {
		_, err := h.client.SendMessage(channelID, "Please provide a filename: `analyze <filename> [profile]`")
		return err
	}

	filename := args[0]
	profileName := h.defaultProfile
	if len(args) > 1 {
		profileName = strings.ToLower(args[1])
	}

	profile, err := agents.LookupProfile(profileName)
	if err != nil {
		msg := fmt.Sprintf("❌ Unknown profile `%s`. Available: %s", profileName, strings.Join(agents.ProfileNames(), ", "))
		_, sendErr := h.client.SendMessage(channelID, msg)
		return sendErr
	}

	if profile.NeedsVideo() {
		msg := fmt.Sprintf("❌ Profile `%s` needs the video itself. Upload it through the API instead.", profile.Name)
		_, err := h.client.SendMessage(channelID, msg)
		return err
	}

	log.Printf("🎬 Slack analysis requested: %s (%s)", filename, profile.Name)
	return h.analyzeAndPost(ctx, channelID, agents.Request{Profile: profile.Name, Filename: filename})
}

func (h *CommandHandler) analyzeAndPost(ctx context.Context, channelID string, req agents.Request) error {
	analysis, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		log.Printf("❌ Failed to analyze %s: %v", req.Filename, err)
		_, sendErr := h.client.SendMessage(channelID, "❌ Failed to analyze that video. Please try again.")
		return errors.Join(err, sendErr)
	}

	if err := h.store.Create(ctx, analysis); err != nil {
		log.Printf("❌ Failed to save analysis: %v", err)
		_, sendErr := h.client.SendMessage(channelID, "❌ Failed to save the analysis. Please try again.")
		return errors.Join(err, sendErr)
	}

	messageTS, err := h.client.SendMessage(channelID, FormatSummary(analysis))
	if err != nil {
		return err
	}

	h.tracker.Remember(messageTS, analysis.ID)
	return nil
}

// HandleReport posts the full report of a stored analysis
func (h *CommandHandler) HandleReport(ctx context.Context, channelID, analysisID string) error {
	if analysisID == "" {
		_, err := h.client.SendMessage(channelID, "Please provide an analysis ID: `report <id>`")
		return err
	}

	analysis, err := h.store.GetByID(ctx, analysisID)
	if errors.Is(err, database.ErrNotFound) {
		_, sendErr := h.client.SendMessage(channelID, fmt.Sprintf("📭 No analysis found with ID `%s`", analysisID))
		return sendErr
	}
	if err != nil {
		return err
	}

	_, err = h.client.SendMessage(channelID, "```\n"+report.Format(analysis)+"```")
	return err
}

// HandleRepeat re-rolls a stored analysis with the same file and profile
func (h *CommandHandler) HandleRepeat(ctx context.Context, channelID, analysisID string) error {
	previous, err := h.store.GetByID(ctx, analysisID)
	if errors.Is(err, database.ErrNotFound) {
		_, sendErr := h.client.SendMessage(channelID, fmt.Sprintf("📭 No analysis found with ID `%s`", analysisID))
		return sendErr
	}
	if err != nil {
		return err
	}

	profile, err := agents.LookupProfile(previous.Profile)
	if err != nil {
		return err
	}
	if profile.NeedsVideo() {
		_, err := h.client.SendMessage(channelID, "❌ Transcription analyses can only be repeated by uploading the video again.")
		return err
	}

	log.Printf("🔁 Re-rolling analysis %s", analysisID)
	return h.analyzeAndPost(ctx, channelID, agents.Request{Profile: previous.Profile, Filename: previous.SourceFilename})
}

func (h *CommandHandler) HandleStats(ctx context.Context, channelID string) error {
	counts, err := h.store.CountByCategory(ctx)
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		_, err := h.client.SendMessage(channelID, "📭 No analyses yet. Try `analyze <filename>`")
		return err
	}

	labels := make([]string, 0, len(counts))
	total := 0
	for label, n := range counts {
		labels = append(labels, label)
		total += n
	}
	sort.Strings(labels)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Analysis stats* (%d total)\n", total)
	for _, label := range labels {
		fmt.Fprintf(&b, "• %s: %d\n", label, counts[label])
	}

	_, err = h.client.SendMessage(channelID, b.String())
	return err
}

func (h *CommandHandler) HandleProfiles(channelID string) error {
	var b strings.Builder
	b.WriteString("🧰 *Available profiles*\n")
	for _, p := range agents.Profiles() {
		marker := ""
		if p.Name == h.defaultProfile {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "• `%s`%s: %s\n", p.Name, marker, p.Title)
	}

	_, err := h.client.SendMessage(channelID, b.String())
	return err
}

// FormatSummary renders the short Slack summary of an analysis
func FormatSummary(a *models.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎬 *%s* for `%s`\n", a.ReportTitle, a.SourceFilename)
	fmt.Fprintf(&b, "Topic: %s | Category: *%s*\n", a.Topic, a.Category())

	scores := make([]string, 0, len(a.Metrics))
	for _, m := range a.Metrics {
		scores = append(scores, fmt.Sprintf("%s %d/100", m.Name, m.Value))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&b, "📈 %s\n", strings.Join(scores, " · "))
	}

	if a.Engagement != "" {
		fmt.Fprintf(&b, "🔮 Predicted engagement: %s\n", a.Engagement)
	}

	if len(a.Content.Hashtags) > 0 {
		fmt.Fprintf(&b, "🏷️ %s\n", strings.Join(a.Content.Hashtags, " "))
	}

	if len(a.NextSlots) > 0 {
		fmt.Fprintf(&b, "📅 Next slot: %s\n", a.NextSlots[0].Format("Mon Jan 2, 3:04 PM MST"))
	}

	fmt.Fprintf(&b, "\nID: `%s` | React with :page_facing_up: for the full report or :repeat: to re-roll", a.ID)
	return b.String()
}
