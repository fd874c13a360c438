package agents

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

var (
	ErrMissingVideo  = errors.New("profile requires the video file")
	ErrNoTranscriber = errors.New("no transcriber configured")
)

// Request is the input of one analysis
type Request struct {
	Profile   string
	Filename  string
	VideoPath string
}

// AnalyzerAgent chains topic extraction, classification and generation
type AnalyzerAgent struct {
	categorizer *CategorizerAgent
	content     *ContentGeneratorAgent
	metrics     *MetricsGenerator
	scheduler   *SchedulerAgent
	transcriber Transcriber
	now         func() time.Time
}

func NewAnalyzerAgent(
	categorizer *CategorizerAgent,
	content *ContentGeneratorAgent,
	metrics *MetricsGenerator,
	scheduler *SchedulerAgent,
	transcriber Transcriber,
) *AnalyzerAgent {
	return &AnalyzerAgent{
		categorizer: categorizer,
		content:     content,
		metrics:     metrics,
		scheduler:   scheduler,
		transcriber: transcriber,
		now:         time.Now,
	}
}

func (a *AnalyzerAgent) Analyze(ctx context.Context, req Request) (*models.Analysis, error) {
	profile, err := LookupProfile(req.Profile)
	if err != nil {
		return nil, err
	}

	analysis := models.NewAnalysis(profile.Name, req.Filename)
	analysis.CreatedAt = a.now()
	analysis.ReportTitle = profile.Title
	analysis.ReportFilename = profile.ReportFilename

	classifyInput := ""
	switch profile.TopicSource {
	case TopicFilename:
		analysis.Topic = ExtractTopic(req.Filename, profile.TopicTokens)
		classifyInput = analysis.Topic
	case TopicTranscript:
		if req.VideoPath == "" {
			return nil, ErrMissingVideo
		}
		if a.transcriber == nil {
			return nil, ErrNoTranscriber
		}
		transcript, err := a.transcriber.Transcribe(ctx, req.VideoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to transcribe video: %w", err)
		}
		analysis.Transcript = transcript
		analysis.Topic = ExtractTranscriptTopic(transcript, profile.TopicTokens)
		classifyInput = transcript
	}

	if profile.Classify {
		analysis.Classification = a.categorizer.Without(profile.Excluded...).Categorize(classifyInput)
	}

	category := analysis.Category()
	tokens := TopicTokens(analysis.Topic)

	analysis.Metrics = a.metrics.Generate(profile.Metrics)

	bundle := models.ContentBundle{}
	switch {
	case profile.TopicSource == TopicNone:
		analysis.Engagement, analysis.BestPostTime = a.content.ClassicLabels()
		bundle.Hashtags = a.content.SampledHashtags(nil)
		bundle.PostingTimes = []string{analysis.BestPostTime}
		bundle.Feedback = a.content.ClassicFeedback()
	case !profile.Classify:
		bundle.Hashtags = a.content.SampledHashtags(tokens)
		bundle.PostingTimes = a.content.PostingTimes(category)
		bundle.Feedback = a.content.Feedback(category, profile.FeedbackLimit)
	default:
		bundle.Hashtags = a.content.Hashtags(category, tokens)
		bundle.PostingTimes = a.content.PostingTimes(category)
		bundle.Feedback = a.content.Feedback(category, profile.FeedbackLimit)
	}

	if profile.Captions {
		bundle.Caption = a.content.Caption(analysis.Topic, category)
		bundle.Description = a.content.Description(analysis.Topic, category)
		bundle.Keywords = a.content.Keywords(tokens, category)
	}
	analysis.Content = bundle

	if a.scheduler != nil {
		analysis.NextSlots = a.scheduler.NextSlots(bundle.PostingTimes, analysis.CreatedAt)
	}

	log.Printf("🎬 Analyzed %q with profile %s: topic=%q category=%s", req.Filename, profile.Name, analysis.Topic, category)

	return analysis, nil
}
