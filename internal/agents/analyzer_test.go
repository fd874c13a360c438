package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

type fakeTranscriber struct {
	text  string
	err   error
	paths []string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	f.paths = append(f.paths, path)
	return f.text, f.err
}

func newTestAnalyzer(transcriber Transcriber) *AnalyzerAgent {
	rng := NewRandomSource(11)
	analyzer := NewAnalyzerAgent(
		NewCategorizerAgent(nil),
		NewContentGeneratorAgent(rng),
		NewMetricsGenerator(rng),
		NewSchedulerAgent("UTC"),
		transcriber,
	)
	analyzer.now = func() time.Time { return time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC) }
	return analyzer
}

func TestAnalyzeFilenameProfile(t *testing.T) {
	analysis, err := newTestAnalyzer(nil).Analyze(context.Background(), Request{Filename: "morning_yoga_routine.mp4"})
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, analysis.Profile)
	assert.Equal(t, "morning yoga routine", analysis.Topic)
	assert.Equal(t, models.CategoryGeneral, analysis.Category())
	assert.False(t, analysis.Classification.Matched)
	assert.Len(t, analysis.Metrics, len(extendedMetrics))
	assert.Equal(t, "tiktok_analysis_report.txt", analysis.ReportFilename)
	assert.Equal(t, "TikTok Video Analysis Report", analysis.ReportTitle)

	assert.Equal(t, []string{"Friday 7 PM", "Sunday 8 PM"}, analysis.Content.PostingTimes)
	assert.Contains(t, analysis.Content.Hashtags, "#Yoga")
	assert.LessOrEqual(t, len(analysis.Content.Hashtags), MaxHashtags)
	assert.Len(t, analysis.Content.Feedback, 6)
	assert.Equal(t, "Morning Yoga Routine | the general moment you need to see 👀 #MorningYogaRoutine", analysis.Content.Caption)
	assert.NotEmpty(t, analysis.Content.Description)
	assert.NotEmpty(t, analysis.Content.Keywords)

	assert.Equal(t, []time.Time{
		time.Date(2026, 10, 16, 19, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC),
	}, analysis.NextSlots)
}

func TestAnalyzeDigitsOnlyFilename(t *testing.T) {
	analysis, err := newTestAnalyzer(nil).Analyze(context.Background(), Request{Filename: "12345.mp4"})
	require.NoError(t, err)

	assert.Equal(t, FallbackTopic, analysis.Topic)
	assert.Equal(t, models.CategoryGeneral, analysis.Category())
	assert.False(t, analysis.Classification.Matched)
	assert.Empty(t, analysis.Classification.Keyword)
	assert.NotContains(t, analysis.Content.Hashtags, "#General")
}

func TestAnalyzeClassicProfile(t *testing.T) {
	analysis, err := newTestAnalyzer(nil).Analyze(context.Background(), Request{Profile: "classic", Filename: "easy_recipe.mp4"})
	require.NoError(t, err)

	assert.Equal(t, FallbackTopic, analysis.Topic)
	assert.Equal(t, models.CategoryGeneral, analysis.Category())
	require.Len(t, analysis.Metrics, 1)
	assert.Equal(t, "Virality Score", analysis.Metrics[0].Name)

	assert.Contains(t, classicEngagement, analysis.Engagement)
	assert.Equal(t, []string{analysis.BestPostTime}, analysis.Content.PostingTimes)
	assert.Len(t, analysis.Content.Hashtags, classicSampleCount)
	assert.Equal(t, classicFeedback, analysis.Content.Feedback)
	assert.Empty(t, analysis.Content.Caption)
	assert.Len(t, analysis.NextSlots, 1)
}

func TestAnalyzeAIProfileSkipsClassification(t *testing.T) {
	analysis, err := newTestAnalyzer(nil).Analyze(context.Background(), Request{Profile: "ai", Filename: "easy_pasta_recipe.mp4"})
	require.NoError(t, err)

	assert.Equal(t, "easy pasta recipe", analysis.Topic)
	assert.Equal(t, models.CategoryGeneral, analysis.Category())
	assert.Len(t, analysis.Metrics, len(coreMetrics))
	assert.Contains(t, analysis.Content.Hashtags, "#Pasta")
	assert.Empty(t, analysis.Content.Caption)
}

func TestAnalyzeExcludedCategory(t *testing.T) {
	analyzer := newTestAnalyzer(nil)

	smart, err := analyzer.Analyze(context.Background(), Request{Profile: "smart", Filename: "dance_challenge_music.mp4"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGeneral, smart.Category())

	full, err := analyzer.Analyze(context.Background(), Request{Profile: "analysis", Filename: "dance_challenge_music.mp4"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryEntertainment, full.Category())
	assert.Equal(t, "dance", full.Classification.Keyword)
}

func TestAnalyzeTranscriptionProfile(t *testing.T) {
	transcriber := &fakeTranscriber{text: "Today we cook pasta. Pasta is easy, pasta with garlic, more garlic!"}

	analysis, err := newTestAnalyzer(transcriber).Analyze(context.Background(), Request{
		Profile:   "transcription",
		Filename:  "clip.mp4",
		VideoPath: "/tmp/upload.mp4",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/tmp/upload.mp4"}, transcriber.paths)
	assert.Equal(t, transcriber.text, analysis.Transcript)
	assert.Equal(t, "pasta garlic today cook easy more", analysis.Topic)
	assert.Equal(t, models.CategoryFood, analysis.Category())
	assert.Equal(t, "cook", analysis.Classification.Keyword)
	assert.Equal(t, "tiktok_transcription_analysis.txt", analysis.ReportFilename)
}

func TestAnalyzeTranscriptionErrors(t *testing.T) {
	_, err := newTestAnalyzer(&fakeTranscriber{}).Analyze(context.Background(), Request{Profile: "transcription", Filename: "clip.mp4"})
	assert.ErrorIs(t, err, ErrMissingVideo)

	boom := errors.New("ffmpeg not found")
	_, err = newTestAnalyzer(&fakeTranscriber{err: boom}).Analyze(context.Background(), Request{
		Profile:   "transcription",
		Filename:  "clip.mp4",
		VideoPath: "/tmp/upload.mp4",
	})
	assert.ErrorIs(t, err, boom)

	_, err = newTestAnalyzer(nil).Analyze(context.Background(), Request{
		Profile:   "transcription",
		Filename:  "clip.mp4",
		VideoPath: "/tmp/upload.mp4",
	})
	assert.ErrorIs(t, err, ErrNoTranscriber)
}

func TestAnalyzeUnknownProfile(t *testing.T) {
	_, err := newTestAnalyzer(nil).Analyze(context.Background(), Request{Profile: "v9", Filename: "clip.mp4"})
	assert.ErrorIs(t, err, ErrUnknownProfile)
}
