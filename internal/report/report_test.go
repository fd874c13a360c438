package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

func sampleAnalysis() *models.Analysis {
	a := models.NewAnalysis("analysis", "how_to_bake_bread.mp4")
	a.ReportTitle = "TikTok Video Analysis Report"
	a.CreatedAt = time.Date(2026, 10, 14, 10, 30, 15, 123456789, time.UTC)
	a.Topic = "bake bread"
	a.Classification = models.Classification{Category: models.CategoryFood, Matched: true, Keyword: "bake"}
	a.Metrics = models.MetricSet{
		{Name: "Hook Strength", Value: 81, Min: 50, Max: 100},
		{Name: "Overall Virality Score", Value: 92, Min: 65, Max: 100},
	}
	a.Content = models.ContentBundle{
		Hashtags:     []string{"#FYP", "#FoodTok", "#Bake"},
		PostingTimes: []string{"Sunday 11 AM", "Wednesday 6 PM"},
		Caption:      "Bake Bread | the food moment you need to see 👀 #BakeBread",
		Description:  "In this video: bake bread.",
		Keywords:     "bake, bread, food, tiktok",
		Feedback:     []string{"🎯 Strong start! Keep the first 2 seconds energetic.", "💬 Ask a question in the caption to spark comments."},
	}
	return a
}

func TestFormat(t *testing.T) {
	text := Format(sampleAnalysis())

	assert.True(t, strings.HasPrefix(text, "TikTok Video Analysis Report\nGenerated: 2026-10-14T10:30:15Z\n"))
	assert.Contains(t, text, "\n== Topic ==\nbake bread\n")
	assert.Contains(t, text, "\n== Metrics ==\nHook Strength: 81/100\nOverall Virality Score: 92/100\n")
	assert.Contains(t, text, "\n== Best Posting Times ==\n- Sunday 11 AM\n- Wednesday 6 PM\n")
	assert.NotContains(t, text, "== Predictions ==")
	assert.NotContains(t, text, "== Transcript ==")
}

func TestFormatClassicPredictions(t *testing.T) {
	a := sampleAnalysis()
	a.Engagement = "High"
	a.BestPostTime = "Friday 7 PM"
	a.Content.Caption = ""
	a.Content.Description = ""
	a.Content.Keywords = ""

	text := Format(a)
	assert.Contains(t, text, "\n== Predictions ==\nPredicted Engagement: High\nBest Time to Post: Friday 7 PM\n")
	assert.NotContains(t, text, "== Caption ==")
	assert.NotContains(t, text, "== Keywords ==")
}

func TestFormatDefaultTitle(t *testing.T) {
	a := sampleAnalysis()
	a.ReportTitle = ""
	assert.True(t, strings.HasPrefix(Format(a), "TikTok Video Analysis Report\n"))
}

func TestParseRoundTrip(t *testing.T) {
	a := sampleAnalysis()
	a.Transcript = "today we bake bread"
	a.Engagement = "Moderate"
	a.BestPostTime = "Sunday 8 PM"

	r, err := Parse(Format(a))
	require.NoError(t, err)

	assert.Equal(t, a.ReportTitle, r.Title)
	assert.True(t, r.GeneratedAt.Equal(a.CreatedAt.Truncate(time.Second)))
	assert.Equal(t, a.Topic, r.Topic)
	assert.Equal(t, a.Category(), r.Category)
	assert.Equal(t, a.Metrics.Names(), r.Metrics.Names())
	for _, m := range a.Metrics {
		v, ok := r.Metrics.Value(m.Name)
		require.True(t, ok, m.Name)
		assert.Equal(t, m.Value, v)
	}
	assert.Equal(t, a.Engagement, r.Engagement)
	assert.Equal(t, a.BestPostTime, r.BestPostTime)
	assert.Equal(t, a.Content.Hashtags, r.Hashtags)
	assert.Equal(t, a.Content.PostingTimes, r.PostingTimes)
	assert.Equal(t, a.Content.Caption, r.Caption)
	assert.Equal(t, a.Content.Description, r.Description)
	assert.Equal(t, a.Content.Keywords, r.Keywords)
	assert.Equal(t, a.Content.Feedback, r.Feedback)
	assert.Equal(t, a.Transcript, r.Transcript)
}

func TestParseTranscriptWithHeaderLikeLines(t *testing.T) {
	a := sampleAnalysis()
	a.Transcript = "okay so the next part\n== Category ==\ncomedy\n\n== Metrics ==\nHook Strength: 1/100"

	r, err := Parse(Format(a))
	require.NoError(t, err)

	assert.Equal(t, models.CategoryFood, r.Category)
	assert.Equal(t, a.Topic, r.Topic)
	assert.Equal(t, a.Metrics.Names(), r.Metrics.Names())
	v, ok := r.Metrics.Value("Hook Strength")
	require.True(t, ok)
	assert.Equal(t, 81, v)
	assert.Equal(t, a.Transcript, r.Transcript)
}

func TestParseKeepsFirstSectionOccurrence(t *testing.T) {
	text := "title\nGenerated: 2026-10-14T10:30:15Z\n\n== Topic ==\nbread\n\n== Category ==\nfood\n\n== Category ==\ncomedy\n"

	r, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "food", r.Category)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", "title"},
		{"missing generated", "title\nsomething\n"},
		{"bad timestamp", "title\nGenerated: yesterday\n"},
		{"missing topic", "title\nGenerated: 2026-10-14T10:30:15Z\n\n== Category ==\nfood\n"},
		{"missing category", "title\nGenerated: 2026-10-14T10:30:15Z\n\n== Topic ==\nbread\n"},
		{"bad metric", "title\nGenerated: 2026-10-14T10:30:15Z\n\n== Topic ==\nbread\n\n== Category ==\nfood\n\n== Metrics ==\nHook: high/100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.Error(t, err)
		})
	}
}
