package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		limit    int
		want     string
	}{
		{"snake case", "morning_yoga_routine.mp4", 6, "morning yoga routine"},
		{"digits only", "12345.mp4", 6, FallbackTopic},
		{"short words dropped", "my_cat_is_so_cute.mov", 6, "cute"},
		{"limit applies", "how_to_bake_sourdough_bread_at_home_fast_easy.mp4", 5, "bake sourdough bread home fast"},
		{"mixed case and separators", "Best-OUTFIT ideas 2024.MP4", 6, "best outfit ideas"},
		{"empty", "", 6, FallbackTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTopic(tt.filename, tt.limit))
		})
	}
}

func TestExtractTranscriptTopic(t *testing.T) {
	transcript := "Today we cook pasta. Pasta is easy, pasta with garlic, more garlic!"
	assert.Equal(t, "pasta garlic today cook", ExtractTranscriptTopic(transcript, 4))
	assert.Equal(t, "pasta garlic", ExtractTranscriptTopic(transcript, 2))
}

func TestExtractTranscriptTopicTiesKeepFirstSeenOrder(t *testing.T) {
	assert.Equal(t, "zebra apple mango", ExtractTranscriptTopic("zebra apple mango", 6))
}

func TestExtractTranscriptTopicStopWordsOnly(t *testing.T) {
	assert.Equal(t, FallbackTopic, ExtractTranscriptTopic("this is what they have, you know", 6))
	assert.Equal(t, FallbackTopic, ExtractTranscriptTopic("", 6))
}

func TestTopicTokens(t *testing.T) {
	assert.Nil(t, TopicTokens(FallbackTopic))
	assert.Equal(t, []string{"morning", "yoga"}, TopicTokens("morning yoga"))
}
