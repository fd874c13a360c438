package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupProfile(t *testing.T) {
	p, err := LookupProfile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, p.Name)

	p, err = LookupProfile(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, "classic", p.Name)
	assert.Equal(t, "tiktok_virality_report.txt", p.ReportFilename)

	_, err = LookupProfile("v7")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProfiles(t *testing.T) {
	assert.Equal(t, []string{"classic", "ai", "smart", "insights", "analysis", "transcription"}, ProfileNames())

	filenames := map[string]string{
		"classic":       "tiktok_virality_report.txt",
		"ai":            "tiktok_ai_report.txt",
		"smart":         "tiktok_smart_report.txt",
		"insights":      "tiktok_smart_report.txt",
		"analysis":      "tiktok_analysis_report.txt",
		"transcription": "tiktok_transcription_analysis.txt",
	}
	metricCounts := map[string]int{"classic": 1, "ai": 6, "smart": 6, "insights": 8, "analysis": 8, "transcription": 8}

	for _, p := range Profiles() {
		assert.Equal(t, filenames[p.Name], p.ReportFilename, p.Name)
		assert.Len(t, p.Metrics, metricCounts[p.Name], p.Name)
		assert.Equal(t, p.Name == "transcription", p.NeedsVideo(), p.Name)
	}
}

func TestProfilesReturnsCopy(t *testing.T) {
	list := Profiles()
	list[0].Name = "changed"
	assert.Equal(t, "classic", Profiles()[0].Name)
}
