package agents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

var ErrUnknownProfile = errors.New("unknown profile")

type TopicSource int

const (
	TopicNone TopicSource = iota
	TopicFilename
	TopicTranscript
)

// Profile describes one iteration of the analyzer: which pieces are
// generated, with which tables, and under which report filename.
type Profile struct {
	Name           string
	Title          string
	TopicSource    TopicSource
	TopicTokens    int
	Classify       bool
	Captions       bool
	Excluded       []string
	Metrics        []MetricSpec
	FeedbackLimit  int
	ReportFilename string
}

// NeedsVideo reports whether the profile reads the uploaded bytes
func (p Profile) NeedsVideo() bool {
	return p.TopicSource == TopicTranscript
}

const DefaultProfile = "analysis"

var profiles = []Profile{
	{
		Name:           "classic",
		Title:          "TikTok Video Virality Report",
		TopicSource:    TopicNone,
		Metrics:        classicMetrics,
		FeedbackLimit:  len(classicFeedback),
		ReportFilename: "tiktok_virality_report.txt",
	},
	{
		Name:           "ai",
		Title:          "TikTok AI Insights Report",
		TopicSource:    TopicFilename,
		TopicTokens:    5,
		Metrics:        coreMetrics,
		FeedbackLimit:  5,
		ReportFilename: "tiktok_ai_report.txt",
	},
	{
		Name:           "smart",
		Title:          "TikTok Smart Analysis Report",
		TopicSource:    TopicFilename,
		TopicTokens:    5,
		Classify:       true,
		Excluded:       []string{models.CategoryEntertainment},
		Metrics:        coreMetrics,
		FeedbackLimit:  5,
		ReportFilename: "tiktok_smart_report.txt",
	},
	{
		Name:           "insights",
		Title:          "TikTok Smart Content Report",
		TopicSource:    TopicFilename,
		TopicTokens:    6,
		Classify:       true,
		Captions:       true,
		Excluded:       []string{models.CategoryEntertainment},
		Metrics:        extendedMetrics,
		FeedbackLimit:  6,
		ReportFilename: "tiktok_smart_report.txt",
	},
	{
		Name:           "analysis",
		Title:          "TikTok Video Analysis Report",
		TopicSource:    TopicFilename,
		TopicTokens:    6,
		Classify:       true,
		Captions:       true,
		Metrics:        extendedMetrics,
		FeedbackLimit:  6,
		ReportFilename: "tiktok_analysis_report.txt",
	},
	{
		Name:           "transcription",
		Title:          "TikTok Transcription Analysis Report",
		TopicSource:    TopicTranscript,
		TopicTokens:    6,
		Classify:       true,
		Captions:       true,
		Metrics:        extendedMetrics,
		FeedbackLimit:  6,
		ReportFilename: "tiktok_transcription_analysis.txt",
	},
}

// LookupProfile finds a profile by name; empty selects DefaultProfile
func LookupProfile(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultProfile
	}

	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
}

// Profiles returns all profiles in iteration order
func Profiles() []Profile {
	return append([]Profile(nil), profiles...)
}

// ProfileNames returns profile names in iteration order
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}
