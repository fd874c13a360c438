// Package report renders an analysis as the downloadable plain-text report
// and reads such a report back.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

// Section headers, in output order
const (
	SectionTopic        = "Topic"
	SectionCategory     = "Category"
	SectionMetrics      = "Metrics"
	SectionPredictions  = "Predictions"
	SectionHashtags     = "Hashtags"
	SectionPostingTimes = "Best Posting Times"
	SectionCaption      = "Caption"
	SectionDescription  = "Description"
	SectionKeywords     = "Keywords"
	SectionFeedback     = "Feedback"
	SectionTranscript   = "Transcript"
)

const (
	generatedPrefix  = "Generated: "
	engagementLabel  = "Predicted Engagement"
	bestTimeLabel    = "Best Time to Post"
	defaultTitle     = "TikTok Video Analysis Report"
	timestampLayout  = time.RFC3339
	listItemPrefix   = "- "
	metricValueScale = "/100"
)

// Format renders the report. All fields of a are assumed present.
func Format(a *models.Analysis) string {
	var builder strings.Builder

	title := a.ReportTitle
	if title == "" {
		title = defaultTitle
	}
	builder.WriteString(title + "\n")
	builder.WriteString(generatedPrefix + a.CreatedAt.Format(timestampLayout) + "\n")

	writeSection(&builder, SectionTopic, a.Topic)
	writeSection(&builder, SectionCategory, a.Category())

	var metrics strings.Builder
	for _, m := range a.Metrics {
		metrics.WriteString(fmt.Sprintf("%s: %d%s\n", m.Name, m.Value, metricValueScale))
	}
	writeSection(&builder, SectionMetrics, metrics.String())

	if a.Engagement != "" || a.BestPostTime != "" {
		writeSection(&builder, SectionPredictions, fmt.Sprintf("%s: %s\n%s: %s",
			engagementLabel, a.Engagement, bestTimeLabel, a.BestPostTime))
	}

	writeSection(&builder, SectionHashtags, strings.Join(a.Content.Hashtags, " "))
	writeSection(&builder, SectionPostingTimes, list(a.Content.PostingTimes))

	if a.Content.Caption != "" {
		writeSection(&builder, SectionCaption, a.Content.Caption)
	}
	if a.Content.Description != "" {
		writeSection(&builder, SectionDescription, a.Content.Description)
	}
	if a.Content.Keywords != "" {
		writeSection(&builder, SectionKeywords, a.Content.Keywords)
	}

	writeSection(&builder, SectionFeedback, list(a.Content.Feedback))

	if a.Transcript != "" {
		writeSection(&builder, SectionTranscript, a.Transcript)
	}

	return builder.String()
}

func writeSection(builder *strings.Builder, name, body string) {
	builder.WriteString("\n== " + name + " ==\n")
	body = strings.TrimRight(body, "\n")
	if body != "" {
		builder.WriteString(body + "\n")
	}
}

func list(items []string) string {
	var builder strings.Builder
	for _, item := range items {
		builder.WriteString(listItemPrefix + item + "\n")
	}
	return builder.String()
}

// Report is a report read back by section header
type Report struct {
	Title        string
	GeneratedAt  time.Time
	Topic        string
	Category     string
	Metrics      models.MetricSet
	Engagement   string
	BestPostTime string
	Hashtags     []string
	PostingTimes []string
	Caption      string
	Description  string
	Keywords     string
	Feedback     []string
	Transcript   string
}

// Parse reads a report produced by Format
func Parse(text string) (*Report, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("report too short")
	}

	r := &Report{Title: strings.TrimSpace(lines[0])}

	if !strings.HasPrefix(lines[1], generatedPrefix) {
		return nil, fmt.Errorf("missing %q line", strings.TrimSpace(generatedPrefix))
	}
	generated, err := time.Parse(timestampLayout, strings.TrimSpace(strings.TrimPrefix(lines[1], generatedPrefix)))
	if err != nil {
		return nil, fmt.Errorf("invalid generation timestamp: %w", err)
	}
	r.GeneratedAt = generated

	sections := splitSections(lines[2:])

	topic, ok := sections[SectionTopic]
	if !ok {
		return nil, fmt.Errorf("missing %s section", SectionTopic)
	}
	r.Topic = topic

	category, ok := sections[SectionCategory]
	if !ok {
		return nil, fmt.Errorf("missing %s section", SectionCategory)
	}
	r.Category = category

	for _, line := range nonEmptyLines(sections[SectionMetrics]) {
		idx := strings.LastIndex(line, ": ")
		if idx == -1 {
			return nil, fmt.Errorf("invalid metric line %q", line)
		}
		value, err := strconv.Atoi(strings.TrimSuffix(line[idx+2:], metricValueScale))
		if err != nil {
			return nil, fmt.Errorf("invalid metric value in %q: %w", line, err)
		}
		r.Metrics = append(r.Metrics, models.Metric{Name: line[:idx], Value: value})
	}

	for _, line := range nonEmptyLines(sections[SectionPredictions]) {
		key, value, _ := strings.Cut(line, ": ")
		switch key {
		case engagementLabel:
			r.Engagement = value
		case bestTimeLabel:
			r.BestPostTime = value
		}
	}

	r.Hashtags = strings.Fields(sections[SectionHashtags])
	r.PostingTimes = listItems(sections[SectionPostingTimes])
	r.Caption = sections[SectionCaption]
	r.Description = sections[SectionDescription]
	r.Keywords = sections[SectionKeywords]
	r.Feedback = listItems(sections[SectionFeedback])
	r.Transcript = sections[SectionTranscript]

	return r, nil
}

func splitSections(lines []string) map[string]string {
	sections := make(map[string]string)

	current := ""
	var body []string
	flush := func() {
		if _, seen := sections[current]; current != "" && !seen {
			sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
		}
	}

	for _, line := range lines {
		// the transcript is written last and is free text, so it runs to the end
		if current == SectionTranscript {
			body = append(body, line)
			continue
		}
		if name, ok := sectionHeader(line); ok {
			flush()
			current = name
			body = nil
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

func sectionHeader(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " ==") && len(line) > 6 {
		return strings.TrimSpace(line[3 : len(line)-3]), true
	}
	return "", false
}

func nonEmptyLines(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func listItems(body string) []string {
	var items []string
	for _, line := range nonEmptyLines(body) {
		items = append(items, strings.TrimPrefix(line, listItemPrefix))
	}
	return items
}
