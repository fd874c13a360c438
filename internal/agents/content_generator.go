package agents

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

const (
	MaxHashtags        = 10
	MaxKeywords        = 12
	maxCategoryTags    = 5
	maxTopicTags       = 4
	classicSampleCount = 5
)

type ContentGeneratorAgent struct {
	rng RandomSource
}

func NewContentGeneratorAgent(rng RandomSource) *ContentGeneratorAgent {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return &ContentGeneratorAgent{rng: rng}
}

// Hashtags assembles base, category and topic tags
func (a *ContentGeneratorAgent) Hashtags(category string, tokens []string) []string {
	tags, ok := categoryHashtags[category]
	if !ok {
		tags = categoryHashtags[models.CategoryGeneral]
	}
	if len(tags) > maxCategoryTags {
		tags = tags[:maxCategoryTags]
	}

	all := append([]string(nil), baseHashtags...)
	all = append(all, tags...)
	all = append(all, topicHashtags(tokens)...)

	return dedupe(all, MaxHashtags)
}

// SampledHashtags draws from the classic pool and appends topic tags
func (a *ContentGeneratorAgent) SampledHashtags(tokens []string) []string {
	all := sample(a.rng, classicHashtagPool, classicSampleCount)
	all = append(all, topicHashtags(tokens)...)
	return dedupe(all, MaxHashtags)
}

// PostingTimes returns the fixed windows for a category
func (a *ContentGeneratorAgent) PostingTimes(category string) []string {
	times, ok := postingTimes[category]
	if !ok {
		times = postingTimes[models.CategoryGeneral]
	}
	return append([]string(nil), times...)
}

func (a *ContentGeneratorAgent) Caption(topic, category string) string {
	title := cases.Title(language.English).String(topic)
	return fmt.Sprintf("%s | the %s moment you need to see 👀 #%s", title, category, strings.ReplaceAll(title, " ", ""))
}

func (a *ContentGeneratorAgent) Description(topic, category string) string {
	return fmt.Sprintf("In this video: %s. If you love %s content, follow for more and tell us in the comments what you want to see next!", topic, category)
}

// Keywords joins topic tokens, category and SEO filler into one string
func (a *ContentGeneratorAgent) Keywords(tokens []string, category string) string {
	all := append([]string(nil), tokens...)
	all = append(all, category)
	all = append(all, seoFiller...)
	return strings.Join(dedupe(all, MaxKeywords), ", ")
}

// Feedback shuffles the tip pool and keeps limit entries
func (a *ContentGeneratorAgent) Feedback(category string, limit int) []string {
	pool := append([]string(nil), feedbackPool...)
	if tip, ok := categoryTips[category]; ok {
		pool = append(pool, tip)
	}

	tips := shuffled(a.rng, pool)
	if limit > 0 && len(tips) > limit {
		tips = tips[:limit]
	}
	return tips
}

// ClassicFeedback returns the fixed tip list in order
func (a *ContentGeneratorAgent) ClassicFeedback() []string {
	return append([]string(nil), classicFeedback...)
}

// ClassicLabels picks the engagement label and best posting time
func (a *ContentGeneratorAgent) ClassicLabels() (engagement, bestTime string) {
	return choice(a.rng, classicEngagement), choice(a.rng, classicPostTimes)
}

func topicHashtags(tokens []string) []string {
	caser := cases.Title(language.English)

	var tags []string
	for _, token := range tokens {
		if len(tags) == maxTopicTags {
			break
		}
		tags = append(tags, "#"+caser.String(token))
	}
	return tags
}

// dedupe drops case-insensitive repeats, keeping first-seen order, and caps at limit
func dedupe(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, limit)

	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
