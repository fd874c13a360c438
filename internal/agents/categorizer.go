package agents

import (
	"log"
	"strings"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

// CategoryRule maps a label to the keywords that select it
type CategoryRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules is the built-in rule table. Order is the tie-break: a text
// containing both "food" and "style" is food.
var DefaultRules = []CategoryRule{
	{Label: models.CategoryFood, Keywords: []string{"food", "recipe", "cook", "meal", "kitchen", "bake", "snack", "dinner", "lunch", "breakfast"}},
	{Label: models.CategoryHealth, Keywords: []string{"fitness", "workout", "gym", "health", "diet", "wellness", "exercise"}},
	{Label: models.CategoryFashion, Keywords: []string{"fashion", "style", "outfit", "makeup", "beauty", "ootd", "dress"}},
	{Label: models.CategoryMotivation, Keywords: []string{"motivation", "success", "mindset", "goal", "inspire", "hustle"}},
	{Label: models.CategoryEducation, Keywords: []string{"learn", "study", "tutorial", "lesson", "school", "science", "history"}},
	{Label: models.CategoryComedy, Keywords: []string{"funny", "comedy", "prank", "joke", "meme", "laugh"}},
	{Label: models.CategoryEntertainment, Keywords: []string{"dance", "music", "song", "movie", "challenge", "trend", "vlog"}},
}

type CategorizerAgent struct {
	rules []CategoryRule
}

func NewCategorizerAgent(rules []CategoryRule) *CategorizerAgent {
	if len(rules) == 0 {
		rules = DefaultRules
	}

	normalized := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		label := strings.ToLower(strings.TrimSpace(rule.Label))
		if label == "" {
			log.Printf("⚠️ Skipping category rule without a label")
			continue
		}

		var keywords []string
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		normalized = append(normalized, CategoryRule{Label: label, Keywords: keywords})
	}

	return &CategorizerAgent{rules: normalized}
}

// Categorize returns the first rule with a keyword contained in text.
// With no match the category is "general" and Matched is false.
func (a *CategorizerAgent) Categorize(text string) models.Classification {
	text = strings.ToLower(text)

	for _, rule := range a.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return models.Classification{
					Category: rule.Label,
					Matched:  true,
					Keyword:  kw,
				}
			}
		}
	}

	return models.Classification{Category: models.CategoryGeneral}
}

// Without returns a categorizer that skips the given labels
func (a *CategorizerAgent) Without(labels ...string) *CategorizerAgent {
	if len(labels) == 0 {
		return a
	}

	skip := make(map[string]bool, len(labels))
	for _, l := range labels {
		skip[l] = true
	}

	var rules []CategoryRule
	for _, rule := range a.rules {
		if !skip[rule.Label] {
			rules = append(rules, rule)
		}
	}
	return &CategorizerAgent{rules: rules}
}

// Labels lists rule labels in evaluation order
func (a *CategorizerAgent) Labels() []string {
	labels := make([]string, 0, len(a.rules))
	for _, rule := range a.rules {
		labels = append(labels, rule.Label)
	}
	return labels
}
