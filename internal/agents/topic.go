package agents

import (
	"regexp"
	"sort"
	"strings"
)

// FallbackTopic is returned when a source has no qualifying tokens
const FallbackTopic = "general"

var wordPattern = regexp.MustCompile(`[a-z]+`)

var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"they": true, "what": true, "your": true, "just": true, "like": true,
	"about": true, "there": true, "their": true, "will": true, "would": true,
	"been": true, "were": true, "when": true, "which": true, "into": true,
	"then": true, "them": true, "these": true, "some": true, "very": true,
	"really": true, "because": true, "going": true, "know": true, "here": true,
}

// tokenize returns lowercase alphabetic runs longer than 3 characters
func tokenize(source string) []string {
	var tokens []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(source), -1) {
		if len(word) > 3 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// ExtractTopic builds a topic from the first limit tokens of a filename
func ExtractTopic(filename string, limit int) string {
	tokens := tokenize(filename)
	if len(tokens) == 0 {
		return FallbackTopic
	}
	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return strings.Join(tokens, " ")
}

// ExtractTranscriptTopic ranks non stop-word tokens by frequency and keeps
// the top limit. Equal counts keep first-seen order.
func ExtractTranscriptTopic(transcript string, limit int) string {
	counts := make(map[string]int)
	var order []string
	for _, token := range tokenize(transcript) {
		if stopWords[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	if len(order) == 0 {
		return FallbackTopic
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return strings.Join(order, " ")
}

// TopicTokens splits a topic back into tokens; the fallback topic has none
func TopicTokens(topic string) []string {
	if topic == FallbackTopic {
		return nil
	}
	return strings.Fields(topic)
}
