package agents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeRules(t, `
categories:
  - label: pets
    keywords: [puppy, kitten]
  - label: food
    keywords: [recipe]
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []CategoryRule{
		{Label: "pets", Keywords: []string{"puppy", "kitten"}},
		{Label: "food", Keywords: []string{"recipe"}},
	}, rules)

	got := NewCategorizerAgent(rules).Categorize("puppy recipe")
	assert.Equal(t, "pets", got.Category)
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no categories", "categories: []\n"},
		{"missing label", "categories:\n  - keywords: [a]\n"},
		{"missing keywords", "categories:\n  - label: pets\n"},
		{"bad yaml", "categories: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules(writeRules(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
