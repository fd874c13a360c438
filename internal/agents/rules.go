package agents

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// LoadRules reads an ordered category table from a YAML file:
//
//	categories:
//	  - label: food
//	    keywords: [food, recipe]
func LoadRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules yaml: %w", err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("rules file %s has no categories", path)
	}

	for i, rule := range file.Categories {
		if rule.Label == "" {
			return nil, fmt.Errorf("rule %d has no label", i+1)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %q has no keywords", rule.Label)
		}
	}

	return file.Categories, nil
}
