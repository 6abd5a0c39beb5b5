package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordRule maps trigger substrings found in a recipe description to
// product-search keywords.
type KeywordRule struct {
	Match    []string `yaml:"match"`
	Keywords []string `yaml:"keywords"`
}

// KeywordRules is the keyword-derivation rule table loaded from YAML.
// Defaults are appended to every derivation so a recipe always yields
// at least some searchable keywords.
type KeywordRules struct {
	Rules    []KeywordRule `yaml:"rules"`
	Defaults []string      `yaml:"defaults"`
}

// LoadKeywordRules reads and parses a YAML keyword rule file.
func LoadKeywordRules(path string) (*KeywordRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword rules file: %w", err)
	}

	var rules KeywordRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse keyword rules YAML: %w", err)
	}

	return &rules, nil
}

// Derive returns the product-search keywords for a recipe description.
// Rules are evaluated in file order and duplicates keep their first
// position, so identical input always produces the same keyword list.
func (r *KeywordRules) Derive(recipeText string) []string {
	seen := make(map[string]bool)
	var keywords []string

	add := func(kw string) {
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	for _, rule := range r.Rules {
		for _, m := range rule.Match {
			if m != "" && strings.Contains(recipeText, m) {
				for _, kw := range rule.Keywords {
					add(kw)
				}
				break
			}
		}
	}

	for _, kw := range r.Defaults {
		add(kw)
	}

	return keywords
}
