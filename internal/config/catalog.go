package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/triage-kit/support-engine/internal/autoresponse"
	"github.com/triage-kit/support-engine/internal/classify"
	"github.com/triage-kit/support-engine/internal/domain"
)

// CatalogFile is the on-disk override format for the classifier keyword
// tables and the canned-response lists. Priority rules stay ordered; the
// first matching rule wins, so file order matters.
type CatalogFile struct {
	PriorityRules []struct {
		Keyword  string `json:"keyword"`
		Priority string `json:"priority"`
	} `json:"priority_rules"`
	Categories map[string][]string `json:"categories"`
	Responses  map[string][]string `json:"responses"`
}

// LoadCatalogs returns the classifier catalog and response lists, applying
// the override file when configured. Absent sections fall back to defaults.
func LoadCatalogs(cfg CatalogConfig) (classify.Catalog, map[autoresponse.Kind][]string, error) {
	catalog := classify.DefaultCatalog()
	responses := autoresponse.DefaultResponses()
	if cfg.File == "" {
		return catalog, responses, nil
	}

	raw, err := os.ReadFile(cfg.File)
	if err != nil {
		return catalog, responses, fmt.Errorf("read catalog file: %w", err)
	}
	var file CatalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return catalog, responses, fmt.Errorf("parse catalog file: %w", err)
	}

	if len(file.PriorityRules) > 0 {
		rules := make([]classify.PriorityRule, 0, len(file.PriorityRules))
		for _, rule := range file.PriorityRules {
			priority, ok := domain.ParsePriority(rule.Priority)
			if !ok {
				return catalog, responses, fmt.Errorf("unknown priority %q in catalog file", rule.Priority)
			}
			rules = append(rules, classify.PriorityRule{Keyword: rule.Keyword, Priority: priority})
		}
		catalog.PriorityRules = rules
	}
	if len(file.Categories) > 0 {
		keywords := make(map[classify.Category][]string, len(file.Categories))
		for category, words := range file.Categories {
			keywords[classify.Category(category)] = words
		}
		catalog.CategoryKeywords = keywords
	}
	if len(file.Responses) > 0 {
		pools := make(map[autoresponse.Kind][]string, len(file.Responses))
		for kind, pool := range file.Responses {
			pools[autoresponse.Kind(kind)] = pool
		}
		responses = pools
	}
	return catalog, responses, nil
}
