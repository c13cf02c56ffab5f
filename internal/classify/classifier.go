package classify

import (
	"strings"

	"github.com/triage-kit/support-engine/internal/domain"
)

// Category flags a message can carry. Categories are independent: one message
// may match several.
type Category string

const (
	CategoryProblem Category = "problem"
	CategoryUrgency Category = "urgency"
	CategoryHelp    Category = "help"
)

// Classifier maps free text to a priority label and category flags.
type Classifier interface {
	ClassifyPriority(text string) domain.TicketPriority
	ClassifyCategories(text string) map[Category]bool
}

// PriorityRule binds a keyword to the priority it implies. Rules are ordered;
// the first matching rule wins.
type PriorityRule struct {
	Keyword  string
	Priority domain.TicketPriority
}

// Catalog is the immutable rule set a KeywordClassifier runs on. Loaded once
// at startup and never mutated afterwards.
type Catalog struct {
	PriorityRules    []PriorityRule
	CategoryKeywords map[Category][]string
}

// DefaultCatalog returns the built-in Portuguese rule set.
func DefaultCatalog() Catalog {
	return Catalog{
		PriorityRules: []PriorityRule{
			{Keyword: "crítico", Priority: domain.PriorityCritical},
			{Keyword: "urgente", Priority: domain.PriorityCritical},
			{Keyword: "emergência", Priority: domain.PriorityCritical},
			{Keyword: "alto", Priority: domain.PriorityHigh},
			{Keyword: "importante", Priority: domain.PriorityHigh},
			{Keyword: "médio", Priority: domain.PriorityMedium},
			{Keyword: "normal", Priority: domain.PriorityMedium},
			{Keyword: "baixo", Priority: domain.PriorityLow},
			{Keyword: "rotina", Priority: domain.PriorityLow},
		},
		CategoryKeywords: map[Category][]string{
			CategoryProblem: {"erro", "bug", "falha", "problema", "não funciona"},
			CategoryUrgency: {"urgente", "crítico", "emergência", "imediato"},
			CategoryHelp:    {"ajuda", "suporte", "auxílio", "como"},
		},
	}
}

// KeywordClassifier classifies by substring membership against a fixed
// catalog. It is stateless and safe for concurrent use.
type KeywordClassifier struct {
	catalog Catalog
}

// NewKeywordClassifier builds a classifier over the given catalog.
func NewKeywordClassifier(catalog Catalog) *KeywordClassifier {
	return &KeywordClassifier{catalog: catalog}
}

// ClassifyPriority returns the priority of the first rule whose keyword
// occurs in the text, defaulting to Low. Total: every input yields a priority.
func (c *KeywordClassifier) ClassifyPriority(text string) domain.TicketPriority {
	lower := strings.ToLower(text)
	for _, rule := range c.catalog.PriorityRules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Priority
		}
	}
	return domain.PriorityLow
}

// ClassifyCategories runs an independent membership test per category.
func (c *KeywordClassifier) ClassifyCategories(text string) map[Category]bool {
	lower := strings.ToLower(text)
	flags := make(map[Category]bool, len(c.catalog.CategoryKeywords))
	for category, keywords := range c.catalog.CategoryKeywords {
		matched := false
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matched = true
				break
			}
		}
		flags[category] = matched
	}
	return flags
}
