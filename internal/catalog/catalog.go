// Package catalog holds the static triage knowledge base: conditions,
// questions, the category question table and the urgency policy text.
// A Catalog is read-only after construction and safe to share between
// goroutines.
package catalog

import "github.com/alexanderramin/triage/internal/domain"

// CategoryQuestions is the ordered question list asked for one category.
type CategoryQuestions struct {
	Category  domain.CategoryHint
	Questions []domain.QuestionKey
}

// UrgencyBand maps a minimum top score to an urgency level and its advice.
// Bands are evaluated in order; the first band whose MinScore is met wins.
type UrgencyBand struct {
	MinScore int
	Level    domain.UrgencyLevel
	Advice   domain.Advice
}

// FallbackResult is emitted when no condition qualifies as a candidate.
type FallbackResult struct {
	Condition       domain.Condition
	Confidence      int
	Urgency         domain.UrgencyLevel
	Recommendations []string
	Actions         []string
}

type Catalog struct {
	Conditions    []domain.Condition
	Questions     []domain.QuestionSpec
	Categories    []CategoryQuestions
	FallbackOrder []domain.QuestionKey
	LastResort    domain.QuestionKey
	Urgency       []UrgencyBand
	Fallback      FallbackResult
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Conditions:    defaultConditions(),
		Questions:     defaultQuestions(),
		Categories:    defaultCategories(),
		FallbackOrder: defaultFallbackOrder(),
		LastResort:    "travel_history",
		Urgency:       defaultUrgencyBands(),
		Fallback:      defaultFallbackResult(),
	}
}

// Question looks up a question by key.
func (c *Catalog) Question(key domain.QuestionKey) (domain.QuestionSpec, bool) {
	for _, q := range c.Questions {
		if q.Key == key {
			return q, true
		}
	}
	return domain.QuestionSpec{}, false
}

// Condition looks up a condition by ID.
func (c *Catalog) Condition(id string) (domain.Condition, bool) {
	for _, cond := range c.Conditions {
		if cond.ID == id {
			return cond, true
		}
	}
	return domain.Condition{}, false
}

// CategoryQuestions returns the ordered question keys for a category.
// Unknown categories return nil.
func (c *Catalog) CategoryQuestions(hint domain.CategoryHint) []domain.QuestionKey {
	for _, cq := range c.Categories {
		if cq.Category == hint {
			return cq.Questions
		}
	}
	return nil
}

// UrgencyFor returns the first band whose threshold the score meets.
func (c *Catalog) UrgencyFor(score int) (UrgencyBand, bool) {
	for _, b := range c.Urgency {
		if score >= b.MinScore {
			return b, true
		}
	}
	return UrgencyBand{}, false
}

// Vocabulary returns every symptom token produced by any question choice.
func (c *Catalog) Vocabulary() map[domain.SymptomToken]bool {
	vocab := make(map[domain.SymptomToken]bool)
	for _, q := range c.Questions {
		for _, toks := range q.Mappings {
			for _, t := range toks {
				vocab[t] = true
			}
		}
	}
	return vocab
}
