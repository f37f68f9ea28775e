package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/triage/internal/domain"
)

var validUrgencyLevels = map[domain.UrgencyLevel]bool{
	domain.UrgencyEmergency: true,
	domain.UrgencyUrgent:    true,
	domain.UrgencyRoutine:   true,
}

const (
	minCategoryQuestions = 3
	maxCategoryQuestions = 6
)

// Validate checks the catalog for internal consistency. It returns every
// problem found rather than stopping at the first one.
func Validate(c *Catalog) []error {
	var errs []error

	questionKeys := make(map[domain.QuestionKey]bool)
	errs = append(errs, validateQuestions(c.Questions, questionKeys)...)

	vocab := c.Vocabulary()
	referenced := make(map[domain.SymptomToken]bool)
	errs = append(errs, validateConditions(c.Conditions, questionKeys, vocab, referenced)...)

	for _, t := range sortedTokens(vocab) {
		if !referenced[t] {
			errs = append(errs, fmt.Errorf("token %q is produced by a question but no condition uses it", t))
		}
		if questionKeys[domain.QuestionKey(t)] {
			errs = append(errs, fmt.Errorf("token %q collides with a question key", t))
		}
	}

	errs = append(errs, validateCategories(c.Categories, questionKeys)...)

	for i, k := range c.FallbackOrder {
		if !questionKeys[k] {
			errs = append(errs, fmt.Errorf("fallback_order[%d]: unknown question %q", i, k))
		}
	}
	if c.LastResort != "" && !questionKeys[c.LastResort] {
		errs = append(errs, fmt.Errorf("last_resort: unknown question %q", c.LastResort))
	}

	errs = append(errs, validateUrgency(c.Urgency)...)

	if c.Fallback.Condition.Name == "" {
		errs = append(errs, fmt.Errorf("fallback.condition.name is required"))
	}
	if !validUrgencyLevels[c.Fallback.Urgency] {
		errs = append(errs, fmt.Errorf("fallback.urgency: invalid level %q", c.Fallback.Urgency))
	}
	if c.Fallback.Confidence < 0 || c.Fallback.Confidence > 100 {
		errs = append(errs, fmt.Errorf("fallback.confidence %d out of range 0-100", c.Fallback.Confidence))
	}

	return errs
}

// MustValidate panics if the catalog is inconsistent.
func MustValidate(c *Catalog) *Catalog {
	if errs := Validate(c); len(errs) > 0 {
		panic(fmt.Sprintf("invalid triage catalog: %v", errors.Join(errs...)))
	}
	return c
}

func validateQuestions(questions []domain.QuestionSpec, seen map[domain.QuestionKey]bool) []error {
	var errs []error
	for i, q := range questions {
		label := fmt.Sprintf("questions[%d]", i)
		if q.Key == "" {
			errs = append(errs, fmt.Errorf("%s.key is required", label))
			continue
		}
		label = fmt.Sprintf("question %q", q.Key)
		if seen[q.Key] {
			errs = append(errs, fmt.Errorf("%s: duplicate key", label))
		}
		seen[q.Key] = true

		if q.Prompt == "" {
			errs = append(errs, fmt.Errorf("%s: prompt is required", label))
		}
		if len(q.Choices) < 2 {
			errs = append(errs, fmt.Errorf("%s: needs at least 2 choices, has %d", label, len(q.Choices)))
		}
		choices := make(map[string]bool, len(q.Choices))
		for _, ch := range q.Choices {
			if choices[ch] {
				errs = append(errs, fmt.Errorf("%s: duplicate choice %q", label, ch))
			}
			choices[ch] = true
		}
		mapped := make([]string, 0, len(q.Mappings))
		for ch := range q.Mappings {
			mapped = append(mapped, ch)
		}
		sort.Strings(mapped)
		for _, ch := range mapped {
			if !choices[ch] {
				errs = append(errs, fmt.Errorf("%s: mapping for unknown choice %q", label, ch))
			}
		}
	}
	return errs
}

func validateConditions(conditions []domain.Condition, questionKeys map[domain.QuestionKey]bool, vocab, referenced map[domain.SymptomToken]bool) []error {
	var errs []error
	ids := make(map[string]bool, len(conditions))
	for i, c := range conditions {
		label := fmt.Sprintf("conditions[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", label))
		} else {
			label = fmt.Sprintf("condition %q", c.ID)
			if ids[c.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", label))
			}
			ids[c.ID] = true
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", label))
		}
		if len(c.Symptoms.Primary) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one primary symptom is required", label))
		}
		for _, t := range c.Tokens() {
			referenced[t] = true
			if !vocab[t] {
				errs = append(errs, fmt.Errorf("%s: token %q is never produced by any question", label, t))
			}
		}
		for _, k := range c.Questions {
			if !questionKeys[k] {
				errs = append(errs, fmt.Errorf("%s: unknown question %q", label, k))
			}
		}
		if c.Advice != nil && (c.Advice.Recommendation == "" || c.Advice.Action == "") {
			errs = append(errs, fmt.Errorf("%s: advice needs both recommendation and action", label))
		}
	}
	return errs
}

func validateCategories(categories []CategoryQuestions, questionKeys map[domain.QuestionKey]bool) []error {
	var errs []error
	seen := make(map[domain.CategoryHint]bool, len(categories))
	for _, cq := range categories {
		if _, ok := domain.ParseCategory(string(cq.Category)); !ok {
			errs = append(errs, fmt.Errorf("category %q is not a known category", cq.Category))
			continue
		}
		if seen[cq.Category] {
			errs = append(errs, fmt.Errorf("category %q: duplicate entry", cq.Category))
		}
		seen[cq.Category] = true

		n := len(cq.Questions)
		if n < minCategoryQuestions || n > maxCategoryQuestions {
			errs = append(errs, fmt.Errorf("category %q: has %d questions, want %d-%d",
				cq.Category, n, minCategoryQuestions, maxCategoryQuestions))
		}
		for _, k := range cq.Questions {
			if !questionKeys[k] {
				errs = append(errs, fmt.Errorf("category %q: unknown question %q", cq.Category, k))
			}
		}
	}
	for _, c := range domain.Categories {
		if !seen[c] {
			errs = append(errs, fmt.Errorf("category %q: missing question list", c))
		}
	}
	return errs
}

func validateUrgency(bands []UrgencyBand) []error {
	var errs []error
	if len(bands) == 0 {
		return []error{fmt.Errorf("urgency: at least one band is required")}
	}
	for i, b := range bands {
		if i > 0 && b.MinScore >= bands[i-1].MinScore {
			errs = append(errs, fmt.Errorf("urgency[%d]: min_score %d must be below %d", i, b.MinScore, bands[i-1].MinScore))
		}
		if !validUrgencyLevels[b.Level] {
			errs = append(errs, fmt.Errorf("urgency[%d]: invalid level %q", i, b.Level))
		}
		if b.Advice.Recommendation == "" || b.Advice.Action == "" {
			errs = append(errs, fmt.Errorf("urgency[%d]: advice needs both recommendation and action", i))
		}
	}
	if last := bands[len(bands)-1]; last.MinScore > 0 {
		errs = append(errs, fmt.Errorf("urgency: lowest band must start at 0, starts at %d", last.MinScore))
	}
	return errs
}

func sortedTokens(set map[domain.SymptomToken]bool) []domain.SymptomToken {
	out := make([]domain.SymptomToken, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
