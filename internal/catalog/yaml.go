package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/triage/internal/domain"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML shape of a catalog.
type catalogFile struct {
	Conditions    []conditionFile `yaml:"conditions"`
	Questions     []questionFile  `yaml:"questions"`
	Categories    []categoryFile  `yaml:"categories"`
	FallbackOrder []string        `yaml:"fallback_order"`
	LastResort    string          `yaml:"last_resort,omitempty"`
	Urgency       []urgencyFile   `yaml:"urgency"`
	Fallback      fallbackFile    `yaml:"fallback"`
}

type conditionFile struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Priority    int         `yaml:"priority"`
	Primary     []string    `yaml:"primary"`
	Secondary   []string    `yaml:"secondary,omitempty"`
	RiskFactors []string    `yaml:"risk_factors,omitempty"`
	Questions   []string    `yaml:"questions,omitempty"`
	Reference   string      `yaml:"reference,omitempty"`
	Advice      *adviceFile `yaml:"advice,omitempty"`
}

type adviceFile struct {
	Recommendation string `yaml:"recommendation"`
	Action         string `yaml:"action"`
}

type questionFile struct {
	Key      string              `yaml:"key"`
	Prompt   string              `yaml:"prompt"`
	Choices  []string            `yaml:"choices"`
	Mappings map[string][]string `yaml:"mappings,omitempty"`
}

type categoryFile struct {
	Category  string   `yaml:"category"`
	Questions []string `yaml:"questions"`
}

type urgencyFile struct {
	MinScore int        `yaml:"min_score"`
	Level    string     `yaml:"level"`
	Advice   adviceFile `yaml:"advice"`
}

type fallbackFile struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Confidence      int      `yaml:"confidence"`
	Urgency         string   `yaml:"urgency"`
	Recommendations []string `yaml:"recommendations"`
	Actions         []string `yaml:"actions"`
}

// LoadFile reads and validates a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	c, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(c); len(errs) > 0 {
		return nil, fmt.Errorf("catalog %s failed validation: %w", path, errors.Join(errs...))
	}
	return c, nil
}

// ReadFile decodes a YAML catalog from disk without validating it.
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	c, err := decode(r)
	if err != nil {
		return nil, err
	}
	if errs := Validate(c); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}
	return c, nil
}

func decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return file.toCatalog(), nil
}

// Marshal renders the catalog as YAML.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fromCatalog(c)); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func (f catalogFile) toCatalog() *Catalog {
	c := &Catalog{
		FallbackOrder: toKeys(f.FallbackOrder),
		LastResort:    domain.QuestionKey(f.LastResort),
	}
	for _, cf := range f.Conditions {
		cond := domain.Condition{
			ID:       cf.ID,
			Name:     cf.Name,
			Priority: cf.Priority,
			Symptoms: domain.SymptomSets{
				Primary:   toTokens(cf.Primary),
				Secondary: toTokens(cf.Secondary),
			},
			RiskFactors: toTokens(cf.RiskFactors),
			Questions:   toKeys(cf.Questions),
			Reference:   cf.Reference,
		}
		if cf.Advice != nil {
			cond.Advice = &domain.Advice{Recommendation: cf.Advice.Recommendation, Action: cf.Advice.Action}
		}
		c.Conditions = append(c.Conditions, cond)
	}
	for _, qf := range f.Questions {
		q := domain.QuestionSpec{
			Key:      domain.QuestionKey(qf.Key),
			Prompt:   qf.Prompt,
			Choices:  qf.Choices,
			Mappings: make(map[string][]domain.SymptomToken, len(qf.Mappings)),
		}
		for choice, toks := range qf.Mappings {
			q.Mappings[choice] = toTokens(toks)
		}
		c.Questions = append(c.Questions, q)
	}
	for _, cat := range f.Categories {
		c.Categories = append(c.Categories, CategoryQuestions{
			Category:  domain.CategoryHint(cat.Category),
			Questions: toKeys(cat.Questions),
		})
	}
	for _, u := range f.Urgency {
		c.Urgency = append(c.Urgency, UrgencyBand{
			MinScore: u.MinScore,
			Level:    domain.UrgencyLevel(u.Level),
			Advice:   domain.Advice{Recommendation: u.Advice.Recommendation, Action: u.Advice.Action},
		})
	}
	c.Fallback = FallbackResult{
		Condition:       domain.Condition{ID: f.Fallback.ID, Name: f.Fallback.Name},
		Confidence:      f.Fallback.Confidence,
		Urgency:         domain.UrgencyLevel(f.Fallback.Urgency),
		Recommendations: f.Fallback.Recommendations,
		Actions:         f.Fallback.Actions,
	}
	return c
}

func fromCatalog(c *Catalog) catalogFile {
	f := catalogFile{
		FallbackOrder: fromKeys(c.FallbackOrder),
		LastResort:    string(c.LastResort),
		Fallback: fallbackFile{
			ID:              c.Fallback.Condition.ID,
			Name:            c.Fallback.Condition.Name,
			Confidence:      c.Fallback.Confidence,
			Urgency:         string(c.Fallback.Urgency),
			Recommendations: c.Fallback.Recommendations,
			Actions:         c.Fallback.Actions,
		},
	}
	for _, cond := range c.Conditions {
		cf := conditionFile{
			ID:          cond.ID,
			Name:        cond.Name,
			Priority:    cond.Priority,
			Primary:     fromTokens(cond.Symptoms.Primary),
			Secondary:   fromTokens(cond.Symptoms.Secondary),
			RiskFactors: fromTokens(cond.RiskFactors),
			Questions:   fromKeys(cond.Questions),
			Reference:   cond.Reference,
		}
		if cond.Advice != nil {
			cf.Advice = &adviceFile{Recommendation: cond.Advice.Recommendation, Action: cond.Advice.Action}
		}
		f.Conditions = append(f.Conditions, cf)
	}
	for _, q := range c.Questions {
		qf := questionFile{
			Key:      string(q.Key),
			Prompt:   q.Prompt,
			Choices:  q.Choices,
			Mappings: make(map[string][]string, len(q.Mappings)),
		}
		for choice, toks := range q.Mappings {
			qf.Mappings[choice] = fromTokens(toks)
		}
		f.Questions = append(f.Questions, qf)
	}
	for _, cq := range c.Categories {
		f.Categories = append(f.Categories, categoryFile{
			Category:  string(cq.Category),
			Questions: fromKeys(cq.Questions),
		})
	}
	for _, b := range c.Urgency {
		f.Urgency = append(f.Urgency, urgencyFile{
			MinScore: b.MinScore,
			Level:    string(b.Level),
			Advice:   adviceFile{Recommendation: b.Advice.Recommendation, Action: b.Advice.Action},
		})
	}
	return f
}

func toTokens(in []string) []domain.SymptomToken {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.SymptomToken, len(in))
	for i, s := range in {
		out[i] = domain.SymptomToken(s)
	}
	return out
}

func fromTokens(in []domain.SymptomToken) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = string(t)
	}
	return out
}

func toKeys(in []string) []domain.QuestionKey {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.QuestionKey, len(in))
	for i, s := range in {
		out[i] = domain.QuestionKey(s)
	}
	return out
}

func fromKeys(in []domain.QuestionKey) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, k := range in {
		out[i] = string(k)
	}
	return out
}
