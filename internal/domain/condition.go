package domain

// SymptomSets groups a condition's symptoms by diagnostic weight.
type SymptomSets struct {
	Primary   []SymptomToken
	Secondary []SymptomToken
}

// Advice is a recommendation paired with the concrete action that follows it.
type Advice struct {
	Recommendation string
	Action         string
}

type Condition struct {
	ID          string
	Name        string
	Priority    int
	Symptoms    SymptomSets
	RiskFactors []SymptomToken
	Questions   []QuestionKey
	Reference   string
	// Advice is appended to the recommendations when this condition ranks first.
	Advice *Advice
}

// Tokens returns every symptom and risk factor token the condition references.
func (c Condition) Tokens() []SymptomToken {
	out := make([]SymptomToken, 0, len(c.Symptoms.Primary)+len(c.Symptoms.Secondary)+len(c.RiskFactors))
	out = append(out, c.Symptoms.Primary...)
	out = append(out, c.Symptoms.Secondary...)
	out = append(out, c.RiskFactors...)
	return out
}

// QuestionSpec is a single multiple-choice question. Choices are presented
// 1-based in the order declared.
type QuestionSpec struct {
	Key      QuestionKey
	Prompt   string
	Choices  []string
	Mappings map[string][]SymptomToken
}

// TokensFor returns the symptom tokens recorded when choice is selected.
func (q QuestionSpec) TokensFor(choice string) []SymptomToken {
	return q.Mappings[choice]
}

type ScoredCondition struct {
	Condition          Condition
	ConfidenceScore    int
	MatchedSymptoms    []SymptomToken
	MatchedRiskFactors []SymptomToken
}

type TriageResult struct {
	PossibleConditions []ScoredCondition
	UrgencyLevel       UrgencyLevel
	Recommendations    []string
	Actions            []string
}

// Top returns the highest-ranked condition, if any.
func (r TriageResult) Top() (ScoredCondition, bool) {
	if len(r.PossibleConditions) == 0 {
		return ScoredCondition{}, false
	}
	return r.PossibleConditions[0], true
}
