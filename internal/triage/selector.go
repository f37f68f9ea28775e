package triage

import "github.com/alexanderramin/triage/internal/domain"

// QuestionSource names the cascade rung that produced a question.
type QuestionSource string

const (
	SourceCategory   QuestionSource = "category"
	SourceCondition  QuestionSource = "condition"
	SourceFallback   QuestionSource = "fallback"
	SourceLastResort QuestionSource = "last_resort"
)

// CompletionReason explains why no further question is asked.
type CompletionReason string

const (
	ReasonAnswerLimit    CompletionReason = "answer_limit"
	ReasonHighConfidence CompletionReason = "high_confidence"
	ReasonExhausted      CompletionReason = "exhausted"
)

// QuestionPrompt is a question ready to be shown to the patient. Choices
// is a copy; callers may modify it freely.
type QuestionPrompt struct {
	Key     domain.QuestionKey
	Prompt  string
	Choices []string
	Source  QuestionSource
}

// Decision is the outcome of NextQuestion: either a question to ask or a
// completed assessment.
type Decision struct {
	Completed bool
	Reason    CompletionReason
	Question  *QuestionPrompt
}

// NextQuestion walks the question cascade and returns the first unanswered
// question, or a completed decision:
//
//  1. stop at the answer limit, or when confident after enough answers
//  2. the category's own questions, in order
//  3. the leading candidate's questions, when its score is high enough
//  4. the global fallback order
//  5. the last-resort question
//
// Keys missing from the question catalog are skipped.
func (e *Engine) NextQuestion(state domain.ConversationState, hint domain.CategoryHint) Decision {
	answered := state.AnsweredCount()
	if answered >= e.policy.AnswerLimit {
		return completed(ReasonAnswerLimit)
	}

	// Same candidates Score reports; a fallback result never leads.
	candidates := filterAtLeast(e.Rank(state), e.policy.CandidateThreshold)
	topScore := 0
	if len(candidates) > 0 {
		topScore = candidates[0].ConfidenceScore
	}
	if answered >= e.policy.ConfidentMinAnswers && topScore >= e.policy.ConfidentStop {
		return completed(ReasonHighConfidence)
	}

	if _, ok := domain.ParseCategory(string(hint)); ok {
		if q, ok := e.firstUnanswered(state, e.catalog.CategoryQuestions(hint), SourceCategory); ok {
			return ask(q)
		}
	}

	if len(candidates) > 0 && topScore >= e.policy.ConditionThreshold {
		if q, ok := e.firstUnanswered(state, candidates[0].Condition.Questions, SourceCondition); ok {
			return ask(q)
		}
	}

	if q, ok := e.firstUnanswered(state, e.catalog.FallbackOrder, SourceFallback); ok {
		return ask(q)
	}

	if last := e.catalog.LastResort; last != "" {
		if q, ok := e.firstUnanswered(state, []domain.QuestionKey{last}, SourceLastResort); ok {
			return ask(q)
		}
	}

	return completed(ReasonExhausted)
}

// Prompt builds the prompt for a specific question key, regardless of
// whether it was answered.
func (e *Engine) Prompt(key domain.QuestionKey) (*QuestionPrompt, bool) {
	q, ok := e.catalog.Question(key)
	if !ok {
		return nil, false
	}
	return newPrompt(q, ""), true
}

func (e *Engine) firstUnanswered(state domain.ConversationState, keys []domain.QuestionKey, source QuestionSource) (*QuestionPrompt, bool) {
	for _, k := range keys {
		if state.IsAnswered(k) {
			continue
		}
		q, ok := e.catalog.Question(k)
		if !ok {
			continue
		}
		return newPrompt(q, source), true
	}
	return nil, false
}

func newPrompt(q domain.QuestionSpec, source QuestionSource) *QuestionPrompt {
	return &QuestionPrompt{
		Key:     q.Key,
		Prompt:  q.Prompt,
		Choices: append([]string(nil), q.Choices...),
		Source:  source,
	}
}

func ask(q *QuestionPrompt) Decision {
	return Decision{Question: q}
}

func completed(reason CompletionReason) Decision {
	return Decision{Completed: true, Reason: reason}
}
