package domain

// SymptomToken identifies an observed symptom or risk factor.
type SymptomToken string

// QuestionKey identifies a question in the question catalog. Answered
// questions are recorded in ConversationState under their key, so keys
// share a namespace with symptom tokens and must never collide with one.
type QuestionKey string

// Token returns the state key used to mark this question as answered.
func (k QuestionKey) Token() SymptomToken {
	return SymptomToken(k)
}
