package httpapi

import (
	"time"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
)

type startRequest struct {
	Category string `json:"category"`
}

type answerRequest struct {
	Reply string `json:"reply"`
}

type scoreRequest struct {
	Tokens []string `json:"tokens"`
}

type errorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Step    *stepResponse `json:"step,omitempty"`
}

type questionResponse struct {
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Source  string   `json:"source,omitempty"`
	Text    string   `json:"text"`
}

type conditionResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Confidence         int      `json:"confidence"`
	MatchedSymptoms    []string `json:"matched_symptoms,omitempty"`
	MatchedRiskFactors []string `json:"matched_risk_factors,omitempty"`
	Reference          string   `json:"reference,omitempty"`
}

type resultResponse struct {
	UrgencyLevel       string              `json:"urgency_level"`
	PossibleConditions []conditionResponse `json:"possible_conditions"`
	Recommendations    []string            `json:"recommendations"`
	Actions            []string            `json:"actions"`
	Summary            string              `json:"summary"`
}

type stepResponse struct {
	ConversationID string            `json:"conversation_id"`
	Category       string            `json:"category,omitempty"`
	Status         string            `json:"status"`
	AnsweredCount  int               `json:"answered_count"`
	Question       *questionResponse `json:"question,omitempty"`
	Reason         string            `json:"reason,omitempty"`
	Result         *resultResponse   `json:"result,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type conversationResponse struct {
	ID          string            `json:"id"`
	Category    string            `json:"category,omitempty"`
	Status      string            `json:"status"`
	Present     []string          `json:"present"`
	Answered    []string          `json:"answered"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Step        *stepResponse     `json:"step"`
	History     []historyResponse `json:"history"`
}

type historyResponse struct {
	QuestionKey string    `json:"question_key"`
	Prompt      string    `json:"prompt"`
	ChoiceIndex int       `json:"choice_index"`
	Choice      string    `json:"choice"`
	AnsweredAt  time.Time `json:"answered_at"`
}

func toStepResponse(s *contract.Step) *stepResponse {
	if s == nil {
		return nil
	}
	out := &stepResponse{
		ConversationID: s.ConversationID,
		Category:       string(s.Category),
		Status:         string(s.Status),
		AnsweredCount:  s.AnsweredCount,
		Reason:         string(s.Reason),
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Question != nil {
		out.Question = &questionResponse{
			Key:     string(s.Question.Key),
			Prompt:  s.Question.Prompt,
			Choices: s.Question.Choices,
			Source:  string(s.Question.Source),
			Text:    triage.FormatQuestion(s.Question),
		}
	}
	if s.Result != nil {
		out.Result = toResultResponse(*s.Result)
	}
	return out
}

func toResultResponse(r domain.TriageResult) *resultResponse {
	out := &resultResponse{
		UrgencyLevel:       string(r.UrgencyLevel),
		PossibleConditions: make([]conditionResponse, 0, len(r.PossibleConditions)),
		Recommendations:    nonNil(r.Recommendations),
		Actions:            nonNil(r.Actions),
		Summary:            triage.FormatTriage(r),
	}
	for _, c := range r.PossibleConditions {
		out.PossibleConditions = append(out.PossibleConditions, conditionResponse{
			ID:                 c.Condition.ID,
			Name:               c.Condition.Name,
			Confidence:         c.ConfidenceScore,
			MatchedSymptoms:    tokenStrings(c.MatchedSymptoms),
			MatchedRiskFactors: tokenStrings(c.MatchedRiskFactors),
			Reference:          c.Condition.Reference,
		})
	}
	return out
}

func toConversationResponse(c *domain.Conversation, step *contract.Step, history []contract.HistoryEntry) *conversationResponse {
	out := &conversationResponse{
		ID:          c.ID,
		Category:    string(c.Category),
		Status:      string(c.Status),
		Present:     tokenStrings(c.State.Present()),
		Answered:    make([]string, 0),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CompletedAt: c.CompletedAt,
		Step:        toStepResponse(step),
		History:     make([]historyResponse, 0, len(history)),
	}
	if out.Present == nil {
		out.Present = make([]string, 0)
	}
	for _, k := range c.State.Answered() {
		out.Answered = append(out.Answered, string(k))
	}
	for _, h := range history {
		out.History = append(out.History, historyResponse{
			QuestionKey: string(h.Answer.QuestionKey),
			Prompt:      h.Prompt,
			ChoiceIndex: h.Answer.ChoiceIndex,
			Choice:      h.Answer.Choice,
			AnsweredAt:  h.Answer.CreatedAt,
		})
	}
	return out
}

func tokenStrings(tokens []domain.SymptomToken) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
