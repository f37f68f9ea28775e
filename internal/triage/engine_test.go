package triage

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	c := catalog.Default()
	require.Empty(t, catalog.Validate(c))
	return New(c)
}

func TestScore_MalariaExposureIsEmergency(t *testing.T) {
	e := newTestEngine(t)
	state := domain.StateWithSymptoms("fever", "recent_travel", "mosquito_exposure")

	result := e.Score(state)

	require.NotEmpty(t, result.PossibleConditions)
	top := result.PossibleConditions[0]
	assert.Equal(t, "malaria", top.Condition.ID)
	assert.GreaterOrEqual(t, top.ConfidenceScore, 80)
	assert.Equal(t, domain.UrgencyEmergency, result.UrgencyLevel)
	assert.Equal(t, []domain.SymptomToken{"fever", "mosquito_exposure"}, top.MatchedSymptoms)
	assert.Equal(t, []domain.SymptomToken{"recent_travel"}, top.MatchedRiskFactors)

	assert.Equal(t, []string{
		"Seek immediate medical attention",
		"Get tested for malaria as soon as possible",
	}, result.Recommendations)
	assert.Equal(t, []string{
		"Go to nearest hospital emergency department",
		"Ask for a malaria rapid diagnostic test or blood smear at the nearest clinic",
	}, result.Actions)
}

func TestScore_AnsweredOnlyFallsBackToGeneralEvaluation(t *testing.T) {
	e := newTestEngine(t)
	state := domain.NewConversationState()
	for _, k := range []domain.QuestionKey{"fever_duration", "fever_pattern", "travel_history", "mosquito_bites"} {
		state.MarkAnswered(k)
	}

	result := e.Score(state)

	require.Len(t, result.PossibleConditions, 1)
	assert.Equal(t, "General Medical Evaluation", result.PossibleConditions[0].Condition.Name)
	assert.Equal(t, 30, result.PossibleConditions[0].ConfidenceScore)
	assert.Equal(t, domain.UrgencyRoutine, result.UrgencyLevel)
	assert.Equal(t, []string{
		"Schedule a medical consultation",
		"Monitor your symptoms closely",
		"Seek medical attention if symptoms worsen",
	}, result.Recommendations)
	assert.Equal(t, []string{
		"Schedule appointment with healthcare provider",
		"Keep track of your symptoms and their progression",
	}, result.Actions)
}

func TestScore_EmptyStateFallsBack(t *testing.T) {
	e := newTestEngine(t)

	result := e.Score(domain.NewConversationState())

	require.Len(t, result.PossibleConditions, 1)
	assert.Equal(t, "general_evaluation", result.PossibleConditions[0].Condition.ID)
}

func TestScore_FallbackIsNotSharedWithCatalog(t *testing.T) {
	e := newTestEngine(t)

	result := e.Score(domain.NewConversationState())
	result.Recommendations[0] = "changed"

	again := e.Score(domain.NewConversationState())
	assert.Equal(t, "Schedule a medical consultation", again.Recommendations[0])
}

func TestScore_UrgentBand(t *testing.T) {
	e := newTestEngine(t)

	result := e.Score(domain.StateWithSymptoms("fever", "mosquito_exposure"))

	require.NotEmpty(t, result.PossibleConditions)
	assert.Equal(t, "malaria", result.PossibleConditions[0].Condition.ID)
	assert.Equal(t, 60, result.PossibleConditions[0].ConfidenceScore)
	assert.Equal(t, domain.UrgencyUrgent, result.UrgencyLevel)
	assert.Equal(t, "Schedule urgent consultation", result.Recommendations[0])
	assert.Equal(t, "Contact healthcare provider within 24 hours", result.Actions[0])
}

func TestScore_CandidatesAboveThresholdOnly(t *testing.T) {
	e := newTestEngine(t)
	state := domain.StateWithSymptoms("fever", "recent_travel", "mosquito_exposure")

	result := e.Score(state)

	for _, sc := range result.PossibleConditions {
		assert.GreaterOrEqual(t, sc.ConfidenceScore, 50, sc.Condition.ID)
	}
	for i := 1; i < len(result.PossibleConditions); i++ {
		assert.GreaterOrEqual(t,
			result.PossibleConditions[i-1].ConfidenceScore,
			result.PossibleConditions[i].ConfidenceScore)
	}
}

func TestScore_BandBoundaries(t *testing.T) {
	c := catalog.Default()
	c.Conditions = []domain.Condition{{
		ID:       "test_condition",
		Name:     "Test Condition",
		Symptoms: domain.SymptomSets{Primary: []domain.SymptomToken{"fever"}, Secondary: []domain.SymptomToken{"chills", "sweating"}},
	}}
	e := New(c)

	result := e.Score(domain.StateWithSymptoms("fever", "chills", "sweating"))

	require.Len(t, result.PossibleConditions, 1)
	assert.Equal(t, 60, result.PossibleConditions[0].ConfidenceScore)
	assert.Equal(t, domain.UrgencyUrgent, result.UrgencyLevel)

	e = New(c, WithWeights(ScoringWeights{Primary: 30, Secondary: 10, RiskFactor: 20}))
	result = e.Score(domain.StateWithSymptoms("fever", "chills", "sweating"))
	assert.Equal(t, 50, result.PossibleConditions[0].ConfidenceScore)
	assert.Equal(t, domain.UrgencyRoutine, result.UrgencyLevel)
	assert.Equal(t, []string{"Schedule routine consultation"}, result.Recommendations)
	assert.Equal(t, []string{"Monitor symptoms and schedule appointment if they worsen"}, result.Actions)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	c := catalog.Default()
	c.Conditions = []domain.Condition{
		{ID: "first", Name: "First", Symptoms: domain.SymptomSets{Primary: []domain.SymptomToken{"fever"}}},
		{ID: "second", Name: "Second", Symptoms: domain.SymptomSets{Primary: []domain.SymptomToken{"fever"}}},
		{ID: "third", Name: "Third", Symptoms: domain.SymptomSets{Primary: []domain.SymptomToken{"cough"}}},
	}
	e := New(c)

	ranked := e.Rank(domain.StateWithSymptoms("fever"))

	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Condition.ID)
	assert.Equal(t, "second", ranked[1].Condition.ID)
}

func TestScore_AdviceOnlyFromTopCondition(t *testing.T) {
	e := newTestEngine(t)
	// Cholera leads; malaria advice must not appear.
	state := domain.StateWithSymptoms("diarrhea", "watery_diarrhea", "dehydration", "vomiting", "unsafe_water")

	result := e.Score(state)

	require.NotEmpty(t, result.PossibleConditions)
	assert.Equal(t, "cholera", result.PossibleConditions[0].Condition.ID)
	assert.Contains(t, result.Recommendations, "Start oral rehydration solution (ORS) immediately")
	assert.NotContains(t, result.Recommendations, "Get tested for malaria as soon as possible")
}

func TestScore_YAMLCatalogScoresLikeDefault(t *testing.T) {
	data, err := catalog.Marshal(catalog.Default())
	require.NoError(t, err)
	loaded, err := catalog.Load(bytes.NewReader(data))
	require.NoError(t, err)

	state := domain.StateWithSymptoms("fever", "recent_travel", "mosquito_exposure")

	assert.Equal(t, newTestEngine(t).Score(state), New(loaded).Score(state))
}
