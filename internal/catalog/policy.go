package catalog

import "github.com/alexanderramin/triage/internal/domain"

func defaultCategories() []CategoryQuestions {
	return []CategoryQuestions{
		{Category: domain.CategoryFeverInfections, Questions: keys{"fever_duration", "fever_pattern", "travel_history", "mosquito_bites"}},
		{Category: domain.CategoryRespiratory, Questions: keys{"cough_type", "breathing_difficulty", "chest_pain", "fever_pattern", "smoking_history"}},
		{Category: domain.CategoryDigestive, Questions: keys{"diarrhea_type", "abdominal_pain", "vomiting_frequency", "water_source"}},
		{Category: domain.CategoryCardiac, Questions: keys{"chest_pain", "breathing_difficulty", "heart_risk_factors", "fatigue_level"}},
		{Category: domain.CategoryGeneral, Questions: keys{"fatigue_level", "headache_severity", "fever_pattern"}},
		{Category: domain.CategoryOther, Questions: keys{"headache_severity", "urination_symptoms", "fatigue_level"}},
	}
}

func defaultFallbackOrder() []domain.QuestionKey {
	return keys{
		"chest_pain",
		"fever_pattern",
		"cough_type",
		"breathing_difficulty",
		"diarrhea_type",
		"abdominal_pain",
		"fatigue_level",
		"travel_history",
		"headache_severity",
	}
}

func defaultUrgencyBands() []UrgencyBand {
	return []UrgencyBand{
		{
			MinScore: 80,
			Level:    domain.UrgencyEmergency,
			Advice: domain.Advice{
				Recommendation: "Seek immediate medical attention",
				Action:         "Go to nearest hospital emergency department",
			},
		},
		{
			MinScore: 60,
			Level:    domain.UrgencyUrgent,
			Advice: domain.Advice{
				Recommendation: "Schedule urgent consultation",
				Action:         "Contact healthcare provider within 24 hours",
			},
		},
		{
			MinScore: 0,
			Level:    domain.UrgencyRoutine,
			Advice: domain.Advice{
				Recommendation: "Schedule routine consultation",
				Action:         "Monitor symptoms and schedule appointment if they worsen",
			},
		},
	}
}

func defaultFallbackResult() FallbackResult {
	return FallbackResult{
		Condition: domain.Condition{
			ID:        "general_evaluation",
			Name:      "General Medical Evaluation",
			Priority:  3,
			Reference: "General clinical assessment",
		},
		Confidence: 30,
		Urgency:    domain.UrgencyRoutine,
		Recommendations: []string{
			"Schedule a medical consultation",
			"Monitor your symptoms closely",
			"Seek medical attention if symptoms worsen",
		},
		Actions: []string{
			"Schedule appointment with healthcare provider",
			"Keep track of your symptoms and their progression",
		},
	}
}
