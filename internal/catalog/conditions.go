package catalog

import "github.com/alexanderramin/triage/internal/domain"

type keys = []domain.QuestionKey

// defaultConditions returns the built-in condition catalog. Declaration
// order is significant: it is the tie-break order when two conditions score
// the same.
func defaultConditions() []domain.Condition {
	return []domain.Condition{
		{
			ID:       "malaria",
			Name:     "Malaria",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"fever", "mosquito_exposure"},
				Secondary: tokens{"chills", "sweating", "headache", "body_aches", "nausea", "vomiting"},
			},
			RiskFactors: tokens{"recent_travel"},
			Questions:   keys{"fever_pattern", "mosquito_bites", "travel_history", "headache_severity", "vomiting_frequency"},
			Reference:   "WHO Guidelines for malaria",
			Advice: &domain.Advice{
				Recommendation: "Get tested for malaria as soon as possible",
				Action:         "Ask for a malaria rapid diagnostic test or blood smear at the nearest clinic",
			},
		},
		{
			ID:       "dengue_fever",
			Name:     "Dengue Fever",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"fever", "joint_pain"},
				Secondary: tokens{"high_fever", "rash", "headache", "body_aches", "light_sensitivity"},
			},
			RiskFactors: tokens{"mosquito_exposure", "recent_travel"},
			Questions:   keys{"body_pain", "fever_pattern", "mosquito_bites", "headache_severity"},
			Reference:   "WHO Dengue: guidelines for diagnosis, treatment, prevention and control",
		},
		{
			ID:       "typhoid_fever",
			Name:     "Typhoid Fever",
			Priority: 2,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"persistent_fever", "stepwise_fever"},
				Secondary: tokens{"stomach_pain", "loss_of_appetite", "constipation", "headache", "fatigue"},
			},
			RiskFactors: tokens{"unsafe_water", "unsafe_food"},
			Questions:   keys{"fever_duration", "fever_pattern", "appetite_changes", "water_source", "abdominal_pain"},
			Reference:   "WHO Typhoid fact sheet",
		},
		{
			ID:       "meningitis",
			Name:     "Meningitis",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"fever", "stiff_neck"},
				Secondary: tokens{"severe_headache", "high_fever", "light_sensitivity", "vomiting", "rash"},
			},
			RiskFactors: tokens{"sick_contact"},
			Questions:   keys{"headache_severity", "fever_pattern", "vomiting_frequency", "close_contact"},
			Reference:   "WHO Meningitis fact sheet",
		},
		{
			ID:       "influenza",
			Name:     "Influenza",
			Priority: 3,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"fever", "body_aches"},
				Secondary: tokens{"dry_cough", "headache", "fatigue", "chills"},
			},
			RiskFactors: tokens{"sick_contact"},
			Questions:   keys{"fever_pattern", "body_pain", "cough_type", "fatigue_level", "close_contact"},
			Reference:   "CDC Influenza signs and symptoms",
		},
		{
			ID:       "pneumonia",
			Name:     "Pneumonia",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"cough", "fever"},
				Secondary: tokens{"productive_cough", "shortness_of_breath", "severe_breathlessness", "pleuritic_pain", "chills"},
			},
			RiskFactors: tokens{"smoker"},
			Questions:   keys{"cough_type", "breathing_difficulty", "fever_pattern", "chest_pain", "smoking_history"},
			Reference:   "WHO Pneumonia fact sheet",
		},
		{
			ID:       "tuberculosis",
			Name:     "Tuberculosis",
			Priority: 2,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"chronic_cough", "night_sweats"},
				Secondary: tokens{"coughing_blood", "weight_loss", "persistent_fever", "fatigue", "loss_of_appetite"},
			},
			RiskFactors: tokens{"tb_contact"},
			Questions:   keys{"cough_type", "fever_pattern", "appetite_changes", "close_contact", "fatigue_level"},
			Reference:   "WHO Consolidated guidelines on tuberculosis",
		},
		{
			ID:       "asthma",
			Name:     "Asthma",
			Priority: 2,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"wheezing", "dry_cough"},
				Secondary: tokens{"chest_discomfort", "fatigue"},
			},
			RiskFactors: tokens{"smoker"},
			Questions:   keys{"breathing_difficulty", "cough_type", "smoking_history", "chest_pain"},
			Reference:   "Global Initiative for Asthma (GINA) report",
		},
		{
			ID:       "heart_attack",
			Name:     "Heart Attack",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"chest_discomfort", "radiating_pain"},
				Secondary: tokens{"shortness_of_breath", "sweating", "nausea", "dizziness"},
			},
			RiskFactors: tokens{"hypertension_history", "diabetes", "family_heart_history", "smoker"},
			Questions:   keys{"chest_pain", "breathing_difficulty", "heart_risk_factors", "smoking_history", "fatigue_level"},
			Reference:   "AHA Warning signs of a heart attack",
		},
		{
			ID:       "angina",
			Name:     "Angina",
			Priority: 2,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"chest_discomfort", "exertional_pain"},
				Secondary: tokens{"shortness_of_breath", "fatigue", "dizziness"},
			},
			RiskFactors: tokens{"hypertension_history", "diabetes", "smoker", "family_heart_history"},
			Questions:   keys{"chest_pain", "heart_risk_factors", "breathing_difficulty", "smoking_history"},
			Reference:   "AHA Angina pectoris",
		},
		{
			ID:       "cholera",
			Name:     "Cholera",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"diarrhea", "watery_diarrhea"},
				Secondary: tokens{"vomiting", "dehydration"},
			},
			RiskFactors: tokens{"unsafe_water"},
			Questions:   keys{"diarrhea_type", "vomiting_frequency", "water_source"},
			Reference:   "WHO Cholera fact sheet",
			Advice: &domain.Advice{
				Recommendation: "Start oral rehydration solution (ORS) immediately",
				Action:         "Go to a cholera treatment centre or clinic for rehydration",
			},
		},
		{
			ID:       "dysentery",
			Name:     "Dysentery",
			Priority: 2,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"diarrhea", "bloody_diarrhea"},
				Secondary: tokens{"stomach_pain", "fever"},
			},
			RiskFactors: tokens{"unsafe_water", "unsafe_food"},
			Questions:   keys{"diarrhea_type", "abdominal_pain", "fever_duration", "water_source"},
			Reference:   "WHO Shigellosis guidance",
		},
		{
			ID:       "gastroenteritis",
			Name:     "Gastroenteritis",
			Priority: 3,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"diarrhea"},
				Secondary: tokens{"vomiting", "nausea", "stomach_pain", "fever", "dehydration"},
			},
			RiskFactors: tokens{"unsafe_food"},
			Questions:   keys{"diarrhea_type", "vomiting_frequency", "abdominal_pain", "water_source"},
			Reference:   "NHS Diarrhoea and vomiting",
		},
		{
			ID:       "appendicitis",
			Name:     "Appendicitis",
			Priority: 1,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"stomach_pain", "right_lower_pain"},
				Secondary: tokens{"nausea", "vomiting", "fever", "loss_of_appetite"},
			},
			Questions: keys{"abdominal_pain", "vomiting_frequency", "fever_duration", "appetite_changes"},
			Reference: "NHS Appendicitis",
		},
		{
			ID:       "peptic_ulcer",
			Name:     "Peptic Ulcer",
			Priority: 3,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"stomach_pain", "epigastric_pain"},
				Secondary: tokens{"nausea", "loss_of_appetite"},
			},
			RiskFactors: tokens{"smoker"},
			Questions:   keys{"abdominal_pain", "appetite_changes", "smoking_history", "vomiting_frequency"},
			Reference:   "NHS Stomach ulcer",
		},
		{
			ID:       "migraine",
			Name:     "Migraine",
			Priority: 3,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"headache", "light_sensitivity"},
				Secondary: tokens{"nausea", "vomiting", "dizziness"},
			},
			Questions: keys{"headache_severity", "vomiting_frequency", "fatigue_level"},
			Reference: "NHS Migraine",
		},
		{
			ID:       "urinary_tract_infection",
			Name:     "Urinary Tract Infection",
			Priority: 3,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"painful_urination", "frequent_urination"},
				Secondary: tokens{"blood_in_urine", "fever", "stomach_pain"},
			},
			Questions: keys{"urination_symptoms", "fever_duration", "abdominal_pain"},
			Reference: "NHS Urinary tract infections",
		},
		{
			ID:       "anemia",
			Name:     "Anemia",
			Priority: 3,
			Symptoms: domain.SymptomSets{
				Primary:   tokens{"severe_fatigue", "dizziness"},
				Secondary: tokens{"fatigue", "shortness_of_breath"},
			},
			Questions: keys{"fatigue_level", "breathing_difficulty", "appetite_changes"},
			Reference: "WHO Anaemia fact sheet",
		},
	}
}
