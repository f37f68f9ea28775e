package catalog

import "github.com/alexanderramin/triage/internal/domain"

type tokens = []domain.SymptomToken

func defaultQuestions() []domain.QuestionSpec {
	return []domain.QuestionSpec{
		{
			Key:    "fever_duration",
			Prompt: "How long have you had a fever?",
			Choices: []string{
				"Less than 3 days",
				"3 to 7 days",
				"More than a week",
				"I don't have a fever",
			},
			Mappings: map[string]tokens{
				"Less than 3 days": {"fever"},
				"3 to 7 days":      {"fever", "persistent_fever"},
				"More than a week": {"fever", "persistent_fever"},
			},
		},
		{
			Key:    "fever_pattern",
			Prompt: "How would you describe your fever?",
			Choices: []string{
				"Comes and goes with chills and sweating",
				"Constant and very high",
				"Rising a little higher each day",
				"Mostly at night with heavy sweating",
				"Mild or low-grade",
				"I don't have a fever",
			},
			Mappings: map[string]tokens{
				"Comes and goes with chills and sweating": {"fever", "chills", "sweating"},
				"Constant and very high":                  {"fever", "high_fever"},
				"Rising a little higher each day":         {"fever", "stepwise_fever"},
				"Mostly at night with heavy sweating":     {"fever", "night_sweats"},
				"Mild or low-grade":                       {"fever"},
			},
		},
		{
			Key:    "travel_history",
			Prompt: "Have you travelled outside your home area recently?",
			Choices: []string{
				"Yes, within the last month",
				"Yes, one to three months ago",
				"No recent travel",
			},
			Mappings: map[string]tokens{
				"Yes, within the last month":   {"recent_travel"},
				"Yes, one to three months ago": {"recent_travel"},
			},
		},
		{
			Key:    "mosquito_bites",
			Prompt: "Have you been bitten by mosquitoes in the past two weeks?",
			Choices: []string{
				"Yes, many bites",
				"Yes, a few bites",
				"Not that I know of",
				"No, I sleep under a treated net",
			},
			Mappings: map[string]tokens{
				"Yes, many bites":  {"mosquito_exposure"},
				"Yes, a few bites": {"mosquito_exposure"},
			},
		},
		{
			Key:    "cough_type",
			Prompt: "What kind of cough do you have?",
			Choices: []string{
				"Dry cough",
				"Cough with phlegm",
				"Coughing up blood",
				"Cough lasting more than two weeks",
				"No cough",
			},
			Mappings: map[string]tokens{
				"Dry cough":                         {"cough", "dry_cough"},
				"Cough with phlegm":                 {"cough", "productive_cough"},
				"Coughing up blood":                 {"cough", "coughing_blood"},
				"Cough lasting more than two weeks": {"cough", "chronic_cough"},
			},
		},
		{
			Key:    "breathing_difficulty",
			Prompt: "Are you having any trouble breathing?",
			Choices: []string{
				"Yes, severe, even when resting",
				"Yes, when walking or climbing stairs",
				"I hear wheezing when I breathe",
				"No trouble breathing",
			},
			Mappings: map[string]tokens{
				"Yes, severe, even when resting":       {"shortness_of_breath", "severe_breathlessness"},
				"Yes, when walking or climbing stairs": {"shortness_of_breath"},
				"I hear wheezing when I breathe":       {"wheezing"},
			},
		},
		{
			Key:    "chest_pain",
			Prompt: "Do you have chest pain?",
			Choices: []string{
				"Crushing pain spreading to my arm, neck or jaw",
				"Sharp pain when I breathe in",
				"Pain when I exert myself that eases with rest",
				"No chest pain",
			},
			Mappings: map[string]tokens{
				"Crushing pain spreading to my arm, neck or jaw": {"chest_discomfort", "radiating_pain"},
				"Sharp pain when I breathe in":                   {"chest_discomfort", "pleuritic_pain"},
				"Pain when I exert myself that eases with rest":  {"chest_discomfort", "exertional_pain"},
			},
		},
		{
			Key:    "smoking_history",
			Prompt: "Do you smoke?",
			Choices: []string{
				"Yes, every day",
				"I used to smoke",
				"I have never smoked",
			},
			Mappings: map[string]tokens{
				"Yes, every day":  {"smoker"},
				"I used to smoke": {"smoker"},
			},
		},
		{
			Key:    "close_contact",
			Prompt: "Has anyone close to you been ill recently?",
			Choices: []string{
				"Someone I live with has tuberculosis",
				"People around me have similar symptoms",
				"No one I know of",
			},
			Mappings: map[string]tokens{
				"Someone I live with has tuberculosis":   {"tb_contact"},
				"People around me have similar symptoms": {"sick_contact"},
			},
		},
		{
			Key:    "diarrhea_type",
			Prompt: "Do you have diarrhea?",
			Choices: []string{
				"Yes, watery and very frequent",
				"Yes, with blood in it",
				"Yes, loose stools a few times a day",
				"No diarrhea",
			},
			Mappings: map[string]tokens{
				"Yes, watery and very frequent":       {"diarrhea", "watery_diarrhea"},
				"Yes, with blood in it":               {"diarrhea", "bloody_diarrhea"},
				"Yes, loose stools a few times a day": {"diarrhea"},
			},
		},
		{
			Key:    "abdominal_pain",
			Prompt: "Do you have stomach or belly pain?",
			Choices: []string{
				"Cramping pain all over",
				"Sharp pain in the lower right side",
				"Burning pain in the upper stomach",
				"No stomach pain",
			},
			Mappings: map[string]tokens{
				"Cramping pain all over":             {"stomach_pain"},
				"Sharp pain in the lower right side": {"stomach_pain", "right_lower_pain"},
				"Burning pain in the upper stomach":  {"stomach_pain", "epigastric_pain"},
			},
		},
		{
			Key:    "vomiting_frequency",
			Prompt: "Have you been vomiting?",
			Choices: []string{
				"Yes, I can't keep fluids down",
				"Yes, a few times",
				"No, but I feel sick",
				"No",
			},
			Mappings: map[string]tokens{
				"Yes, I can't keep fluids down": {"vomiting", "dehydration"},
				"Yes, a few times":              {"vomiting"},
				"No, but I feel sick":           {"nausea"},
			},
		},
		{
			Key:    "water_source",
			Prompt: "Where has your drinking water and food come from this past week?",
			Choices: []string{
				"Untreated well, river or stream water",
				"Street food or food left out for a long time",
				"Treated tap water or bottled water",
			},
			Mappings: map[string]tokens{
				"Untreated well, river or stream water":        {"unsafe_water"},
				"Street food or food left out for a long time": {"unsafe_food"},
			},
		},
		{
			Key:    "appetite_changes",
			Prompt: "Has your appetite or weight changed?",
			Choices: []string{
				"Lost my appetite and I'm constipated",
				"Lost my appetite",
				"Losing weight without trying",
				"No change",
			},
			Mappings: map[string]tokens{
				"Lost my appetite and I'm constipated": {"loss_of_appetite", "constipation"},
				"Lost my appetite":                     {"loss_of_appetite"},
				"Losing weight without trying":         {"loss_of_appetite", "weight_loss"},
			},
		},
		{
			Key:    "heart_risk_factors",
			Prompt: "Do any of these apply to you?",
			Choices: []string{
				"High blood pressure",
				"Diabetes",
				"Heart disease in my family",
				"None of these",
			},
			Mappings: map[string]tokens{
				"High blood pressure":        {"hypertension_history"},
				"Diabetes":                   {"diabetes"},
				"Heart disease in my family": {"family_heart_history"},
			},
		},
		{
			Key:    "fatigue_level",
			Prompt: "How is your energy level?",
			Choices: []string{
				"Exhausted, I can barely get out of bed",
				"Tired most of the day",
				"Dizzy or lightheaded",
				"Normal energy",
			},
			Mappings: map[string]tokens{
				"Exhausted, I can barely get out of bed": {"fatigue", "severe_fatigue"},
				"Tired most of the day":                  {"fatigue"},
				"Dizzy or lightheaded":                   {"dizziness"},
			},
		},
		{
			Key:    "headache_severity",
			Prompt: "Do you have a headache?",
			Choices: []string{
				"The worst headache of my life",
				"Headache with a stiff neck",
				"Throbbing, and light hurts my eyes",
				"Mild, comes and goes",
				"No headache",
			},
			Mappings: map[string]tokens{
				"The worst headache of my life":      {"headache", "severe_headache"},
				"Headache with a stiff neck":         {"headache", "stiff_neck"},
				"Throbbing, and light hurts my eyes": {"headache", "light_sensitivity"},
				"Mild, comes and goes":               {"headache"},
			},
		},
		{
			Key:    "body_pain",
			Prompt: "Do you have body aches or pains?",
			Choices: []string{
				"Severe pain in my joints and muscles",
				"Aches with a skin rash",
				"Mild general aches",
				"No aches",
			},
			Mappings: map[string]tokens{
				"Severe pain in my joints and muscles": {"body_aches", "joint_pain"},
				"Aches with a skin rash":               {"body_aches", "rash"},
				"Mild general aches":                   {"body_aches"},
			},
		},
		{
			Key:    "urination_symptoms",
			Prompt: "Have you noticed any problems when you urinate?",
			Choices: []string{
				"Burning or pain",
				"Needing to go very often",
				"Blood in my urine",
				"No problems",
			},
			Mappings: map[string]tokens{
				"Burning or pain":          {"painful_urination"},
				"Needing to go very often": {"frequent_urination"},
				"Blood in my urine":        {"blood_in_urine"},
			},
		},
	}
}
