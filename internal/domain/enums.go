package domain

// Marker is the value recorded against a token in a ConversationState.
type Marker string

const (
	MarkerPresent  Marker = "present"
	MarkerAnswered Marker = "answered"
)

type UrgencyLevel string

const (
	UrgencyEmergency UrgencyLevel = "emergency"
	UrgencyUrgent    UrgencyLevel = "urgent"
	UrgencyRoutine   UrgencyLevel = "routine"
)

type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationCompleted ConversationStatus = "completed"
)

// ValidConversationStatuses is the canonical set of accepted status strings.
var ValidConversationStatuses = map[string]bool{
	"active": true, "completed": true,
}

type CategoryHint string

const (
	CategoryFeverInfections CategoryHint = "fever_infections"
	CategoryRespiratory     CategoryHint = "respiratory"
	CategoryDigestive       CategoryHint = "digestive"
	CategoryCardiac         CategoryHint = "cardiac"
	CategoryGeneral         CategoryHint = "general"
	CategoryOther           CategoryHint = "other"
)

// Categories lists every category hint in presentation order.
var Categories = []CategoryHint{
	CategoryFeverInfections,
	CategoryRespiratory,
	CategoryDigestive,
	CategoryCardiac,
	CategoryGeneral,
	CategoryOther,
}

// ParseCategory maps a raw string to a CategoryHint. Unknown or empty input
// returns ok=false and callers treat it as "no category".
func ParseCategory(s string) (CategoryHint, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Label returns a short human-readable name for the category.
func (c CategoryHint) Label() string {
	switch c {
	case CategoryFeverInfections:
		return "Fever & infections"
	case CategoryRespiratory:
		return "Breathing & cough"
	case CategoryDigestive:
		return "Stomach & digestion"
	case CategoryCardiac:
		return "Heart & chest"
	case CategoryGeneral:
		return "General unwellness"
	case CategoryOther:
		return "Something else"
	default:
		return string(c)
	}
}
