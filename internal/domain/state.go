package domain

import "sort"

// ConversationState accumulates what is known about a single patient
// conversation. The zero value is not usable; call NewConversationState.
type ConversationState struct {
	markers map[SymptomToken]Marker
}

func NewConversationState() ConversationState {
	return ConversationState{markers: make(map[SymptomToken]Marker)}
}

// StateFromMarkers builds a state from a raw marker map, copying it.
func StateFromMarkers(m map[SymptomToken]Marker) ConversationState {
	s := NewConversationState()
	for k, v := range m {
		s.markers[k] = v
	}
	return s
}

// StateWithSymptoms returns a state with every token marked present.
func StateWithSymptoms(tokens ...SymptomToken) ConversationState {
	s := NewConversationState()
	for _, t := range tokens {
		s.MarkPresent(t)
	}
	return s
}

func (s *ConversationState) ensure() {
	if s.markers == nil {
		s.markers = make(map[SymptomToken]Marker)
	}
}

func (s *ConversationState) MarkPresent(t SymptomToken) {
	s.ensure()
	s.markers[t] = MarkerPresent
}

func (s *ConversationState) MarkAnswered(k QuestionKey) {
	s.ensure()
	s.markers[k.Token()] = MarkerAnswered
}

func (s ConversationState) Marker(t SymptomToken) (Marker, bool) {
	m, ok := s.markers[t]
	return m, ok
}

func (s ConversationState) IsPresent(t SymptomToken) bool {
	return s.markers[t] == MarkerPresent
}

func (s ConversationState) IsAnswered(k QuestionKey) bool {
	return s.markers[k.Token()] == MarkerAnswered
}

// AnsweredCount returns how many tokens carry the answered marker.
func (s ConversationState) AnsweredCount() int {
	n := 0
	for _, m := range s.markers {
		if m == MarkerAnswered {
			n++
		}
	}
	return n
}

// Present returns all tokens marked present, sorted.
func (s ConversationState) Present() []SymptomToken {
	return s.withMarker(MarkerPresent)
}

// Answered returns all question keys marked answered, sorted.
func (s ConversationState) Answered() []QuestionKey {
	tokens := s.withMarker(MarkerAnswered)
	keys := make([]QuestionKey, len(tokens))
	for i, t := range tokens {
		keys[i] = QuestionKey(t)
	}
	return keys
}

func (s ConversationState) withMarker(m Marker) []SymptomToken {
	var out []SymptomToken
	for t, v := range s.markers {
		if v == m {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s ConversationState) Len() int {
	return len(s.markers)
}

// Markers returns a copy of the underlying marker map.
func (s ConversationState) Markers() map[SymptomToken]Marker {
	out := make(map[SymptomToken]Marker, len(s.markers))
	for k, v := range s.markers {
		out[k] = v
	}
	return out
}

func (s ConversationState) Clone() ConversationState {
	return StateFromMarkers(s.markers)
}
