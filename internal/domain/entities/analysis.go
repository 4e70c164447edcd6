package entities

import "strings"

// FallbackSummary is returned when the model reply cannot be used
const FallbackSummary = "Unable to generate summary - please try again"

// MeetingAnalysis is the structured result of analysing one transcript
type MeetingAnalysis struct {
	Summary     string       `json:"summary" validate:"required"`
	ActionItems []ActionItem `json:"action_items" validate:"dive"`
}

// NewFallbackAnalysis returns the fixed analysis used when the model reply
// is malformed or fails validation
func NewFallbackAnalysis() *MeetingAnalysis {
	return &MeetingAnalysis{
		Summary:     FallbackSummary,
		ActionItems: []ActionItem{},
	}
}

// Normalize trims the summary and normalizes every action item.
// A nil item list becomes empty so it serializes as [].
func (m *MeetingAnalysis) Normalize() {
	m.Summary = strings.TrimSpace(m.Summary)
	if m.ActionItems == nil {
		m.ActionItems = []ActionItem{}
	}
	for i := range m.ActionItems {
		m.ActionItems[i].Normalize()
	}
}
