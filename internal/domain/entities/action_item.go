package entities

import "strings"

// TBD marks an owner or due date the transcript does not state
const TBD = "TBD"

// ActionItem is a single follow-up extracted from a meeting transcript.
// IDs are assigned by the model and are not checked for uniqueness.
type ActionItem struct {
	ID    int    `json:"id"`
	Task  string `json:"task" validate:"required"`
	Owner string `json:"owner"`
	Due   string `json:"due"`
}

// Normalize trims the text fields and fills unknown owner/due with TBD
func (a *ActionItem) Normalize() {
	a.Task = strings.TrimSpace(a.Task)
	a.Owner = strings.TrimSpace(a.Owner)
	a.Due = strings.TrimSpace(a.Due)
	if a.Owner == "" {
		a.Owner = TBD
	}
	if a.Due == "" {
		a.Due = TBD
	}
}
