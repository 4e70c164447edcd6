package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-action-assistant/internal/domain/entities"
	"github.com/johnquangdev/meeting-action-assistant/pkg/validator"
)

// Parser turns a model reply into a validated MeetingAnalysis
type Parser struct {
	validator *validator.CustomValidator
}

// NewParser creates a new Parser instance
func NewParser(v *validator.CustomValidator) *Parser {
	if v == nil {
		v = validator.New()
	}
	return &Parser{validator: v}
}

// ParseAnalysis decodes the reply and validates it against the
// MeetingAnalysis shape. Owner and due default to TBD.
func (p *Parser) ParseAnalysis(reply string) (*entities.MeetingAnalysis, error) {
	content := extractJSON(reply)
	if content == "" {
		return nil, fmt.Errorf("empty model reply")
	}

	var analysis entities.MeetingAnalysis
	dec := json.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&analysis); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	analysis.Normalize()
	if err := p.validator.Validate(&analysis); err != nil {
		return nil, fmt.Errorf("invalid analysis: %w", err)
	}

	return &analysis, nil
}

// ParseOrFallback is ParseAnalysis that never fails: unusable replies
// yield the fixed fallback analysis
func (p *Parser) ParseOrFallback(reply string) (*entities.MeetingAnalysis, error) {
	analysis, err := p.ParseAnalysis(reply)
	if err != nil {
		return entities.NewFallbackAnalysis(), err
	}
	return analysis, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		// drop the info string (json, JSON, ...)
		if idx := strings.IndexByte(content, '\n'); idx != -1 {
			if !strings.ContainsAny(content[:idx], "{[") {
				content = content[idx+1:]
			}
		} else {
			content = strings.TrimPrefix(strings.TrimPrefix(content, "json"), "JSON")
		}
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
