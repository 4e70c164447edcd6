package ai

import (
	"testing"

	"github.com/johnquangdev/meeting-action-assistant/internal/domain/entities"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare", input: `  {"summary":"s"}  `, want: `{"summary":"s"}`},
		{name: "json fence", input: "```json\n{\"summary\":\"s\"}\n```", want: `{"summary":"s"}`},
		{name: "plain fence", input: "```\n{\"summary\":\"s\"}\n```", want: `{"summary":"s"}`},
		{name: "upper-case info string", input: "```JSON\n{\"summary\":\"s\"}\n```", want: `{"summary":"s"}`},
		{name: "single line fence", input: "```json {\"summary\":\"s\"}```", want: `{"summary":"s"}`},
		{name: "fence without info string on same line", input: "```{\"summary\":\"s\"}\n```", want: `{"summary":"s"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAnalysis_Valid(t *testing.T) {
	p := NewParser(nil)
	reply := "```json\n" + `{"summary":"Team agreed on next step.","action_items":[{"id":1,"task":"Send the report","owner":"Bob","due":"Friday"},{"id":2,"task":"Book room","owner":"","due":" "}]}` + "\n```"

	got, err := p.ParseAnalysis(reply)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	if got.Summary != "Team agreed on next step." {
		t.Errorf("summary = %q", got.Summary)
	}
	want := []entities.ActionItem{
		{ID: 1, Task: "Send the report", Owner: "Bob", Due: "Friday"},
		{ID: 2, Task: "Book room", Owner: entities.TBD, Due: entities.TBD},
	}
	if len(got.ActionItems) != len(want) {
		t.Fatalf("action items = %+v", got.ActionItems)
	}
	for i := range want {
		if got.ActionItems[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got.ActionItems[i], want[i])
		}
	}
}

func TestParseAnalysis_MissingItemsBecomesEmpty(t *testing.T) {
	got, err := NewParser(nil).ParseAnalysis(`{"summary":"Nothing to do."}`)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	if got.ActionItems == nil || len(got.ActionItems) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", got.ActionItems)
	}
}

func TestParseAnalysis_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "not json", reply: "Sorry, I cannot help with that."},
		{name: "empty", reply: "   "},
		{name: "truncated", reply: `{"summary":"s","action_items":[{"id":1`},
		{name: "missing summary", reply: `{"action_items":[]}`},
		{name: "blank summary", reply: `{"summary":"  ","action_items":[]}`},
		{name: "empty task", reply: `{"summary":"s","action_items":[{"id":1,"task":"","owner":"Bob","due":"Friday"}]}`},
		{name: "string id", reply: `{"summary":"s","action_items":[{"id":"1","task":"t"}]}`},
		{name: "null", reply: `null`},
		{name: "trailing data", reply: `{"summary":"s"} {"summary":"t"}`},
	}

	p := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseAnalysis(tt.reply); err == nil {
				t.Fatal("expected error")
			}
			got, err := p.ParseOrFallback(tt.reply)
			if err == nil {
				t.Fatal("ParseOrFallback() should report the parse error")
			}
			if got.Summary != entities.FallbackSummary || len(got.ActionItems) != 0 {
				t.Fatalf("fallback = %+v", got)
			}
		})
	}
}
