// Package ai holds thin clients for the external speech-to-text and
// language-model providers. Clients never retry: a failed call is returned
// to the caller as is.
package ai

// ChatRequest is a single-turn chat completion request
type ChatRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
