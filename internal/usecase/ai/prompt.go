package ai

import "fmt"

const (
	systemPrompt = "You are an expert meeting assistant that extracts key information from meeting transcripts."

	analysisTemperature = 0.3
	analysisMaxTokens   = 1500
)

const analysisPromptTemplate = `Analyze the following meeting transcript and extract:

1. A concise summary (2-3 sentences) of the main discussion points
2. All action items, each with:
   - task: a clear description of what needs to be done
   - owner: the person responsible (use "TBD" if not mentioned)
   - due: the deadline or timeframe (use "TBD" if not mentioned)

Transcript:
%s

Return ONLY valid JSON in exactly this format, with no other text:
{
  "summary": "Brief summary of the meeting",
  "action_items": [
    {
      "id": 1,
      "task": "Description of the task",
      "owner": "Person name or TBD",
      "due": "Date or TBD"
    }
  ]
}`

// BuildAnalysisPrompt fills the fixed analysis template with transcript
func BuildAnalysisPrompt(transcript string) string {
	return fmt.Sprintf(analysisPromptTemplate, transcript)
}
