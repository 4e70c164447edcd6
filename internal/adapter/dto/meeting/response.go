package meeting

// UploadMetadata describes the stored file
type UploadMetadata struct {
	Size       int64  `json:"size" example:"2048"`
	Type       string `json:"type" example:"audio/mpeg"`
	UploadTime string `json:"upload_time" example:"2024-01-01T12:00:00Z"`
}

// UploadResponse is returned by POST /api/upload
type UploadResponse struct {
	Success  bool            `json:"success" example:"true"`
	Filename string          `json:"filename" example:"20240101_120000_meeting.mp3"`
	Metadata *UploadMetadata `json:"metadata,omitempty"`
}

// TranscriptionResponse is returned by GET /api/transcribe/{filename}
type TranscriptionResponse struct {
	Success    bool   `json:"success" example:"true"`
	Transcript string `json:"transcript" example:"We agreed Bob will send the report by Friday."`
}

// ActionItem is one extracted follow-up
type ActionItem struct {
	ID    int    `json:"id" example:"1"`
	Task  string `json:"task" example:"Send the report"`
	Owner string `json:"owner" example:"Bob"`
	Due   string `json:"due" example:"Friday"`
}

// AnalysisData holds the summary and action items
type AnalysisData struct {
	Summary     string       `json:"summary" example:"Team agreed on next step."`
	ActionItems []ActionItem `json:"action_items"`
}

// ExtractionResponse is returned by POST /api/extract
type ExtractionResponse struct {
	Success bool          `json:"success" example:"true"`
	Data    *AnalysisData `json:"data"`
}
