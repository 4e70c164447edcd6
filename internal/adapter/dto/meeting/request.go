package meeting

// TranscribeRequest identifies a stored upload
type TranscribeRequest struct {
	Filename string `param:"filename" validate:"required"`
}

// ExtractRequest carries the transcript to analyse
type ExtractRequest struct {
	Transcript string `json:"transcript" example:"We agreed Bob will send the report by Friday."`
}
