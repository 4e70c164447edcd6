package presenter

import (
	"time"

	"github.com/johnquangdev/meeting-action-assistant/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-action-assistant/internal/domain/entities"
)

// ToUploadResponse converts a StoredUpload to the upload response DTO
func ToUploadResponse(u *entities.StoredUpload, contentType string) *meeting.UploadResponse {
	if u == nil {
		return nil
	}

	fileType := contentType
	if fileType == "" {
		fileType = u.Kind
	}

	return &meeting.UploadResponse{
		Success:  true,
		Filename: u.Name,
		Metadata: &meeting.UploadMetadata{
			Size:       u.Size,
			Type:       fileType,
			UploadTime: u.UploadedAt.UTC().Format(time.RFC3339),
		},
	}
}

// ToTranscriptionResponse wraps a transcript
func ToTranscriptionResponse(transcript string) *meeting.TranscriptionResponse {
	return &meeting.TranscriptionResponse{
		Success:    true,
		Transcript: transcript,
	}
}

// ToExtractionResponse converts a MeetingAnalysis to the extraction response DTO
func ToExtractionResponse(a *entities.MeetingAnalysis) *meeting.ExtractionResponse {
	if a == nil {
		return nil
	}

	items := make([]meeting.ActionItem, 0, len(a.ActionItems))
	for _, it := range a.ActionItems {
		items = append(items, meeting.ActionItem{
			ID:    it.ID,
			Task:  it.Task,
			Owner: it.Owner,
			Due:   it.Due,
		})
	}

	return &meeting.ExtractionResponse{
		Success: true,
		Data: &meeting.AnalysisData{
			Summary:     a.Summary,
			ActionItems: items,
		},
	}
}
