package errors

// ErrorCode classifies an AppError independently of its HTTP status
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_NOT_FOUND
	ErrorCode_METHOD_NOT_ALLOWED

	ErrorCode_UPLOAD_UNSUPPORTED_TYPE
	ErrorCode_UPLOAD_TOO_LARGE
	ErrorCode_UPLOAD_MISSING_FILE
	ErrorCode_UPLOAD_FAILED

	ErrorCode_FILE_NOT_FOUND
	ErrorCode_AI_NOT_CONFIGURED
	ErrorCode_AI_TRANSCRIPTION_FAILED
	ErrorCode_AI_ANALYSIS_FAILED

	ErrorCode_TRANSCRIPT_EMPTY
	ErrorCode_TRANSCRIPT_TOO_LONG
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_METHOD_NOT_ALLOWED:      "METHOD_NOT_ALLOWED",
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE: "UPLOAD_UNSUPPORTED_TYPE",
	ErrorCode_UPLOAD_TOO_LARGE:        "UPLOAD_TOO_LARGE",
	ErrorCode_UPLOAD_MISSING_FILE:     "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_FAILED:           "UPLOAD_FAILED",
	ErrorCode_FILE_NOT_FOUND:          "FILE_NOT_FOUND",
	ErrorCode_AI_NOT_CONFIGURED:       "AI_NOT_CONFIGURED",
	ErrorCode_AI_TRANSCRIPTION_FAILED: "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_ANALYSIS_FAILED:      "AI_ANALYSIS_FAILED",
	ErrorCode_TRANSCRIPT_EMPTY:        "TRANSCRIPT_EMPTY",
	ErrorCode_TRANSCRIPT_TOO_LONG:     "TRANSCRIPT_TOO_LONG",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
