package common

// ErrorResponse is the body of every failed request, soft or hard
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"File not found. Please upload the file first."`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	Timestamp   string `json:"timestamp" example:"2024-01-01T12:00:00Z"`
	Version     string `json:"version,omitempty" example:"1.0.0"`
	Environment string `json:"environment,omitempty" example:"development"`
}
