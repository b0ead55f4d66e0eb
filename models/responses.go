package models

// ActionResponse is the envelope of every JSON response produced by the
// HTTP layer. Failures always carry Success=false and a human-readable Error;
// no structured error codes are exposed.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// EmailCheckResponse is returned by the allowlist check endpoint.
type EmailCheckResponse struct {
	Success bool `json:"success"`
	Allowed bool `json:"allowed"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
