package dto

type ErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	// Redirect hints the client where to recover, e.g. the profile screen
	// when a finance application is blocked on an incomplete profile.
	Redirect string `json:"redirect,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
