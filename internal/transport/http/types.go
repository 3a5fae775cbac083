package http

type CreateRoomRequest struct {
	Scene           string `json:"scene"`
	MaxParticipants int    `json:"max_participants"`
}

type CreateRoomResponse struct {
	Code  string `json:"code"`
	Scene string `json:"scene"`
}

type JoinRoomRequest struct {
	Code string  `json:"code"`
	Name *string `json:"name"`
}

type JoinRoomResponse struct {
	Code  string `json:"code"`
	Scene string `json:"scene"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// DiagnosticsResponse is the /test payload. Secrets never appear: the
// database URL is reported only as set / not set.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	FallbackActive   bool     `json:"fallback_active"`
}
