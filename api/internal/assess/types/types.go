package types

// AssessRequest is the caller's input for one assessment.
type AssessRequest struct {
	Requirements string `json:"requirements"`
	Content      string `json:"content"`
}

// Verdict is the model's judgment for an AssessRequest.
type Verdict struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason"`
}

// Attestation is the success response body.
type Attestation struct {
	IsValid     bool   `json:"isValid"`
	Reason      string `json:"reason"`
	Timestamp   string `json:"timestamp"`   // ISO-8601, UTC, millisecond precision
	ContentHash string `json:"contentHash"` // hex SHA-256 of Content
}

// ErrorResponse is the body for 400 and 500 responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for unsupported verbs.
type MessageResponse struct {
	Message string `json:"message"`
}

// TimestampLayout matches JavaScript's Date.prototype.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
