package response

import "github.com/connaissance/fest-api/internal/domain"

type Message struct {
	Message string `json:"message"`
}

type Registration struct {
	Message     string             `json:"message"`
	Participant domain.Participant `json:"participant"`
}

type Verify struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
