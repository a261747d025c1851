package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Participant struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	College      string    `json:"college"`
	EventID      uint      `json:"event_id"`
	EventName    string    `json:"event_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Registration is a participant's signup request for one event.
type Registration struct {
	Name    string
	Email   string
	Phone   string
	College string
	EventID uint
}

// Validate reports the first missing field, checked in form order.
func (r Registration) Validate() error {
	fields := []struct {
		name  string
		value interface{}
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"college", r.College},
		{"event_id", r.EventID},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, validation.Required); err != nil {
			return &FieldError{Field: f.name}
		}
	}

	return nil
}

// ParticipantPatch replaces only the fields that are non-nil. A zero
// EventID counts as not supplied.
type ParticipantPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	College *string
	EventID *uint
}

func (p *Participant) Apply(patch ParticipantPatch) {
	p.Name = valueOr(patch.Name, p.Name)
	p.Email = valueOr(patch.Email, p.Email)
	p.Phone = valueOr(patch.Phone, p.Phone)
	p.College = valueOr(patch.College, p.College)
}

type Stats struct {
	TotalEvents       int64 `json:"total_events"`
	TotalParticipants int64 `json:"total_participants"`
	TotalColleges     int64 `json:"total_colleges"`
}
