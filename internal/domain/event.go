package domain

import "time"

const (
	DefaultEventDate        = "TBD"
	DefaultEventEligibility = "Open to all"
)

type Event struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Date             string    `json:"date"`
	Rules            string    `json:"rules"`
	Eligibility      string    `json:"eligibility"`
	ImageURL         string    `json:"image_url"`
	ParticipantCount int64     `json:"participant_count"`
	CreatedAt        time.Time `json:"-"`
}

// EventDraft carries the fields of a new event. Nil fields take the
// defaults applied by NewEvent.
type EventDraft struct {
	Name        string
	Description *string
	Date        *string
	Rules       *string
	Eligibility *string
	ImageURL    *string
}

// EventPatch replaces only the fields that are non-nil.
type EventPatch struct {
	Name        *string
	Description *string
	Date        *string
	Rules       *string
	Eligibility *string
	ImageURL    *string
}

func NewEvent(d EventDraft) Event {
	return Event{
		Name:        d.Name,
		Description: valueOr(d.Description, ""),
		Date:        valueOr(d.Date, DefaultEventDate),
		Rules:       valueOr(d.Rules, ""),
		Eligibility: valueOr(d.Eligibility, DefaultEventEligibility),
		ImageURL:    valueOr(d.ImageURL, ""),
	}
}

func (e *Event) Apply(p EventPatch) {
	e.Name = valueOr(p.Name, e.Name)
	e.Description = valueOr(p.Description, e.Description)
	e.Date = valueOr(p.Date, e.Date)
	e.Rules = valueOr(p.Rules, e.Rules)
	e.Eligibility = valueOr(p.Eligibility, e.Eligibility)
	e.ImageURL = valueOr(p.ImageURL, e.ImageURL)
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}

	return *v
}
