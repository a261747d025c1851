package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/connaissance/fest-api/internal/domain"
)

type CreateEventRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Rules       *string `json:"rules"`
	Eligibility *string `json:"eligibility"`
	ImageURL    *string `json:"image_url"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.Validate(req.Name, validation.Required.Error("Event name is required"))
}

func (req *CreateEventRequest) ToDraft() domain.EventDraft {
	return domain.EventDraft{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Rules:       req.Rules,
		Eligibility: req.Eligibility,
		ImageURL:    req.ImageURL,
	}
}

// UpdateEventRequest leaves fields absent from the body untouched.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Rules       *string `json:"rules"`
	Eligibility *string `json:"eligibility"`
	ImageURL    *string `json:"image_url"`
}

func (req *UpdateEventRequest) ToPatch() domain.EventPatch {
	return domain.EventPatch{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Rules:       req.Rules,
		Eligibility: req.Eligibility,
		ImageURL:    req.ImageURL,
	}
}
