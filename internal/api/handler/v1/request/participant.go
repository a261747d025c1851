package request

import "github.com/connaissance/fest-api/internal/domain"

type RegisterRequest struct {
	Name    Text `json:"name"`
	Email   Text `json:"email"`
	Phone   Text `json:"phone"`
	College Text `json:"college"`
	EventID ID   `json:"event_id"`
}

func (req *RegisterRequest) ToDomain() domain.Registration {
	return domain.Registration{
		Name:    string(req.Name),
		Email:   string(req.Email),
		Phone:   string(req.Phone),
		College: string(req.College),
		EventID: uint(req.EventID),
	}
}

type UpdateParticipantRequest struct {
	Name    *Text `json:"name"`
	Email   *Text `json:"email"`
	Phone   *Text `json:"phone"`
	College *Text `json:"college"`
	EventID *ID   `json:"event_id"`
}

func (req *UpdateParticipantRequest) ToPatch() domain.ParticipantPatch {
	patch := domain.ParticipantPatch{
		Name:    req.Name.ptr(),
		Email:   req.Email.ptr(),
		Phone:   req.Phone.ptr(),
		College: req.College.ptr(),
	}
	if req.EventID != nil {
		id := uint(*req.EventID)
		patch.EventID = &id
	}

	return patch
}
