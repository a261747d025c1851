package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/connaissance/fest-api/internal/domain"
)

type RegistrationService struct {
	participants ParticipantRepository
	events       EventChecker
	now          func() time.Time
}

func NewRegistrationService(participants ParticipantRepository, events EventChecker) *RegistrationService {
	return &RegistrationService{
		participants: participants,
		events:       events,
		now:          time.Now,
	}
}

// Register signs a person up for one event. The duplicate check and the
// insert are separate statements, so two identical requests racing each
// other can both succeed.
func (s *RegistrationService) Register(ctx context.Context, reg domain.Registration) (domain.Participant, error) {
	if err := reg.Validate(); err != nil {
		return domain.Participant{}, err
	}

	ok, err := s.events.Exists(ctx, reg.EventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.events.Exists -> %w", err)
	}
	if !ok {
		return domain.Participant{}, ErrEventNotFound
	}

	registered, err := s.participants.IsRegistered(ctx, reg.Email, reg.EventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.participants.IsRegistered -> %w", err)
	}
	if registered {
		return domain.Participant{}, ErrAlreadyRegistered
	}

	created, err := s.participants.Create(ctx, domain.Participant{
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		College:      reg.College,
		EventID:      reg.EventID,
		RegisteredAt: s.now().UTC(),
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.participants.Create -> %w", err)
	}

	zap.L().Info("participant registered",
		zap.Uint("participant_id", created.ID),
		zap.Uint("event_id", created.EventID),
	)

	return created, nil
}
