package service

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/domain"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	FindAll(ctx context.Context, eventID *uint) ([]domain.Participant, error)
	IsRegistered(ctx context.Context, email string, eventID uint) (bool, error)
	Update(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountColleges(ctx context.Context) (int64, error)
}

// EventChecker answers whether an event id refers to a stored event.
type EventChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type ParticipantService struct {
	repo   ParticipantRepository
	events EventChecker
}

func NewParticipantService(repo ParticipantRepository, events EventChecker) *ParticipantService {
	return &ParticipantService{
		repo:   repo,
		events: events,
	}
}

func (s *ParticipantService) ListParticipants(ctx context.Context, eventID *uint) ([]domain.Participant, error) {
	participants, err := s.repo.FindAll(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

// UpdateParticipant applies patch. A new event id that matches no event is
// dropped without error while the other fields are still saved.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, id uint, patch domain.ParticipantPatch) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	participant.Apply(patch)

	if patch.EventID != nil && *patch.EventID != 0 {
		ok, err := s.events.Exists(ctx, *patch.EventID)
		if err != nil {
			return domain.Participant{}, fmt.Errorf("s.events.Exists -> %w", err)
		}
		if ok {
			participant.EventID = *patch.EventID
		}
	}

	updated, err := s.repo.Update(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
