package repository

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.ParticipantWithEvent, error)
	FindAll(ctx context.Context, eventID *uint) ([]dao.ParticipantWithEvent, error)
	ExistsForEvent(ctx context.Context, email string, eventID uint) (bool, error)
	Update(ctx context.Context, participant dao.Participant) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountColleges(ctx context.Context) (int64, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

// Create inserts participant and reads it back with its event name.
func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.FindByID(ctx, created.ID)
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context, eventID *uint) ([]domain.Participant, error) {
	found, err := r.dao.FindAll(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.daoToDomain(p)
	}

	return participants, nil
}

func (r *ParticipantRepository) IsRegistered(ctx context.Context, email string, eventID uint) (bool, error) {
	ok, err := r.dao.ExistsForEvent(ctx, email, eventID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsForEvent -> %w", err)
	}

	return ok, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	if err := r.dao.Update(ctx, r.domainToDao(participant)); err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.FindByID(ctx, participant.ID)
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ParticipantRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) CountColleges(ctx context.Context) (int64, error) {
	count, err := r.dao.CountColleges(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountColleges -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) domainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		College:      p.College,
		EventID:      p.EventID,
		RegisteredAt: p.RegisteredAt,
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.ParticipantWithEvent) domain.Participant {
	return domain.Participant{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		College:      p.College,
		EventID:      p.EventID,
		EventName:    p.EventName,
		RegisteredAt: p.RegisteredAt.UTC(),
	}
}
