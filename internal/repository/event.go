package repository

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.EventWithCount, error)
	FindByID(ctx context.Context, id uint) (dao.EventWithCount, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, event dao.Event) error
	DeleteWithParticipants(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(dao.EventWithCount{Event: created}), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

// Update stores every editable field of event and returns the fresh row.
func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := r.dao.Update(ctx, r.domainToDao(event)); err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.FindByID(ctx, event.ID)
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.DeleteWithParticipants(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteWithParticipants -> %w", err)
	}

	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Rules:       e.Rules,
		Eligibility: e.Eligibility,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.EventWithCount) domain.Event {
	return domain.Event{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		Date:             e.Date,
		Rules:            e.Rules,
		Eligibility:      e.Eligibility,
		ImageURL:         e.ImageURL,
		ParticipantCount: e.ParticipantCount,
		CreatedAt:        e.CreatedAt,
	}
}
