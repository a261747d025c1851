package service

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/domain"
)

type EventCounter interface {
	Count(ctx context.Context) (int64, error)
}

type ParticipantCounter interface {
	Count(ctx context.Context) (int64, error)
	CountColleges(ctx context.Context) (int64, error)
}

type StatsService struct {
	events       EventCounter
	participants ParticipantCounter
}

func NewStatsService(events EventCounter, participants ParticipantCounter) *StatsService {
	return &StatsService{
		events:       events,
		participants: participants,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (domain.Stats, error) {
	var (
		stats domain.Stats
		err   error
	)

	if stats.TotalEvents, err = s.events.Count(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("s.events.Count -> %w", err)
	}
	if stats.TotalParticipants, err = s.participants.Count(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("s.participants.Count -> %w", err)
	}
	if stats.TotalColleges, err = s.participants.CountColleges(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("s.participants.CountColleges -> %w", err)
	}

	return stats, nil
}
