package service

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/domain"
)

type SiteConfigRepository interface {
	FindAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

type SiteConfigService struct {
	repo SiteConfigRepository
}

func NewSiteConfigService(repo SiteConfigRepository) *SiteConfigService {
	return &SiteConfigService{
		repo: repo,
	}
}

// GetConfig returns all recognised settings, stored overrides first and
// built-in defaults for the rest.
func (s *SiteConfigService) GetConfig(ctx context.Context) (map[string]string, error) {
	overrides, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	conf := domain.DefaultSiteConfig()
	for key := range conf {
		if v, ok := overrides[key]; ok {
			conf[key] = v
		}
	}

	return conf, nil
}

// UpdateConfig upserts every recognised key in values and ignores the rest.
func (s *SiteConfigService) UpdateConfig(ctx context.Context, values map[string]string) error {
	for _, key := range domain.SiteConfigKeys {
		v, ok := values[key]
		if !ok {
			continue
		}

		if err := s.repo.Set(ctx, key, v); err != nil {
			return fmt.Errorf("s.repo.Set(%v) -> %w", key, err)
		}
	}

	return nil
}
