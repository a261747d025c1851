package repository

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/repository/dao"
)

type SiteConfigDAO interface {
	FindAll(ctx context.Context) ([]dao.SiteConfig, error)
	Upsert(ctx context.Context, key, value string) error
}

type SiteConfigRepository struct {
	dao SiteConfigDAO
}

func NewSiteConfigRepository(dao SiteConfigDAO) *SiteConfigRepository {
	return &SiteConfigRepository{
		dao: dao,
	}
}

// FindAll returns every stored override keyed by setting name.
func (r *SiteConfigRepository) FindAll(ctx context.Context) (map[string]string, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	overrides := make(map[string]string, len(found))
	for _, c := range found {
		overrides[c.Key] = c.Value
	}

	return overrides, nil
}

func (r *SiteConfigRepository) Set(ctx context.Context, key, value string) error {
	if err := r.dao.Upsert(ctx, key, value); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}
