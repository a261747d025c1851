package service_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connaissance/fest-api/internal/db"
	"github.com/connaissance/fest-api/internal/repository"
	"github.com/connaissance/fest-api/internal/repository/dao"
)

type stores struct {
	events       *repository.EventRepository
	participants *repository.ParticipantRepository
	siteConfig   *repository.SiteConfigRepository
}

func newStores(t *testing.T) stores {
	t.Helper()

	store, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := store.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return stores{
		events:       repository.NewEventRepository(dao.NewEventDAO(store)),
		participants: repository.NewParticipantRepository(dao.NewParticipantDAO(store)),
		siteConfig:   repository.NewSiteConfigRepository(dao.NewSiteConfigDAO(store)),
	}
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func itoa(v uint) string { return strconv.FormatUint(uint64(v), 10) }
