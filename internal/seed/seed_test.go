package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connaissance/fest-api/internal/db"
	"github.com/connaissance/fest-api/internal/repository"
	"github.com/connaissance/fest-api/internal/repository/dao"
	"github.com/connaissance/fest-api/internal/seed"
)

func TestRun_OnlyIntoEmptyStore(t *testing.T) {
	store, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)

	events := repository.NewEventRepository(dao.NewEventDAO(store))
	ctx := context.Background()

	inserted, err := seed.Run(ctx, events)
	require.NoError(t, err)
	assert.Equal(t, 6, inserted)

	inserted, err = seed.Run(ctx, events)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	all, err := events.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "RoboWars", all[0].Name)
	assert.Equal(t, "2026-03-17", all[5].Date)
	assert.Contains(t, all[0].Rules, `\n`)
}
