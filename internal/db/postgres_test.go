package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/connaissance/fest-api/internal/db"
	"github.com/connaissance/fest-api/internal/repository/dao"
)

// startPostgres runs a throwaway Postgres container and returns a store
// connected to it. The test is skipped when Docker is not reachable.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=fest",
			"POSTGRES_PASSWORD=fest",
			"POSTGRES_DB=fest",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(120)

	url := fmt.Sprintf("postgres://fest:fest@%s/fest?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var store *gorm.DB
	pool.MaxWait = time.Minute
	err = pool.Retry(func() error {
		var err error
		store, err = db.OpenPostgresWithURL(url)
		return err
	})
	require.NoError(t, err)

	return store
}

func TestPostgres_ParticipantInsertUnknownEvent(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	_, err := dao.NewParticipantDAO(store).Insert(ctx, dao.Participant{
		Name:         "Asha",
		Email:        "asha@x.in",
		Phone:        "1",
		College:      "NIT",
		EventID:      404,
		RegisteredAt: time.Now().UTC(),
	})

	assert.ErrorIs(t, err, dao.ErrEventNotFound)
}

func TestPostgres_EventLifecycle(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()
	events := dao.NewEventDAO(store)
	participants := dao.NewParticipantDAO(store)

	e, err := events.Insert(ctx, dao.Event{Name: "RoboWars", Date: "2026-03-15", Eligibility: "Open to all"})
	require.NoError(t, err)

	_, err = participants.Insert(ctx, dao.Participant{
		Name: "Asha", Email: "a@x.in", Phone: "1", College: "NIT", EventID: e.ID, RegisteredAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	found, err := events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ParticipantCount)

	require.NoError(t, events.DeleteWithParticipants(ctx, e.ID))

	count, err := participants.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostgres_SiteConfigUpsert(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()
	configs := dao.NewSiteConfigDAO(store)

	require.NoError(t, configs.Upsert(ctx, "hero_video", "a"))
	require.NoError(t, configs.Upsert(ctx, "hero_video", "b"))

	found, err := configs.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b", found[0].Value)
}
