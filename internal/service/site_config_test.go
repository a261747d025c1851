package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/service"
)

func TestSiteConfigService_DefaultsWhenEmpty(t *testing.T) {
	svc := service.NewSiteConfigService(newStores(t).siteConfig)

	conf, err := svc.GetConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSiteConfig(), conf)
	assert.Len(t, conf, 9)
}

func TestSiteConfigService_UpdateIgnoresUnknownKeys(t *testing.T) {
	s := newStores(t)
	svc := service.NewSiteConfigService(s.siteConfig)
	ctx := context.Background()

	require.NoError(t, svc.UpdateConfig(ctx, map[string]string{
		"hero_video": "https://cdn.example.com/x.mp4",
		"bogus_key":  "v",
	}))

	conf, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Len(t, conf, 9)
	assert.Equal(t, "https://cdn.example.com/x.mp4", conf["hero_video"])
	assert.NotContains(t, conf, "bogus_key")
	assert.Equal(t, domain.DefaultSiteConfig()["about_bg"], conf["about_bg"])

	stored, err := s.siteConfig.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hero_video": "https://cdn.example.com/x.mp4"}, stored)
}

func TestSiteConfigService_UpdateTwiceKeepsLatest(t *testing.T) {
	svc := service.NewSiteConfigService(newStores(t).siteConfig)
	ctx := context.Background()

	require.NoError(t, svc.UpdateConfig(ctx, map[string]string{"contact_bg": "one"}))
	require.NoError(t, svc.UpdateConfig(ctx, map[string]string{"contact_bg": ""}))

	conf, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", conf["contact_bg"])
}
