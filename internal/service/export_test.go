package service_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/service"
)

func TestFormatRegisteredAt(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), "15/03/2026 02:30:00 PM"},
		{time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC), "16/03/2026 01:30:00 AM"},
		{time.Date(2026, 1, 1, 6, 30, 5, 0, time.UTC), "01/01/2026 12:00:05 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.FormatRegisteredAt(tt.in))
	}
}

func TestExportService_ExportParticipants(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	robo, err := s.events.Create(ctx, domain.NewEvent(domain.EventDraft{Name: "RoboWars"}))
	require.NoError(t, err)
	quiz, err := s.events.Create(ctx, domain.NewEvent(domain.EventDraft{Name: "Tech Quiz"}))
	require.NoError(t, err)

	first, err := s.participants.Create(ctx, domain.Participant{
		Name: "Asha", Email: "asha@x.in", Phone: "98", College: "NIT, Trichy", EventID: robo.ID,
		RegisteredAt: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	second, err := s.participants.Create(ctx, domain.Participant{
		Name: "Ravi", Email: "ravi@x.in", Phone: "99", College: "IIT", EventID: quiz.ID,
		RegisteredAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	svc := service.NewExportService(s.participants)

	out, err := svc.ExportParticipants(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(out), "\r\n"))

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Name", "Email", "Phone", "College", "Event", "Registered At"}, records[0])
	assert.Equal(t, "Ravi", records[1][1])
	assert.Equal(t, []string{
		itoa(first.ID), "Asha", "asha@x.in", "98", "NIT, Trichy", "RoboWars", "15/03/2026 02:30:00 PM",
	}, records[2])
	assert.Equal(t, "15/03/2026 03:30:00 PM", records[1][6])

	out, err = svc.ExportParticipants(ctx, uintPtr(quiz.ID))
	require.NoError(t, err)
	records, err = csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, itoa(second.ID), records[1][0])
}

func TestExportService_HeaderOnlyWhenEmpty(t *testing.T) {
	out, err := service.NewExportService(newStores(t).participants).ExportParticipants(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "ID,Name,Email,Phone,College,Event,Registered At\r\n", string(out))
}
