package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/service"
)

func newRegistration(t *testing.T) (*service.RegistrationService, stores, domain.Event) {
	t.Helper()

	s := newStores(t)
	event, err := s.events.Create(context.Background(), domain.NewEvent(domain.EventDraft{Name: "RoboWars"}))
	require.NoError(t, err)

	return service.NewRegistrationService(s.participants, s.events), s, event
}

func validRegistration(eventID uint) domain.Registration {
	return domain.Registration{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		College: "NIT Trichy",
		EventID: eventID,
	}
}

func TestRegistrationService_Register(t *testing.T) {
	svc, _, event := newRegistration(t)

	before := time.Now().UTC().Add(-time.Second)
	p, err := svc.Register(context.Background(), validRegistration(event.ID))
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, event.ID, p.EventID)
	assert.Equal(t, "RoboWars", p.EventName)
	assert.Equal(t, time.UTC, p.RegisteredAt.Location())
	assert.True(t, p.RegisteredAt.After(before))
}

func TestRegistrationService_RegisterTwiceConflicts(t *testing.T) {
	svc, s, event := newRegistration(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration(event.ID))
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegistration(event.ID))
	assert.ErrorIs(t, err, service.ErrAlreadyRegistered)

	count, err := s.participants.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegistrationService_SameEmailOtherEvent(t *testing.T) {
	svc, s, event := newRegistration(t)
	ctx := context.Background()

	other, err := s.events.Create(ctx, domain.NewEvent(domain.EventDraft{Name: "Tech Quiz"}))
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegistration(event.ID))
	require.NoError(t, err)
	_, err = svc.Register(ctx, validRegistration(other.ID))
	require.NoError(t, err)

	count, err := s.participants.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRegistrationService_MissingFields(t *testing.T) {
	svc, s, event := newRegistration(t)

	tests := []struct {
		name  string
		edit  func(r *domain.Registration)
		field string
	}{
		{"name", func(r *domain.Registration) { r.Name = "" }, "name"},
		{"email", func(r *domain.Registration) { r.Email = "" }, "email"},
		{"phone", func(r *domain.Registration) { r.Phone = "" }, "phone"},
		{"college", func(r *domain.Registration) { r.College = "" }, "college"},
		{"event id", func(r *domain.Registration) { r.EventID = 0 }, "event_id"},
		{"first missing wins", func(r *domain.Registration) {
			r.Phone = ""
			r.Email = ""
		}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration(event.ID)
			tt.edit(&reg)

			_, err := svc.Register(context.Background(), reg)

			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}

	count, err := s.participants.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegistrationService_UnknownEvent(t *testing.T) {
	svc, _, event := newRegistration(t)

	_, err := svc.Register(context.Background(), validRegistration(event.ID+100))
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}
