package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_Validate(t *testing.T) {
	valid := Registration{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		College: "NIT Trichy",
		EventID: 1,
	}

	tests := []struct {
		name      string
		mutate    func(r *Registration)
		wantField string
	}{
		{"valid", func(r *Registration) {}, ""},
		{"missing name", func(r *Registration) { r.Name = "" }, "name"},
		{"missing email", func(r *Registration) { r.Email = "" }, "email"},
		{"missing phone", func(r *Registration) { r.Phone = "" }, "phone"},
		{"missing college", func(r *Registration) { r.College = "" }, "college"},
		{"missing event", func(r *Registration) { r.EventID = 0 }, "event_id"},
		{"first missing wins", func(r *Registration) { r.Phone = ""; r.Email = "" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.Equal(t, tt.wantField+" is required", err.Error())
		})
	}
}

func TestParticipant_Apply(t *testing.T) {
	p := Participant{Name: "Asha", Phone: "1", College: "NIT", EventID: 3}
	phone := "2"

	p.Apply(ParticipantPatch{Phone: &phone})

	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "2", p.Phone)
	assert.Equal(t, uint(3), p.EventID)
}

func TestDefaultSiteConfig(t *testing.T) {
	conf := DefaultSiteConfig()

	assert.Len(t, conf, len(SiteConfigKeys))
	for _, key := range SiteConfigKeys {
		assert.True(t, IsSiteConfigKey(key), key)
		assert.Contains(t, conf, key)
	}
	assert.False(t, IsSiteConfigKey("bogus_key"))

	conf["hero_video"] = "changed"
	assert.NotEqual(t, "changed", DefaultSiteConfig()["hero_video"])
}
