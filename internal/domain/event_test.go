package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewEvent_Defaults(t *testing.T) {
	e := NewEvent(EventDraft{Name: "RoboWars"})

	assert.Equal(t, "RoboWars", e.Name)
	assert.Equal(t, "", e.Description)
	assert.Equal(t, "TBD", e.Date)
	assert.Equal(t, "", e.Rules)
	assert.Equal(t, "Open to all", e.Eligibility)
	assert.Equal(t, "", e.ImageURL)
}

func TestNewEvent_ExplicitEmptyValuesKept(t *testing.T) {
	e := NewEvent(EventDraft{Name: "Quiz", Date: strPtr(""), Eligibility: strPtr("")})

	assert.Equal(t, "", e.Date)
	assert.Equal(t, "", e.Eligibility)
}

func TestEvent_Apply(t *testing.T) {
	e := NewEvent(EventDraft{Name: "Quiz", Rules: strPtr("no phones")})

	e.Apply(EventPatch{Date: strPtr("2026-03-16"), Rules: strPtr("")})

	assert.Equal(t, "Quiz", e.Name)
	assert.Equal(t, "2026-03-16", e.Date)
	assert.Equal(t, "", e.Rules)
	assert.Equal(t, "Open to all", e.Eligibility)
}
