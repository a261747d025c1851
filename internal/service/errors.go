package service

import (
	"errors"

	"github.com/connaissance/fest-api/internal/repository"
)

var (
	ErrEventNotFound       = repository.ErrEventNotFound
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrAlreadyRegistered   = errors.New("already registered for this event")
)
