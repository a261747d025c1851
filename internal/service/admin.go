package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/connaissance/fest-api/internal/config"
)

// AdminService checks the shared admin passkey. A successful check is only
// a signal for the caller; no other route is gated by it.
type AdminService struct {
	passkey     []byte
	passkeyHash []byte
}

func NewAdminService(conf *config.AdminConfig) *AdminService {
	return &AdminService{
		passkey:     []byte(conf.Passkey),
		passkeyHash: []byte(conf.PasskeyHash),
	}
}

func (s *AdminService) Verify(passkey string) bool {
	if passkey == "" {
		return false
	}

	if len(s.passkeyHash) > 0 {
		return bcrypt.CompareHashAndPassword(s.passkeyHash, []byte(passkey)) == nil
	}

	return len(s.passkey) > 0 && subtle.ConstantTimeCompare(s.passkey, []byte(passkey)) == 1
}
