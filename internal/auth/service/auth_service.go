package service

import (
	"strings"

	"github.com/devportfolio/portfolio-backend/internal/auth/password"
)

// AuthService checks submitted credentials against the configured admin
// account. There is exactly one account; no user table exists.
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
}

func NewAuthService(adminUsername, adminPasswordHash string) *AuthService {
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// Authenticate reports whether the trimmed username and password match the
// configured admin credentials.
func (s *AuthService) Authenticate(username, pass string) bool {
	if strings.TrimSpace(username) != s.adminUsername {
		return false
	}
	return password.Verify(strings.TrimSpace(pass), s.adminPasswordHash)
}
